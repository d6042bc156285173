package core

import "testing"

// 80x20 cells over an 800x400 playfield: 10 units per column, 20 per row.
func newTestCanvas() (*Canvas, *Screen) {
	s := NewScreen(80, 20)
	return NewCanvas(s, 800, 400), s
}

func TestCanvasFillRect(t *testing.T) {
	c, s := newTestCanvas()

	c.FillRect(NewBox(10, 160, 10, 80), Paint{Color: ColorWhite})

	for y := 8; y < 12; y++ {
		cell := s.GetCell(1, y)
		if cell.Rune != '█' || cell.Color != ColorWhite {
			t.Errorf("expected white block at (1, %d), got %+v", y, cell)
		}
	}
	if s.Get(1, 7) != ' ' || s.Get(1, 12) != ' ' {
		t.Error("FillRect should not paint outside the box rows")
	}
	if s.Get(0, 9) != ' ' || s.Get(2, 9) != ' ' {
		t.Error("FillRect should not paint outside the box columns")
	}
}

func TestCanvasFillRectSubCell(t *testing.T) {
	c, s := newTestCanvas()

	// A one-unit star still occupies exactly one cell
	c.FillRect(NewBox(37, 73, 1, 1), Paint{Color: ColorWhite})

	if s.Get(3, 3) != '·' {
		t.Errorf("expected dot at (3, 3), got %q", s.Get(3, 3))
	}

	count := 0
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				count++
			}
		}
	}
	if count != 1 {
		t.Errorf("expected exactly 1 painted cell, got %d", count)
	}
}

func TestCanvasFillRectExplicitGlyph(t *testing.T) {
	c, s := newTestCanvas()

	c.FillRect(NewBox(100, 100, 40, 40), Paint{Color: ColorCyan, Glyph: '▓'})

	if s.GetCell(11, 5).Rune != '▓' || s.GetCell(11, 5).Color != ColorCyan {
		t.Errorf("explicit glyph not used, got %+v", s.GetCell(11, 5))
	}
}

func TestCanvasFillCircleSmall(t *testing.T) {
	c, s := newTestCanvas()

	c.FillCircle(Circle{X: 400, Y: 200, R: 8}, Paint{Color: ColorWhite})

	if s.Get(40, 10) != '●' {
		t.Errorf("expected ball glyph at (40, 10), got %q", s.Get(40, 10))
	}
}

func TestCanvasStrokeDashedLine(t *testing.T) {
	c, s := newTestCanvas()

	c.StrokeLine(400, 0, 400, 400, []float64{10, 10}, Paint{Color: ColorWhite})

	if s.Get(40, 0) != '│' {
		t.Errorf("expected line at row 0, got %q", s.Get(40, 0))
	}
	if s.Get(40, 1) != ' ' {
		t.Errorf("expected gap at row 1, got %q", s.Get(40, 1))
	}
	if s.Get(40, 2) != '│' {
		t.Errorf("expected line at row 2, got %q", s.Get(40, 2))
	}
}

func TestCanvasStrokeSolidLine(t *testing.T) {
	c, s := newTestCanvas()

	c.StrokeLine(0, 200, 800, 200, nil, Paint{Color: ColorGray})

	for x := 0; x < 80; x++ {
		if s.Get(x, 10) != '─' {
			t.Fatalf("expected solid line at (%d, 10), got %q", x, s.Get(x, 10))
		}
	}
}

func TestCanvasFillText(t *testing.T) {
	c, s := newTestCanvas()

	c.FillText("PAUSED", 400, 200, Paint{Color: ColorBrightWhite})

	row := s.Row(10)
	if row[37:43] != "PAUSED" {
		t.Errorf("expected centered PAUSED, row = %q", row)
	}
}

func TestCanvasEmptyPlayfield(t *testing.T) {
	s := NewScreen(10, 10)
	c := NewCanvas(s, 0, 0)

	// Nothing to map onto; must not panic or paint
	c.FillRect(NewBox(0, 0, 5, 5), Paint{})
	c.FillCircle(Circle{X: 1, Y: 1, R: 1}, Paint{})
	c.StrokeLine(0, 0, 5, 5, nil, Paint{})
	c.FillText("x", 0, 0, Paint{})

	if s.Get(0, 0) != ' ' {
		t.Error("canvas without a playfield should not draw")
	}
}

func TestDashPatternOddLength(t *testing.T) {
	p := newDashPattern([]float64{5}, 1)

	if !p.on(0) || p.on(6) || !p.on(11) {
		t.Error("odd dash pattern should repeat as [5 5]")
	}
}
