package core

import "math"

// Canvas is a Surface that rasterizes a playfield onto a Screen.
// The playfield is stretched to cover the whole screen; glyphs for
// unpainted shapes are picked from how many cells the shape covers.
type Canvas struct {
	dst    *Screen
	worldW float64
	worldH float64
}

// NewCanvas creates a canvas drawing a worldW x worldH playfield onto dst.
func NewCanvas(dst *Screen, worldW, worldH float64) *Canvas {
	return &Canvas{dst: dst, worldW: worldW, worldH: worldH}
}

// SetPlayfield changes the logical size mapped onto the screen.
func (c *Canvas) SetPlayfield(w, h float64) {
	c.worldW = w
	c.worldH = h
}

// Screen returns the destination buffer.
func (c *Canvas) Screen() *Screen {
	return c.dst
}

// scale returns cells per playfield unit on each axis.
// Zero means nothing can be drawn.
func (c *Canvas) scale() (float64, float64) {
	if c.worldW <= 0 || c.worldH <= 0 {
		return 0, 0
	}
	return float64(c.dst.Width()) / c.worldW, float64(c.dst.Height()) / c.worldH
}

// toCell returns the cell containing a playfield point.
func (c *Canvas) toCell(x, y float64) (int, int) {
	sx, sy := c.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

// Clear blanks the screen.
func (c *Canvas) Clear() {
	c.dst.Clear()
}

// FillRect fills every cell the box covers, at least one.
func (c *Canvas) FillRect(b Box, p Paint) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}

	x0, x1 := span(b.X*sx, b.Right()*sx)
	y0, y1 := span(b.Y*sy, b.Bottom()*sy)

	glyph := p.Glyph
	if glyph == 0 {
		glyph = rectGlyph(b.W*sx, b.H*sy)
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.dst.SetColored(x, y, glyph, p.Color)
		}
	}
}

// FillCircle fills the cells whose centers lie inside the circle.
// Circles smaller than a cell still light up the cell holding the center.
func (c *Canvas) FillCircle(ci Circle, p Paint) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}

	glyph := p.Glyph
	if glyph == 0 {
		glyph = '●'
	}

	b := ci.Bounds()
	x0, x1 := span(b.X*sx, b.Right()*sx)
	y0, y1 := span(b.Y*sy, b.Bottom()*sy)

	drawn := false
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := (float64(x)+0.5)/sx - ci.X
			dy := (float64(y)+0.5)/sy - ci.Y
			if dx*dx+dy*dy <= ci.R*ci.R {
				c.dst.SetColored(x, y, glyph, p.Color)
				drawn = true
			}
		}
	}

	if !drawn {
		cx, cy := c.toCell(ci.X, ci.Y)
		c.dst.SetColored(cx, cy, glyph, p.Color)
	}
}

// StrokeLine walks the line in half-cell steps.
// Dash segments shorter than a cell are stretched so gaps stay visible.
func (c *Canvas) StrokeLine(x0, y0, x1, y1 float64, dash []float64, p Paint) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}

	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)

	glyph := p.Glyph
	if glyph == 0 {
		glyph = lineGlyph(dx*sx, dy*sy)
	}

	if length == 0 {
		cx, cy := c.toCell(x0, y0)
		c.dst.SetColored(cx, cy, glyph, p.Color)
		return
	}

	// Playfield length of one cell along the line direction
	cellLen := 1 / math.Max(math.Abs(dx/length)*sx, math.Abs(dy/length)*sy)
	pattern := newDashPattern(dash, cellLen)

	step := cellLen / 2
	for i := 0; ; i++ {
		d := float64(i) * step
		if d > length {
			break
		}
		if !pattern.on(d) {
			continue
		}
		t := d / length
		cx, cy := c.toCell(x0+dx*t, y0+dy*t)
		c.dst.SetColored(cx, cy, glyph, p.Color)
	}
}

// FillText draws text centered on the cell containing (x, y).
func (c *Canvas) FillText(text string, x, y float64, p Paint) {
	sx, sy := c.scale()
	if sx == 0 || sy == 0 {
		return
	}
	cx, cy := c.toCell(x, y)
	n := len([]rune(text))
	c.dst.DrawTextColored(cx-n/2, cy, text, p.Color)
}

// span converts a continuous interval to a half-open cell range.
// The range always holds at least one cell.
func span(lo, hi float64) (int, int) {
	a := int(math.Round(lo))
	b := int(math.Round(hi))
	if b <= a {
		a = int(math.Floor((lo + hi) / 2))
		b = a + 1
	}
	return a, b
}

// rectGlyph picks a glyph from the cell footprint of a rectangle.
func rectGlyph(cellsW, cellsH float64) rune {
	switch {
	case cellsW < 0.5 && cellsH < 0.5:
		return '·'
	case cellsW < 0.75:
		return '│'
	case cellsH < 0.75:
		return '▄'
	default:
		return '█'
	}
}

// lineGlyph picks a glyph from the on-screen direction of a line.
func lineGlyph(cellsDX, cellsDY float64) rune {
	ax, ay := math.Abs(cellsDX), math.Abs(cellsDY)
	switch {
	case ax <= ay/2:
		return '│'
	case ay <= ax/2:
		return '─'
	default:
		return '·'
	}
}

// dashPattern follows the canvas convention: odd-length patterns repeat
// to become even, and even indices are drawn.
type dashPattern struct {
	segments []float64
	period   float64
}

func newDashPattern(dash []float64, minSegment float64) dashPattern {
	if len(dash) == 0 {
		return dashPattern{}
	}

	segments := append([]float64(nil), dash...)
	if len(segments)%2 == 1 {
		segments = append(segments, segments...)
	}

	shortest := math.Inf(1)
	for _, s := range segments {
		if s < 0 {
			return dashPattern{}
		}
		if s > 0 && s < shortest {
			shortest = s
		}
	}
	if math.IsInf(shortest, 1) {
		return dashPattern{}
	}

	k := 1.0
	if shortest < minSegment {
		k = minSegment / shortest
	}

	var period float64
	for i := range segments {
		segments[i] *= k
		period += segments[i]
	}

	return dashPattern{segments: segments, period: period}
}

// on reports whether distance d along the line falls in a drawn segment.
func (p dashPattern) on(d float64) bool {
	if p.period <= 0 {
		return true
	}
	m := math.Mod(d, p.period)
	for i, s := range p.segments {
		if m < s {
			return i%2 == 0
		}
		m -= s
	}
	return false
}
