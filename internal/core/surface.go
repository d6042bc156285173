package core

// Paint describes how a shape is filled.
// A zero Glyph lets the surface choose one from the shape's footprint.
type Paint struct {
	Color Color
	Glyph rune
}

// Surface is the drawing collaborator games render into.
// Coordinates are in playfield units; games never read back from it.
type Surface interface {
	// Clear blanks the whole frame.
	Clear()

	// FillRect fills an axis-aligned rectangle.
	FillRect(b Box, p Paint)

	// FillCircle fills a disc.
	FillCircle(c Circle, p Paint)

	// StrokeLine draws a line from (x0, y0) to (x1, y1).
	// dash alternates on/off lengths in playfield units; nil means solid.
	StrokeLine(x0, y0, x1, y1 float64, dash []float64, p Paint)

	// FillText draws text centered horizontally on (x, y).
	FillText(text string, x, y float64, p Paint)
}
