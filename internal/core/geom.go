// Package core holds the pieces every arcade game shares: playfield
// geometry, the drawing surface, input keys and the game contract.
// Nothing here imports a terminal library, so games stay testable headless.
package core

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Box is a float64 axis-aligned bounding box in playfield coordinates.
// All gameplay collision tests use Box.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Overlaps reports whether two boxes intersect.
// Edges that only touch do not count as overlap.
func (b Box) Overlaps(other Box) bool {
	return b.X < other.Right() &&
		b.Right() > other.X &&
		b.Y < other.Bottom() &&
		b.Bottom() > other.Y
}

// Circle is a disc in playfield coordinates.
type Circle struct {
	X, Y float64 // Center
	R    float64
}

// Bounds returns the bounding square of the circle.
func (c Circle) Bounds() Box {
	return Box{X: c.X - c.R, Y: c.Y - c.R, W: c.R * 2, H: c.R * 2}
}
