package pong

import "github.com/vovakirdan/retro-arcade/internal/core"

// controls are the held-direction flags. Key handlers write them;
// Step only reads them.
type controls struct {
	w, s     bool
	up, down bool
}

// KeyDown sets the flag for a mapped key.
func (g *Game) KeyDown(k core.Key) {
	g.keys.set(k, true)
}

// KeyUp clears the flag for a mapped key.
func (g *Game) KeyUp(k core.Key) {
	g.keys.set(k, false)
}

func (c *controls) set(k core.Key, held bool) {
	switch k {
	case core.KeyW:
		c.w = held
	case core.KeyS:
		c.s = held
	case core.KeyArrowUp:
		c.up = held
	case core.KeyArrowDown:
		c.down = held
	}
}

// leftDir returns -1, 0 or 1 for the left paddle. Against the CPU
// the arrow keys steer it too.
func (c controls) leftDir(opponent Opponent) float64 {
	up, down := c.w, c.s
	if opponent == OpponentCPU {
		up = up || c.up
		down = down || c.down
	}
	return axis(up, down)
}

func (c controls) rightDir() float64 {
	return axis(c.up, c.down)
}

func axis(neg, pos bool) float64 {
	var d float64
	if neg {
		d--
	}
	if pos {
		d++
	}
	return d
}
