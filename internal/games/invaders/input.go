package invaders

import "github.com/vovakirdan/retro-arcade/internal/core"

// controls are the input flags. fire is edge-triggered: it is raised on
// the press that finds fireHeld clear and consumed by the next Step.
type controls struct {
	left     bool
	right    bool
	fire     bool
	fireHeld bool
}

// KeyDown sets the flag for a mapped key.
func (g *Game) KeyDown(k core.Key) {
	switch k {
	case core.KeyArrowLeft:
		g.keys.left = true
	case core.KeyArrowRight:
		g.keys.right = true
	case core.KeySpace:
		if !g.keys.fireHeld {
			g.keys.fire = true
			g.keys.fireHeld = true
		}
	}
}

// KeyUp clears the flag for a mapped key.
func (g *Game) KeyUp(k core.Key) {
	switch k {
	case core.KeyArrowLeft:
		g.keys.left = false
	case core.KeyArrowRight:
		g.keys.right = false
	case core.KeySpace:
		g.keys.fireHeld = false
	}
}
