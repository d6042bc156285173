package invaders

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// alien is one member of the formation. Type is its row and sets color and value.
type alien struct {
	core.Box
	Type  int
	Alive bool
}

// points returns the score for destroying an alien of type t:
// 50 for the top row down to 10 for the fifth.
func points(t int) int {
	return max(5-t, 1) * 10
}

// spawnWave builds a full grid, lowered by wave_step for every wave cleared so far.
func (g *Game) spawnWave() {
	a := g.cfg.Aliens
	shift := float64(g.wave-1) * g.cfg.Gameplay.WaveStep

	g.aliens = g.aliens[:0]
	for row := range a.Rows {
		for col := range a.Cols {
			g.aliens = append(g.aliens, alien{
				Box: core.NewBox(
					a.StartX+float64(col)*(a.Width+a.Spacing),
					a.StartY+float64(row)*(a.Height+a.Spacing)+shift,
					a.Width, a.Height,
				),
				Type:  row,
				Alive: true,
			})
		}
	}
}

// updateAliens moves the formation one step and maybe fires.
// A tick where any live alien touches the side it is heading to drops
// the whole formation instead of moving it sideways, and flips direction.
func (g *Game) updateAliens() {
	fieldW := g.cfg.Field.Width

	atEdge := false
	for _, a := range g.aliens {
		if !a.Alive {
			continue
		}
		if (a.X <= 0 && g.direction < 0) || (a.Right() >= fieldW && g.direction > 0) {
			atEdge = true
			break
		}
	}

	for i := range g.aliens {
		a := &g.aliens[i]
		if !a.Alive {
			continue
		}
		if atEdge {
			a.Y += g.cfg.Aliens.DropStep
		} else {
			a.X += g.cfg.Aliens.Speed * g.direction
		}
	}

	if atEdge {
		g.direction = -g.direction
	}

	g.alienFire()
}

// alienFire spawns, with a small chance per tick, one bullet under a
// random live alien.
func (g *Game) alienFire() {
	if g.rng.Float64() >= g.fireChance() {
		return
	}

	alive := g.aliveIndexes()
	if len(alive) == 0 {
		return
	}

	shooter := g.aliens[alive[g.rng.Intn(len(alive))]]
	bw, bh := g.cfg.Bullets.Width, g.cfg.Bullets.Height
	g.alienBullets = append(g.alienBullets, bullet{
		Box: core.NewBox(shooter.X+shooter.W/2-bw/2, shooter.Bottom(), bw, bh),
		DY:  g.cfg.Bullets.AlienSpeed,
	})
}

// fireChance ramps from the configured chance to double it when difficulty
// progression is enabled.
func (g *Game) fireChance() float64 {
	base := g.cfg.Aliens.FireChance
	return g.difficulty.Lerp(base, math.Min(base*2, 1), g.score, g.tick)
}

func (g *Game) aliveIndexes() []int {
	var idx []int
	for i, a := range g.aliens {
		if a.Alive {
			idx = append(idx, i)
		}
	}
	return idx
}

// AliveCount returns how many aliens of the current wave are alive.
func (g *Game) AliveCount() int {
	n := 0
	for _, a := range g.aliens {
		if a.Alive {
			n++
		}
	}
	return n
}
