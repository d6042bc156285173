package invaders

import (
	"slices"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// checkCollisions resolves every hit of the tick. Player bullets are taken
// newest first and each destroys at most the first live alien it overlaps
// in grid order. Only one alien bullet can hit the ship per tick.
func (g *Game) checkCollisions() {
	changed := false

	for i := len(g.playerBullets) - 1; i >= 0; i-- {
		b := g.playerBullets[i]
		for j := range g.aliens {
			a := &g.aliens[j]
			if !a.Alive || !b.Overlaps(a.Box) {
				continue
			}
			a.Alive = false
			g.playerBullets = slices.Delete(g.playerBullets, i, i+1)
			g.score += points(a.Type)
			changed = true
			break
		}
	}

	for i := len(g.alienBullets) - 1; i >= 0; i-- {
		if !g.alienBullets[i].Overlaps(g.ship) {
			continue
		}
		g.alienBullets = slices.Delete(g.alienBullets, i, i+1)
		g.lives = max(g.lives-1, 0)
		changed = true
		if g.lives == 0 {
			g.mode = core.ModeGameOver
		}
		break
	}

	for _, a := range g.aliens {
		if a.Alive && a.Bottom() >= g.ship.Y {
			g.mode = core.ModeGameOver
			break
		}
	}

	if g.AliveCount() == 0 {
		g.wave++
		g.spawnWave()
	}

	if changed {
		g.publish()
	}
}
