package invaders

import "github.com/vovakirdan/retro-arcade/internal/core"

// bullet is a projectile moving DY units per tick along the vertical axis.
type bullet struct {
	core.Box
	DY float64
}

func (g *Game) updatePlayer() {
	speed := g.cfg.Player.Speed
	if g.keys.left {
		g.ship.X -= speed
	}
	if g.keys.right {
		g.ship.X += speed
	}
	g.ship.X = core.ClampF(g.ship.X, 0, g.cfg.Field.Width-g.ship.W)

	if g.keys.fire {
		g.shoot()
		g.keys.fire = false
	}
}

// shoot launches one bullet from the ship's top center.
func (g *Game) shoot() {
	bw, bh := g.cfg.Bullets.Width, g.cfg.Bullets.Height
	g.playerBullets = append(g.playerBullets, bullet{
		Box: core.NewBox(g.ship.X+g.ship.W/2-bw/2, g.ship.Y, bw, bh),
		DY:  -g.cfg.Bullets.PlayerSpeed,
	})
}

// updateBullets advances both collections and drops bullets that left the field.
func (g *Game) updateBullets() {
	g.playerBullets = advance(g.playerBullets, func(b bullet) bool {
		return b.Y < 0
	})
	g.alienBullets = advance(g.alienBullets, func(b bullet) bool {
		return b.Y > g.cfg.Field.Height
	})
}

// advance moves every bullet and removes the ones gone reports, keeping order.
func advance(bullets []bullet, gone func(bullet) bool) []bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Y += b.DY
		if !gone(b) {
			kept = append(kept, b)
		}
	}
	return kept
}
