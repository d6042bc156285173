package invaders

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

const starCount = 50

var (
	paintStar         = core.Paint{Color: core.ColorWhite}
	paintShip         = core.Paint{Color: core.ColorBrightGreen}
	paintPlayerBullet = core.Paint{Color: core.ColorBrightGreen, Glyph: '│'}
	paintAlienBullet  = core.Paint{Color: core.ColorBrightRed, Glyph: '│'}
	paintLabel        = core.Paint{Color: core.ColorBrightWhite}
)

// alienColors is indexed by alien type; other types are white.
var alienColors = []core.Color{
	core.ColorRed,
	core.ColorYellow,
	core.ColorCyan,
	core.ColorMagenta,
}

func alienPaint(t int) core.Paint {
	if t >= 0 && t < len(alienColors) {
		return core.Paint{Color: alienColors[t]}
	}
	return core.Paint{Color: core.ColorWhite}
}

// stars returns the fixed background: the same 50 points every frame.
func stars(w, h float64) []core.Box {
	out := make([]core.Box, starCount)
	for i := range out {
		out[i] = core.NewBox(math.Mod(float64(i*37), w), math.Mod(float64(i*73), h), 1, 1)
	}
	return out
}

// Render draws the current frame. It does not touch game state.
func (g *Game) Render(dst core.Surface) {
	f := g.cfg.Field
	dst.Clear()

	for _, s := range stars(f.Width, f.Height) {
		dst.FillRect(s, paintStar)
	}

	dst.FillRect(g.ship, paintShip)

	for _, a := range g.aliens {
		if a.Alive {
			dst.FillRect(a.Box, alienPaint(a.Type))
		}
	}

	for _, b := range g.playerBullets {
		dst.FillRect(b.Box, paintPlayerBullet)
	}
	for _, b := range g.alienBullets {
		dst.FillRect(b.Box, paintAlienBullet)
	}

	if g.mode == core.ModePaused {
		dst.FillText("PAUSED", f.Width/2, f.Height/2, paintLabel)
	}
	if g.mode == core.ModeGameOver {
		dst.FillText("GAME OVER", f.Width/2, f.Height/2-30, paintLabel)
		dst.FillText("Press R to play again", f.Width/2, f.Height/2+20, paintLabel)
	}
}
