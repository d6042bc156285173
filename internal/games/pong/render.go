package pong

import "github.com/vovakirdan/retro-arcade/internal/core"

var (
	paintNet    = core.Paint{Color: core.ColorGray}
	paintPaddle = core.Paint{Color: core.ColorBrightWhite}
	paintBall   = core.Paint{Color: core.ColorBrightWhite}
	paintLabel  = core.Paint{Color: core.ColorBrightYellow}
)

var netDash = []float64{10, 10}

// Render draws the current frame. It does not touch game state.
func (g *Game) Render(dst core.Surface) {
	f := g.cfg.Field
	dst.Clear()

	dst.StrokeLine(f.Width/2, 0, f.Width/2, f.Height, netDash, paintNet)

	dst.FillRect(g.left, paintPaddle)
	dst.FillRect(g.right, paintPaddle)
	dst.FillCircle(g.ball.circle(), paintBall)

	if g.mode == core.ModePaused {
		dst.FillText("PAUSED", f.Width/2, f.Height/2, paintLabel)
	}
}
