package pong

import (
	"math"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Step advances the game by one tick: paddles, then the ball with its
// wall, paddle and goal checks.
func (g *Game) Step() core.StepResult {
	if g.mode != core.ModeRunning {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.movePaddles()
	g.moveBall()

	return core.StepResult{State: g.State()}
}

func (g *Game) movePaddles() {
	speed := g.cfg.Paddles.Speed
	g.left.Y = g.clampPaddle(g.left.Y + g.keys.leftDir(g.opponent)*speed)

	if g.opponent == OpponentCPU {
		g.updateCPU()
		return
	}
	g.right.Y = g.clampPaddle(g.right.Y + g.keys.rightDir()*speed)
}

// clampPaddle keeps a paddle inside [0, field height - paddle height].
func (g *Game) clampPaddle(y float64) float64 {
	return core.ClampF(y, 0, g.cfg.Field.Height-g.cfg.Paddles.Height)
}

func (g *Game) moveBall() {
	b := &g.ball
	b.X += b.DX
	b.Y += b.DY

	// Walls only reflect a ball heading into them, so a ball still
	// touching a wall after bouncing is not sent back.
	if (b.Y-b.R <= 0 && b.DY < 0) || (b.Y+b.R >= g.cfg.Field.Height && b.DY > 0) {
		b.DY = -b.DY
	}

	if b.DX < 0 && g.hits(g.left) {
		g.deflect(g.left)
	}
	if b.DX > 0 && g.hits(g.right) {
		g.deflect(g.right)
	}

	switch {
	case b.X < 0:
		g.score2++
		g.resetBall()
		g.publish()
	case b.X > g.cfg.Field.Width:
		g.score1++
		g.resetBall()
		g.publish()
	}
}

// hits tests the ball's bounding square against a paddle.
func (g *Game) hits(paddle core.Box) bool {
	return g.ball.circle().Bounds().Overlaps(paddle)
}

// deflect sends the ball back with an angle set by where it met the paddle.
func (g *Game) deflect(paddle core.Box) {
	offset := core.ClampF((g.ball.Y-paddle.Y)/paddle.H, 0, 1)
	g.ball.DX = -g.ball.DX
	g.ball.DY = (offset - 0.5) * g.cfg.Ball.SpinFactor
}

// resetBall re-serves from the center in a random direction.
func (g *Game) resetBall() {
	f := g.cfg.Field
	g.ball.X = f.Width / 2
	g.ball.Y = f.Height / 2

	g.ball.DX = g.cfg.Ball.ServeSpeed
	if g.rng.Float64() <= 0.5 {
		g.ball.DX = -g.ball.DX
	}
	g.ball.DY = (g.rng.Float64()*2 - 1) * g.cfg.Ball.ServeSlope
}

// updateCPU moves the right paddle toward the ball while it approaches.
// Skill scales the paddle speed and grows with play time.
func (g *Game) updateCPU() {
	if g.ball.DX <= 0 {
		return
	}

	skill := g.difficulty.Lerp(g.cfg.CPU.MinSkill, g.cfg.CPU.MaxSkill, g.score2, g.tick)
	moveSpeed := g.cfg.Paddles.Speed * skill

	target := g.ball.Y - g.right.H/2
	diff := target - g.right.Y
	if math.Abs(diff) > moveSpeed {
		g.right.Y += math.Copysign(moveSpeed, diff)
	}
	g.right.Y = g.clampPaddle(g.right.Y)
}
