package pong

import "github.com/vovakirdan/retro-arcade/internal/core"

// Snapshot captures the game state for determinism testing.
// Velocities are scaled by 1000 to keep primitive types.
type Snapshot struct {
	Tick     uint64
	BallX    int
	BallY    int
	BallDX   int
	BallDY   int
	Paddle1Y int
	Paddle2Y int
	Score1   int
	Score2   int
	Mode     core.Mode
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     uint64(max(0, g.tick)), //nolint:gosec // tick is never negative
		BallX:    int(g.ball.X),
		BallY:    int(g.ball.Y),
		BallDX:   int(g.ball.DX * 1000),
		BallDY:   int(g.ball.DY * 1000),
		Paddle1Y: int(g.left.Y),
		Paddle2Y: int(g.right.Y),
		Score1:   g.score1,
		Score2:   g.score2,
		Mode:     g.mode,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.BallX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDX)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallDY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Paddle1Y) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Paddle2Y) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score1)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score2)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Mode)     //#nosec G115 -- hash computation
	return h
}
