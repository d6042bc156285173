// Package loop sequences a game's simulation and rendering one frame at a time.
//
// The driver owns the game and the surface it draws on. Hosts call Tick once
// per frame from whatever clock they have (a Bubble Tea tick message, a
// time.Ticker, or a test loop).
package loop

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Driver advances one game frame by frame.
type Driver struct {
	game    registry.Game
	surface core.Surface
	runtime core.RuntimeConfig
	logger  *log.Logger

	mode  core.Mode
	ticks uint64
}

// New creates a driver and resets the game with runtime.
// A nil logger discards output.
func New(game registry.Game, surface core.Surface, runtime core.RuntimeConfig, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	d := &Driver{
		game:    game,
		surface: surface,
		runtime: runtime,
		logger:  logger.With("game", game.ID()),
	}
	d.game.Reset(runtime)
	d.mode = d.game.State().Mode
	return d
}

// Game returns the driven game.
func (d *Driver) Game() registry.Game {
	return d.game
}

// Ticks returns how many frames have been simulated since the last reset.
func (d *Driver) Ticks() uint64 {
	return d.ticks
}

// Tick advances exactly one frame. The game is stepped only while running;
// the frame is rendered once in every mode.
func (d *Driver) Tick() core.StepResult {
	var res core.StepResult
	if d.game.State().Mode == core.ModeRunning {
		res = d.game.Step()
		d.ticks++
	} else {
		res = core.StepResult{State: d.game.State()}
	}

	d.observe(res.State.Mode)
	d.game.Render(d.surface)
	return res
}

// Render repaints the current frame without simulating.
func (d *Driver) Render() {
	d.game.Render(d.surface)
}

// ResetGame restarts the game from scratch with the same runtime config.
func (d *Driver) ResetGame() {
	d.game.Reset(d.runtime)
	d.ticks = 0
	d.logger.Debug("reset")
	d.observe(d.game.State().Mode)
}

// Reseed replaces the RNG seed used by the next reset.
func (d *Driver) Reseed(seed int64) {
	d.runtime.Seed = seed
}

// TogglePause swaps running and paused.
func (d *Driver) TogglePause() {
	d.game.TogglePause()
	d.observe(d.game.State().Mode)
}

// KeyDown forwards a key press to the game.
func (d *Driver) KeyDown(k core.Key) {
	d.game.KeyDown(k)
}

// KeyUp forwards a key release to the game.
func (d *Driver) KeyUp(k core.Key) {
	d.game.KeyUp(k)
}

// Run ticks on every value from ticks until ctx is done or ticks is closed.
func (d *Driver) Run(ctx context.Context, ticks <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			d.Tick()
		}
	}
}

func (d *Driver) observe(mode core.Mode) {
	if mode == d.mode {
		return
	}
	d.logger.Debug("mode changed", "from", d.mode, "to", mode, "tick", d.ticks, "score", d.game.State().Score)
	d.mode = mode
}
