// Package invaders implements a Space Invaders clone on an 800x600
// playfield: one ship, a 5x10 alien formation, and endless waves.
package invaders

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game implements the Space Invaders game logic.
type Game struct {
	ship          core.Box
	aliens        []alien // Grid order, row by row; dead aliens stay in place
	direction     float64 // +1 right, -1 left
	playerBullets []bullet
	alienBullets  []bullet
	keys          controls

	score int
	lives int
	wave  int
	mode  core.Mode
	tick  int

	runtime    core.RuntimeConfig
	cfg        config.InvadersConfig
	fixedCfg   *config.InvadersConfig
	difficulty config.Ramp
	rng        *rand.Rand
	sink       core.ScoreSink
}

// New creates a new Space Invaders game instance.
func New() *Game {
	return &Game{sink: core.DiscardSink}
}

// NewWithConfig creates a game that ignores config files and presets.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	return &Game{fixedCfg: &cfg, sink: core.DiscardSink}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Invaders"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewRamp(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	p := g.cfg.Player
	f := g.cfg.Field
	g.ship = core.NewBox(f.Width/2-p.Width/2, f.Height-p.BottomMargin, p.Width, p.Height)

	g.playerBullets = g.playerBullets[:0]
	g.alienBullets = g.alienBullets[:0]
	g.direction = 1
	g.keys = controls{}

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.wave = 1
	g.tick = 0
	g.mode = core.ModeRunning

	g.spawnWave()
	g.publish()
}

func (g *Game) loadConfig() config.InvadersConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	config.ApplyInvadersPreset(&cfg, difficultyPreset)
	return cfg
}

// TogglePause swaps running and paused. No effect after game over.
func (g *Game) TogglePause() {
	g.mode = g.mode.TogglePause()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score, Mode: g.mode}
}

// Lives returns the remaining lives.
func (g *Game) Lives() int {
	return g.lives
}

// Wave returns the 1-based wave number.
func (g *Game) Wave() int {
	return g.wave
}

// Status describes progress for the status bar.
func (g *Game) Status() string {
	return fmt.Sprintf("Wave %d", g.wave)
}

// Playfield returns the logical field size.
func (g *Game) Playfield() (float64, float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// SetScoreSink attaches the score/lives display.
func (g *Game) SetScoreSink(sink core.ScoreSink) {
	if sink == nil {
		sink = core.DiscardSink
	}
	g.sink = sink
	g.publish()
}

func (g *Game) publish() {
	g.sink.SetCounters(core.Counters{
		LeftLabel:  "Score",
		Left:       g.score,
		RightLabel: "Lives",
		Right:      g.lives,
	})
}

// Step advances the game by one tick. Within a tick the ship moves and
// fires first, then bullets, then the formation, then collisions.
func (g *Game) Step() core.StepResult {
	if g.mode != core.ModeRunning {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.updatePlayer()
	g.updateBullets()
	g.updateAliens()
	g.checkCollisions()

	return core.StepResult{State: g.State()}
}

// Register the game with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
}
