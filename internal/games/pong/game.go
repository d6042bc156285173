// Package pong implements two-paddle Pong on an 800x400 playfield.
// The left paddle is player 1 (W/S). The right paddle is player 2
// (arrow keys) or, in pong_cpu, a computer opponent.
package pong

import (
	"math/rand"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

// Opponent selects who drives the right paddle.
type Opponent int

const (
	OpponentHuman Opponent = iota // Arrow keys
	OpponentCPU                   // Ball-tracking AI
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

// ball is the Pong ball: a disc with a per-tick velocity.
type ball struct {
	X, Y   float64
	DX, DY float64
	R      float64
}

func (b ball) circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.R}
}

// Game implements the Pong game logic.
type Game struct {
	opponent Opponent

	left  core.Box
	right core.Box
	ball  ball
	keys  controls

	score1 int
	score2 int
	mode   core.Mode
	tick   int
	served bool

	runtime    core.RuntimeConfig
	cfg        config.PongConfig
	fixedCfg   *config.PongConfig
	difficulty config.Ramp
	rng        *rand.Rand
	sink       core.ScoreSink
}

// New creates a two-player Pong game.
func New() *Game {
	return &Game{opponent: OpponentHuman, sink: core.DiscardSink}
}

// NewVsCPU creates a Pong game against the computer.
func NewVsCPU() *Game {
	return &Game{opponent: OpponentCPU, sink: core.DiscardSink}
}

// NewWithConfig creates a game that ignores config files and presets.
func NewWithConfig(opponent Opponent, cfg config.PongConfig) *Game {
	return &Game{opponent: opponent, fixedCfg: &cfg, sink: core.DiscardSink}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.opponent == OpponentCPU {
		return "pong_cpu"
	}
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.opponent == OpponentCPU {
		return "Pong (vs CPU)"
	}
	return "Pong"
}

// Opponent reports who drives the right paddle.
func (g *Game) Opponent() Opponent {
	return g.opponent
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewRamp(g.cfg.Difficulty)
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	p := g.cfg.Paddles
	f := g.cfg.Field
	y := f.Height/2 - p.Height/2
	g.left = core.NewBox(p.Offset, y, p.Width, p.Height)
	g.right = core.NewBox(f.Width-p.Width-p.Offset, y, p.Width, p.Height)

	// Only the first game of an instance opens with the configured serve.
	g.ball = ball{
		X:  f.Width / 2,
		Y:  f.Height / 2,
		DX: g.cfg.Ball.InitialDX,
		DY: g.cfg.Ball.InitialDY,
		R:  g.cfg.Ball.Radius,
	}
	if g.served {
		g.resetBall()
	}
	g.served = true

	g.keys = controls{}
	g.score1 = 0
	g.score2 = 0
	g.tick = 0
	g.mode = core.ModeRunning
	g.publish()
}

func (g *Game) loadConfig() config.PongConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	cfg, err := config.LoadPong(configPath)
	if err != nil {
		cfg = config.DefaultPongConfig()
	}
	config.ApplyPongPreset(&cfg, difficultyPreset)
	return cfg
}

// TogglePause swaps running and paused.
func (g *Game) TogglePause() {
	g.mode = g.mode.TogglePause()
}

// State returns the current game state. Score is player 1's.
func (g *Game) State() core.GameState {
	return core.GameState{Score: g.score1, Mode: g.mode}
}

// Scores returns both players' scores.
func (g *Game) Scores() (int, int) {
	return g.score1, g.score2
}

// Playfield returns the logical field size.
func (g *Game) Playfield() (float64, float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// SetScoreSink attaches the score display.
func (g *Game) SetScoreSink(sink core.ScoreSink) {
	if sink == nil {
		sink = core.DiscardSink
	}
	g.sink = sink
	g.publish()
}

func (g *Game) publish() {
	right := "P2"
	if g.opponent == OpponentCPU {
		right = "CPU"
	}
	g.sink.SetCounters(core.Counters{
		LeftLabel:  "P1",
		Left:       g.score1,
		RightLabel: right,
		Right:      g.score2,
	})
}

// Register the games with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
	registry.Register("pong_cpu", func() registry.Game {
		return NewVsCPU()
	})
}
