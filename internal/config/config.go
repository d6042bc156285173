// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// FieldConfig is the logical playfield a game simulates in.
// The terminal canvas stretches it over the available cells.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PongConfig contains all configuration for Pong.
type PongConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Paddles    PongPaddles      `yaml:"paddles"`
	Ball       PongBall         `yaml:"ball"`
	CPU        PongCPU          `yaml:"cpu"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PongPaddles defines paddle geometry and movement.
type PongPaddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Offset float64 `yaml:"offset"` // Distance from the side wall
	Speed  float64 `yaml:"speed"`  // Units per tick
}

// PongBall defines the ball and how it is served.
type PongBall struct {
	Radius     float64 `yaml:"radius"`
	InitialDX  float64 `yaml:"initial_dx"`  // Velocity of the very first serve
	InitialDY  float64 `yaml:"initial_dy"`
	ServeSpeed float64 `yaml:"serve_speed"` // |dx| after a point
	ServeSlope float64 `yaml:"serve_slope"` // dy is drawn from [-slope, slope]
	SpinFactor float64 `yaml:"spin_factor"` // dy = (hitOffset - 0.5) * factor
}

// PongCPU defines the computer opponent used by pong_cpu.
type PongCPU struct {
	MinSkill float64 `yaml:"min_skill"` // Fraction of paddle speed at level 0
	MaxSkill float64 `yaml:"max_skill"` // Fraction of paddle speed at level 1
}

// InvadersConfig contains all configuration for Space Invaders.
type InvadersConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Player     InvadersPlayer   `yaml:"player"`
	Bullets    InvadersBullets  `yaml:"bullets"`
	Aliens     InvadersAliens   `yaml:"aliens"`
	Gameplay   InvadersGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// InvadersPlayer defines the ship.
type InvadersPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"` // Distance from the ship's top to the field bottom
	Speed        float64 `yaml:"speed"`
}

// InvadersBullets defines both bullet kinds.
type InvadersBullets struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"`
	AlienSpeed  float64 `yaml:"alien_speed"`
}

// InvadersAliens defines the formation.
type InvadersAliens struct {
	Rows       int     `yaml:"rows"`
	Cols       int     `yaml:"cols"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Spacing    float64 `yaml:"spacing"`
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	Speed      float64 `yaml:"speed"`
	DropStep   float64 `yaml:"drop_step"`
	FireChance float64 `yaml:"fire_chance"` // Probability per tick of one alien shot
}

// InvadersGameplay defines lives and wave escalation.
type InvadersGameplay struct {
	Lives    int     `yaml:"lives"`
	WaveStep float64 `yaml:"wave_step"` // Extra downward shift per cleared wave
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  ProgressBasis `yaml:"type"`   // score, time or none
	MaxAt int           `yaml:"max_at"` // Score or ticks at which the level reaches 1
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate reports the first impossible value in a Pong config.
func (c PongConfig) Validate() error {
	if err := c.Field.validate(); err != nil {
		return err
	}
	if err := c.Difficulty.validate(); err != nil {
		return err
	}
	switch {
	case c.Paddles.Width <= 0 || c.Paddles.Height <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalid)
	case c.Paddles.Height > c.Field.Height:
		return fmt.Errorf("%w: paddle taller than field", ErrInvalid)
	case c.Paddles.Speed < 0:
		return fmt.Errorf("%w: paddle speed must not be negative", ErrInvalid)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalid)
	case c.Ball.ServeSpeed <= 0:
		return fmt.Errorf("%w: serve speed must be positive", ErrInvalid)
	case c.Ball.ServeSlope < 0:
		return fmt.Errorf("%w: serve slope must not be negative", ErrInvalid)
	case c.CPU.MinSkill < 0 || c.CPU.MaxSkill < c.CPU.MinSkill:
		return fmt.Errorf("%w: cpu skill range [%g, %g]", ErrInvalid, c.CPU.MinSkill, c.CPU.MaxSkill)
	}
	return nil
}

// Validate reports the first impossible value in an Invaders config.
func (c InvadersConfig) Validate() error {
	if err := c.Field.validate(); err != nil {
		return err
	}
	if err := c.Difficulty.validate(); err != nil {
		return err
	}
	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: ship size must be positive", ErrInvalid)
	case c.Player.Width > c.Field.Width:
		return fmt.Errorf("%w: ship wider than field", ErrInvalid)
	case c.Bullets.Width <= 0 || c.Bullets.Height <= 0:
		return fmt.Errorf("%w: bullet size must be positive", ErrInvalid)
	case c.Bullets.PlayerSpeed <= 0 || c.Bullets.AlienSpeed <= 0:
		return fmt.Errorf("%w: bullet speeds must be positive", ErrInvalid)
	case c.Aliens.Rows <= 0 || c.Aliens.Cols <= 0:
		return fmt.Errorf("%w: alien grid must have rows and columns", ErrInvalid)
	case c.Aliens.Width <= 0 || c.Aliens.Height <= 0:
		return fmt.Errorf("%w: alien size must be positive", ErrInvalid)
	case c.Aliens.FireChance < 0 || c.Aliens.FireChance > 1:
		return fmt.Errorf("%w: fire chance %g outside [0, 1]", ErrInvalid, c.Aliens.FireChance)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive", ErrInvalid)
	}
	return nil
}

func (f FieldConfig) validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: field %gx%g", ErrInvalid, f.Width, f.Height)
	}
	return nil
}

func (d DifficultyConfig) validate() error {
	switch d.Progression.Type {
	case ProgressByScore, ProgressByTime, ProgressNone, "":
	default:
		return fmt.Errorf("%w: progression type %q", ErrInvalid, d.Progression.Type)
	}
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return fmt.Errorf("%w: initial level %g outside [0, 1]", ErrInvalid, d.InitialLevel)
	}
	return nil
}
