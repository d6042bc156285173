package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Field: FieldConfig{Width: 800, Height: 400},
		Paddles: PongPaddles{
			Width:  10,
			Height: 80,
			Offset: 10,
			Speed:  5,
		},
		Ball: PongBall{
			Radius:     8,
			InitialDX:  4,
			InitialDY:  3,
			ServeSpeed: 4,
			ServeSlope: 3,
			SpinFactor: 8,
		},
		CPU: PongCPU{
			MinSkill: 0.6,
			MaxSkill: 0.85,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressByTime,
				MaxAt: 36000, // 10 minutes at 60fps
			},
		},
	}
}

// DefaultInvadersConfig returns the default Space Invaders configuration.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{Width: 800, Height: 600},
		Player: InvadersPlayer{
			Width:        40,
			Height:       20,
			BottomMargin: 40,
			Speed:        5,
		},
		Bullets: InvadersBullets{
			Width:       4,
			Height:      10,
			PlayerSpeed: 7,
			AlienSpeed:  3,
		},
		Aliens: InvadersAliens{
			Rows:       5,
			Cols:       10,
			Width:      30,
			Height:     20,
			Spacing:    10,
			StartX:     50,
			StartY:     50,
			Speed:      1,
			DropStep:   20,
			FireChance: 0.002,
		},
		Gameplay: InvadersGameplay{
			Lives:    3,
			WaveStep: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type: ProgressNone,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pong", "pong_cpu":
		return defaultPongYAML
	case "invaders":
		return defaultInvadersYAML
	default:
		return nil
	}
}
