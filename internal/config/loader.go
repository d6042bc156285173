package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadPong loads Pong configuration.
// Search order: customPath -> ~/.arcade/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	return load("pong.yaml", customPath, defaultPongYAML, DefaultPongConfig)
}

// LoadInvaders loads Space Invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default
func LoadInvaders(customPath string) (InvadersConfig, error) {
	return load("invaders.yaml", customPath, defaultInvadersYAML, DefaultInvadersConfig)
}

// load walks the search order for one game's config file.
// Files are decoded on top of the defaults, so partial files are fine.
// Only an explicit customPath can fail; discovered files that do not
// parse or validate are skipped.
func load[T validator](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data, defaults)
		if err != nil {
			return defaults(), fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := decode(data, defaults); err == nil {
			return cfg, nil
		}
	}

	cfg, err := decode(embedded, defaults)
	if err != nil {
		return defaults(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// decode unmarshals YAML over the defaults and validates the result.
func decode[T validator](data []byte, defaults func() T) (T, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// applyPreset sets progression from a preset.
func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		d.Enabled = false
	} else {
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyPongPreset modifies the config based on a difficulty preset.
// Presets only shape the CPU opponent; two-player Pong is unaffected.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
// Wave escalation stays as configured; presets change lives and alien fire rate.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Aliens.FireChance = cfg.Aliens.FireChance / 2
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Aliens.FireChance = min(cfg.Aliens.FireChance*2, 1)
	}
}
