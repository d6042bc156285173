package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/games/invaders"
	"github.com/vovakirdan/retro-arcade/internal/games/pong"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// newLogger returns the CLI logger. Without --log-file logs are discarded,
// since stdout and stderr belong to the game while it runs.
// The returned closer must be called on exit.
func newLogger() (*log.Logger, io.Closer, error) {
	if flagLogFile == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// openStore opens the scores database. Failures are reported and the
// arcade runs without persistence.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// applyGameSettings hands the config file and difficulty preset to the game
// package before it is created. An explicit config file is loaded once here
// so a bad file is reported instead of silently replaced by defaults.
func applyGameSettings(gameID, configPath, difficulty string) error {
	if difficulty != "" && config.ParsePreset(difficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", difficulty)
	}

	switch gameID {
	case "pong", "pong_cpu":
		if configPath != "" {
			if _, err := config.LoadPong(configPath); err != nil {
				return err
			}
		}
		pong.SetConfigPath(configPath)
		pong.SetDifficultyPreset(difficulty)
	case "invaders":
		if configPath != "" {
			if _, err := config.LoadInvaders(configPath); err != nil {
				return err
			}
		}
		invaders.SetConfigPath(configPath)
		invaders.SetDifficultyPreset(difficulty)
	}
	return nil
}
