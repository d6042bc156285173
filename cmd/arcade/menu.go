package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Unless --difficulty is given, a difficulty picker follows.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores and matches
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty hard
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	defer store.Close()

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config // follows terminal resizes

		switch {
		case res.Quit || (res.GameID == "" && !res.WantsScoreboard):
			return nil
		case res.WantsScoreboard:
			back, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil || !back {
				return err
			}
			continue
		}

		if err := playFromMenu(res.GameID, cfg, store, logger); err != nil {
			return err
		}
	}
}

// playFromMenu asks for a difficulty unless --difficulty was given, then
// runs one game. Backing out of the picker returns to the menu.
func playFromMenu(gameID string, cfg core.RuntimeConfig, store *storage.Store, logger *log.Logger) error {
	difficulty := flagDifficulty
	if difficulty == "" {
		info, err := registry.Create(gameID)
		if err != nil {
			return err
		}
		preset, err := tui.RunDifficultySelector(info.Title(), cfg)
		if err != nil || preset == "" {
			return err
		}
		difficulty = string(preset)
	}

	if err := applyGameSettings(gameID, flagConfig, difficulty); err != nil {
		return err
	}

	// Created after the settings so it picks them up on reset.
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Info("game started", "game", gameID, "difficulty", difficulty)
	if err := tui.Run(game, cfg, tui.ModelOptions{Store: store, Logger: logger}); err != nil {
		logger.Error("game failed", "game", gameID, "error", err)
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
