package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/platform/tui"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Pong          W/S - left paddle, Up/Down - right paddle
  Pong vs CPU   W/S or Up/Down - your paddle
  Invaders      Left/Right - move, Space - fire
  P/Esc         Pause
  R             Reset
  B             Back (while paused or after game over)
  Ctrl+S        Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C      Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play pong
  arcade play pong_cpu --difficulty hard
  arcade play invaders --difficulty easy
  arcade play invaders --config ./my-invaders.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := applyGameSettings(gameID, flagConfig, flagDifficulty); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	defer store.Close()

	logger.Info("game started", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	if err := tui.Run(game, runtimeConfig(), tui.ModelOptions{Store: store, Logger: logger}); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
