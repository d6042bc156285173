package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores or recent matches",
	Long: `Without a game, print a summary of every game in the database.

With a solo game, list its top scores. With a two-sided game, list its
most recent matches and the win tally.

Examples:
  arcade scores
  arcade scores invaders --limit 20
  arcade scores pong
  arcade scores invaders --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the stored high scores of a solo game")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 {
		return printSummary(store)
	}
	return printGame(store, args[0])
}

func scoreTable(headers ...string) *table.Table {
	return table.New().Border(lipgloss.RoundedBorder()).Headers(headers...)
}

func printSummary(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	t := scoreTable("Game", "Played", "Best", "Last")
	for _, g := range registry.List() {
		if multiplayer.ModeForGame(g.ID) == multiplayer.MatchModeSolo {
			gs := stats[g.ID]
			if gs == nil {
				t.Row(g.Title, "0", "-", "-")
				continue
			}
			t.Row(g.Title, strconv.Itoa(gs.GamesCount), strconv.Itoa(gs.HighScore), gs.LastPlayed.Format("2006-01-02"))
			continue
		}

		tally, err := store.TallyMatches(g.ID)
		if err != nil {
			return err
		}
		t.Row(g.Title, strconv.Itoa(tally.Matches), fmt.Sprintf("P1 %d / P2 %d", tally.Wins1, tally.Wins2), "-")
	}

	fmt.Println(t)
	return nil
}

func printGame(store *storage.Store, gameID string) error {
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	solo := multiplayer.ModeForGame(gameID) == multiplayer.MatchModeSolo

	switch {
	case flagScoresClear && !solo:
		return errors.New("--clear only applies to solo games")
	case flagScoresClear:
		n, err := store.ClearScores(gameID)
		if err != nil {
			return err
		}
		fmt.Printf("Cleared %d scores of %s.\n", n, game.Title())
		return nil
	case solo:
		return printHighScores(store, gameID, game.Title())
	default:
		return printMatches(store, gameID, game.Title())
	}
}

func printHighScores(store *storage.Store, gameID, title string) error {
	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", title)
	if len(scores) == 0 {
		fmt.Printf("No scores recorded yet.\n\nPlay 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	t := scoreTable("Rank", "Score", "Date")
	for i, entry := range scores {
		t.Row(strconv.Itoa(i+1), strconv.Itoa(entry.Score), entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	fmt.Println(t)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("Best: %d   Games: %d   Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}

func printMatches(store *storage.Store, gameID, title string) error {
	matches, err := store.RecentMatches(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("Recent Matches - %s\n\n", title)
	if len(matches) == 0 {
		fmt.Printf("No matches recorded yet.\n\nPlay 'arcade play %s' to record the first match!\n", gameID)
		return nil
	}

	t := scoreTable("Date", "Score", "Winner", "End", "Length")
	for _, m := range matches {
		t.Row(
			m.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d-%d", m.Score1, m.Score2),
			multiplayer.PlayerID(m.Winner).String(),
			m.EndReason,
			(time.Duration(m.Duration) * time.Second).String(),
		)
	}
	fmt.Println(t)

	tally, err := store.TallyMatches(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("All time: %d matches   P1 wins: %d   P2 wins: %d   No winner: %d\n",
		tally.Matches, tally.Wins1, tally.Wins2, tally.Draws)
	return nil
}
