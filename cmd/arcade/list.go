package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
	"github.com/vovakirdan/retro-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game registered in the arcade with how it is played.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "Title", "Mode")
	for _, g := range games {
		t.Row(g.ID, g.Title, multiplayer.ModeForGame(g.ID).String())
	}

	fmt.Println(t)
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
