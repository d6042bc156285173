package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// hudStyle colors the status bar like the scoreboard's selected row.
var hudStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57"))

var hudTitleStyle = hudStyle.Bold(true)

// statusReporter is implemented by games that have a line of extra status,
// such as the current wave.
type statusReporter interface {
	Status() string
}

// HUD is the status bar shown above the playfield.
// It is the ScoreSink games publish their counters to.
type HUD struct {
	counters core.Counters
}

// NewHUD creates an empty status bar.
func NewHUD() *HUD {
	return &HUD{}
}

// SetCounters stores the latest counters.
func (h *HUD) SetCounters(c core.Counters) {
	h.counters = c
}

// Counters returns the latest counters.
func (h *HUD) Counters() core.Counters {
	return h.counters
}

// View renders the bar width cells wide: left counter, title and right counter.
func (h *HUD) View(width int, title string, mode core.Mode) string {
	left := fmt.Sprintf(" %s: %d", h.counters.LeftLabel, h.counters.Left)
	right := fmt.Sprintf("%s: %d ", h.counters.RightLabel, h.counters.Right)

	center := title
	switch mode {
	case core.ModePaused:
		center += " [paused]"
	case core.ModeGameOver:
		center += " [game over]"
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - lipgloss.Width(center)
	if gap < 2 {
		// Too narrow for everything; counters win
		center = ""
		gap = max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	}
	lpad := gap / 2
	rpad := gap - lpad

	return hudStyle.Render(left+strings.Repeat(" ", lpad)) +
		hudTitleStyle.Render(center) +
		hudStyle.Render(strings.Repeat(" ", rpad)+right)
}

// hudTitle combines a game's title with its status line, if it has one.
func hudTitle(title string, game any) string {
	if s, ok := game.(statusReporter); ok {
		if status := s.Status(); status != "" {
			return title + " - " + status
		}
	}
	return title
}
