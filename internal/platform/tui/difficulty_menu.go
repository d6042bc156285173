package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/config"
	"github.com/vovakirdan/retro-arcade/internal/core"
)

// difficultyOption is one row of the difficulty picker.
type difficultyOption struct {
	preset config.DifficultyPreset
	label  string
	hint   string
}

var difficultyOptions = []difficultyOption{
	{config.DifficultyEasy, "Easy", "slow start, extra lives"},
	{config.DifficultyNormal, "Normal", "ramps up over a few minutes"},
	{config.DifficultyHard, "Hard", "starts fast, fewer lives"},
	{config.DifficultyFixed, "Fixed", "file settings, no ramp"},
}

// DifficultyModel lets the player pick a difficulty preset before a game.
type DifficultyModel struct {
	title  string
	cursor int
	width  int
	keys   MenuKeyMap
	help   help.Model

	selected config.DifficultyPreset
	quitting bool
	back     bool
}

// NewDifficultyModel creates a picker for the game with the given title.
// The cursor starts on Normal.
func NewDifficultyModel(title string, width int) DifficultyModel {
	return DifficultyModel{
		title:  title,
		cursor: 1,
		width:  width,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.cursor = max(m.cursor-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = min(m.cursor+1, len(difficultyOptions)-1)
		case key.Matches(msg, m.keys.Select):
			m.selected = difficultyOptions[m.cursor].preset
			return m, tea.Quit
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		centerText(menuTitleStyle.Render(strings.ToUpper(m.title)), m.width),
		"",
		centerText("Select difficulty:", m.width),
		"",
	}
	for i, opt := range difficultyOptions {
		marker := "  "
		if i == m.cursor {
			marker = menuCursorStyle.Render("> ")
		}
		line := marker + fmt.Sprintf("%-7s %s", opt.label, menuHintStyle.Render(opt.hint))
		lines = append(lines, centerText(line, m.width))
	}

	bindings := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Select, m.keys.Back, m.keys.Quit}
	lines = append(lines, "", centerText(m.help.ShortHelpView(bindings), m.width))
	return strings.Join(lines, "\n")
}

// Selected returns the chosen preset, or "" if none was chosen.
func (m DifficultyModel) Selected() config.DifficultyPreset {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector asks for a difficulty preset.
// It returns "" when the player backs out or quits.
func RunDifficultySelector(title string, cfg core.RuntimeConfig) (config.DifficultyPreset, error) {
	p := tea.NewProgram(
		NewDifficultyModel(title, cfg.ScreenW),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := finalModel.(DifficultyModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
