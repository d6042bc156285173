package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

const (
	minWidthForSidebar = 80  // narrower terminals get tabs instead
	sidebarWidth       = 20  // game list column
	maxRows            = 100 // scores or matches loaded per game
	rowDateLayout      = "Jan 02 15:04"
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardActive     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	boardMuted      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardEmptyStyle = boardMuted.Italic(true).Padding(2, 4)
)

var tableBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		NextGame: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		PrevGame: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev game")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.NextGame, k.PrevGame}, {k.Back, k.Quit}}
}

// ScoreboardModel browses stored results one game at a time. Solo games
// list their high scores; two-sided games list recent matches.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	rows       []table.Row
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on the first registered game.
// A nil store shows every game as empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.reload()
	return m
}

func (m *ScoreboardModel) wide() bool {
	return m.width >= minWidthForSidebar
}

func (m *ScoreboardModel) current() (registry.GameInfo, multiplayer.MatchMode) {
	if len(m.games) == 0 {
		return registry.GameInfo{}, multiplayer.MatchModeSolo
	}
	g := m.games[m.gameCursor]
	return g, multiplayer.ModeForGame(g.ID)
}

func (m *ScoreboardModel) columns(mode multiplayer.MatchMode) []table.Column {
	if mode != multiplayer.MatchModeSolo {
		return []table.Column{
			{Title: "Date", Width: 13},
			{Title: "Score", Width: 8},
			{Title: "Winner", Width: 7},
			{Title: "End", Width: 10},
			{Title: "Time", Width: 7},
		}
	}

	avail := m.width - 4
	if m.wide() {
		avail -= sidebarWidth + 3
	}
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 12},
		{Title: "Date", Width: min(max(avail-22, 12), 20)},
	}
}

// reload rebuilds the table for the selected game and loads its rows.
// Store errors leave the table empty.
func (m *ScoreboardModel) reload() {
	game, mode := m.current()

	m.rows = nil
	if m.store != nil && game.ID != "" {
		if mode == multiplayer.MatchModeSolo {
			if scores, err := m.store.TopScores(game.ID, maxRows); err == nil {
				m.rows = scoreRows(scores)
			}
		} else if matches, err := m.store.RecentMatches(game.ID, maxRows); err == nil {
			m.rows = matchRows(matches)
		}
	}

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = boardActive.Bold(false)

	m.table = table.New(
		table.WithColumns(m.columns(mode)),
		table.WithRows(m.rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)),
		table.WithStyles(styles),
	)
}

func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		rows[i] = table.Row{"#" + strconv.Itoa(i+1), strconv.Itoa(s.Score), s.CreatedAt.Format(rowDateLayout)}
	}
	return rows
}

func matchRows(matches []storage.MatchRecord) []table.Row {
	rows := make([]table.Row, len(matches))
	for i, r := range matches {
		rows[i] = table.Row{
			r.CreatedAt.Format(rowDateLayout),
			fmt.Sprintf("%d - %d", r.Score1, r.Score2),
			multiplayer.PlayerID(r.Winner).String(),
			r.EndReason,
			(time.Duration(r.Duration) * time.Second).String(),
		}
	}
	return rows
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Keys the scoreboard does not bind scroll the table.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextGame):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGame):
			m.cycle(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) cycle(step int) {
	n := len(m.games)
	if n == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + step + n) % n
	m.reload()
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	game, mode := m.current()
	title := "HIGH SCORES"
	if mode != multiplayer.MatchModeSolo {
		title = "MATCHES"
	}
	if game.Title != "" {
		title += " - " + game.Title
	}

	body := m.tabbedBody()
	if m.wide() {
		body = m.sidebarBody()
	}

	return centerText(boardTitleStyle.Render(title), m.width) + "\n\n" +
		body + "\n" +
		boardMuted.Render(m.help.View(m.keys))
}

func (m ScoreboardModel) sidebarBody() string {
	lines := []string{"Games", strings.Repeat("-", sidebarWidth-4)}
	for i, g := range m.games {
		name := truncate(g.Title, sidebarWidth-6)
		if i == m.gameCursor {
			lines = append(lines, boardTitleStyle.Render("> "+name))
		} else {
			lines = append(lines, "  "+name)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		tableBoxStyle.Width(sidebarWidth).Render(strings.Join(lines, "\n")),
		"  ",
		tableBoxStyle.Render(m.tableOrEmpty()),
	)
}

func (m ScoreboardModel) tabbedBody() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		name := truncate(g.Title, 10)
		if i == m.gameCursor {
			tabs[i] = boardActive.Padding(0, 1).Render(name)
		} else {
			tabs[i] = boardMuted.Render(" " + name + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if game, _ := m.current(); lipgloss.Width(line) > m.width-4 && game.Title != "" {
		line = "< " + game.Title + " >"
	}
	return centerText(line, m.width) + "\n\n" + centerText(tableBoxStyle.Render(m.tableOrEmpty()), m.width)
}

func (m ScoreboardModel) tableOrEmpty() string {
	if len(m.rows) > 0 {
		return m.table.View()
	}
	if _, mode := m.current(); mode != multiplayer.MatchModeSolo {
		return boardEmptyStyle.Render("No matches recorded yet.\nPlay a match to fill this table!")
	}
	return boardEmptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
}

// truncate shortens s to at most n runes, marking the cut with a dot.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack reports whether the player asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the player quit the arcade.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard full screen. It reports true when the
// player backs out to the menu and false when they quit.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
