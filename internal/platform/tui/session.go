package tui

import (
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// SessionModel is the whole arcade inside one Bubble Tea program: the menu,
// the scoreboard and a running game share the terminal in turn. SSH
// sessions run it because they cannot start a second program the way the
// local "menu" command does.
type SessionModel struct {
	store     *storage.Store
	config    core.RuntimeConfig
	sessionID multiplayer.SessionID
	logger    *log.Logger

	// At most one of scoreboard and game is set; with neither, the menu shows.
	menu       MenuModel
	scoreboard *ScoreboardModel
	game       *Model
	quitting   bool
}

// NewSessionModel starts a session on the menu. Matches played in it are
// recorded under a session ID derived from username.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		store:     store,
		config:    cfg,
		sessionID: multiplayer.SessionID(fmt.Sprintf("%s-%d", username, time.Now().UnixNano())),
		logger:    logger.With("user", username),
		menu:      NewMenuModel(store, cfg),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update implements tea.Model.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.scoreboard != nil:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// backToMenu rebuilds the menu so best scores include the last game.
func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.game, m.scoreboard = nil, nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

// updateMenu forwards to the menu. The menu ends its own program on a
// choice; here the choice hands the terminal to the next screen instead.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch sel := m.menu.Selected(); {
	case m.menu.IsQuitting():
		return m.quit()
	case m.menu.WantsScoreboard():
		sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		return m, sb.Init()
	case sel != nil:
		return m.startGame(*sel)
	}
	return m, cmd
}

func (m SessionModel) startGame(item MenuItem) (tea.Model, tea.Cmd) {
	game, err := registry.Create(item.GameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", item.GameID, "error", err)
		return m.backToMenu()
	}

	g := NewModel(game, m.config, ModelOptions{
		Store:   m.store,
		Logger:  m.logger,
		Session: m.sessionID,
	})
	m.game = &g
	m.logger.Info("game started", "game", item.GameID, "mode", item.Mode)
	return m, g.Init()
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb := next.(ScoreboardModel)
	m.scoreboard = &sb

	switch {
	case sb.IsQuitting():
		return m.quit()
	case sb.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	g := next.(Model)
	m.game = &g

	switch {
	case g.BackToMenu():
		m.logger.Info("game left", "game", g.driver.Game().ID())
		return m.backToMenu()
	case g.IsQuitting():
		return m.quit()
	}
	return m, cmd
}

// View implements tea.Model.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.game != nil:
		return m.game.View()
	case m.scoreboard != nil:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}
