package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-arcade/internal/clock"
	"github.com/vovakirdan/retro-arcade/internal/core"
	"github.com/vovakirdan/retro-arcade/internal/loop"
	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
	"github.com/vovakirdan/retro-arcade/internal/registry"
	"github.com/vovakirdan/retro-arcade/internal/storage"
)

// ModelOptions holds the optional collaborators of a Model.
type ModelOptions struct {
	Store   *storage.Store        // Score and match storage; nil disables persistence
	Logger  *log.Logger           // Nil discards
	Session multiplayer.SessionID // Defaults to the local session
	Clock   clock.Clock           // Defaults to the wall clock
}

// Model is the Bubble Tea model for running one arcade game.
// Each tick message advances the loop driver by one frame.
type Model struct {
	driver  *loop.Driver
	screen  *core.Screen
	hud     *HUD
	latch   *KeyLatch
	keys    *KeyMapper
	store   *storage.Store
	results multiplayer.ResultSaver
	logger  *log.Logger
	clock   clock.Clock

	config    core.RuntimeConfig
	fixedSeed bool // Seed came from the caller; resets replay it
	session   multiplayer.SessionID
	match     *multiplayer.Match

	quitting    bool
	backToMenu  bool
	resultSaved bool // Whether the current match has been recorded
}

// NewModel creates a Bubble Tea model for the given game.
// One row of the terminal is reserved for the status bar.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Session == "" {
		opts.Session = multiplayer.LocalSession
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	fixedSeed := cfg.Seed != 0
	if !fixedSeed {
		cfg.Seed = opts.Clock.Now().UnixNano()
	}

	hud := NewHUD()
	game.SetScoreSink(hud)

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))
	w, h := game.Playfield()
	driver := loop.New(game, core.NewCanvas(screen, w, h), cfg, opts.Logger)
	driver.Render()

	m := Model{
		driver:    driver,
		screen:    screen,
		hud:       hud,
		latch:     NewKeyLatch(opts.Clock, core.KeySpace),
		keys:      NewKeyMapper(),
		store:     opts.Store,
		logger:    opts.Logger,
		clock:     opts.Clock,
		config:    cfg,
		fixedSeed: fixedSeed,
		session:   opts.Session,
		match:     multiplayer.NewMatch(game.ID(), opts.Session, opts.Clock.Now()),
	}
	if opts.Store != nil {
		m.results = opts.Store
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, key := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.recordResult(multiplayer.EndReasonQuit)
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		m.driver.TogglePause()
		m.driver.Render()

	case core.ActionReset:
		m.reset()

	case core.ActionBack:
		// Leaving is only offered once play has stopped
		if m.State().Mode != core.ModeRunning {
			m.recordResult(multiplayer.EndReasonQuit)
			m.backToMenu = true
		}

	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("could not save screenshot", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}

	case core.ActionNone:
		if m.latch.Press(key) {
			m.driver.KeyDown(key)
		}
	}

	return m, nil
}

// handleResize follows the terminal size. The playfield is fixed, so the game
// keeps running and only the rasterization changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.driver.Render()
	return m, nil
}

// handleTick releases expired keys and advances one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	for _, k := range m.latch.Expire() {
		m.driver.KeyUp(k)
	}

	result := m.driver.Tick()
	if result.State.GameOver() {
		m.recordResult(multiplayer.EndReasonCompleted)
	}

	return m, tickCmd(m.config.TickRate)
}

// reset records the running match and starts over.
func (m *Model) reset() {
	m.recordResult(multiplayer.EndReasonReset)

	for _, k := range m.latch.ReleaseAll() {
		m.driver.KeyUp(k)
	}
	if !m.fixedSeed {
		m.driver.Reseed(m.clock.Now().UnixNano())
	}
	m.driver.ResetGame()
	m.driver.Render()

	m.match = multiplayer.NewMatch(m.driver.Game().ID(), m.session, m.clock.Now())
	m.resultSaved = false
}

// recordResult persists the outcome of the current match once.
// Solo games keep a high score; two-sided games keep a match record.
// Empty games are not recorded.
func (m *Model) recordResult(reason multiplayer.EndReason) {
	if m.resultSaved {
		return
	}
	m.resultSaved = true

	game := m.driver.Game()
	if m.match.Mode() == multiplayer.MatchModeSolo {
		score := game.State().Score
		if m.store == nil || score <= 0 {
			return
		}
		if _, err := m.store.SaveScore(game.ID(), score); err != nil {
			m.logger.Warn("could not save score", "game", game.ID(), "error", err)
			return
		}
		m.logger.Info("score saved", "game", game.ID(), "score", score)
		return
	}

	c := m.hud.Counters()
	if m.results == nil || c.Left+c.Right == 0 {
		return
	}
	result := m.match.Finish(c.Left, c.Right, reason, m.clock.Now())
	if err := m.results.SaveMatchResult(result); err != nil {
		m.logger.Warn("could not save match", "match", result.MatchID, "error", err)
		return
	}
	m.logger.Info("match recorded",
		"match", result.MatchID,
		"winner", result.Winner,
		"reason", result.Reason,
	)
}

// saveScreenshot writes the current frame as plain text under
// ~/.arcade/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot get home directory: %w", err)
	}
	return writeScreenshot(filepath.Join(home, ".arcade", "screenshots"), m.driver.Game().ID(), m.screen, m.clock.Now())
}

// View renders the status bar and the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	game := m.driver.Game()
	title := hudTitle(game.Title(), game)
	return m.hud.View(m.screen.Width(), title, m.State().Mode) + "\n" + RenderScreen(m.screen)
}

// State returns the game's current state.
func (m Model) State() core.GameState {
	return m.driver.Game().State()
}

// Match returns the match in progress.
func (m Model) Match() *multiplayer.Match {
	return m.match
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts ModelOptions) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
