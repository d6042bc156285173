// Package registry maps game IDs to factories. Game packages register
// themselves from init, so the front ends only need a blank import.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// Game is the contract the loop driver and front ends run against.
// Implementations hold pure simulation state; key delivery, timing and the
// drawing surface belong to the host.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "pong", "invaders").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Space Invaders").
	Title() string

	// Reset re-creates every entity and counter and resumes running.
	// Called once at start and again whenever the player asks for a reset.
	Reset(cfg core.RuntimeConfig)

	// TogglePause swaps running and paused. No effect once the game is over.
	TogglePause()

	// KeyDown and KeyUp flip input flags. Unknown keys are ignored.
	KeyDown(k core.Key)
	KeyUp(k core.Key)

	// Step advances the simulation by one tick when running.
	Step() core.StepResult

	// Render repaints the full frame. It never mutates game state.
	Render(dst core.Surface)

	// State returns the current game state (score, mode).
	State() core.GameState

	// Playfield returns the logical width and height the game simulates in.
	Playfield() (w, h float64)

	// SetScoreSink attaches the display that receives counter updates.
	SetScoreSink(sink core.ScoreSink)
}

// GameInfo describes a registered game for menus and listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh game instance.
type Factory func() Game

type entry struct {
	title string
	build Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a game under id. Games call it from init.
// Registering the same id twice panics.
func Register(id string, f Factory) {
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: title, build: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	infos := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(infos, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.build(), nil
}

// Exists reports whether id names a registered game.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
