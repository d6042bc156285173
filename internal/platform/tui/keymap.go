package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/retro-arcade/internal/core"
)

// KeyMapper splits in-game key presses into host commands and game keys.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message during play.
// Platform commands come back as an action; everything else is returned as a
// normalized game key, which the game is free to ignore.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, core.Key) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, core.KeyNone
	case "p", "esc":
		return core.ActionPause, core.KeyNone
	case "r":
		return core.ActionReset, core.KeyNone
	case "b":
		return core.ActionBack, core.KeyNone
	case "ctrl+s":
		return core.ActionScreenshot, core.KeyNone
	case "enter":
		return core.ActionConfirm, core.KeyNone
	}

	return core.ActionNone, core.NormalizeKey(msg.String())
}
