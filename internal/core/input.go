package core

import "strings"

// Key is a normalized key identifier delivered to games on key-down/key-up.
// Games map the few keys they care about and ignore everything else.
type Key string

// Keys understood by the bundled games.
const (
	KeyNone       Key = ""
	KeyW          Key = "w"
	KeyS          Key = "s"
	KeyArrowUp    Key = "arrowup"
	KeyArrowDown  Key = "arrowdown"
	KeyArrowLeft  Key = "arrowleft"
	KeyArrowRight Key = "arrowright"
	KeySpace      Key = "space"
)

// keyAliases maps platform spellings onto normalized identifiers.
var keyAliases = map[string]Key{
	"up":    KeyArrowUp,
	"down":  KeyArrowDown,
	"left":  KeyArrowLeft,
	"right": KeyArrowRight,
	" ":     KeySpace,
	"space": KeySpace,
}

// NormalizeKey lower-cases a raw key name and resolves aliases.
// Unknown names are returned lower-cased so games can ignore them.
func NormalizeKey(raw string) Key {
	if raw == " " {
		return KeySpace
	}
	name := strings.ToLower(strings.TrimSpace(raw))
	if k, ok := keyAliases[name]; ok {
		return k
	}
	return Key(name)
}

// Action represents a platform-level command, abstracted from physical key presses.
// Gameplay keys travel as Key values; actions drive the loop and the session.
type Action int

const (
	ActionNone       Action = iota
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B - go back to menu
	ActionReset             // R - reset the running game
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P, Escape - pause/unpause game
	ActionScreenshot        // Ctrl+S - dump the current frame to a file
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionScreenshot:
		return "Screenshot"
	default:
		return "Unknown"
	}
}
