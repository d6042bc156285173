package core

// Mode is the loop state of a game.
type Mode int

const (
	ModeRunning  Mode = iota // Simulation advances every tick
	ModePaused               // Frame is redrawn, simulation frozen
	ModeGameOver             // Terminal until reset
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeRunning:
		return "running"
	case ModePaused:
		return "paused"
	case ModeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// TogglePause swaps Running and Paused. GameOver is left as is.
func (m Mode) TogglePause() Mode {
	switch m {
	case ModeRunning:
		return ModePaused
	case ModePaused:
		return ModeRunning
	default:
		return m
	}
}
