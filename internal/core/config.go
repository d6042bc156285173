package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for deterministic simulation; the playfield size is the
// game's own and does not follow the terminal.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score int  // Current score of the local player
	Mode  Mode // Running, paused or over
}

// GameOver reports whether the game has ended.
func (s GameState) GameOver() bool {
	return s.Mode == ModeGameOver
}

// Paused reports whether the game is paused.
func (s GameState) Paused() bool {
	return s.Mode == ModePaused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
