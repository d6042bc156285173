// Package multiplayer describes who is playing a game and how a match ended.
// Matches are local: two players at one keyboard, one player against the CPU,
// or a solo run. The SSH server labels each session's matches with its SessionID.
package multiplayer

import (
	"fmt"
	"time"
)

// PlayerID identifies a side of a match. Player1 is the left paddle or the
// only player; Player2 is the right paddle, human or CPU.
type PlayerID int

const (
	PlayerNone PlayerID = iota // No winner (tie or solo)
	Player1
	Player2
)

// String returns a human-readable name for the player.
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "-"
	}
}

// SessionID uniquely identifies a player's session (e.g., SSH connection).
// Local terminal play uses LocalSession.
type SessionID string

// LocalSession is the session of the terminal the arcade was started from.
const LocalSession SessionID = "local"

// MatchID uniquely identifies a game match.
type MatchID string

// NewMatchID builds a match ID from the game and start time.
func NewMatchID(gameID string, started time.Time) MatchID {
	return MatchID(fmt.Sprintf("match-%s-%d", gameID, started.UnixNano()))
}

// MatchMode defines how a game match is configured.
type MatchMode int

const (
	// MatchModeSolo is a single-player game (Space Invaders).
	MatchModeSolo MatchMode = iota

	// MatchModeVsCPU is player vs computer (pong_cpu).
	MatchModeVsCPU

	// MatchModeLocalVersus is two players sharing one keyboard (pong).
	MatchModeLocalVersus
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeSolo:
		return "Solo"
	case MatchModeVsCPU:
		return "vs CPU"
	case MatchModeLocalVersus:
		return "Versus"
	default:
		return "Unknown"
	}
}

// ModeForGame returns the match mode a registered game is played in.
func ModeForGame(gameID string) MatchMode {
	switch gameID {
	case "pong":
		return MatchModeLocalVersus
	case "pong_cpu":
		return MatchModeVsCPU
	default:
		return MatchModeSolo
	}
}

// EndReason describes why a match ended.
type EndReason int

const (
	EndReasonCompleted EndReason = iota // The game reached game over
	EndReasonQuit                       // Player left mid-game
	EndReasonReset                      // Player restarted mid-game
)

// String returns the stored name of the reason.
func (r EndReason) String() string {
	switch r {
	case EndReasonCompleted:
		return "completed"
	case EndReasonQuit:
		return "quit"
	case EndReasonReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Match tracks one game from reset to its end.
type Match struct {
	id      MatchID
	mode    MatchMode
	gameID  string
	session SessionID
	started time.Time
}

// NewMatch starts a match of gameID for session at started.
func NewMatch(gameID string, session SessionID, started time.Time) *Match {
	return &Match{
		id:      NewMatchID(gameID, started),
		mode:    ModeForGame(gameID),
		gameID:  gameID,
		session: session,
		started: started,
	}
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// GameID returns the registry ID of the game being played.
func (m *Match) GameID() string {
	return m.gameID
}

// Session returns the session that owns the match.
func (m *Match) Session() SessionID {
	return m.session
}

// Started returns when the match began.
func (m *Match) Started() time.Time {
	return m.started
}

// Duration returns how long the match has run at now.
func (m *Match) Duration(now time.Time) time.Duration {
	if now.Before(m.started) {
		return 0
	}
	return now.Sub(m.started)
}

// Result is the outcome of a finished match.
type Result struct {
	MatchID  MatchID
	GameID   string
	Mode     MatchMode
	Session  SessionID
	Score1   int
	Score2   int
	Winner   PlayerID
	Reason   EndReason
	Duration time.Duration
}

// Finish closes the match with the final scores. Solo matches have no winner.
func (m *Match) Finish(score1, score2 int, reason EndReason, now time.Time) Result {
	winner := PlayerNone
	if m.mode != MatchModeSolo {
		switch {
		case score1 > score2:
			winner = Player1
		case score2 > score1:
			winner = Player2
		}
	}

	return Result{
		MatchID:  m.id,
		GameID:   m.gameID,
		Mode:     m.mode,
		Session:  m.session,
		Score1:   score1,
		Score2:   score2,
		Winner:   winner,
		Reason:   reason,
		Duration: m.Duration(now),
	}
}

// ResultSaver persists match results.
// This allows the platform to save results without depending on the storage package.
type ResultSaver interface {
	SaveMatchResult(result Result) error
}
