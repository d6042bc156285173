package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/retro-arcade/internal/multiplayer"
)

// MatchRecord is a finished two-sided match as stored.
type MatchRecord struct {
	ID        int64
	MatchID   string
	GameID    string
	Mode      string // MatchMode label, e.g. "Versus"
	SessionID string
	Score1    int
	Score2    int
	Winner    int    // 0 none, 1 left, 2 right
	EndReason string // completed, quit or reset
	Duration  int    // seconds
	CreatedAt time.Time
}

// MatchTally counts the outcomes of a game's stored matches.
type MatchTally struct {
	Matches int
	Wins1   int
	Wins2   int
	Draws   int
}

const matchColumns = `id, match_id, game_id, mode, session_id,
	score1, score2, winner, end_reason, duration_secs, created_at`

// SaveMatch inserts a match and returns the new row ID.
// Match IDs are unique; saving one twice fails.
func (s *Store) SaveMatch(m MatchRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO matches (match_id, game_id, mode, session_id, score1, score2, winner, end_reason, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID, m.GameID, m.Mode, m.SessionID, m.Score1, m.Score2, m.Winner, m.EndReason, m.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

func scanMatch(row rowScanner) (MatchRecord, error) {
	var m MatchRecord
	var createdAt any
	err := row.Scan(&m.ID, &m.MatchID, &m.GameID, &m.Mode, &m.SessionID,
		&m.Score1, &m.Score2, &m.Winner, &m.EndReason, &m.Duration, &createdAt)
	m.CreatedAt = parseTime(createdAt)
	return m, err
}

// RecentMatches returns up to limit matches of a game, newest first.
// An empty gameID covers every game; a limit below one means twenty.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	matches, err := collect(s.db, scanMatch,
		`SELECT `+matchColumns+` FROM matches
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	return matches, nil
}

// TallyMatches counts wins per side over every stored match of a game.
func (s *Store) TallyMatches(gameID string) (MatchTally, error) {
	var t MatchTally
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 1), 0),
		        COALESCE(SUM(winner = 2), 0),
		        COALESCE(SUM(winner = 0), 0)
		 FROM matches WHERE game_id = ?`,
		gameID,
	).Scan(&t.Matches, &t.Wins1, &t.Wins2, &t.Draws)
	if err != nil {
		return MatchTally{}, fmt.Errorf("storage: cannot tally matches: %w", err)
	}
	return t, nil
}

// SaveMatchResult implements multiplayer.ResultSaver.
func (s *Store) SaveMatchResult(r multiplayer.Result) error {
	_, err := s.SaveMatch(MatchRecord{
		MatchID:   string(r.MatchID),
		GameID:    r.GameID,
		Mode:      r.Mode.String(),
		SessionID: string(r.Session),
		Score1:    r.Score1,
		Score2:    r.Score2,
		Winner:    int(r.Winner),
		EndReason: r.Reason.String(),
		Duration:  int(r.Duration / time.Second),
	})
	return err
}

var _ multiplayer.ResultSaver = (*Store)(nil)
