package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one finished solo game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates the stored scores of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// SaveScore records a finished game and returns the new row ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

func scanScore(row rowScanner) (ScoreEntry, error) {
	var e ScoreEntry
	var createdAt any
	err := row.Scan(&e.ID, &e.GameID, &e.Score, &createdAt)
	e.CreatedAt = parseTime(createdAt)
	return e, err
}

// TopScores returns the best limit scores of a game, highest first.
// Ties keep insertion order. A limit below one means ten.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	scores, err := collect(s.db, scanScore,
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scores, nil
}

// HighScore returns the best score of a game, or 0 when it has none.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes every score of a game and reports how many went.
func (s *Store) ClearScores(gameID string) (int64, error) {
	res, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return res.RowsAffected()
}

const statsColumns = `COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
	COALESCE(SUM(score), 0), MAX(created_at)`

func scanStats(row rowScanner, gs *GameStats) error {
	var last any
	if err := row.Scan(&gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &last); err != nil {
		return err
	}
	gs.LastPlayed = parseTime(last)
	return nil
}

// GetGameStats aggregates the scores of one game. An unplayed game
// yields zero counts and a zero LastPlayed.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	gs := &GameStats{GameID: gameID}
	row := s.db.QueryRow(`SELECT `+statsColumns+` FROM scores WHERE game_id = ?`, gameID)
	if err := scanStats(row, gs); err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return gs, nil
}

// GetAllGamesStats aggregates every game that has at least one score.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	list, err := collect(s.db, func(row rowScanner) (*GameStats, error) {
		gs := &GameStats{}
		var last any
		err := row.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &last)
		gs.LastPlayed = parseTime(last)
		return gs, err
	}, `SELECT game_id, `+statsColumns+` FROM scores GROUP BY game_id`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}

	stats := make(map[string]*GameStats, len(list))
	for _, gs := range list {
		stats[gs.GameID] = gs
	}
	return stats, nil
}
