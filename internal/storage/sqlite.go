package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore keeps both tables in one SQLite database.
type SQLiteStore struct {
	db    *sql.DB
	limit int
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func OpenSQLite(dbPath string, limit int) (*SQLiteStore, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &SQLiteStore{db: db, limit: limit}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			speed_level INTEGER NOT NULL,
			achieved_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_rank ON high_scores(score DESC, id ASC);

		CREATE TABLE IF NOT EXISTS history (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			played_at INTEGER NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			fish_caught INTEGER NOT NULL DEFAULT 0,
			hooks_missed INTEGER NOT NULL DEFAULT 0,
			speed_level INTEGER NOT NULL,
			lives_remaining INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_history_name ON history(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

func topScores(q querier, limit int) ([]HighScore, error) {
	rows, err := q.Query(
		`SELECT name, score, speed_level, achieved_at
		 FROM high_scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query high scores: %w", err)
	}
	defer rows.Close()

	var entries []HighScore
	for rows.Next() {
		var e HighScore
		var at int64
		if err := rows.Scan(&e.Name, &e.Score, &e.SpeedLevel, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Date = time.Unix(at, 0)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScores retrieves the table, best first.
func (s *SQLiteStore) HighScores() ([]HighScore, error) {
	return topScores(s.db, s.limit)
}

// IsHighScore reports whether score would enter the table.
func (s *SQLiteStore) IsHighScore(score int) (bool, error) {
	scores, err := s.HighScores()
	if err != nil {
		return false, err
	}
	return Qualifies(scores, score, s.limit), nil
}

// AddHighScore inserts hs if it qualifies and trims the table to its limit,
// all in one transaction.
func (s *SQLiteStore) AddHighScore(hs HighScore) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	scores, err := topScores(tx, s.limit)
	if err != nil {
		return false, err
	}
	if _, ok := InsertRanked(scores, hs, s.limit); !ok {
		return false, nil
	}

	name := decodeName(encodeName(hs.Name))
	if _, err := tx.Exec(
		"INSERT INTO high_scores (name, score, speed_level, achieved_at) VALUES (?, ?, ?, ?)",
		name, hs.Score, hs.SpeedLevel, hs.Date.Unix(),
	); err != nil {
		return false, fmt.Errorf("storage: cannot save high score: %w", err)
	}
	if _, err := tx.Exec(
		`DELETE FROM high_scores WHERE id NOT IN (
			SELECT id FROM high_scores ORDER BY score DESC, id ASC LIMIT ?
		)`,
		s.limit,
	); err != nil {
		return false, fmt.Errorf("storage: cannot trim high scores: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("storage: cannot commit high score: %w", err)
	}
	return true, nil
}

// AppendHistory records one finished game.
func (s *SQLiteStore) AppendHistory(rec HistoryRecord) error {
	_, err := s.db.Exec(
		`INSERT INTO history
		 (played_at, name, score, fish_caught, hooks_missed, speed_level, lives_remaining, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Timestamp.Unix(),
		decodeName(encodeName(rec.Name)),
		rec.Score,
		rec.FishCaught,
		rec.HooksMissed,
		rec.SpeedLevel,
		rec.LivesRemaining,
		rec.DurationSeconds,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot append history: %w", err)
	}
	return nil
}

// History retrieves every game, oldest first.
func (s *SQLiteStore) History() ([]HistoryRecord, error) {
	rows, err := s.db.Query(
		`SELECT played_at, name, score, fish_caught, hooks_missed, speed_level, lives_remaining, duration_secs
		 FROM history
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query history: %w", err)
	}
	defer rows.Close()

	var records []HistoryRecord
	for rows.Next() {
		var r HistoryRecord
		var at int64
		if err := rows.Scan(
			&at,
			&r.Name,
			&r.Score,
			&r.FishCaught,
			&r.HooksMissed,
			&r.SpeedLevel,
			&r.LivesRemaining,
			&r.DurationSeconds,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Timestamp = time.Unix(at, 0)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}
