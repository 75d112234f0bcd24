// Package storage persists the high-score table and the play history.
// Two backends are available: flat binary files (the default) and SQLite
// through the pure-Go modernc.org/sqlite driver.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vovakirdan/tui-fishing/internal/config"
)

// File names inside the data directory.
const (
	HighScoreFile = "highscores.dat"
	HistoryFile   = "game_stats.log"
	DatabaseFile  = "fishing.db"
)

// ErrUnknownDriver is returned by Open for an unsupported driver name.
var ErrUnknownDriver = errors.New("storage: unknown driver")

// HighScore is one row of the top-N table.
type HighScore struct {
	Name       string
	Score      int
	SpeedLevel int
	Date       time.Time
}

// HistoryRecord is one finished game.
type HistoryRecord struct {
	Timestamp       time.Time `csv:"timestamp"`
	Name            string    `csv:"player"`
	Score           int       `csv:"score"`
	FishCaught      int       `csv:"fish_caught"`
	HooksMissed     int       `csv:"hooks_missed"`
	SpeedLevel      int       `csv:"speed_level"`
	LivesRemaining  int       `csv:"lives_remaining"`
	DurationSeconds int       `csv:"duration_seconds"`
}

// Store is the persistence contract used by the game.
type Store interface {
	// HighScores returns the table, best first.
	HighScores() ([]HighScore, error)
	// IsHighScore reports whether score would enter the table.
	IsHighScore(score int) (bool, error)
	// AddHighScore inserts hs if it qualifies and reports whether it was stored.
	AddHighScore(hs HighScore) (bool, error)
	// AppendHistory adds one finished game to the log.
	AppendHistory(rec HistoryRecord) error
	// History returns every logged game, oldest first.
	History() ([]HistoryRecord, error)
	Close() error
}

// Open creates the store selected by cfg. maxHighScores bounds the table.
func Open(cfg config.StorageConfig, maxHighScores int) (Store, error) {
	dir, err := expandHome(cfg.Dir)
	if err != nil {
		return nil, err
	}
	if maxHighScores <= 0 {
		maxHighScores = 10
	}

	switch cfg.Driver {
	case config.DriverFile, "":
		return OpenFiles(dir, maxHighScores)
	case config.DriverSQLite:
		return OpenSQLite(filepath.Join(dir, DatabaseFile), maxHighScores)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
