// Package scoring connects finished games to the persistence layer.
//
// A Bridge never fails a game: storage faults are logged and treated as
// "no data".
package scoring

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-fishing/internal/games/fishing"
	"github.com/vovakirdan/tui-fishing/internal/storage"
)

// Outcome reports what Finish did with a summary.
type Outcome struct {
	Summary   fishing.Summary
	HighScore bool // the score qualified for the table
	Recorded  bool // the score was written to the table
	Logged    bool // the game was appended to the history
}

// Bridge wraps a Store. A nil store is valid and behaves as empty.
type Bridge struct {
	store  storage.Store
	limit  int
	logger *log.Logger
	now    func() time.Time
}

// New returns a Bridge over store. limit is the high-score table size.
func New(store storage.Store, limit int, logger *log.Logger) *Bridge {
	if logger == nil {
		logger = log.Default()
	}
	if limit <= 0 {
		limit = 10
	}
	return &Bridge{store: store, limit: limit, logger: logger, now: time.Now}
}

// Available reports whether a store is attached.
func (b *Bridge) Available() bool {
	return b.store != nil
}

// IsHighScore reports whether score would enter the table.
func (b *Bridge) IsHighScore(score int) bool {
	if b.store == nil {
		return storage.Qualifies(nil, score, b.limit)
	}
	ok, err := b.store.IsHighScore(score)
	if err != nil {
		b.logger.Warn("cannot check high scores", "error", err)
		return storage.Qualifies(nil, score, b.limit)
	}
	return ok
}

// RecordIfQualifying stores the score when it enters the table and reports
// whether it was stored.
func (b *Bridge) RecordIfQualifying(name string, score, speed int) bool {
	return b.recordAt(name, score, speed, b.now())
}

func (b *Bridge) recordAt(name string, score, speed int, at time.Time) bool {
	if b.store == nil {
		return false
	}
	ok, err := b.store.AddHighScore(storage.HighScore{
		Name:       name,
		Score:      score,
		SpeedLevel: speed,
		Date:       at,
	})
	if err != nil {
		b.logger.Warn("cannot save high score", "player", name, "score", score, "error", err)
		return false
	}
	return ok
}

// Finish appends sum to the history and records its score if it qualifies.
func (b *Bridge) Finish(sum fishing.Summary) Outcome {
	out := Outcome{Summary: sum}
	b.logger.Debug("game finished",
		"player", sum.Player,
		"score", sum.Score,
		"reason", sum.Reason,
		"duration", sum.DurationSeconds,
	)

	if b.store != nil {
		if err := b.store.AppendHistory(historyFrom(sum)); err != nil {
			b.logger.Warn("cannot append game history", "error", err)
		} else {
			out.Logged = true
		}
	}

	out.HighScore = b.IsHighScore(sum.Score)
	if out.HighScore {
		out.Recorded = b.recordAt(sum.Player, sum.Score, sum.SpeedLevel, sum.Timestamp)
	}
	return out
}

// HighScores returns the table with duplicate names suppressed.
func (b *Bridge) HighScores() []storage.HighScore {
	if b.store == nil {
		return nil
	}
	scores, err := b.store.HighScores()
	if err != nil {
		b.logger.Warn("cannot load high scores", "error", err)
		return nil
	}
	return storage.UniqueByName(scores)
}

// History returns every logged game, oldest first.
func (b *Bridge) History() []storage.HistoryRecord {
	if b.store == nil {
		return nil
	}
	records, err := b.store.History()
	if err != nil {
		b.logger.Warn("cannot load game history", "error", err)
		return nil
	}
	return records
}

// RecentHistory returns up to n games, newest first.
func (b *Bridge) RecentHistory(n int) []storage.HistoryRecord {
	return storage.Recent(b.History(), n)
}

// PlayerStats aggregates the history of name.
func (b *Bridge) PlayerStats(name string) storage.PlayerStats {
	return storage.StatsFor(b.History(), name)
}

func historyFrom(sum fishing.Summary) storage.HistoryRecord {
	return storage.HistoryRecord{
		Timestamp:       sum.Timestamp,
		Name:            sum.Player,
		Score:           sum.Score,
		FishCaught:      sum.FishCaught,
		HooksMissed:     sum.HooksMissed,
		SpeedLevel:      sum.SpeedLevel,
		LivesRemaining:  sum.LivesRemaining,
		DurationSeconds: sum.DurationSeconds,
	}
}
