package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestSQLite(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"), 10)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteOpenNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := OpenSQLite(dbPath, 10)
	if err != nil {
		t.Fatalf("OpenSQLite() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestSQLiteTopScoresLimit(t *testing.T) {
	store := openTestSQLite(t)

	for i := 1; i <= 12; i++ {
		ok, err := store.AddHighScore(HighScore{Name: "p", Score: i * 100, SpeedLevel: 3, Date: time.Unix(int64(i), 0)})
		if err != nil {
			t.Fatalf("AddHighScore() failed: %v", err)
		}
		if !ok {
			t.Fatalf("score %d should qualify", i*100)
		}
	}

	scores, err := store.HighScores()
	if err != nil {
		t.Fatalf("HighScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Fatalf("Expected 10 scores, got %d", len(scores))
	}
	if scores[0].Score != 1200 || scores[9].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	var rows int
	if err := store.db.QueryRow("SELECT COUNT(*) FROM high_scores").Scan(&rows); err != nil {
		t.Fatal(err)
	}
	if rows != 10 {
		t.Errorf("table should be trimmed to 10 rows, has %d", rows)
	}
}

func TestSQLiteHistoryOrder(t *testing.T) {
	store := openTestSQLite(t)

	for i, name := range []string{"Alice", "Bob", "Alice"} {
		rec := HistoryRecord{Timestamp: time.Unix(int64(1000+i), 0), Name: name, Score: i * 5, FishCaught: i, SpeedLevel: 4, LivesRemaining: 3, DurationSeconds: 30}
		if err := store.AppendHistory(rec); err != nil {
			t.Fatalf("AppendHistory() failed: %v", err)
		}
	}

	records, err := store.History()
	if err != nil {
		t.Fatalf("History() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Expected 3 records, got %d", len(records))
	}
	if records[0].Name != "Alice" || records[1].Name != "Bob" || records[2].Score != 10 {
		t.Errorf("records out of order: %+v", records)
	}
	if !records[2].Timestamp.Equal(time.Unix(1002, 0)) || records[2].DurationSeconds != 30 {
		t.Errorf("fields lost: %+v", records[2])
	}
}
