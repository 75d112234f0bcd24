package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-fishing/internal/config"
)

// backends runs fn against every Store implementation.
func backends(t *testing.T, fn func(t *testing.T, s Store)) {
	t.Helper()
	openers := map[string]func(dir string) (Store, error){
		"file":   func(dir string) (Store, error) { return OpenFiles(dir, 10) },
		"sqlite": func(dir string) (Store, error) { return OpenSQLite(filepath.Join(dir, DatabaseFile), 10) },
	}
	for name, open := range openers {
		t.Run(name, func(t *testing.T) {
			s, err := open(t.TempDir())
			if err != nil {
				t.Fatalf("open %s: %v", name, err)
			}
			defer s.Close()
			fn(t, s)
		})
	}
}

func TestHighScoreInsertionOrder(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		for _, score := range []int{50, 80, 30, 95, 10} {
			ok, err := s.AddHighScore(HighScore{Name: "p", Score: score, SpeedLevel: 4, Date: time.Unix(1, 0)})
			if err != nil || !ok {
				t.Fatalf("AddHighScore(%d) = %v, %v", score, ok, err)
			}
		}

		scores, err := s.HighScores()
		if err != nil {
			t.Fatal(err)
		}
		var got []int
		for _, hs := range scores {
			got = append(got, hs.Score)
		}
		if want := []int{95, 80, 50, 30, 10}; !reflect.DeepEqual(got, want) {
			t.Errorf("order = %v, expected %v", got, want)
		}
	})
}

func TestHighScoreFullTableRejectsLowScore(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		for i := 1; i <= 10; i++ {
			if _, err := s.AddHighScore(HighScore{Name: "p", Score: i * 10, Date: time.Unix(1, 0)}); err != nil {
				t.Fatal(err)
			}
		}
		before, _ := s.HighScores()

		qualifies, err := s.IsHighScore(5)
		if err != nil {
			t.Fatal(err)
		}
		if qualifies {
			t.Error("IsHighScore(5) should be false for a full table of higher scores")
		}
		if eq, _ := s.IsHighScore(10); eq {
			t.Error("tying the lowest entry should not qualify")
		}

		ok, err := s.AddHighScore(HighScore{Name: "low", Score: 5, Date: time.Unix(2, 0)})
		if err != nil {
			t.Fatal(err)
		}
		if ok {
			t.Error("AddHighScore should reject a score below the table")
		}
		after, _ := s.HighScores()
		if !reflect.DeepEqual(before, after) {
			t.Error("rejected score changed the table")
		}
	})
}

func TestFileStoreRejectedScoreDoesNotWrite(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenFiles(dir, 10)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 10; i++ {
		s.AddHighScore(HighScore{Name: "p", Score: i * 10, Date: time.Unix(1, 0)})
	}

	path := filepath.Join(dir, HighScoreFile)
	old := time.Unix(100, 0)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatal(err)
	}
	s.AddHighScore(HighScore{Name: "low", Score: 1, Date: time.Unix(2, 0)})

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(old) {
		t.Error("high score file was rewritten for a rejected score")
	}
}

func TestHighScoreRoundTrip(t *testing.T) {
	for _, n := range []int{0, 1, 10} {
		dir := t.TempDir()
		s, err := OpenFiles(dir, 10)
		if err != nil {
			t.Fatal(err)
		}

		var want []HighScore
		for i := 0; i < n; i++ {
			hs := HighScore{
				Name:       "angler" + string(rune('A'+i)),
				Score:      1000 - i*7,
				SpeedLevel: 1 + i%6,
				Date:       time.Unix(1_700_000_000+int64(i)*3600, 0),
			}
			want = append(want, hs)
		}
		if err := s.writeHighScores(want); err != nil {
			t.Fatalf("n=%d: write failed: %v", n, err)
		}

		info, err := os.Stat(filepath.Join(dir, HighScoreFile))
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() != int64(n*36) {
			t.Errorf("n=%d: file size %d, expected %d", n, info.Size(), n*36)
		}

		got, err := s.HighScores()
		if err != nil {
			t.Fatalf("n=%d: read failed: %v", n, err)
		}
		if len(got) != n {
			t.Fatalf("n=%d: read %d records", n, len(got))
		}
		for i := range want {
			if got[i].Name != want[i].Name || got[i].Score != want[i].Score ||
				got[i].SpeedLevel != want[i].SpeedLevel || !got[i].Date.Equal(want[i].Date) {
				t.Errorf("n=%d record %d: got %+v, expected %+v", n, i, got[i], want[i])
			}
		}
	}
}

func TestFileStoreMissingAndPartialFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := OpenFiles(dir, 10)
	if err != nil {
		t.Fatal(err)
	}

	scores, err := s.HighScores()
	if err != nil || len(scores) != 0 {
		t.Errorf("missing file: %v, %v", scores, err)
	}
	history, err := s.History()
	if err != nil || len(history) != 0 {
		t.Errorf("missing history: %v, %v", history, err)
	}

	if err := s.AppendHistory(HistoryRecord{Timestamp: time.Unix(5, 0), Name: "Alice", Score: 7}); err != nil {
		t.Fatal(err)
	}
	// Truncated trailing record
	f, err := os.OpenFile(filepath.Join(dir, HistoryFile), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	f.Write(make([]byte, 10))
	f.Close()

	history, err = s.History()
	if err != nil {
		t.Fatal(err)
	}
	if len(history) != 1 || history[0].Name != "Alice" || history[0].Score != 7 {
		t.Errorf("history = %+v, expected the one complete record", history)
	}
}

func TestHistoryRecordSize(t *testing.T) {
	if highScoreSize != 36 {
		t.Errorf("high score record is %d bytes, expected 36", highScoreSize)
	}
	if historySize != 52 {
		t.Errorf("history record is %d bytes, expected 52", historySize)
	}
}

func TestEncodeNameTruncates(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Alice", "Alice"},
		{"", ""},
		{strings.Repeat("x", 25), strings.Repeat("x", 19)},
		{strings.Repeat("é", 10), strings.Repeat("é", 9)}, // 2-byte runes, 18 bytes fit
	}
	for _, tc := range tests {
		if got := decodeName(encodeName(tc.in)); got != tc.want {
			t.Errorf("encodeName(%q) round-trips to %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestPlayerStats(t *testing.T) {
	records := []HistoryRecord{
		{Name: "Alice", Score: 10, FishCaught: 3, HooksMissed: 1},
		{Name: "Bob", Score: 0, FishCaught: 0, HooksMissed: 3},
		{Name: "Alice", Score: 20, FishCaught: 5, HooksMissed: 2},
		{Name: "Alice", Score: 30, FishCaught: 7, HooksMissed: 2},
		{Name: "alice", Score: 99},
	}

	alice := StatsFor(records, "Alice")
	if alice.Games != 3 || alice.BestScore != 30 || alice.AverageScore != 20 || alice.TotalScore != 60 {
		t.Errorf("Alice stats = %+v", alice)
	}
	if alice.FishCaught != 15 || alice.HooksMissed != 5 || alice.CatchRate != 75 {
		t.Errorf("Alice catch stats = %+v", alice)
	}

	bob := StatsFor(records, "Bob")
	if bob.Games != 1 || bob.BestScore != 0 || bob.CatchRate != 0 {
		t.Errorf("Bob stats = %+v", bob)
	}

	carol := StatsFor(records, "Carol")
	if carol.Games != 0 || carol.AverageScore != 0 || carol.CatchRate != 0 {
		t.Errorf("Carol stats = %+v", carol)
	}
}

func TestPlayerStatsFromStore(t *testing.T) {
	backends(t, func(t *testing.T, s Store) {
		for _, score := range []int{10, 20, 30} {
			if err := s.AppendHistory(HistoryRecord{Timestamp: time.Unix(1, 0), Name: "Alice", Score: score}); err != nil {
				t.Fatal(err)
			}
		}
		if err := s.AppendHistory(HistoryRecord{Timestamp: time.Unix(2, 0), Name: "Bob"}); err != nil {
			t.Fatal(err)
		}

		records, err := s.History()
		if err != nil {
			t.Fatal(err)
		}
		st := StatsFor(records, "Alice")
		if st.Games != 3 || st.BestScore != 30 || st.AverageScore != 20 {
			t.Errorf("Alice stats = %+v", st)
		}
	})
}

func TestRecentNewestFirst(t *testing.T) {
	var records []HistoryRecord
	for i := 0; i < 25; i++ {
		records = append(records, HistoryRecord{Score: i})
	}

	recent := Recent(records, 20)
	if len(recent) != 20 {
		t.Fatalf("Recent() returned %d records, expected 20", len(recent))
	}
	if recent[0].Score != 24 || recent[19].Score != 5 {
		t.Errorf("Recent() = first %d, last %d; expected 24 and 5", recent[0].Score, recent[19].Score)
	}

	if got := Recent(records[:3], 20); len(got) != 3 || got[0].Score != 2 {
		t.Errorf("Recent() on short history = %+v", got)
	}
}

func TestUniqueByName(t *testing.T) {
	scores := []HighScore{{Name: "A", Score: 90}, {Name: "B", Score: 80}, {Name: "A", Score: 70}, {Name: "C", Score: 60}}
	got := UniqueByName(scores)
	if len(got) != 3 || got[0].Score != 90 || got[1].Name != "B" || got[2].Name != "C" {
		t.Errorf("UniqueByName() = %+v", got)
	}
	if len(scores) != 4 {
		t.Error("UniqueByName must not modify its input")
	}
}

func TestOpenDrivers(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(config.StorageConfig{Driver: config.DriverFile, Dir: dir}, 10)
	if err != nil {
		t.Fatalf("Open(file) failed: %v", err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("Open(file) returned %T", s)
	}
	s.Close()

	s, err = Open(config.StorageConfig{Driver: config.DriverSQLite, Dir: dir}, 10)
	if err != nil {
		t.Fatalf("Open(sqlite) failed: %v", err)
	}
	if _, ok := s.(*SQLiteStore); !ok {
		t.Errorf("Open(sqlite) returned %T", s)
	}
	s.Close()

	if _, err := Open(config.StorageConfig{Driver: "redis", Dir: dir}, 10); !errors.Is(err, ErrUnknownDriver) {
		t.Errorf("Open(redis) error = %v, expected ErrUnknownDriver", err)
	}
}

func TestExportHistoryCSV(t *testing.T) {
	records := []HistoryRecord{
		{Timestamp: time.Unix(1_700_000_000, 0).UTC(), Name: "Alice", Score: 12, FishCaught: 4, HooksMissed: 1, SpeedLevel: 3, LivesRemaining: 2, DurationSeconds: 30},
		{Timestamp: time.Unix(1_700_000_100, 0).UTC(), Name: "Bob", Score: 3, FishCaught: 1, HooksMissed: 3, SpeedLevel: 5, DurationSeconds: 21},
	}

	var buf bytes.Buffer
	if err := ExportHistoryCSV(&buf, records); err != nil {
		t.Fatalf("ExportHistoryCSV() failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if want := "timestamp,player,score,fish_caught,hooks_missed,speed_level,lives_remaining,duration_seconds"; lines[0] != want {
		t.Errorf("header = %q, expected %q", lines[0], want)
	}
	if !strings.Contains(lines[1], ",Alice,12,4,1,3,2,30") {
		t.Errorf("row 1 = %q", lines[1])
	}
}
