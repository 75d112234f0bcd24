package storage

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"
)

// nameSize is the on-disk name field: up to 19 bytes plus a NUL.
const nameSize = 20

// highScoreRecord is the fixed 36-byte little-endian high-score layout.
type highScoreRecord struct {
	Name       [nameSize]byte
	Score      int32
	SpeedLevel int32
	Date       int64
}

// historyRecord is the fixed 52-byte little-endian history layout.
type historyRecord struct {
	Timestamp      int64
	Name           [nameSize]byte
	Score          int32
	FishCaught     int32
	HooksMissed    int32
	SpeedLevel     int32
	LivesRemaining int32
	Duration       int32
}

var (
	highScoreSize = binary.Size(highScoreRecord{})
	historySize   = binary.Size(historyRecord{})
)

// FileStore keeps the two tables as flat binary files.
type FileStore struct {
	highScorePath string
	historyPath   string
	limit         int
}

var _ Store = (*FileStore)(nil)

// OpenFiles opens a file store in dir, creating the directory if needed.
func OpenFiles(dir string, limit int) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{
		highScorePath: filepath.Join(dir, HighScoreFile),
		historyPath:   filepath.Join(dir, HistoryFile),
		limit:         limit,
	}, nil
}

// HighScores reads the table. A missing file is an empty table.
func (s *FileStore) HighScores() ([]HighScore, error) {
	var out []HighScore
	err := readRecords(s.highScorePath, highScoreSize, func(r *bytes.Reader) error {
		var rec highScoreRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return err
		}
		out = append(out, HighScore{
			Name:       decodeName(rec.Name),
			Score:      int(rec.Score),
			SpeedLevel: int(rec.SpeedLevel),
			Date:       time.Unix(rec.Date, 0),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(out) > s.limit {
		out = out[:s.limit]
	}
	return out, nil
}

// IsHighScore reports whether score would enter the table.
func (s *FileStore) IsHighScore(score int) (bool, error) {
	scores, err := s.HighScores()
	if err != nil {
		return false, err
	}
	return Qualifies(scores, score, s.limit), nil
}

// AddHighScore inserts hs and rewrites the table. Nothing is written when
// hs does not qualify.
func (s *FileStore) AddHighScore(hs HighScore) (bool, error) {
	scores, err := s.HighScores()
	if err != nil {
		return false, err
	}
	scores, ok := InsertRanked(scores, hs, s.limit)
	if !ok {
		return false, nil
	}
	if err := s.writeHighScores(scores); err != nil {
		return false, err
	}
	return true, nil
}

// writeHighScores replaces the file through a temp file and rename.
func (s *FileStore) writeHighScores(scores []HighScore) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.highScorePath), HighScoreFile+".*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, hs := range scores {
		rec := highScoreRecord{
			Name:       encodeName(hs.Name),
			Score:      int32(hs.Score),
			SpeedLevel: int32(hs.SpeedLevel),
			Date:       hs.Date.Unix(),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			tmp.Close()
			return fmt.Errorf("storage: cannot write high score: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write high scores: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.highScorePath); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", s.highScorePath, err)
	}
	return nil
}

// AppendHistory appends one record to the log.
func (s *FileStore) AppendHistory(rec HistoryRecord) error {
	f, err := os.OpenFile(s.historyPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("storage: cannot open history: %w", err)
	}
	raw := historyRecord{
		Timestamp:      rec.Timestamp.Unix(),
		Name:           encodeName(rec.Name),
		Score:          int32(rec.Score),
		FishCaught:     int32(rec.FishCaught),
		HooksMissed:    int32(rec.HooksMissed),
		SpeedLevel:     int32(rec.SpeedLevel),
		LivesRemaining: int32(rec.LivesRemaining),
		Duration:       int32(rec.DurationSeconds),
	}
	if err := binary.Write(f, binary.LittleEndian, &raw); err != nil {
		f.Close()
		return fmt.Errorf("storage: cannot append history: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: cannot close history: %w", err)
	}
	return nil
}

// History reads the whole log, oldest first.
func (s *FileStore) History() ([]HistoryRecord, error) {
	var out []HistoryRecord
	err := readRecords(s.historyPath, historySize, func(r *bytes.Reader) error {
		var raw historyRecord
		if err := binary.Read(r, binary.LittleEndian, &raw); err != nil {
			return err
		}
		out = append(out, HistoryRecord{
			Timestamp:       time.Unix(raw.Timestamp, 0),
			Name:            decodeName(raw.Name),
			Score:           int(raw.Score),
			FishCaught:      int(raw.FishCaught),
			HooksMissed:     int(raw.HooksMissed),
			SpeedLevel:      int(raw.SpeedLevel),
			LivesRemaining:  int(raw.LivesRemaining),
			DurationSeconds: int(raw.Duration),
		})
		return nil
	})
	return out, err
}

// Close is a no-op; files are opened per operation.
func (s *FileStore) Close() error { return nil }

// readRecords calls decode once per complete record in path. A missing
// file yields nothing and a partial trailing record is ignored.
func readRecords(path string, size int, decode func(*bytes.Reader) error) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("storage: cannot read %s: %w", path, err)
	}
	for off := 0; off+size <= len(data); off += size {
		if err := decode(bytes.NewReader(data[off : off+size])); err != nil {
			return fmt.Errorf("storage: corrupt record in %s: %w", path, err)
		}
	}
	return nil
}

// encodeName stores at most nameSize-1 bytes, cut on a rune boundary.
func encodeName(name string) [nameSize]byte {
	var out [nameSize]byte
	n := 0
	for _, r := range name {
		l := utf8.RuneLen(r)
		if l < 0 || n+l > nameSize-1 {
			break
		}
		utf8.EncodeRune(out[n:], r)
		n += l
	}
	return out
}

func decodeName(raw [nameSize]byte) string {
	if i := bytes.IndexByte(raw[:], 0); i >= 0 {
		return string(raw[:i])
	}
	return string(raw[:])
}
