package storage

// PlayerStats aggregates the history of one player.
type PlayerStats struct {
	Name         string
	Games        int
	BestScore    int
	TotalScore   int
	AverageScore int
	FishCaught   int
	HooksMissed  int
	CatchRate    int // percent of hook cycles that caught a fish
}

// InsertRanked places hs in a descending table of at most limit entries.
// Equal scores keep their existing order ahead of hs. It reports false and
// returns scores unchanged when hs would fall off the end.
func InsertRanked(scores []HighScore, hs HighScore, limit int) ([]HighScore, bool) {
	pos := len(scores)
	for i, s := range scores {
		if hs.Score > s.Score {
			pos = i
			break
		}
	}
	if pos >= limit {
		return scores, false
	}

	out := make([]HighScore, 0, min(len(scores)+1, limit))
	out = append(out, scores[:pos]...)
	out = append(out, hs)
	out = append(out, scores[pos:]...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, true
}

// Qualifies reports whether score would enter a table of at most limit
// entries sorted best first.
func Qualifies(scores []HighScore, score, limit int) bool {
	if len(scores) < limit {
		return true
	}
	return score > scores[len(scores)-1].Score
}

// UniqueByName keeps the first (best) entry for each name.
func UniqueByName(scores []HighScore) []HighScore {
	seen := make(map[string]bool, len(scores))
	out := make([]HighScore, 0, len(scores))
	for _, s := range scores {
		if seen[s.Name] {
			continue
		}
		seen[s.Name] = true
		out = append(out, s)
	}
	return out
}

// Recent returns up to n records, newest first. records must be oldest first.
func Recent(records []HistoryRecord, n int) []HistoryRecord {
	if n <= 0 || n > len(records) {
		n = len(records)
	}
	out := make([]HistoryRecord, 0, n)
	for i := len(records) - 1; i >= len(records)-n; i-- {
		out = append(out, records[i])
	}
	return out
}

// StatsFor aggregates the records whose name matches exactly.
func StatsFor(records []HistoryRecord, name string) PlayerStats {
	st := PlayerStats{Name: name}
	for _, r := range records {
		if r.Name != name {
			continue
		}
		st.Games++
		st.TotalScore += r.Score
		st.BestScore = max(st.BestScore, r.Score)
		st.FishCaught += r.FishCaught
		st.HooksMissed += r.HooksMissed
	}
	if st.Games > 0 {
		st.AverageScore = st.TotalScore / st.Games
	}
	if attempts := st.FishCaught + st.HooksMissed; attempts > 0 {
		st.CatchRate = st.FishCaught * 100 / attempts
	}
	return st
}
