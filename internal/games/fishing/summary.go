package fishing

import "time"

// EndReason says why a session stopped.
type EndReason int

const (
	EndNone EndReason = iota
	EndTimeUp
	EndLivesExhausted
	EndQuit
)

// String returns a short label for the reason.
func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "in progress"
	case EndTimeUp:
		return "time up"
	case EndLivesExhausted:
		return "out of lives"
	case EndQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Session is the mutable state of one game.
type Session struct {
	Score       int
	Lives       int
	FishCaught  int
	HooksMissed int
	SpeedLevel  int
	Clock       *PauseClock
}

// Summary is the record of a finished game.
type Summary struct {
	Timestamp       time.Time
	Player          string
	Score           int
	FishCaught      int
	HooksMissed     int
	SpeedLevel      int
	LivesRemaining  int
	DurationSeconds int // net of pauses
	Reason          EndReason
}

// BuildSummary projects the session into a Summary taken at time at.
func BuildSummary(s *Session, player string, reason EndReason, at time.Time) Summary {
	duration := 0
	if s.Clock != nil {
		duration = s.Clock.ElapsedAt(at)
	}
	return Summary{
		Timestamp:       at,
		Player:          player,
		Score:           s.Score,
		FishCaught:      s.FishCaught,
		HooksMissed:     s.HooksMissed,
		SpeedLevel:      s.SpeedLevel,
		LivesRemaining:  s.Lives,
		DurationSeconds: duration,
		Reason:          reason,
	}
}
