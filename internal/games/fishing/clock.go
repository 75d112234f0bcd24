package fishing

import "time"

// Clock supplies wall-clock time. Tests inject a fake.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// PauseClock tracks the time left in a session net of pauses.
// Precision is whole seconds.
type PauseClock struct {
	clock       Clock
	limit       int
	start       int64
	totalPaused int64
	pauseStart  int64
	paused      bool
}

// NewPauseClock starts a countdown of limitSeconds from now.
func NewPauseClock(clock Clock, limitSeconds int) *PauseClock {
	return &PauseClock{
		clock: clock,
		limit: limitSeconds,
		start: clock.Now().Unix(),
	}
}

// Remaining returns the seconds left, never negative.
func (p *PauseClock) Remaining() int {
	return p.RemainingAt(p.clock.Now())
}

// RemainingAt is Remaining evaluated at now.
func (p *PauseClock) RemainingAt(now time.Time) int {
	return max(0, p.limit-p.ElapsedAt(now))
}

// Elapsed returns the seconds played so far, excluding every pause.
func (p *PauseClock) Elapsed() int {
	return p.ElapsedAt(p.clock.Now())
}

// ElapsedAt is Elapsed evaluated at now.
func (p *PauseClock) ElapsedAt(now time.Time) int {
	t := now.Unix()
	elapsed := t - p.start - p.totalPaused
	if p.paused {
		elapsed -= t - p.pauseStart
	}
	return int(max(0, elapsed))
}

// TogglePause enters or leaves a pause. Call it only on real transitions.
func (p *PauseClock) TogglePause() {
	now := p.clock.Now().Unix()
	if p.paused {
		p.totalPaused += now - p.pauseStart
		p.pauseStart = 0
		p.paused = false
		return
	}
	p.pauseStart = now
	p.paused = true
}

// Paused reports whether a pause is in progress.
func (p *PauseClock) Paused() bool { return p.paused }

// TotalPaused returns the seconds spent in completed pauses.
func (p *PauseClock) TotalPaused() int { return int(p.totalPaused) }

// Limit returns the configured session length.
func (p *PauseClock) Limit() int { return p.limit }
