package fishing

import (
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func TestPauseClockCountsDown(t *testing.T) {
	fc := newFakeClock()
	p := NewPauseClock(fc, 30)

	prev := p.Remaining()
	if prev != 30 {
		t.Fatalf("Remaining() = %d, expected 30", prev)
	}
	for i := 0; i < 40; i++ {
		fc.Advance(time.Second)
		got := p.Remaining()
		if got > prev {
			t.Fatalf("Remaining() increased from %d to %d", prev, got)
		}
		prev = got
	}
	if prev != 0 {
		t.Errorf("Remaining() = %d after expiry, expected 0", prev)
	}
}

func TestPauseClockFrozenWhilePaused(t *testing.T) {
	fc := newFakeClock()
	p := NewPauseClock(fc, 30)

	fc.Advance(4 * time.Second)
	p.TogglePause()
	before := p.Remaining()

	for i := 0; i < 5; i++ {
		fc.Advance(time.Second)
		if got := p.Remaining(); got != before {
			t.Fatalf("Remaining() changed while paused: %d -> %d", before, got)
		}
	}

	p.TogglePause()
	if got := p.Remaining(); got != before {
		t.Errorf("Remaining() after resume = %d, expected %d", got, before)
	}
	if p.TotalPaused() != 5 {
		t.Errorf("TotalPaused() = %d, expected 5", p.TotalPaused())
	}

	// Expiry lands at limit + paused seconds of wall time.
	fc.Advance(time.Duration(before-1) * time.Second)
	if p.Remaining() != 1 {
		t.Fatalf("Remaining() = %d, expected 1", p.Remaining())
	}
	fc.Advance(time.Second)
	if p.Remaining() != 0 {
		t.Errorf("Remaining() = %d, expected 0 after 30+5 seconds", p.Remaining())
	}
}

func TestPauseClockElapsedExcludesPauses(t *testing.T) {
	fc := newFakeClock()
	p := NewPauseClock(fc, 30)

	fc.Advance(10 * time.Second)
	p.TogglePause()
	fc.Advance(7 * time.Second)

	// A pause in progress is excluded too.
	if got := p.Elapsed(); got != 10 {
		t.Errorf("Elapsed() during pause = %d, expected 10", got)
	}

	p.TogglePause()
	fc.Advance(3 * time.Second)
	if got := p.Elapsed(); got != 13 {
		t.Errorf("Elapsed() = %d, expected 13", got)
	}
	if p.Paused() {
		t.Error("clock should not be paused")
	}
}
