package core

import "sync/atomic"

// EdgeFlag is a one-shot boolean. An asynchronous source raises it and
// the single consumer clears it on read, so each assertion is handled once.
// Raising it again before it is consumed has no additional effect.
type EdgeFlag struct {
	v atomic.Bool
}

// Raise asserts the flag. Safe to call from any goroutine.
func (f *EdgeFlag) Raise() {
	f.v.Store(true)
}

// Take reports whether the flag was raised and clears it.
func (f *EdgeFlag) Take() bool {
	return f.v.Swap(false)
}

// Pending reports whether the flag is raised without clearing it.
func (f *EdgeFlag) Pending() bool {
	return f.v.Load()
}

// Signals groups the out-of-band gestures the game consumes.
type Signals struct {
	Pause     EdgeFlag
	Quit      EdgeFlag
	Terminate EdgeFlag
}

// Drain consumes every pending gesture into frame.
func (s *Signals) Drain(frame *InputFrame) {
	frame.Pause = s.Pause.Take()
	frame.Quit = s.Quit.Take()
	frame.Terminate = s.Terminate.Take()
}
