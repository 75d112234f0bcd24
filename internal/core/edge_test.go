package core

import (
	"sync"
	"testing"
)

func TestEdgeFlagConsumedOnce(t *testing.T) {
	var f EdgeFlag

	if f.Take() {
		t.Fatal("fresh flag should not be raised")
	}

	f.Raise()
	f.Raise() // debounced: two raises before a read count once

	if !f.Pending() {
		t.Error("Pending() should report a raised flag")
	}
	if !f.Take() {
		t.Error("first Take() should see the raise")
	}
	if f.Take() {
		t.Error("second Take() should see nothing")
	}
}

func TestEdgeFlagConcurrentRaise(t *testing.T) {
	var f EdgeFlag
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f.Raise()
		}()
	}
	wg.Wait()

	if !f.Take() || f.Take() {
		t.Error("concurrent raises should collapse into one assertion")
	}
}

func TestSignalsDrain(t *testing.T) {
	var s Signals
	s.Pause.Raise()

	frame := KeyFrame(ActionLeft)
	s.Drain(&frame)

	if !frame.Pause || frame.Quit || frame.Terminate {
		t.Errorf("Drain() = %+v, expected only Pause", frame)
	}
	if frame.Key != ActionLeft {
		t.Error("Drain() should not touch the key")
	}

	s.Drain(&frame)
	if frame.Pause {
		t.Error("Pause should be consumed by the first drain")
	}
}
