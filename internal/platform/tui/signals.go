package tui

import (
	"os"
	"os/signal"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// forwardSignals raises route(s) for every signal received on ch. The
// returned stop restores default handling and ends the forwarder.
func forwardSignals(ch chan os.Signal, route func(os.Signal) *core.EdgeFlag) func() {
	done := make(chan struct{})
	go func() {
		for {
			select {
			case s := <-ch:
				route(s).Raise()
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(ch)
		close(done)
	}
}
