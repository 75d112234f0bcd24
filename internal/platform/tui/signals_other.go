//go:build !unix

package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// notifySignals raises gestures for process signals until stop is called.
func notifySignals(sig *core.Signals) (stop func()) {
	ch := make(chan os.Signal, 4)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	return forwardSignals(ch, func(s os.Signal) *core.EdgeFlag {
		if s == os.Interrupt {
			return &sig.Quit
		}
		return &sig.Terminate
	})
}
