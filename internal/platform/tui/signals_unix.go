//go:build unix

package tui

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// notifySignals raises gestures for process signals until stop is called.
// SIGTSTP pauses instead of suspending the process.
func notifySignals(sig *core.Signals) (stop func()) {
	ch := make(chan os.Signal, 4)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTSTP, syscall.SIGTERM, syscall.SIGHUP)
	return forwardSignals(ch, func(s os.Signal) *core.EdgeFlag {
		switch s {
		case syscall.SIGINT:
			return &sig.Quit
		case syscall.SIGTSTP:
			return &sig.Pause
		default:
			return &sig.Terminate
		}
	})
}
