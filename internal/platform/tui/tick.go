// Package tui provides the Bubble Tea integration for the fishing game.
// It handles the terminal loop, input mapping, the menu and the panels.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick after delay. The game chooses the delay
// on every step, so the rate follows the speed dial.
func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
