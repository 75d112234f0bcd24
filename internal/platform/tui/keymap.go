package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-fishing/internal/core"
)

// Gesture is an out-of-band request carried by a key chord rather than a
// game key. In raw mode the terminal delivers Ctrl+C and Ctrl+Z as keys
// instead of signals, so they are turned back into gestures here.
type Gesture int

const (
	GestureNone Gesture = iota
	GesturePause
	GestureQuit
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action or a gesture. Letters are
// matched case-insensitively.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, Gesture) {
	key := msg.String()

	switch key {
	case "ctrl+c":
		return core.ActionNone, GestureQuit
	case "ctrl+z":
		return core.ActionNone, GesturePause
	case "left":
		return core.ActionLeft, GestureNone
	case "right":
		return core.ActionRight, GestureNone
	case "down":
		return core.ActionDropHook, GestureNone
	case " ", "space":
		return core.ActionReverse, GestureNone
	}

	switch strings.ToLower(key) {
	case "a":
		return core.ActionLeft, GestureNone
	case "d":
		return core.ActionRight, GestureNone
	case "h":
		return core.ActionDropHook, GestureNone
	case "s":
		return core.ActionSlower, GestureNone
	case "f":
		return core.ActionFaster, GestureNone
	case "q":
		return core.ActionQuit, GestureNone
	case "p":
		return core.ActionResume, GestureNone
	case "y":
		return core.ActionConfirm, GestureNone
	case "n":
		return core.ActionDeny, GestureNone
	}

	return core.ActionNone, GestureNone
}
