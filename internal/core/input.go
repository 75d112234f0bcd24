package core

// Action represents a semantic game action, abstracted from physical key presses.
// The game decides what an action means in its current overlay state.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - move boat left
	ActionRight           // D, Right arrow - move boat right
	ActionDropHook        // H, Down arrow - lower the hook
	ActionReverse         // Space - reverse every fish
	ActionSlower          // S - raise the speed level (longer frames, fewer points)
	ActionFaster          // F - lower the speed level (shorter frames, more points)
	ActionQuit            // Q - leave the session without confirmation
	ActionResume          // P - resume from pause
	ActionConfirm         // Y - answer yes to the quit prompt
	ActionDeny            // N - answer no to the quit prompt
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDropHook:
		return "DropHook"
	case ActionReverse:
		return "Reverse"
	case ActionSlower:
		return "Slower"
	case ActionFaster:
		return "Faster"
	case ActionQuit:
		return "Quit"
	case ActionResume:
		return "Resume"
	case ActionConfirm:
		return "Confirm"
	case ActionDeny:
		return "Deny"
	default:
		return "Unknown"
	}
}

// InputFrame is everything the game receives for one tick: at most one key
// (the non-blocking read for this tick) and the edge-triggered gestures
// consumed since the previous tick.
type InputFrame struct {
	Key       Action
	Pause     bool // pause gesture asserted
	Quit      bool // quit gesture asserted (asks for confirmation)
	Terminate bool // process is being terminated; end the session now
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Key: ActionNone}
}

// KeyFrame is shorthand for a frame carrying only a key.
func KeyFrame(a Action) InputFrame {
	return InputFrame{Key: a}
}

// Has returns true if the frame's key is the given action.
func (f InputFrame) Has(a Action) bool {
	return f.Key == a
}

