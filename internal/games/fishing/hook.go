package fishing

// HookPhase is the state of the fishing line.
type HookPhase int

const (
	HookIdle HookPhase = iota
	HookLowering
	HookRaising
)

// String returns the phase name.
func (p HookPhase) String() string {
	switch p {
	case HookIdle:
		return "idle"
	case HookLowering:
		return "lowering"
	case HookRaising:
		return "raising"
	default:
		return "unknown"
	}
}

// Hook drives one descent/ascent cycle at a time.
// Depth stays within [0, MaxDepth].
type Hook struct {
	Depth    int
	MaxDepth int
	Phase    HookPhase

	caught    bool // a fish was caught this cycle
	penalized bool // the miss for this cycle was already charged
}

// Drop starts a descent. It is ignored unless the hook is idle.
func (h *Hook) Drop() bool {
	if h.Phase != HookIdle {
		return false
	}
	h.Phase = HookLowering
	h.caught = false
	h.penalized = false
	return true
}

// Update moves the hook one row and reports whether a cycle just ended
// without a catch. A cycle is charged at most once.
func (h *Hook) Update() (missed bool) {
	switch {
	case h.Phase == HookLowering && h.Depth < h.MaxDepth:
		h.Depth++
	case h.Phase == HookRaising && h.Depth > 0:
		h.Depth--
	}

	if h.Phase == HookLowering && h.Depth >= h.MaxDepth {
		h.Phase = HookRaising
	}

	if h.Phase == HookRaising && h.Depth <= 0 {
		h.Phase = HookIdle
		if !h.caught && !h.penalized {
			h.penalized = true
			return true
		}
	}
	return false
}

// CanCatch reports whether the hook is in the water and still empty.
func (h *Hook) CanCatch() bool {
	return h.Depth > 0 && !h.caught
}

// Catch records a catch and starts reeling in.
func (h *Hook) Catch() {
	h.caught = true
	h.Phase = HookRaising
}

// SetMaxDepth changes the depth limit, pulling the hook up if needed.
func (h *Hook) SetMaxDepth(maxDepth int) {
	h.MaxDepth = max(0, maxDepth)
	h.Depth = min(h.Depth, h.MaxDepth)
}
