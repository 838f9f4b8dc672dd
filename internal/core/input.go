package core

// Action represents a semantic game action, abstracted from physical key presses.
// The engine reads held actions and consumes edge-triggered ones.
type Action int

const (
	ActionNone           Action = iota
	ActionThrust                // W, Up arrow - accelerate along heading
	ActionRotateLeft            // A, Left arrow
	ActionRotateRight           // D, Right arrow
	ActionFire                  // Space - shoot, also commits menu screens
	ActionPause                 // P
	ActionToggleSound           // S
	ActionToggleDebug           // B
	ActionToggleGraphics        // G
	ActionHiScores              // H - open the hi-scores screen from the title
	ActionQuit                  // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionThrust:
		return "Thrust"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionToggleDebug:
		return "ToggleDebug"
	case ActionToggleGraphics:
		return "ToggleGraphics"
	case ActionHiScores:
		return "HiScores"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Release consumes an action so later readers in the same tick ignore it.
// It reports whether the action was held.
func (f *InputFrame) Release(a Action) bool {
	if !f.Has(a) {
		return false
	}
	delete(f.Actions, a)
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
