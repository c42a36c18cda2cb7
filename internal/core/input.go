package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front-ends translate keys into actions so the simulation never sees a key code.
type Action int

const (
	ActionNone           Action = iota
	ActionMoveLeft              // A, Left arrow
	ActionMoveRight             // D, Right arrow
	ActionJump                  // Space, W, Up arrow
	ActionToggleHitboxes        // H
	ActionToggleMusic           // M
	ActionToggleSound           // N
	ActionPause                 // P
	ActionRestart               // R
	ActionBack                  // Escape - back to menu
	ActionQuit                  // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	case ActionToggleHitboxes:
		return "ToggleHitboxes"
	case ActionToggleMusic:
		return "ToggleMusic"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool, len(actions))}
	for _, a := range actions {
		f.Actions[a] = true
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
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
