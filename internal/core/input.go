package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - run left within the lane
	ActionRight          // D, Right arrow - run right within the lane
	ActionJump           // Space, W, Up - jump (edge-triggered, buffered by the game)
	ActionAttack         // F, X - swing the held weapon
	ActionStart          // Enter, Space on title screen - begin the run
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
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
	case ActionJump:
		return "Jump"
	case ActionAttack:
		return "Attack"
	case ActionStart:
		return "Start"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
//
// Actions is the edge-triggered set: an action appears there for exactly one
// tick after its key press, and the platform clears the set at the end of
// every tick, so each discrete press is consumed at most once. Held is the
// level-triggered set: an action stays there for as long as the platform
// considers its key held down.
type InputFrame struct {
	// Actions maps action types to whether they were pressed this frame.
	Actions map[Action]bool

	// Held maps action types to whether their key is currently held.
	Held map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// SetHeld marks an action's key as currently held down.
func (f *InputFrame) SetHeld(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// ReleaseHeld clears the held state of an action.
func (f *InputFrame) ReleaseHeld(a Action) {
	if f.Held != nil {
		delete(f.Held, a)
	}
}

// IsHeld returns true if the action's key is currently held down.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// HeldDir collapses the held left/right actions into a direction:
// -1 for left, +1 for right, 0 for neither or both.
func (f InputFrame) HeldDir() int {
	dir := 0
	if f.IsHeld(ActionLeft) {
		dir--
	}
	if f.IsHeld(ActionRight) {
		dir++
	}
	return dir
}

// Clear resets the edge-triggered actions for the next frame.
// Held state is owned by the platform and survives the clear.
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
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
