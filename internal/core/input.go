package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends decode raw keys or escape sequences into actions; the engine only sees these.
type Action int

const (
	ActionNone   Action = iota
	ActionUp            // W, K, Up arrow
	ActionDown          // S, J, Down arrow
	ActionLeft          // A, H, Left arrow
	ActionRight         // D, L, Right arrow
	ActionEscape        // Esc, Q, Ctrl+C - abort the session
	ActionPause         // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionEscape:
		return "Escape"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four movement actions.
func (a Action) IsMove() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}
