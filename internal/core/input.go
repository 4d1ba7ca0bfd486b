package core

// Action represents a semantic game action, abstracted from physical key presses.
// Front ends map keys (or buttons) to actions; the engine maps actions to commands.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Left arrow, h - move left
	ActionRight            // Right arrow, l - move right
	ActionSoftDrop         // Down arrow, j - move down one row
	ActionHardDrop         // Up arrow, k, Enter - drop and lock
	ActionRotateCW         // x - rotate clockwise
	ActionRotateCCW        // z - rotate counter-clockwise
	ActionHold             // Space, c - swap with the hold slot
	ActionRestart          // r - start a new game
	ActionQuit             // q, Ctrl+C - exit
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
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHold:
		return "Hold"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsDirectional reports whether the action can auto-repeat while held.
func (a Action) IsDirectional() bool {
	return a == ActionLeft || a == ActionRight || a == ActionSoftDrop
}
