package core

// Action represents a semantic game action, abstracted from physical
// key presses, buttons and touches.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H, ◀ button - move paddle left
	ActionRight          // Right arrow, D, L, ▶ button - move paddle right
	ActionRestart        // R key, Restart button - end the session and start a new one
	ActionQuit           // Q, Ctrl+C - exit
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
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intents holds the two sustained directional flags. Collaborators flip
// them on press and release; the simulation reads whatever state they are
// in when a step runs. Nothing is queued.
type Intents struct {
	MoveLeft  bool
	MoveRight bool
}

// Set updates the flag behind a directional action. Other actions are ignored.
func (in *Intents) Set(a Action, held bool) {
	switch a {
	case ActionLeft:
		in.MoveLeft = held
	case ActionRight:
		in.MoveRight = held
	}
}

// Clear releases both flags.
func (in *Intents) Clear() {
	in.MoveLeft = false
	in.MoveRight = false
}
