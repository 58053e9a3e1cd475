package core

// RuntimeConfig contains configuration passed from the platform layer.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters (terminal) or pixels (window)
	ScreenH  int // Screen height in characters or pixels
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Phase is the whole-game state machine position.
type Phase int

const (
	PhaseRunning Phase = iota // Ball in play
	PhaseLost                 // Ball passed the paddle, waiting for restart
)

// String returns the phase name.
func (p Phase) String() string {
	if p == PhaseLost {
		return "lost"
	}
	return "running"
}

// GameState represents the current state of a game.
type GameState struct {
	Score     int   // Current session score
	HighScore int   // Best score known to this process
	Phase     Phase // Running or Lost
}

// EventKind identifies something that happened during a step.
type EventKind int

const (
	EventBrickDestroyed EventKind = iota // A brick went from active to destroyed
	EventLost                            // The ball missed the paddle
	EventRestarted                       // A new session began
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventBrickDestroyed:
		return "brick_destroyed"
	case EventLost:
		return "lost"
	case EventRestarted:
		return "restarted"
	default:
		return "unknown"
	}
}

// Event is raised by a step so drivers can log and persist without
// inspecting simulation internals.
type Event struct {
	Kind  EventKind
	Score int // Score at the time of the event (final score for EventLost/EventRestarted)
	Row   int // Brick row for EventBrickDestroyed
	Col   int // Brick column for EventBrickDestroyed

	// Abandoned marks an EventRestarted that cut a running session short.
	// Sessions that ended with EventLost are not abandoned.
	Abandoned bool
}

// EndsSession reports whether the event closes a session whose score
// should be recorded. Abandoning a game that never scored records nothing.
func (e Event) EndsSession() bool {
	return e.Kind == EventLost || (e.Kind == EventRestarted && e.Abandoned && e.Score > 0)
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind was raised.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
