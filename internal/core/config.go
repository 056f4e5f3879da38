package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and to convert delays to ticks.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
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

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended (won or lost)
	Won      bool // Whether the session ended in a win
	Paused   bool // Whether the game is paused
}

// EventKind identifies a gameplay event reported by a step.
type EventKind int

const (
	EventLaunch EventKind = iota
	EventTargetDestroyed
	EventProjectileReady
	EventWon
	EventLost
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventLaunch:
		return "launch"
	case EventTargetDestroyed:
		return "target_destroyed"
	case EventProjectileReady:
		return "projectile_ready"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Event is a gameplay occurrence the platform may react to (sound, logs).
type Event struct {
	Kind   EventKind
	Pos    Vec2   // World position where relevant
	Points int    // Points awarded (EventTargetDestroyed)
	Stars  int    // Star rating (EventWon)
	Force  Vec2   // Launch force (EventLaunch)
	Detail string // Free-form tag such as a target or projectile kind
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
