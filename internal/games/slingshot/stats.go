package slingshot

// Phase is the session outcome state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseWon
	PhaseLost
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Stats is the per-session scoreboard.
// ProjectilesUsed + ProjectilesRemaining always equals the lineup size and
// TargetsDestroyed never exceeds TotalTargets.
type Stats struct {
	Score                int
	ProjectilesUsed      int
	ProjectilesRemaining int
	TargetsDestroyed     int
	TotalTargets         int
}

// Stars rates a win by the number of projectiles launched.
func Stars(used int) int {
	switch {
	case used <= 1:
		return 3
	case used == 2:
		return 2
	default:
		return 1
	}
}
