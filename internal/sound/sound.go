// Package sound synthesizes the short audio cues of the slingshot game.
// Cues are generated on the fly with beep; no sample files are shipped.
package sound

import (
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// Cue identifies a sound effect.
type Cue int

const (
	CueLaunch Cue = iota
	CueImpact
	CueReady
	CueVictory
	CueDefeat
)

func (c Cue) String() string {
	switch c {
	case CueLaunch:
		return "launch"
	case CueImpact:
		return "impact"
	case CueReady:
		return "ready"
	case CueVictory:
		return "victory"
	case CueDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// CueFor maps a game event to its cue.
func CueFor(kind core.EventKind) (Cue, bool) {
	switch kind {
	case core.EventLaunch:
		return CueLaunch, true
	case core.EventTargetDestroyed:
		return CueImpact, true
	case core.EventProjectileReady:
		return CueReady, true
	case core.EventWon:
		return CueVictory, true
	case core.EventLost:
		return CueDefeat, true
	}
	return 0, false
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(c Cue)
	Close()
}

// Silent is a Player that discards every cue.
type Silent struct{}

func (Silent) Play(Cue) {}
func (Silent) Close()   {}

// PlayEvents plays the cue of every event that has one.
func PlayEvents(p Player, events []core.Event) {
	for _, ev := range events {
		if c, ok := CueFor(ev.Kind); ok {
			p.Play(c)
		}
	}
}
