package slingshot

import (
	"fmt"
	"hash/fnv"
)

// BodyState is the observable state of one body.
type BodyState struct {
	Label  string
	X, Y   float64
	VX, VY float64
}

// Snapshot contains the observable game state for determinism checks.
type Snapshot struct {
	Tick       uint64
	Epoch      uint64
	LevelID    string
	Phase      Phase
	Stars      int
	Stats      Stats
	Launched   bool
	Dragging   bool
	Preview    int
	Explosions int
	Bodies     []BodyState
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.sess
	bodies := s.world.Bodies()
	states := make([]BodyState, len(bodies))
	for i, b := range bodies {
		p, v := b.Position(), b.Velocity()
		states[i] = BodyState{Label: b.Label(), X: p.X, Y: p.Y, VX: v.X, VY: v.Y}
	}

	return Snapshot{
		Tick:       g.tick,
		Epoch:      g.sched.Epoch(),
		LevelID:    s.level.ID,
		Phase:      s.phase,
		Stars:      s.stars,
		Stats:      s.stats,
		Launched:   s.launched,
		Dragging:   s.dragging,
		Preview:    len(s.preview),
		Explosions: len(s.explosions),
		Bodies:     states,
	}
}

// Hash returns a hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "T:%d;E:%d;L:%s;P:%d;S:%d;", snap.Tick, snap.Epoch, snap.LevelID, snap.Phase, snap.Stars)
	fmt.Fprintf(h, "St:%+v;", snap.Stats)
	fmt.Fprintf(h, "F:%v:%v:%d:%d;", snap.Launched, snap.Dragging, snap.Preview, snap.Explosions)

	fmt.Fprintf(h, "B:")
	for _, b := range snap.Bodies {
		fmt.Fprintf(h, "%s:%.6f:%.6f:%.6f:%.6f,", b.Label, b.X, b.Y, b.VX, b.VY)
	}

	return h.Sum64()
}
