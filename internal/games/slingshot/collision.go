package slingshot

import (
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/physics"
)

// respond scores projectile hits on live targets. Other pairs are ignored.
func (g *Game) respond(s *session, pairs []physics.Pair) {
	for _, p := range pairs {
		if s.phase != PhasePlaying {
			return
		}

		var other *physics.Body
		switch {
		case s.isProjectile(p.A):
			other = p.B
		case s.isProjectile(p.B):
			other = p.A
		default:
			continue
		}

		t, ok := other.Data.(*target)
		if !ok || t.destroyed {
			continue
		}
		g.destroyTarget(s, t)
	}
}

func (g *Game) destroyTarget(s *session, t *target) {
	pos := t.body.Position()
	s.world.Remove(t.body)
	t.destroyed = true

	points := t.kind.Points(g.cfg.Scoring)
	s.stats.Score += points
	s.stats.TargetsDestroyed++

	id := s.addExplosion(pos)
	g.sched.After(g.ticks(g.cfg.Timing.ExplosionCue), func() {
		s.clearExplosion(id)
	})
	g.emit(core.Event{Kind: core.EventTargetDestroyed, Pos: pos, Points: points, Detail: t.kind.String()})

	if s.stats.TargetsDestroyed >= s.stats.TotalTargets {
		s.phase = PhaseWon
		s.stars = Stars(s.stats.ProjectilesUsed)
		s.dragging = false
		s.preview = nil
		g.emit(core.Event{Kind: core.EventWon, Stars: s.stars, Points: s.stats.Score})
	}
}
