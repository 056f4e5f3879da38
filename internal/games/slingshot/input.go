package slingshot

import (
	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// handlePointer maps a pointer event from screen cells to the world and
// dispatches it to the sling.
func (g *Game) handlePointer(ev core.PointerEvent) {
	p := g.view.toWorld(ev.X, ev.Y)
	switch ev.Kind {
	case core.PointerDown:
		g.pointerDown(p)
	case core.PointerMove:
		g.pointerMove(p)
	case core.PointerUp:
		g.pointerUp()
	}
}

// pointerDown grabs the projectile when the pointer is close enough.
func (g *Game) pointerDown(p core.Vec2) {
	s := g.sess
	if s.phase != PhasePlaying || s.projectile == nil || s.launched || s.dragging {
		return
	}
	if p.Dist(s.projectile.Position()) > g.cfg.Sling.CaptureRadius {
		return
	}
	s.dragging = true
}

// pointerMove drags the grabbed projectile and refreshes the preview.
func (g *Game) pointerMove(p core.Vec2) {
	s := g.sess
	if !s.dragging || s.launched {
		return
	}

	pos := ClampPull(s.anchor, p, g.cfg.Sling.MaxPull)
	s.world.SetPosition(s.projectile, pos)

	force := LaunchForce(s.anchor, pos, g.cfg.Sling.ForceScale)
	s.preview = PredictTrajectory(pos, force, s.projectile.Mass(), g.trajectoryParams())
}

// pointerUp releases the projectile: it becomes dynamic and receives the
// launch force once.
func (g *Game) pointerUp() {
	s := g.sess
	if !s.dragging || s.launched {
		return
	}

	s.dragging = false
	s.launched = true
	s.preview = nil

	pos := s.projectile.Position()
	force := LaunchForce(s.anchor, pos, g.cfg.Sling.ForceScale)
	s.projectile.SetStatic(false)
	s.world.ApplyForce(s.projectile, pos, force)

	s.stats.ProjectilesUsed++
	s.stats.ProjectilesRemaining--
	g.emit(core.Event{Kind: core.EventLaunch, Pos: pos, Force: force, Detail: s.projectileKind.String()})

	if s.stats.ProjectilesRemaining > 0 && s.next < len(s.lineup) {
		g.sched.After(g.ticks(g.cfg.Timing.NextProjectile), g.activateNext)
		return
	}
	g.sched.After(g.ticks(g.cfg.Timing.LossGrace), g.checkLoss)
}
