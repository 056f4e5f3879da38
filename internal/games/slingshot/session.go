package slingshot

import (
	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/levels"
	"github.com/vovakirdan/tui-slingshot/internal/physics"
)

// explosion is a short-lived visual cue at a destroyed target.
type explosion struct {
	id  int
	pos core.Vec2
}

// session is everything that belongs to one attempt at a level. It is
// built on reset and torn down when the next reset replaces it.
type session struct {
	level  levels.Level
	world  *physics.World
	anchor core.Vec2

	lineup []levels.ProjectileKind
	next   int // lineup index of the next projectile to activate

	projectile     *physics.Body // active projectile
	projectileKind levels.ProjectileKind
	launched       bool
	dragging       bool
	preview        []core.Vec2

	targets []*target
	stats   Stats
	phase   Phase
	stars   int

	explosions []explosion
	nextBoom   int
}

func newSession(cfg config.SlingshotConfig, lvl levels.Level, extraProjectiles int) *session {
	world := physics.NewWorld(core.V(0, cfg.Physics.Gravity), cfg.Physics.AirFriction)
	targets := buildScene(world, lvl, cfg.Physics)
	lineup := lvl.Lineup(cfg.Session.Projectiles, extraProjectiles)

	return &session{
		level:   lvl,
		world:   world,
		anchor:  lvl.Anchor,
		lineup:  lineup,
		targets: targets,
		stats: Stats{
			ProjectilesRemaining: len(lineup),
			TotalTargets:         len(targets),
		},
		phase: PhasePlaying,
	}
}

func (s *session) teardown() {
	s.world.Clear()
	s.projectile = nil
	s.preview = nil
	s.explosions = nil
}

func (s *session) isProjectile(b *physics.Body) bool {
	return s.projectile != nil && b == s.projectile
}

func (s *session) addExplosion(pos core.Vec2) int {
	s.nextBoom++
	s.explosions = append(s.explosions, explosion{id: s.nextBoom, pos: pos})
	return s.nextBoom
}

func (s *session) clearExplosion(id int) {
	kept := s.explosions[:0]
	for _, e := range s.explosions {
		if e.id != id {
			kept = append(kept, e)
		}
	}
	s.explosions = kept
}
