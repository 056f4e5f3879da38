package slingshot

import (
	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/levels"
	"github.com/vovakirdan/tui-slingshot/internal/physics"
)

// TrajectoryParams controls flight prediction. Gravity and Damping must
// match the physics world for the prediction to follow the real path.
type TrajectoryParams struct {
	Gravity core.Vec2
	Damping float64 // velocity fraction kept per tick; 0 means 1
	Points  int     // number of samples
	Stride  int     // ticks between samples
}

// LaunchForce returns the force for a projectile pulled to pos.
// The force points from the projectile back toward the anchor.
func LaunchForce(anchor, pos core.Vec2, scale float64) core.Vec2 {
	return anchor.Sub(pos).Scale(scale)
}

// ClampPull limits a pointer position to the sling: at most maxPull from
// the anchor and never in front of it.
func ClampPull(anchor, pointer core.Vec2, maxPull float64) core.Vec2 {
	pos := anchor.Add(pointer.Sub(anchor).ClampLen(maxPull))
	if pos.X > anchor.X {
		pos.X = anchor.X
	}
	return pos
}

// PredictTrajectory samples the free flight of a body of the given mass
// launched from start by force. It follows the space's step order: the
// position moves with the previous velocity, then the velocity is damped
// and accelerated. The launch force acts during the first step only.
func PredictTrajectory(start, force core.Vec2, mass float64, p TrajectoryParams) []core.Vec2 {
	if p.Points <= 0 || mass <= 0 {
		return nil
	}
	stride := max(1, p.Stride)
	damping := p.Damping
	if damping <= 0 {
		damping = 1
	}

	accel := force.Scale(1 / mass)
	var vel core.Vec2
	pos := start
	out := make([]core.Vec2, 0, p.Points)
	for step := 1; len(out) < p.Points; step++ {
		pos = pos.Add(vel)
		vel = vel.Scale(damping).Add(p.Gravity.Add(accel))
		accel = core.Vec2{}
		if step%stride == 0 {
			out = append(out, pos)
		}
	}
	return out
}

// Aim describes the launch that a pull of the level's first projectile
// would produce.
type Aim struct {
	Projectile levels.ProjectileKind
	Pos        core.Vec2 // clamped projectile position
	Force      core.Vec2
	Mass       float64
	Velocity   core.Vec2 // velocity right after release
	Preview    []core.Vec2
}

// AimFor computes the launch for pulling the first projectile of lvl by
// pull, relative to the anchor.
func AimFor(cfg config.SlingshotConfig, lvl levels.Level, pull core.Vec2) Aim {
	kind := levels.ProjectileRed
	if lineup := lvl.Lineup(cfg.Session.Projectiles, 0); len(lineup) > 0 {
		kind = lineup[0]
	}

	pos := ClampPull(lvl.Anchor, lvl.Anchor.Add(pull), cfg.Sling.MaxPull)
	mass := newProjectile(kind, pos, cfg.Physics).Mass()
	force := LaunchForce(lvl.Anchor, pos, cfg.Sling.ForceScale)
	params := TrajectoryParams{
		Gravity: core.V(0, cfg.Physics.Gravity),
		Damping: physics.Damping(cfg.Physics.AirFriction),
		Points:  cfg.Sling.PreviewPoints,
		Stride:  cfg.Sling.PreviewStride,
	}

	return Aim{
		Projectile: kind,
		Pos:        pos,
		Force:      force,
		Mass:       mass,
		Velocity:   force.Scale(1 / mass),
		Preview:    PredictTrajectory(pos, force, mass, params),
	}
}
