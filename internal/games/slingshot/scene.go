package slingshot

import (
	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/levels"
	"github.com/vovakirdan/tui-slingshot/internal/physics"
)

// Body labels set by the scene builder.
const (
	LabelProjectile = "projectile"
)

// kindStyle is the look and material of a scene body kind.
type kindStyle struct {
	glyph        rune
	color        core.Color
	densityScale float64
}

var kindStyles = map[levels.BodyKind]kindStyle{
	levels.KindGround:   {glyph: '▓', color: core.ColorGreen, densityScale: 1},
	levels.KindLauncher: {glyph: '║', color: core.ColorBrown, densityScale: 1},
	levels.KindWood:     {glyph: '▒', color: core.ColorYellow, densityScale: 1},
	levels.KindStone:    {glyph: '█', color: core.ColorGray, densityScale: 2.5},
	levels.KindTarget:   {glyph: '●', color: core.ColorBrightGreen, densityScale: 1},
	levels.KindKing:     {glyph: '●', color: core.ColorBrightYellow, densityScale: 1.2},
}

// projectileSpec is the shape and look of a projectile variant.
type projectileSpec struct {
	radius       float64
	densityScale float64
	color        core.Color
}

var projectileSpecs = map[levels.ProjectileKind]projectileSpec{
	levels.ProjectileRed:  {radius: 15, densityScale: 1.0, color: core.ColorBrightRed},
	levels.ProjectileBlue: {radius: 11, densityScale: 1.5, color: core.ColorBrightBlue},
	levels.ProjectileBig:  {radius: 20, densityScale: 0.5, color: core.ColorRed},
}

func materialOptions(phys config.PhysicsConfig, densityScale float64) physics.BodyOptions {
	return physics.BodyOptions{
		Density:     phys.Density * densityScale,
		Restitution: phys.Restitution,
		Friction:    phys.Friction,
	}
}

// buildScene creates the bodies of a level and registers them with the
// world. Target bodies are tagged and returned for the collision responder.
func buildScene(world *physics.World, lvl levels.Level, phys config.PhysicsConfig) []*target {
	var targets []*target

	for _, spec := range lvl.Bodies {
		style := kindStyles[spec.Kind]
		opts := materialOptions(phys, style.densityScale)
		opts.Static = spec.Static
		opts.Label = spec.Kind.String()
		opts.Style = physics.Style{Fill: style.color, Glyph: style.glyph}
		if spec.Color != core.ColorDefault {
			opts.Style.Fill = spec.Color
		}

		var body *physics.Body
		if spec.Shape == physics.ShapeCircle {
			body = physics.NewCircle(spec.Pos.X, spec.Pos.Y, spec.R, opts)
		} else {
			body = physics.NewRectangle(spec.Pos.X, spec.Pos.Y, spec.W, spec.H, opts)
		}

		if spec.Kind.IsTarget() {
			t := &target{body: body, kind: TargetOrdinary}
			if spec.Kind == levels.KindKing {
				t.kind = TargetDistinguished
			}
			body.Data = t
			targets = append(targets, t)
		}
		world.Add(body)
	}

	return targets
}

// newProjectile creates a kinematic projectile body at pos. It stays
// static, unaffected by gravity, until launched.
func newProjectile(kind levels.ProjectileKind, pos core.Vec2, phys config.PhysicsConfig) *physics.Body {
	spec, ok := projectileSpecs[kind]
	if !ok {
		spec = projectileSpecs[levels.ProjectileRed]
	}
	opts := materialOptions(phys, spec.densityScale)
	opts.Static = true
	opts.Label = LabelProjectile
	opts.Style = physics.Style{Fill: spec.color, Glyph: '●'}
	body := physics.NewCircle(pos.X, pos.Y, spec.radius, opts)
	body.Data = kind
	return body
}
