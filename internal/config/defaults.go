package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/slingshot.yaml
var defaultSlingshotYAML []byte

// DefaultSlingshotConfig returns the default game configuration.
func DefaultSlingshotConfig() SlingshotConfig {
	return SlingshotConfig{
		World: WorldConfig{
			Width:  800,
			Height: 500,
		},
		Physics: PhysicsConfig{
			Gravity:     0.15,
			Density:     0.0002,
			Restitution: 0.2,
			Friction:    0.3,
			AirFriction: 0.002,
		},
		Sling: SlingConfig{
			CaptureRadius: 35,
			MaxPull:       100,
			ForceScale:    0.013,
			PreviewPoints: 7,
			PreviewStride: 4,
		},
		Timing: TimingConfig{
			ExplosionCue:   500 * time.Millisecond,
			NextProjectile: 3 * time.Second,
			LossGrace:      2 * time.Second,
		},
		Scoring: ScoringConfig{
			OrdinaryTarget:      100,
			DistinguishedTarget: 500,
		},
		Session: SessionConfig{
			Projectiles: 3,
		},
	}
}
