// Package config provides YAML-based game configuration loading and
// difficulty presets for the slingshot game.
package config

import (
	"fmt"
	"time"
)

// SlingshotConfig contains all tunable parameters of the game.
type SlingshotConfig struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Sling   SlingConfig   `yaml:"sling"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Session SessionConfig `yaml:"session"`
}

// WorldConfig is the size of the simulated scene in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines material defaults and gravity.
// Velocities are in world units per tick.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`      // units per tick squared
	Density     float64 `yaml:"density"`      // mass per unit area of dynamic bodies
	Restitution float64 `yaml:"restitution"`  // bounciness of dynamic bodies
	Friction    float64 `yaml:"friction"`     // surface friction
	AirFriction float64 `yaml:"air_friction"` // velocity fraction lost per tick
}

// SlingConfig defines the drag-and-release mechanics.
type SlingConfig struct {
	CaptureRadius float64 `yaml:"capture_radius"` // pointer distance that grabs the projectile
	MaxPull       float64 `yaml:"max_pull"`       // maximum drag distance from the anchor
	ForceScale    float64 `yaml:"force_scale"`    // launch force per unit of pull
	PreviewPoints int     `yaml:"preview_points"` // trajectory dots shown while aiming
	PreviewStride int     `yaml:"preview_stride"` // ticks between trajectory dots
}

// TimingConfig defines delays of deferred game events.
type TimingConfig struct {
	ExplosionCue   time.Duration `yaml:"explosion_cue"`
	NextProjectile time.Duration `yaml:"next_projectile"`
	LossGrace      time.Duration `yaml:"loss_grace"`
}

// ScoringConfig defines points per destroyed target.
type ScoringConfig struct {
	OrdinaryTarget      int `yaml:"ordinary_target"`
	DistinguishedTarget int `yaml:"distinguished_target"`
}

// SessionConfig defines per-session limits.
type SessionConfig struct {
	Projectiles int `yaml:"projectiles"` // used when a level declares no lineup
}

// Allowed ranges for sling parameters.
const (
	MinCaptureRadius = 30.0
	MaxCaptureRadius = 40.0
	MinPull          = 100.0
	MaxPull          = 120.0
	MinForceScale    = 0.01
	MaxForceScale    = 0.015
	MinPreviewPoints = 6
	MaxPreviewPoints = 8
)

// Validate checks the configuration and clamps sling parameters into
// their allowed ranges. It returns an error for values that cannot be
// repaired.
func (c *SlingshotConfig) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.Sling.MaxPull <= 0 {
		return fmt.Errorf("sling max_pull must be positive, got %v", c.Sling.MaxPull)
	}
	if c.Sling.CaptureRadius <= 0 {
		return fmt.Errorf("sling capture_radius must be positive, got %v", c.Sling.CaptureRadius)
	}
	if c.Session.Projectiles < 1 {
		return fmt.Errorf("session projectiles must be at least 1, got %d", c.Session.Projectiles)
	}

	c.Sling.clamp()
	if c.Physics.AirFriction < 0 {
		c.Physics.AirFriction = 0
	}
	return nil
}

// clamp moves the sling constants into their allowed ranges.
func (s *SlingConfig) clamp() {
	s.CaptureRadius = clampF(s.CaptureRadius, MinCaptureRadius, MaxCaptureRadius)
	s.MaxPull = clampF(s.MaxPull, MinPull, MaxPull)
	s.ForceScale = clampF(s.ForceScale, MinForceScale, MaxForceScale)
	s.PreviewPoints = clamp(s.PreviewPoints, MinPreviewPoints, MaxPreviewPoints)
	if s.PreviewStride < 1 {
		s.PreviewStride = 1
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}
