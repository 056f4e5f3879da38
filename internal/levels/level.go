// Package levels provides scene definitions for the slingshot game:
// built-in levels embedded in the binary and levels loaded from a directory.
package levels

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/physics"
)

// ErrLevelNotFound is returned when no level has the requested ID.
var ErrLevelNotFound = errors.New("level not found")

// BodyKind is the role a body plays in the scene.
type BodyKind int

const (
	KindGround BodyKind = iota
	KindLauncher
	KindWood
	KindStone
	KindTarget
	KindKing
)

var bodyKindNames = map[BodyKind]string{
	KindGround:   "ground",
	KindLauncher: "launcher",
	KindWood:     "wood",
	KindStone:    "stone",
	KindTarget:   "target",
	KindKing:     "king",
}

// String returns the name used in level files.
func (k BodyKind) String() string {
	if name, ok := bodyKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseBodyKind resolves a kind name from a level file.
func ParseBodyKind(s string) (BodyKind, bool) {
	for k, name := range bodyKindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// IsTarget reports whether bodies of this kind are scoring targets.
func (k BodyKind) IsTarget() bool {
	return k == KindTarget || k == KindKing
}

// StaticByDefault reports whether bodies of this kind are immovable unless
// the level says otherwise.
func (k BodyKind) StaticByDefault() bool {
	return k == KindGround || k == KindLauncher
}

// ProjectileKind is a projectile variant in a level lineup.
type ProjectileKind int

const (
	ProjectileRed ProjectileKind = iota
	ProjectileBlue
	ProjectileBig
)

var projectileNames = map[ProjectileKind]string{
	ProjectileRed:  "red",
	ProjectileBlue: "blue",
	ProjectileBig:  "big",
}

// String returns the name used in level files.
func (p ProjectileKind) String() string {
	if name, ok := projectileNames[p]; ok {
		return name
	}
	return "unknown"
}

// ParseProjectileKind resolves a projectile name from a level file.
func ParseProjectileKind(s string) (ProjectileKind, bool) {
	for k, name := range projectileNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// BodySpec describes one body of a scene.
type BodySpec struct {
	Kind   BodyKind
	Shape  physics.ShapeKind
	Pos    core.Vec2
	W, H   float64 // rectangle size
	R      float64 // circle radius
	Static bool
	Color  core.Color // ColorDefault means the kind's own color
}

// Level represents a complete level definition.
type Level struct {
	ID          string
	Name        string
	Anchor      core.Vec2
	Projectiles []ProjectileKind
	Bodies      []BodySpec
	Metadata    map[string]string
	FilePath    string // empty for built-in levels
}

// TargetCount returns the number of scoring targets in the level.
func (l Level) TargetCount() int {
	n := 0
	for _, b := range l.Bodies {
		if b.Kind.IsTarget() {
			n++
		}
	}
	return n
}

// Lineup returns the projectile lineup adjusted by extra projectiles.
// Extra projectiles repeat the last kind; removals keep at least one.
// An empty lineup falls back to fallback red projectiles.
func (l Level) Lineup(fallback, extra int) []ProjectileKind {
	base := l.Projectiles
	if len(base) == 0 {
		base = make([]ProjectileKind, max(1, fallback))
	}

	n := max(1, len(base)+extra)
	out := make([]ProjectileKind, n)
	for i := range out {
		if i < len(base) {
			out[i] = base[i]
		} else {
			out[i] = base[len(base)-1]
		}
	}
	return out
}

// Validate checks that a level is playable.
func (l Level) Validate() error {
	if l.ID == "" {
		return fmt.Errorf("level has no id")
	}
	if l.TargetCount() == 0 {
		return fmt.Errorf("level %s has no targets", l.ID)
	}
	hasGround := false
	for _, b := range l.Bodies {
		if b.Kind == KindGround {
			hasGround = true
			break
		}
	}
	if !hasGround {
		return fmt.Errorf("level %s has no ground", l.ID)
	}
	return nil
}
