// Package physics wraps a Chipmunk2D space behind the narrow surface the
// game needs: circles and axis-aligned rectangles under gravity, a drag
// teleport, a one-step launch force and collision-start notifications.
// Bodies carry an infinite moment, so they never rotate.
//
// The space is stepped with dt = 1, so a velocity is world units per step
// and gravity is units per step squared.
package physics

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// ShapeKind is the collision shape of a body.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// String returns the shape name.
func (s ShapeKind) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeRect:
		return "rect"
	default:
		return "unknown"
	}
}

// Style is the visual description carried by a body. The world never reads it.
type Style struct {
	Fill      core.Color
	Stroke    core.Color
	LineWidth int
	Glyph     rune
}

// Default material values, used by DefaultBodyOptions.
const (
	DefaultDensity     = 0.001
	DefaultRestitution = 0.0
	DefaultFriction    = 0.1
)

// BodyOptions configures a new body.
type BodyOptions struct {
	Static      bool
	Label       string
	Style       Style
	Density     float64 // mass per unit area; 0 means DefaultDensity
	Restitution float64
	Friction    float64
}

// DefaultBodyOptions returns dynamic body options with default materials.
func DefaultBodyOptions() BodyOptions {
	return BodyOptions{
		Density:     DefaultDensity,
		Restitution: DefaultRestitution,
		Friction:    DefaultFriction,
	}
}

// Body is a rigid body backed by a cp.Body with a single shape. Bodies are
// created with NewCircle or NewRectangle and belong to at most one World
// at a time.
type Body struct {
	id    uint64
	label string
	kind  ShapeKind

	radius float64
	size   core.Vec2
	mass   float64
	static bool

	body  *cp.Body
	shape *cp.Shape

	style Style
	world *World

	// Data is free for the owner of the body.
	Data any
}

// NewCircle creates a circle body centered at (x, y).
func NewCircle(x, y, radius float64, opts BodyOptions) *Body {
	b := newBody(ShapeCircle, math.Pi*radius*radius, opts)
	b.radius = radius
	b.shape = cp.NewCircle(b.body, radius, cp.Vector{})
	b.finish(x, y, opts)
	return b
}

// NewRectangle creates an axis-aligned rectangle body centered at (x, y).
func NewRectangle(x, y, width, height float64, opts BodyOptions) *Body {
	b := newBody(ShapeRect, width*height, opts)
	b.size = core.V(width, height)
	b.shape = cp.NewBox(b.body, width, height, 0)
	b.finish(x, y, opts)
	return b
}

func newBody(kind ShapeKind, area float64, opts BodyOptions) *Body {
	density := opts.Density
	if density <= 0 {
		density = DefaultDensity
	}

	b := &Body{
		label:  opts.Label,
		kind:   kind,
		mass:   area * density,
		static: opts.Static,
		style:  opts.Style,
	}
	if opts.Static {
		b.body = cp.NewStaticBody()
	} else {
		b.body = cp.NewBody(b.mass, math.Inf(1))
	}
	b.body.UserData = b
	return b
}

func (b *Body) finish(x, y float64, opts BodyOptions) {
	b.shape.SetFriction(opts.Friction)
	b.shape.SetElasticity(opts.Restitution)
	b.shape.SetCollisionType(bodyCollisionType)
	b.body.SetPosition(cp.Vector{X: x, Y: y})
}

// lockRotation restores the infinite moment after cp recomputed the mass
// properties of the body.
func (b *Body) lockRotation() {
	if b.static {
		return
	}
	b.body.SetMass(b.mass)
	b.body.SetMoment(math.Inf(1))
}

// ID returns the identifier assigned when the body was added to a world.
func (b *Body) ID() uint64 { return b.id }

// Label returns the free-form label given at creation.
func (b *Body) Label() string { return b.label }

// Shape returns the collision shape kind.
func (b *Body) Shape() ShapeKind { return b.kind }

// Radius returns the circle radius (0 for rectangles).
func (b *Body) Radius() float64 { return b.radius }

// Size returns width and height (zero for circles).
func (b *Body) Size() core.Vec2 { return b.size }

// Position returns the center of the body.
func (b *Body) Position() core.Vec2 { return fromCP(b.body.Position()) }

// Velocity returns the velocity in units per step.
func (b *Body) Velocity() core.Vec2 {
	if b.static {
		return core.Vec2{}
	}
	return fromCP(b.body.Velocity())
}

// Mass returns the mass computed from area and density.
func (b *Body) Mass() float64 { return b.mass }

// IsStatic reports whether the body is immovable.
func (b *Body) IsStatic() bool { return b.static }

// Style returns the visual style.
func (b *Body) Style() Style { return b.style }

// InWorld reports whether the body currently belongs to a world.
func (b *Body) InWorld() bool { return b.world != nil }

// SetStatic switches the body between static and dynamic.
// A body made dynamic starts at rest.
func (b *Body) SetStatic(static bool) {
	if b.static == static {
		return
	}
	b.static = static
	if static {
		b.body.SetType(cp.BODY_STATIC)
		return
	}
	b.body.SetType(cp.BODY_DYNAMIC)
	b.lockRotation()
	b.body.SetVelocity(0, 0)
}

// Bounds returns the axis-aligned bounding box as min and max corners.
func (b *Body) Bounds() (core.Vec2, core.Vec2) {
	half := b.halfExtents()
	p := b.Position()
	return p.Sub(half), p.Add(half)
}

func (b *Body) halfExtents() core.Vec2 {
	if b.kind == ShapeCircle {
		return core.V(b.radius, b.radius)
	}
	return b.size.Scale(0.5)
}

func toCP(v core.Vec2) cp.Vector { return cp.Vector{X: v.X, Y: v.Y} }

func fromCP(v cp.Vector) core.Vec2 { return core.V(v.X, v.Y) }
