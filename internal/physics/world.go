package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/vovakirdan/tui-slingshot/internal/core"
)

// bodyCollisionType tags every shape so one handler sees all pairs.
const bodyCollisionType cp.CollisionType = 1

// Solver settings for a space stepped once per tick.
const (
	stepDT           = 1.0
	solverIterations = 10
	collisionSlop    = 0.5
	collisionBias    = 0.9 // overlap left after one step
)

// Pair is two bodies that started touching during a step.
type Pair struct {
	A, B *Body
}

// Other returns the member of the pair that is not b, or nil when b is not
// part of the pair.
func (p Pair) Other(b *Body) *Body {
	switch b {
	case p.A:
		return p.B
	case p.B:
		return p.A
	default:
		return nil
	}
}

// CollisionStartFunc receives the pairs that began touching in one step.
// It runs after the step completes, so it may add or remove bodies.
type CollisionStartFunc func(pairs []Pair)

// Damping converts an air friction (velocity fraction lost per step) into
// the fraction kept per step.
func Damping(airFriction float64) float64 {
	return 1 - core.Clamp(airFriction, 0, 1)
}

// World owns a cp.Space and the bodies added to it.
// It is not safe for concurrent use.
type World struct {
	space      *cp.Space
	gravity    core.Vec2
	damping    float64
	bodies     []*Body
	nextID     uint64
	started    []Pair
	listeners  map[int]CollisionStartFunc
	nextListen int
	steps      uint64
}

// NewWorld creates an empty world with the given gravity and air friction.
func NewWorld(gravity core.Vec2, airFriction float64) *World {
	w := &World{
		listeners: make(map[int]CollisionStartFunc),
	}
	w.space = w.newSpace()
	w.SetGravity(gravity)
	w.damping = Damping(airFriction)
	w.space.SetDamping(w.damping)
	return w
}

func (w *World) newSpace() *cp.Space {
	space := cp.NewSpace()
	space.Iterations = solverIterations
	space.SetCollisionSlop(collisionSlop)
	space.SetCollisionBias(collisionBias)

	handler := space.NewCollisionHandler(bodyCollisionType, bodyCollisionType)
	handler.BeginFunc = w.begin
	return space
}

// begin records a new contact and schedules the notification for the end
// of the step, when the space accepts changes again.
func (w *World) begin(arb *cp.Arbiter, space *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	ba, okA := a.UserData.(*Body)
	bb, okB := b.UserData.(*Body)
	if okA && okB {
		w.started = append(w.started, Pair{A: ba, B: bb})
		space.AddPostStepCallback(w.notify, w, nil)
	}
	return true
}

func (w *World) notify(_ *cp.Space, _, _ interface{}) {
	pairs := w.started
	w.started = nil
	for id := 0; id < w.nextListen; id++ {
		if fn, ok := w.listeners[id]; ok {
			fn(pairs)
		}
	}
}

// Gravity returns the acceleration applied to dynamic bodies each step.
func (w *World) Gravity() core.Vec2 { return w.gravity }

// SetGravity replaces the world gravity.
func (w *World) SetGravity(g core.Vec2) {
	w.gravity = g
	w.space.SetGravity(toCP(g))
}

// Damping returns the fraction of velocity a body keeps each step.
func (w *World) Damping() float64 { return w.damping }

// Steps returns how many steps the world has run.
func (w *World) Steps() uint64 { return w.steps }

// Add registers bodies with the world. A body already in another world is
// moved; adding a body twice is a no-op.
func (w *World) Add(bodies ...*Body) {
	for _, b := range bodies {
		if b == nil || b.world == w {
			continue
		}
		if b.world != nil {
			b.world.Remove(b)
		}
		w.nextID++
		b.id = w.nextID
		b.world = w
		w.space.AddBody(b.body)
		w.space.AddShape(b.shape)
		b.lockRotation()
		w.bodies = append(w.bodies, b)
	}
}

// Remove takes a body out of the world. It reports whether the body was
// present; removing an absent body is a no-op.
func (w *World) Remove(b *Body) bool {
	if b == nil || b.world != w {
		return false
	}

	kept := make([]*Body, 0, len(w.bodies))
	for _, other := range w.bodies {
		if other != b {
			kept = append(kept, other)
		}
	}
	w.bodies = kept
	w.detach(b)
	return true
}

func (w *World) detach(b *Body) {
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	b.world = nil
}

// Contains reports whether b is in this world.
func (w *World) Contains(b *Body) bool {
	return b != nil && b.world == w
}

// Bodies returns the bodies in insertion order.
func (w *World) Bodies() []*Body {
	out := make([]*Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// SetPosition moves a body without integrating velocity.
func (w *World) SetPosition(b *Body, p core.Vec2) {
	if b == nil || b.world != w {
		return
	}
	b.body.SetPosition(toCP(p))
	if b.static {
		w.space.ReindexShapesForBody(b.body)
	}
}

// SetVelocity overrides the velocity of a dynamic body.
func (w *World) SetVelocity(b *Body, v core.Vec2) {
	if b == nil || b.world != w || b.static {
		return
	}
	b.body.SetVelocity(v.X, v.Y)
}

// ApplyForce applies a force at point for the next step, changing the
// body's velocity by force/mass. Static bodies ignore forces.
func (w *World) ApplyForce(b *Body, point, force core.Vec2) {
	if b == nil || b.world != w || b.static {
		return
	}
	b.body.ApplyForceAtWorldPoint(toCP(force), toCP(point))
}

// OnCollisionStart subscribes fn to collision-start notifications.
// The returned function cancels the subscription.
func (w *World) OnCollisionStart(fn CollisionStartFunc) func() {
	id := w.nextListen
	w.nextListen++
	w.listeners[id] = fn
	return func() {
		delete(w.listeners, id)
	}
}

// Clear removes every body and subscription.
func (w *World) Clear() {
	for _, b := range w.bodies {
		w.detach(b)
	}
	w.bodies = nil
	w.started = nil
	w.listeners = make(map[int]CollisionStartFunc)
}

// Step advances the space by one tick. Pairs that began touching are
// delivered to the listeners once the step is over.
func (w *World) Step() {
	w.steps++
	w.space.Step(stepDT)
}
