// Package slingshot implements the slingshot game: the player pulls a
// projectile back from the sling anchor, releases it into a physics scene
// and scores by knocking out targets.
package slingshot

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-slingshot/internal/config"
	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/levels"
	"github.com/vovakirdan/tui-slingshot/internal/physics"
)

// cullMargin is how far outside the scene a body may drift before it is
// removed from the world.
const cullMargin = 200.0

// Options configures a new game.
type Options struct {
	Config           config.SlingshotConfig
	Levels           []levels.Level // campaign order; must not be empty
	Start            int            // index of the first level to play
	ExtraProjectiles int            // added to every lineup (difficulty)
}

// Game implements the slingshot game logic. It is driven by Step and
// holds no goroutines; all deferred work runs on simulation ticks.
type Game struct {
	cfg        config.SlingshotConfig
	campaign   []levels.Level
	levelIndex int
	extra      int

	runtime core.RuntimeConfig
	view    viewport
	sched   *Scheduler
	sess    *session
	paused  bool
	tick    uint64
	events  []core.Event
}

// New creates a game for the given campaign. The session is built by Reset.
func New(opts Options) *Game {
	return &Game{
		cfg:        opts.Config,
		campaign:   opts.Levels,
		levelIndex: core.Clamp(opts.Start, 0, max(0, len(opts.Levels)-1)),
		extra:      opts.ExtraProjectiles,
		sched:      NewScheduler(),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "slingshot"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Slingshot"
}

// Level returns the level being played.
func (g *Game) Level() levels.Level {
	return g.campaign[g.levelIndex]
}

// LevelIndex returns the campaign position of the current level.
func (g *Game) LevelIndex() int {
	return g.levelIndex
}

// HasNextLevel reports whether the campaign continues after this level.
func (g *Game) HasNextLevel() bool {
	return g.levelIndex+1 < len(g.campaign)
}

// Reset initializes or restarts the current level.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime
	g.view = newViewport(runtime.ScreenW, runtime.ScreenH, g.cfg.World.Width, g.cfg.World.Height)
	g.startSession()
}

// Resize adapts the projection to a new screen size without touching the
// simulation.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.view = newViewport(width, height, g.cfg.World.Width, g.cfg.World.Height)
}

// startSession tears down the current session and builds a fresh one.
// Deferred tasks of the old session become stale.
func (g *Game) startSession() {
	if g.sess != nil {
		g.sess.teardown()
	}
	g.sched.Invalidate()
	g.paused = false

	s := newSession(g.cfg, g.campaign[g.levelIndex], g.extra)
	s.world.OnCollisionStart(func(pairs []physics.Pair) {
		g.respond(s, pairs)
	})
	g.sess = s
	g.activateNext()
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	restarted := true
	switch {
	case in.Has(core.ActionRestart):
		g.startSession()
	case in.Has(core.ActionConfirm) && g.sess.phase == PhaseWon && g.HasNextLevel():
		g.levelIndex++
		g.startSession()
	default:
		restarted = false
	}

	// A fresh session always starts running.
	if !restarted && in.Has(core.ActionPause) && g.sess.phase == PhasePlaying {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, p := range in.Pointer {
		g.handlePointer(p)
	}

	g.tick++
	g.sched.Advance()
	g.sess.world.Step()
	g.cull()

	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sess.stats.Score,
		GameOver: g.sess.phase != PhasePlaying,
		Won:      g.sess.phase == PhaseWon,
		Paused:   g.paused,
	}
}

// Stats returns the session scoreboard.
func (g *Game) Stats() Stats {
	return g.sess.stats
}

// Phase returns the session phase.
func (g *Game) Phase() Phase {
	return g.sess.phase
}

// StarRating returns the stars earned, 0 unless the session was won.
func (g *Game) StarRating() int {
	return g.sess.stars
}

// Preview returns the current trajectory preview (nil when not aiming).
func (g *Game) Preview() []core.Vec2 {
	return g.sess.preview
}

func (g *Game) emit(ev core.Event) {
	g.events = append(g.events, ev)
}

// ticks converts a duration to simulation ticks, rounding up.
func (g *Game) ticks(d time.Duration) int {
	return max(1, int(math.Ceil(d.Seconds()*float64(g.runtime.TickRate))))
}

func (g *Game) trajectoryParams() TrajectoryParams {
	return TrajectoryParams{
		Gravity: g.sess.world.Gravity(),
		Damping: g.sess.world.Damping(),
		Points:  g.cfg.Sling.PreviewPoints,
		Stride:  g.cfg.Sling.PreviewStride,
	}
}

// activateNext puts the next projectile of the lineup on the sling.
func (g *Game) activateNext() {
	s := g.sess
	if s.phase != PhasePlaying || s.next >= len(s.lineup) {
		return
	}

	kind := s.lineup[s.next]
	s.next++
	body := newProjectile(kind, s.anchor, g.cfg.Physics)
	s.world.Add(body)

	s.projectile = body
	s.projectileKind = kind
	s.launched = false
	s.dragging = false
	s.preview = nil

	g.emit(core.Event{Kind: core.EventProjectileReady, Pos: s.anchor, Detail: kind.String()})
}

// checkLoss ends the session when every projectile is spent and targets
// remain.
func (g *Game) checkLoss() {
	s := g.sess
	if s.phase != PhasePlaying {
		return
	}
	if s.stats.ProjectilesRemaining > 0 || !s.launched {
		return
	}
	if s.stats.TargetsDestroyed >= s.stats.TotalTargets {
		return
	}
	s.phase = PhaseLost
	s.dragging = false
	s.preview = nil
	g.emit(core.Event{Kind: core.EventLost})
}

// cull removes bodies that left the scene. Targets and the projectile on
// the sling are never culled.
func (g *Game) cull() {
	s := g.sess
	minX, maxX := -cullMargin, g.cfg.World.Width+cullMargin
	maxY := g.cfg.World.Height + cullMargin

	for _, b := range s.world.Bodies() {
		if b.IsStatic() {
			continue
		}
		if _, isTarget := b.Data.(*target); isTarget {
			continue
		}
		p := b.Position()
		if p.X < minX || p.X > maxX || p.Y > maxY {
			s.world.Remove(b)
		}
	}
}
