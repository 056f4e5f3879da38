package slingshot

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-slingshot/internal/core"
	"github.com/vovakirdan/tui-slingshot/internal/physics"
)

// Visual characters for rendering
const (
	PreviewChar   = '•'
	BandChar      = '·'
	ExplosionChar = '✹'
	SparkChar     = '*'
	KingMark      = '♛'
	StarFull      = '★'
	StarEmpty     = '☆'
	SpentChar     = '○'
)

// Minimum screen size
const (
	minScreenW = 40
	minScreenH = 12
)

// viewport projects the world onto the screen. Row 0 is the HUD and the
// last row is the hint line; the scene fills the rows in between.
type viewport struct {
	width, height int
	top           int
	scaleX        float64
	scaleY        float64
}

func newViewport(screenW, screenH int, worldW, worldH float64) viewport {
	fieldH := max(1, screenH-2)
	if worldW <= 0 || worldH <= 0 {
		worldW, worldH = 800, 500
	}
	return viewport{
		width:  screenW,
		height: screenH,
		top:    1,
		scaleX: float64(max(1, screenW)) / worldW,
		scaleY: float64(fieldH) / worldH,
	}
}

func (v viewport) toCell(p core.Vec2) (int, int) {
	x := int(math.Floor(p.X * v.scaleX))
	y := v.top + int(math.Floor(p.Y*v.scaleY))
	return x, y
}

// toWorld returns the world position at the center of a screen cell.
func (v viewport) toWorld(x, y int) core.Vec2 {
	return core.V(
		(float64(x)+0.5)/v.scaleX,
		(float64(y-v.top)+0.5)/v.scaleY,
	)
}

func (v viewport) tooSmall() bool {
	return v.width < minScreenW || v.height < minScreenH
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.view.tooSmall() {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	s := g.sess
	for _, b := range s.world.Bodies() {
		g.renderBody(dst, b)
	}
	g.renderSling(dst)
	g.renderPreview(dst)
	g.renderExplosions(dst)

	// Projectile on top of the band
	if s.projectile != nil && s.world.Contains(s.projectile) {
		g.renderBody(dst, s.projectile)
	}

	g.renderHUD(dst)
	g.renderHint(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderBody(dst *core.Screen, b *physics.Body) {
	style := b.Style()
	glyph := style.Glyph
	if glyph == 0 {
		glyph = '#'
	}

	if b.Shape() == physics.ShapeRect {
		lo, hi := b.Bounds()
		x0, y0 := g.view.toCell(lo)
		x1 := max(x0, int(math.Ceil(hi.X*g.view.scaleX))-1)
		y1 := max(y0, g.view.top+int(math.Ceil(hi.Y*g.view.scaleY))-1)
		cells := core.RectFromCorners(x0, y0, x1, y1).Intersect(g.field(dst))
		dst.DrawRectColored(cells, glyph, style.Fill)
		return
	}

	g.fillCircle(dst, b.Position(), b.Radius(), glyph, style.Fill)
	if t, ok := b.Data.(*target); ok && t.kind == TargetDistinguished {
		cx, cy := g.view.toCell(b.Position())
		g.setField(dst, cx, cy, KingMark, style.Fill)
	}
}

// fillCircle fills the cells whose centers fall inside the projected
// ellipse, and at least the center cell.
func (g *Game) fillCircle(dst *core.Screen, center core.Vec2, r float64, glyph rune, c core.Color) {
	cx := center.X * g.view.scaleX
	cy := center.Y * g.view.scaleY
	rx := r * g.view.scaleX
	ry := r * g.view.scaleY

	x0, x1 := int(math.Floor(cx-rx)), int(math.Ceil(cx+rx))
	y0, y1 := int(math.Floor(cy-ry)), int(math.Ceil(cy+ry))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				g.setField(dst, x, g.view.top+y, glyph, c)
			}
		}
	}
	ex, ey := g.view.toCell(center)
	g.setField(dst, ex, ey, glyph, c)
}

// field is the block of rows between the HUD and the hint line.
func (g *Game) field(dst *core.Screen) core.Rect {
	return core.NewRect(0, g.view.top, dst.Width(), dst.Height()-1-g.view.top)
}

// setField draws inside the scene rows only.
func (g *Game) setField(dst *core.Screen, x, y int, r rune, c core.Color) {
	if !g.field(dst).Contains(x, y) {
		return
	}
	dst.SetColored(x, y, r, c)
}

// renderSling draws the band between the anchor and a pulled projectile.
func (g *Game) renderSling(dst *core.Screen) {
	s := g.sess
	if s.projectile == nil || s.launched {
		return
	}
	from := s.anchor
	to := s.projectile.Position()
	steps := int(from.Dist(to) * math.Max(g.view.scaleX, g.view.scaleY) * 2)
	for i := 1; i < steps; i++ {
		p := from.Add(to.Sub(from).Scale(float64(i) / float64(steps)))
		x, y := g.view.toCell(p)
		g.setField(dst, x, y, BandChar, core.ColorBrown)
	}
}

func (g *Game) renderPreview(dst *core.Screen) {
	for _, p := range g.sess.preview {
		x, y := g.view.toCell(p)
		g.setField(dst, x, y, PreviewChar, core.ColorBrightWhite)
	}
}

func (g *Game) renderExplosions(dst *core.Screen) {
	for _, e := range g.sess.explosions {
		x, y := g.view.toCell(e.pos)
		g.setField(dst, x-1, y, SparkChar, core.ColorYellow)
		g.setField(dst, x+1, y, SparkChar, core.ColorYellow)
		g.setField(dst, x, y-1, SparkChar, core.ColorYellow)
		g.setField(dst, x, y+1, SparkChar, core.ColorYellow)
		g.setField(dst, x, y, ExplosionChar, core.ColorOrange)
	}
}

// renderHUD draws score, targets and the projectile queue on row 0.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.sess
	left := fmt.Sprintf("Score: %d  Targets: %d/%d  ", s.stats.Score, s.stats.TargetsDestroyed, s.stats.TotalTargets)
	dst.DrawText(1, 0, left)

	x := 1 + len(left)
	for i, kind := range s.lineup {
		if i < s.stats.ProjectilesUsed {
			dst.SetColored(x, 0, SpentChar, core.ColorGray)
		} else {
			dst.SetColored(x, 0, '●', projectileSpecs[kind].color)
		}
		x++
	}

	levelText := fmt.Sprintf("%d. %s", g.levelIndex+1, s.level.Name)
	dst.DrawText(dst.Width()-len([]rune(levelText))-1, 0, levelText)
}

func (g *Game) renderHint(dst *core.Screen) {
	s := g.sess
	var hint string
	switch {
	case s.phase != PhasePlaying:
		return
	case s.dragging:
		hint = "Release to launch"
	case s.projectile != nil && !s.launched:
		hint = "Drag the projectile back with the mouse  |  R: restart  P: pause"
	case s.stats.ProjectilesRemaining > 0:
		hint = "Reloading..."
	default:
		hint = "Last shot in flight..."
	}
	dst.DrawTextCenteredColored(dst.Height()-1, hint, core.ColorGray)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	s := g.sess
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume", core.ColorDefault)

	case s.phase == PhaseWon:
		subtitle := fmt.Sprintf("Score: %d  |  R: replay", s.stats.Score)
		if g.HasNextLevel() {
			subtitle += "  Enter: next level"
		}
		g.drawCenteredBox(dst, "VICTORY  "+starString(s.stars), subtitle, core.ColorBrightYellow)

	case s.phase == PhaseLost:
		subtitle := fmt.Sprintf("Targets left: %d  |  R: retry", s.stats.TotalTargets-s.stats.TargetsDestroyed)
		g.drawCenteredBox(dst, "OUT OF SHOTS", subtitle, core.ColorBrightRed)
	}
}

func starString(stars int) string {
	return strings.Repeat(string(StarFull), stars) + strings.Repeat(string(StarEmpty), max(0, 3-stars))
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subLen := len([]rune(subtitle))
	boxW := max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBoxColored(core.NewRect(boxX, boxY, boxW, boxH), c)

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}
