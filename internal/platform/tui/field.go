package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/engine"
)

const (
	hudRows     = 1
	lowAmmo     = 25
	overlayLift = 2 // Rows above center for overlay titles
)

// headings are the ship glyphs for each 45 degree sector, starting at 0
// (facing right) and turning clockwise in screen space.
var headings = [8]struct {
	glyph  rune
	dx, dy int
}{
	{'→', 1, 0}, {'↘', 1, 1}, {'↓', 0, 1}, {'↙', -1, 1},
	{'←', -1, 0}, {'↖', -1, -1}, {'↑', 0, -1}, {'↗', 1, -1},
}

var kindColors = map[engine.Kind]core.Color{
	engine.KindPlayer:    core.ColorCyan,
	engine.KindEnemy:     core.ColorGray,
	engine.KindBullet:    core.ColorYellow,
	engine.KindExplosion: core.ColorOrange,
	engine.KindParticle:  core.ColorOrange,
	engine.KindAmmo:      core.ColorGreen,
}

// FieldRenderer projects engine snapshots onto a character screen. The top
// row holds the HUD and the playfield is scaled into the rows below it.
type FieldRenderer struct {
	screen *core.Screen
}

// NewFieldRenderer creates a renderer drawing into screen.
func NewFieldRenderer(screen *core.Screen) *FieldRenderer {
	return &FieldRenderer{screen: screen}
}

// Render draws snap. high is the best score recorded so far.
func (r *FieldRenderer) Render(snap engine.Snapshot, high int) {
	r.screen.Clear()
	if r.screen.Width() < 1 || r.screen.Height() <= hudRows {
		return
	}

	for _, e := range snap.Entities {
		if !e.Active {
			continue
		}
		if snap.Graphics {
			r.drawGlyph(e, snap.Field)
		} else {
			r.screen.DrawBox(r.project(e.Box, snap.Field), kindColors[e.Kind])
		}
	}

	if snap.Debug {
		r.drawDebug(snap)
	}

	r.drawHUD(snap, high)
	r.drawOverlay(snap)
}

// project maps a field-space box to the screen cells it covers.
func (r *FieldRenderer) project(b core.Box, field core.Size) core.Rect {
	sx, sy := r.scale(field)

	x0 := int(math.Floor(b.Pos.X * sx))
	y0 := int(math.Floor(b.Pos.Y * sy))
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))

	return core.NewRect(x0, y0+hudRows, max(x1-x0, 1), max(y1-y0, 1))
}

// cell maps a field-space point to a screen cell.
func (r *FieldRenderer) cell(p core.Vec, field core.Size) (int, int) {
	sx, sy := r.scale(field)
	return int(math.Floor(p.X * sx)), int(math.Floor(p.Y*sy)) + hudRows
}

func (r *FieldRenderer) scale(field core.Size) (float64, float64) {
	if field.W <= 0 || field.H <= 0 {
		return 0, 0
	}
	return float64(r.screen.Width()) / field.W, float64(r.screen.Height()-hudRows) / field.H
}

func (r *FieldRenderer) drawGlyph(e engine.EntityView, field core.Size) {
	color := kindColors[e.Kind]
	x, y := r.cell(e.Box.Center(), field)

	switch e.Kind {
	case engine.KindPlayer:
		h := headings[heading(e.Angle)]
		if e.Thrusting {
			r.screen.SetColored(x-h.dx, y-h.dy, '*', core.ColorOrange)
		}
		r.screen.SetColored(x, y, h.glyph, color)

	case engine.KindEnemy:
		if !e.Harmful {
			r.screen.SetColored(x, y, '•', color)
			return
		}
		r.screen.DrawRect(r.project(e.Box, field), '▒', color)

	case engine.KindBullet:
		r.screen.SetColored(x, y, '•', color)

	case engine.KindParticle:
		r.screen.SetColored(x, y, '·', color)

	case engine.KindAmmo:
		r.screen.DrawBox(r.project(e.Box, field), color)
		r.screen.SetColored(x, y, 'A', core.ColorGreen)

	case engine.KindExplosion:
		r.drawExplosion(e, field)
	}
}

// drawExplosion draws a ring that widens and cools as the animation runs.
func (r *FieldRenderer) drawExplosion(e engine.EntityView, field core.Size) {
	progress := float64(e.Frame+1) / engine.ExplosionFrames
	rect := r.project(e.Box, field)
	cx, cy := r.cell(e.Box.Center(), field)

	glyph, color := '*', core.ColorYellow
	switch {
	case progress > 0.66:
		glyph, color = '·', core.ColorRed
	case progress > 0.33:
		glyph, color = '+', core.ColorOrange
	}

	rx := int(math.Round(progress * float64(rect.W) / 2))
	ry := int(math.Round(progress * float64(rect.H) / 2))
	for _, h := range headings {
		r.screen.SetColored(cx+h.dx*rx, cy+h.dy*ry, glyph, color)
	}
}

// heading returns the index into headings for an angle in degrees.
func heading(angle float64) int {
	sector := int(math.Round(angle / 45))
	return ((sector % 8) + 8) % 8
}

func (r *FieldRenderer) drawDebug(snap engine.Snapshot) {
	for _, e := range snap.Entities {
		r.screen.DrawBox(r.project(e.Box, snap.Field), core.ColorMagenta)
	}

	line := fmt.Sprintf("entities %d  enemies %d/%d  bullets %d  wrap %+d,%+d",
		len(snap.Entities), snap.Enemies, snap.EnemyCap, snap.Bullets, snap.Wrapped.X, snap.Wrapped.Y)
	r.screen.DrawTextColored(0, r.screen.Height()-1, line, core.ColorMagenta)
}

func (r *FieldRenderer) drawHUD(snap engine.Snapshot, high int) {
	s := r.screen
	for x := range s.Width() {
		s.Set(x, 0, ' ')
	}

	left := fmt.Sprintf("SCORE %d  LEVEL %d  SHIELD %d  AMMO ", snap.Score, snap.Level, snap.Shield)
	s.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	ammoColor := core.ColorBrightWhite
	if snap.Ammo < lowAmmo {
		ammoColor = core.ColorRed
	}
	s.DrawTextColored(len(left), 0, fmt.Sprintf("%d", snap.Ammo), ammoColor)

	right := fmt.Sprintf("HI %d", high)
	if !snap.Sound {
		right += "  MUTED"
	}
	s.DrawTextColored(s.Width()-len(right), 0, right, core.ColorGray)
}

func (r *FieldRenderer) drawOverlay(snap engine.Snapshot) {
	s := r.screen
	mid := hudRows + (s.Height()-hudRows)/2 - overlayLift

	switch snap.State {
	case engine.StateTitle:
		s.DrawTextCentered(mid, "A S T E R O I D S", core.ColorBrightWhite)
		s.DrawTextCentered(mid+2, "press fire to start", core.ColorDefault)
		s.DrawTextCentered(mid+3, "h hi-scores   q quit", core.ColorGray)

	case engine.StatePaused:
		s.DrawTextCentered(mid, "PAUSED", core.ColorBrightWhite)
		s.DrawTextCentered(mid+2, "press fire to resume", core.ColorDefault)

	case engine.StateGameOver:
		s.DrawTextCentered(mid, "GAME OVER", core.ColorRed)
		s.DrawTextCentered(mid+1, fmt.Sprintf("score %d  level %d", snap.Score, snap.Level), core.ColorDefault)
		if snap.CanRestart {
			s.DrawTextCentered(mid+3, "press fire to play again", core.ColorGray)
		}
	}
}
