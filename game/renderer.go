package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// gridSpacing is the pitch of the faint background grid lines
const gridSpacing = 50.0

// cycleBodyWidth and cycleBodyHeight are the cycle sprite dimensions along
// and across the travel axis
const (
	cycleBodyWidth  = 16.0
	cycleBodyHeight = 24.0
)

// Renderer draws the session: arena, trails, cycles, particles, HUD and the
// menu/pause/game-over screens
type Renderer struct {
	config Config
	face   text.Face
	view   View
}

// NewRenderer creates a renderer
func NewRenderer(config Config) *Renderer {
	return &Renderer{
		config: config,
		face:   text.NewGoXFace(bitmapfont.Face),
	}
}

// Render draws one frame of the session
func (r *Renderer) Render(screen *ebiten.Image, s *GameState) {
	switch s.Mode {
	case ModeMenu:
		r.renderMenu(screen, s)
	case ModePlaying:
		r.view.UpdateShake(s.Shake, s.rng)
		r.renderArena(screen, s, false)
		r.renderHUD(screen, s)
	case ModePaused:
		r.view.UpdateShake(0, s.rng)
		r.renderArena(screen, s, true)
		r.renderPauseOverlay(screen)
	case ModeGameOver:
		r.renderGameOver(screen, s)
	}
}

// drawText draws a string at a position with a uniform scale
func (r *Renderer) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, r.face, op)
}

// renderMenu draws the title screen with the mode and difficulty choices
func (r *Renderer) renderMenu(screen *ebiten.Image, s *GameState) {
	cx := r.config.ArenaWidth / 2

	r.drawText(screen, "LIGHT CYCLE", cx-200, 300, 4, colorPlayerOne)
	r.drawText(screen, "Press 1 for Single Player", cx-120, 420, 1, color.White)
	r.drawText(screen, "Press 2 for Two Players", cx-120, 460, 1, color.White)

	var diffColor color.Color
	switch s.Difficulty {
	case DifficultyEasy:
		diffColor = color.RGBA{100, 255, 100, 255}
	case DifficultyMedium:
		diffColor = color.RGBA{255, 255, 100, 255}
	default:
		diffColor = color.RGBA{255, 100, 100, 255}
	}
	r.drawText(screen, fmt.Sprintf("AI Difficulty: %s (Press D to change)", s.Difficulty), cx-160, 520, 1, diffColor)

	r.drawText(screen, "P1: WASD + LShift (boost) | P2: Arrows + RShift (boost)", cx-230, 600, 1, color.RGBA{128, 128, 128, 255})
}

// renderArena draws the playfield: border, grid, trails, particles and
// cycles. dimmed renders the background variant behind the pause overlay.
func (r *Renderer) renderArena(screen *ebiten.Image, s *GameState, dimmed bool) {
	borderColor := color.RGBA{0, 100, 200, 255}
	if dimmed {
		borderColor = color.RGBA{0, 50, 100, 255}
	}

	x0, y0 := r.view.ArenaToScreen(0, 0)
	vector.StrokeRect(screen, x0, y0, float32(r.config.ArenaWidth), float32(r.config.ArenaHeight), 3, borderColor, true)

	if !dimmed {
		gridColor := color.RGBA{20, 40, 60, 50}
		for x := gridSpacing; x < r.config.ArenaWidth; x += gridSpacing {
			sx, sy := r.view.ArenaToScreen(x, 0)
			vector.StrokeLine(screen, sx, sy, sx, sy+float32(r.config.ArenaHeight), 1, gridColor, true)
		}
		for y := gridSpacing; y < r.config.ArenaHeight; y += gridSpacing {
			sx, sy := r.view.ArenaToScreen(0, y)
			vector.StrokeLine(screen, sx, sy, sx+float32(r.config.ArenaWidth), sy, 1, gridColor, true)
		}
	}

	for _, c := range s.Cycles {
		r.renderTrail(screen, c, dimmed)
	}

	if dimmed {
		return
	}

	for i := range s.Sparks {
		r.renderSpark(screen, &s.Sparks[i])
	}
	for _, c := range s.Cycles {
		if c.Alive {
			r.renderCycle(screen, c)
		}
	}
	for _, e := range s.Explosions {
		r.renderExplosion(screen, e)
	}
}

// renderTrail draws one cycle's trail as layered strokes: a wide soft glow,
// then the main band, then a bright core
func (r *Renderer) renderTrail(screen *ebiten.Image, c *LightCycle, dimmed bool) {
	points := c.Trail.Points()
	if len(points) < 2 {
		return
	}

	if dimmed {
		clr := color.NRGBA{
			R: uint8(float64(c.Color.R) * 0.3),
			G: uint8(float64(c.Color.G) * 0.3),
			B: uint8(float64(c.Color.B) * 0.3),
			A: 128,
		}
		r.strokeTrail(screen, points, float32(r.config.CollisionRadius), clr)
		return
	}

	glow := color.NRGBA{
		R: uint8(float64(c.Color.R) * 0.3),
		G: uint8(float64(c.Color.G) * 0.3),
		B: uint8(float64(c.Color.B) * 0.3),
		A: 76,
	}
	core := color.NRGBA{
		R: brighten(c.Color.R),
		G: brighten(c.Color.G),
		B: brighten(c.Color.B),
		A: 255,
	}

	width := float32(r.config.CollisionRadius)
	r.strokeTrail(screen, points, width*2.5, glow)
	r.strokeTrail(screen, points, width, c.Color)
	r.strokeTrail(screen, points, width*0.5, core)
}

// strokeTrail draws the polyline through the given points at one width
func (r *Renderer) strokeTrail(screen *ebiten.Image, points []Point, width float32, clr color.Color) {
	for i := 0; i < len(points)-1; i++ {
		x0, y0 := r.view.ArenaToScreen(points[i].X, points[i].Y)
		x1, y1 := r.view.ArenaToScreen(points[i+1].X, points[i+1].Y)
		vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
	}
}

// renderCycle draws the cycle body oriented along its heading, with glow,
// outline, cockpit and headlights
func (r *Renderer) renderCycle(screen *ebiten.Image, c *LightCycle) {
	// Body dimensions swap with the travel axis
	var bw, bh float64
	switch c.Direction {
	case DirUp, DirDown:
		bw, bh = cycleBodyWidth, cycleBodyHeight
	default:
		bw, bh = cycleBodyHeight, cycleBodyWidth
	}

	cx, cy := r.view.ArenaToScreen(c.Position.X, c.Position.Y)

	if c.Boosting {
		halo := color.NRGBA{255, 204, 51, 128}
		vector.DrawFilledCircle(screen, cx, cy, float32(bw*2.5), halo, true)
	}

	glowScale := 0.4
	glowSize := 1.5
	if c.Boosting {
		glowScale = 0.6
		glowSize = 2.0
	}
	glow := color.NRGBA{
		R: uint8(float64(c.Color.R) * glowScale),
		G: uint8(float64(c.Color.G) * glowScale),
		B: uint8(float64(c.Color.B) * glowScale),
		A: 51,
	}
	vector.DrawFilledCircle(screen, cx, cy, float32(bw*glowSize), glow, true)

	bx := cx - float32(bw/2)
	by := cy - float32(bh/2)
	vector.DrawFilledRect(screen, bx, by, float32(bw), float32(bh), c.Color, true)

	outline := color.NRGBA{
		R: brighten(c.Color.R),
		G: brighten(c.Color.G),
		B: brighten(c.Color.B),
		A: 255,
	}
	vector.StrokeRect(screen, bx, by, float32(bw), float32(bh), 2, outline, true)

	// Cockpit core
	vector.DrawFilledRect(screen, cx-4, cy-4, 8, 8, color.White, true)

	// Headlights at the leading edge
	var l1x, l1y, l2x, l2y float32
	switch c.Direction {
	case DirUp:
		l1x, l1y = cx-6, cy-float32(bh/2)+4
		l2x, l2y = cx+6, l1y
	case DirDown:
		l1x, l1y = cx-6, cy+float32(bh/2)-4
		l2x, l2y = cx+6, l1y
	case DirLeft:
		l1x, l1y = cx-float32(bw/2)+4, cy-6
		l2x, l2y = l1x, cy+6
	default:
		l1x, l1y = cx+float32(bw/2)-4, cy-6
		l2x, l2y = l1x, cy+6
	}
	headlight := color.NRGBA{255, 255, 200, 255}
	vector.DrawFilledRect(screen, l1x-2, l1y-2, 4, 4, headlight, true)
	vector.DrawFilledRect(screen, l2x-2, l2y-2, 4, 4, headlight, true)
}

// renderSpark draws one boost exhaust particle, shrinking as it expires
func (r *Renderer) renderSpark(screen *ebiten.Image, sp *Spark) {
	x, y := r.view.ArenaToScreen(sp.Pos.X, sp.Pos.Y)
	vector.DrawFilledCircle(screen, x, y, float32(3*sp.Lifetime*2), sp.Color, true)
}

// renderExplosion draws a death burst, fading fragments out over their life
func (r *Renderer) renderExplosion(screen *ebiten.Image, e *Explosion) {
	for i := range e.Particles {
		p := &e.Particles[i]
		alpha := p.Lifetime / 1.5
		if alpha > 1 {
			alpha = 1
		}
		clr := color.NRGBA{
			R: p.Color.R,
			G: p.Color.G,
			B: p.Color.B,
			A: uint8(float64(p.Color.A) * alpha),
		}
		x, y := r.view.ArenaToScreen(p.Pos.X, p.Pos.Y)
		vector.DrawFilledRect(screen, x-2, y-2, 4, 4, clr, true)
	}
}

// renderHUD draws the in-round overlay: the key hints and one boost energy
// bar per human cycle
func (r *Renderer) renderHUD(screen *ebiten.Image, s *GameState) {
	r.drawText(screen, "Press P to Pause | Press ESC to Quit", 10, 10, 1, color.NRGBA{200, 200, 200, 180})

	for slot, c := range s.Cycles {
		if !c.Alive || c.Kind != ControllerHuman {
			continue
		}

		barX := 10.0
		if slot == 1 {
			barX = r.config.ArenaWidth - 210
		}
		barY := 40.0

		vector.StrokeRect(screen, float32(barX), float32(barY), 200, 20, 2, color.RGBA{50, 50, 50, 255}, true)

		var fill color.Color
		switch {
		case c.Boosting:
			fill = color.RGBA{255, 255, 100, 255}
		case c.BoostEnergy > 50:
			fill = color.RGBA{0, 255, 100, 255}
		case c.BoostEnergy > 20:
			fill = color.RGBA{255, 200, 0, 255}
		default:
			fill = color.RGBA{255, 50, 50, 255}
		}

		fillWidth := c.BoostEnergy / s.Config.MaxBoostEnergy * 196
		if fillWidth > 0 {
			vector.DrawFilledRect(screen, float32(barX+2), float32(barY+2), float32(fillWidth), 16, fill, true)
		}

		label := "P1 Boost"
		if slot == 1 {
			label = "P2 Boost"
		}
		r.drawText(screen, label, barX, barY-15, 0.8, c.Color)
	}
}

// renderPauseOverlay dims the field and draws the pause banner
func (r *Renderer) renderPauseOverlay(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(r.config.ArenaWidth), float32(r.config.ArenaHeight), color.NRGBA{0, 0, 0, 180}, false)

	cx := r.config.ArenaWidth / 2
	r.drawText(screen, "PAUSED", cx-100, 350, 3, color.White)
	r.drawText(screen, "Press P to Resume", cx-80, 450, 1, color.RGBA{200, 200, 200, 255})
	r.drawText(screen, "Press ESC to Return to Menu", cx-120, 500, 1, color.RGBA{200, 200, 200, 255})
}

// renderGameOver draws the end-of-round banner with the outcome
func (r *Renderer) renderGameOver(screen *ebiten.Image, s *GameState) {
	cx := r.config.ArenaWidth / 2
	r.drawText(screen, "GAME OVER", cx-200, 350, 3, color.RGBA{255, 0, 0, 255})
	r.drawText(screen, s.Outcome.Label, cx-100, 450, 1.5, color.RGBA{0, 255, 0, 255})
	r.drawText(screen, "Press ESC to return to menu", cx-120, 550, 1, color.White)
}

// brighten lifts a color channel by 20%, saturating at full
func brighten(v uint8) uint8 {
	b := float64(v) * 1.2
	if b > 255 {
		b = 255
	}
	return uint8(b)
}
