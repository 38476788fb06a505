package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game glues the session to ebiten: it polls input, advances the simulation
// with wall-clock delta time and draws the frame
type Game struct {
	state    *GameState
	input    *InputHandler
	renderer *Renderer
	config   Config

	// FPS tracking
	fps              float64
	fpsUpdateCounter int
	fpsUpdateTimer   float64
	showFPS          bool

	// Slow-frame profiling
	profiler        *Profiler
	lastFPSDropTime time.Time
	fpsDropCooldown time.Duration
	gameStartTime   time.Time

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a new game instance
func NewGame(config Config, state *GameState) *Game {
	return &Game{
		state:           state,
		input:           NewInputHandler(),
		renderer:        NewRenderer(config),
		config:          config,
		fps:             60.0,
		profiler:        NewProfiler(),
		fpsDropCooldown: 10 * time.Second,
		gameStartTime:   time.Now(),
		lastUpdateTime:  time.Now(),
	}
}

// Update advances the game by one frame
func (g *Game) Update() error {
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps after stalls
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showFPS = !g.showFPS
	}

	g.input.Update(g.state)
	g.state.Advance(deltaTime)
	g.trackFPS(deltaTime)

	return nil
}

// trackFPS maintains the FPS estimate over a half-second window and kicks
// off a profile capture on severe drops
func (g *Game) trackFPS(deltaTime float64) {
	g.fpsUpdateTimer += deltaTime
	g.fpsUpdateCounter++
	if g.fpsUpdateTimer < 0.5 {
		return
	}

	if g.fpsUpdateCounter > 0 {
		g.fps = float64(g.fpsUpdateCounter) / g.fpsUpdateTimer
	}

	// Skip detection right after launch while caches warm up
	timeSinceStart := time.Since(g.gameStartTime)
	if g.fps < 55.0 && timeSinceStart >= 3*time.Second && time.Since(g.lastFPSDropTime) >= g.fpsDropCooldown {
		g.lastFPSDropTime = time.Now()

		trailPoints := 0
		for _, c := range g.state.Cycles {
			trailPoints += c.Trail.Len()
		}
		reason := fmt.Sprintf("fps%.0f-trailpoints%d", g.fps, trailPoints)

		fmt.Printf("FPS drop detected (%.0f FPS). Saving performance profile...\n", g.fps)
		if err := g.profiler.CaptureProfile(reason); err != nil {
			fmt.Printf("Failed to capture profile: %v\n", err)
		}
	}

	g.fpsUpdateCounter = 0
	g.fpsUpdateTimer = 0.0
}

// Draw renders the current frame
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.renderer.Render(screen, g.state)

	if g.showFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f", g.fps), 10, g.config.ScreenHeight-20)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}
