package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// ControlScheme binds the four directional triggers and the boost trigger
// of a human cycle to keyboard keys
type ControlScheme struct {
	Up, Down, Left, Right ebiten.Key
	Boost                 ebiten.Key
}

// PlayerOneControls returns the WASD + left shift binding
func PlayerOneControls() ControlScheme {
	return ControlScheme{
		Up:    ebiten.KeyW,
		Down:  ebiten.KeyS,
		Left:  ebiten.KeyA,
		Right: ebiten.KeyD,
		Boost: ebiten.KeyShiftLeft,
	}
}

// PlayerTwoControls returns the arrow keys + right shift binding
func PlayerTwoControls() ControlScheme {
	return ControlScheme{
		Up:    ebiten.KeyArrowUp,
		Down:  ebiten.KeyArrowDown,
		Left:  ebiten.KeyArrowLeft,
		Right: ebiten.KeyArrowRight,
		Boost: ebiten.KeyShiftRight,
	}
}

// InputHandler polls the keyboard once per frame and translates key state
// into session and cycle events. Which keys mean anything depends on the
// current mode; everything else is ignored.
type InputHandler struct{}

// NewInputHandler creates an input handler
func NewInputHandler() *InputHandler {
	return &InputHandler{}
}

// Update dispatches this frame's input to the session
func (h *InputHandler) Update(s *GameState) {
	switch s.Mode {
	case ModeMenu:
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
			s.StartRound(true)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
			s.StartRound(false)
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyD) {
			s.CycleDifficulty()
		}

	case ModePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			s.TogglePause()
			return
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.Cancel()
			return
		}
		for _, c := range s.Cycles {
			h.updateCycle(c)
		}

	case ModePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			s.TogglePause()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.Cancel()
		}

	case ModeGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			s.Cancel()
		}
	}
}

// updateCycle applies one frame of keyboard state to a human cycle:
// direction keys are edge-triggered on press, boost is a level trigger
func (h *InputHandler) updateCycle(c *LightCycle) {
	if c.Kind != ControllerHuman {
		return
	}

	if inpututil.IsKeyJustPressed(c.Controls.Up) {
		c.HandleDirection(DirUp)
	}
	if inpututil.IsKeyJustPressed(c.Controls.Down) {
		c.HandleDirection(DirDown)
	}
	if inpututil.IsKeyJustPressed(c.Controls.Left) {
		c.HandleDirection(DirLeft)
	}
	if inpututil.IsKeyJustPressed(c.Controls.Right) {
		c.HandleDirection(DirRight)
	}

	c.SetBoosting(ebiten.IsKeyPressed(c.Controls.Boost))
}
