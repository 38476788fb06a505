package game

import (
	"image/color"
	"math"
	"math/rand"
)

// Mode is the session state machine: Menu -> Playing <-> Paused -> GameOver
// -> Menu. Exactly one mode is active; transitions are explicit and live
// here, keyed on (current mode, event).
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeGameOver
)

// Outcome describes how a finished round ended
type Outcome struct {
	// Draw is set when no cycle survived
	Draw bool

	// WinnerSlot is the roster index of the survivor (meaningless for draws)
	WinnerSlot int

	// Label is the banner text for the game-over screen
	Label string
}

// Roster colors, player one cyan and player two orange
var (
	colorPlayerOne = color.NRGBA{R: 0, G: 255, B: 255, A: 255}
	colorPlayerTwo = color.NRGBA{R: 255, G: 165, B: 0, A: 255}
)

// GameState owns the cycle roster, advances the world one tick at a time and
// holds the mode state machine
type GameState struct {
	// Config is the round configuration shared by all cycles
	Config Config

	// Cycles is the roster, fixed at two for the duration of a round
	Cycles []*LightCycle

	// Explosions and Sparks are the cosmetic effect lists
	Explosions []*Explosion
	Sparks     []Spark

	// Mode is the current session mode
	Mode Mode

	// Outcome carries the winner descriptor while Mode is ModeGameOver
	Outcome Outcome

	// Solo is true for a round against the computer
	Solo bool

	// Difficulty is the AI tier selected in the menu
	Difficulty Difficulty

	// Shake is the remaining screen-shake amplitude in pixels
	Shake float64

	snap *Snapshot
	rng  *rand.Rand
}

// NewGameState creates an idle session in the menu. The rand source drives
// AI decisions and cosmetic jitter; tests pass a seeded one.
func NewGameState(config Config, rng *rand.Rand) *GameState {
	return &GameState{
		Config:     config,
		Mode:       ModeMenu,
		Difficulty: DifficultyMedium,
		snap:       NewSnapshot(config),
		rng:        rng,
	}
}

// StartRound resets all transient state and spawns exactly two cycles at
// mirrored positions near opposite edges, facing each other, with full
// energy. Only meaningful from the menu.
func (s *GameState) StartRound(solo bool) {
	if s.Mode != ModeMenu {
		return
	}
	s.clearRound()
	s.Solo = solo

	p1 := NewLightCycle(s.Config, 200, s.Config.ArenaHeight/2, DirRight, colorPlayerOne, ControllerHuman)
	p1.Controls = PlayerOneControls()

	kind := ControllerHuman
	if solo {
		kind = ControllerComputer
	}
	p2 := NewLightCycle(s.Config, s.Config.ArenaWidth-200, s.Config.ArenaHeight/2, DirLeft, colorPlayerTwo, kind)
	if solo {
		p2.Difficulty = s.Difficulty
	} else {
		p2.Controls = PlayerTwoControls()
	}

	s.Cycles = []*LightCycle{p1, p2}
	s.Mode = ModePlaying
}

// TogglePause flips between Playing and Paused; ignored in other modes
func (s *GameState) TogglePause() {
	switch s.Mode {
	case ModePlaying:
		s.Mode = ModePaused
	case ModePaused:
		s.Mode = ModePlaying
	}
}

// Cancel returns to the menu from Playing, Paused or GameOver, dropping the
// round. Ignored in the menu.
func (s *GameState) Cancel() {
	if s.Mode == ModeMenu {
		return
	}
	s.clearRound()
	s.Mode = ModeMenu
}

// CycleDifficulty steps the AI tier selection; menu only
func (s *GameState) CycleDifficulty() {
	if s.Mode != ModeMenu {
		return
	}
	s.Difficulty = s.Difficulty.Next()
}

// clearRound drops the roster and all cosmetic state
func (s *GameState) clearRound() {
	s.Cycles = nil
	s.Explosions = nil
	s.Sparks = nil
	s.Shake = 0
	s.Outcome = Outcome{}
}

// Advance runs one simulation tick while Playing: AI decisions against a
// pre-tick trail snapshot, then physics and collision against a fresh
// snapshot, then death side effects, effect housekeeping and the win check.
// Snapshotting before each pass keeps outcomes independent of roster order.
func (s *GameState) Advance(dt float64) {
	if s.Mode != ModePlaying {
		return
	}

	s.snap.Capture(s.Cycles)
	for _, c := range s.Cycles {
		UpdateAI(c, s.snap, s.rng)
	}

	s.snap.Capture(s.Cycles)
	for slot, c := range s.Cycles {
		wasAlive := c.Alive
		c.Update(dt, s.snap, slot)

		if wasAlive && !c.Alive {
			s.Explosions = append(s.Explosions, NewExplosion(c.Position, c.Color, s.rng))
			s.Shake = 20.0
		}

		// Boosting cycles shed exhaust sparks
		if c.Alive && c.Boosting && s.rng.Intn(100) < 30 {
			s.Sparks = append(s.Sparks, NewSpark(c.Position, c.Direction, c.Color, s.Config.CruiseSpeed, s.rng))
		}
	}

	s.updateEffects(dt)
	s.checkGameOver()
}

// updateEffects advances explosions, sparks and screen shake
func (s *GameState) updateEffects(dt float64) {
	explosions := s.Explosions[:0]
	for _, e := range s.Explosions {
		e.Update(dt)
		if !e.Finished() {
			explosions = append(explosions, e)
		}
	}
	s.Explosions = explosions

	sparks := s.Sparks[:0]
	for i := range s.Sparks {
		sp := s.Sparks[i]
		sp.Update(dt)
		if sp.Lifetime > 0 {
			sparks = append(sparks, sp)
		}
	}
	s.Sparks = sparks

	if s.Shake > 0 {
		s.Shake = math.Max(0, s.Shake-dt*50)
	}
}

// checkGameOver transitions to GameOver once at most one cycle survives
func (s *GameState) checkGameOver() {
	aliveCount := 0
	winnerSlot := -1
	for slot, c := range s.Cycles {
		if c.Alive {
			aliveCount++
			winnerSlot = slot
		}
	}
	if aliveCount > 1 {
		return
	}

	if aliveCount == 0 {
		s.Outcome = Outcome{Draw: true, WinnerSlot: -1, Label: "Draw!"}
	} else {
		label := "Player 1 Wins!"
		if winnerSlot == 1 {
			if s.Solo {
				label = "Computer Wins!"
			} else {
				label = "Player 2 Wins!"
			}
		}
		s.Outcome = Outcome{WinnerSlot: winnerSlot, Label: label}
	}
	s.Mode = ModeGameOver
}
