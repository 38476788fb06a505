package game

import (
	"math"
	"testing"
)

// tickCycle advances a lone cycle the way the orchestrator does: a fresh
// snapshot before every physics step
func tickCycle(c *LightCycle, snap *Snapshot, dt float64, ticks int) {
	for i := 0; i < ticks; i++ {
		snap.Capture([]*LightCycle{c})
		c.Update(dt, snap, 0)
	}
}

func TestBoostDrainsToZeroAndAutoDisables(t *testing.T) {
	config := DefaultConfig()
	c := NewLightCycle(config, 50, 500, DirRight, colorPlayerOne, ControllerHuman)
	c.Boosting = true
	snap := NewSnapshot(config)

	// dt chosen so drain per tick is exact in binary: 40 * (1/64) = 0.625
	dt := 1.0 / 64
	ticksToEmpty := int(config.MaxBoostEnergy / (config.BoostDrainRate * dt))

	for i := 0; i < ticksToEmpty; i++ {
		if !c.Boosting {
			t.Fatalf("boost disengaged early at tick %d with energy %f", i, c.BoostEnergy)
		}
		tickCycle(c, snap, dt, 1)
		if c.BoostEnergy < 0 || c.BoostEnergy > config.MaxBoostEnergy {
			t.Fatalf("energy %f out of [0, %f]", c.BoostEnergy, config.MaxBoostEnergy)
		}
	}

	if c.BoostEnergy != 0 {
		t.Fatalf("energy after draining = %f, want exactly 0", c.BoostEnergy)
	}
	if c.Boosting {
		t.Fatal("boost still engaged at zero energy")
	}
	if !c.Alive {
		t.Fatal("cycle died in open space while draining")
	}
}

func TestEnergyRegeneratesAndClampsAtMax(t *testing.T) {
	config := DefaultConfig()
	c := NewLightCycle(config, 50, 500, DirRight, colorPlayerOne, ControllerHuman)
	c.BoostEnergy = 50
	snap := NewSnapshot(config)

	dt := 1.0 / 60
	prev := c.BoostEnergy
	tickCycle(c, snap, dt, 1)
	if c.BoostEnergy <= prev {
		t.Fatalf("energy did not regenerate: %f -> %f", prev, c.BoostEnergy)
	}

	// Long enough to overshoot the cap many times over
	tickCycle(c, snap, dt, 600)
	if c.BoostEnergy != config.MaxBoostEnergy {
		t.Fatalf("energy = %f, want clamp at %f", c.BoostEnergy, config.MaxBoostEnergy)
	}
}

func TestWallExitKillsSameTick(t *testing.T) {
	config := DefaultConfig()
	c := NewLightCycle(config, config.ArenaWidth-2, 500, DirRight, colorPlayerOne, ControllerHuman)
	snap := NewSnapshot(config)

	tickCycle(c, snap, 1.0/60, 1)

	if c.Alive {
		t.Fatalf("cycle alive at x=%f beyond arena width %f", c.Position.X, config.ArenaWidth)
	}
	if config.InBounds(c.Position.X, c.Position.Y) {
		t.Fatalf("dead-by-wall cycle position %v corrected back in bounds", c.Position)
	}
}

func TestDeadCycleIsFrozen(t *testing.T) {
	config := DefaultConfig()
	c := NewLightCycle(config, config.ArenaWidth-2, 500, DirRight, colorPlayerOne, ControllerHuman)
	snap := NewSnapshot(config)
	tickCycle(c, snap, 1.0/60, 1)
	if c.Alive {
		t.Fatal("setup: cycle should be dead")
	}

	pos := c.Position
	trailLen := c.Trail.Len()
	energy := c.BoostEnergy

	tickCycle(c, snap, 1.0/60, 10)

	if c.Position != pos {
		t.Fatalf("dead cycle moved: %v -> %v", pos, c.Position)
	}
	if c.Trail.Len() != trailLen {
		t.Fatalf("dead cycle trail grew: %d -> %d", trailLen, c.Trail.Len())
	}
	if c.BoostEnergy != energy {
		t.Fatalf("dead cycle energy changed: %f -> %f", energy, c.BoostEnergy)
	}
}

func TestTrailDensificationLeavesNoGaps(t *testing.T) {
	config := DefaultConfig()
	c := NewLightCycle(config, 100, 500, DirRight, colorPlayerOne, ControllerHuman)
	c.Boosting = true // worst case: boost speed
	snap := NewSnapshot(config)

	tickCycle(c, snap, 1.0/60, 20)

	points := c.Trail.Points()
	if len(points) < 2 {
		t.Fatalf("trail too short after 20 ticks: %d points", len(points))
	}
	for i := 1; i < len(points); i++ {
		gap := math.Hypot(points[i].X-points[i-1].X, points[i].Y-points[i-1].Y)
		if gap > config.TrailSampleStep+1e-9 {
			t.Fatalf("gap of %f between trail points %d and %d exceeds sample step %f",
				gap, i-1, i, config.TrailSampleStep)
		}
	}
}

func TestHandleDirectionRejectsReversal(t *testing.T) {
	config := DefaultConfig()
	c := NewLightCycle(config, 500, 500, DirRight, colorPlayerOne, ControllerHuman)

	c.HandleDirection(DirLeft)
	if c.Direction != DirRight {
		t.Fatalf("reversal accepted: heading %v", c.Direction)
	}

	c.HandleDirection(DirUp)
	if c.Direction != DirUp {
		t.Fatalf("legal turn rejected: heading %v", c.Direction)
	}

	// Now Up; Down is the forbidden reversal
	c.HandleDirection(DirDown)
	if c.Direction != DirUp {
		t.Fatalf("reversal accepted after turn: heading %v", c.Direction)
	}
}

func TestHandleDirectionIgnoredWhenDeadOrComputer(t *testing.T) {
	config := DefaultConfig()

	dead := NewLightCycle(config, 500, 500, DirRight, colorPlayerOne, ControllerHuman)
	dead.Alive = false
	dead.HandleDirection(DirUp)
	if dead.Direction != DirRight {
		t.Fatalf("dead cycle accepted input: heading %v", dead.Direction)
	}

	ai := NewLightCycle(config, 500, 500, DirRight, colorPlayerTwo, ControllerComputer)
	ai.HandleDirection(DirUp)
	if ai.Direction != DirRight {
		t.Fatalf("computer cycle accepted human input: heading %v", ai.Direction)
	}
}

func TestSetBoostingRequiresMinimumEnergy(t *testing.T) {
	config := DefaultConfig()
	c := NewLightCycle(config, 500, 500, DirRight, colorPlayerOne, ControllerHuman)

	c.BoostEnergy = config.BoostMinEnergy - 1
	c.SetBoosting(true)
	if c.Boosting {
		t.Fatal("boost engaged below the minimum energy threshold")
	}

	c.BoostEnergy = config.MaxBoostEnergy
	c.SetBoosting(true)
	if !c.Boosting {
		t.Fatal("boost refused with full energy")
	}

	c.SetBoosting(false)
	if c.Boosting {
		t.Fatal("boost stayed engaged after release")
	}
}

func TestNoSelfKillRightAfterTurn(t *testing.T) {
	config := DefaultConfig()
	c := NewLightCycle(config, 500, 500, DirRight, colorPlayerOne, ControllerHuman)
	snap := NewSnapshot(config)

	// Build up some trail, then turn hard
	tickCycle(c, snap, 1.0/60, 30)
	c.HandleDirection(DirUp)
	tickCycle(c, snap, 1.0/60, 10)

	if !c.Alive {
		t.Fatal("cycle self-killed on its own fresh trail right after a turn")
	}

	// A second immediate turn is the tightest case
	c.HandleDirection(DirLeft)
	tickCycle(c, snap, 1.0/60, 10)
	if !c.Alive {
		t.Fatal("cycle self-killed after a double turn")
	}
}

func TestRunningIntoOtherTrailKills(t *testing.T) {
	config := DefaultConfig()
	c := NewLightCycle(config, 500, 500, DirRight, colorPlayerOne, ControllerHuman)
	other := NewLightCycle(config, 900, 900, DirLeft, colorPlayerTwo, ControllerHuman)

	// A vertical wall of trail points dead ahead
	for y := 480.0; y <= 520; y += 2 {
		other.Trail.Push(Point{X: 530, Y: y})
	}

	snap := NewSnapshot(config)
	for i := 0; i < 20 && c.Alive; i++ {
		snap.Capture([]*LightCycle{c, other})
		c.Update(1.0/60, snap, 0)
	}

	if c.Alive {
		t.Fatal("cycle drove through another trail unharmed")
	}
}
