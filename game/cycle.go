package game

import (
	"image/color"
	"math"
)

// ControllerKind identifies who steers a cycle
type ControllerKind int

const (
	ControllerHuman ControllerKind = iota
	ControllerComputer
)

// LightCycle is one vehicle in the arena: a continuously moving head that
// leaves a persistent trail behind it
type LightCycle struct {
	// Position of the head in arena coordinates
	Position Point

	// Direction is the current heading; it changes only between ticks,
	// never mid-integration
	Direction Direction

	// Trail holds the points the cycle has occupied, oldest first
	Trail *Trail

	// Color identity used by the renderer
	Color color.NRGBA

	// Alive flips to false on collision and never back
	Alive bool

	// Kind selects the control path (keyboard vs AI)
	Kind ControllerKind

	// Controls binds keyboard keys for human cycles
	Controls ControlScheme

	// Difficulty selects the AI tier for computer cycles
	Difficulty Difficulty

	// BoostEnergy is the boost resource, clamped to [0, MaxBoostEnergy]
	BoostEnergy float64

	// Boosting selects the boosted speed for the current tick
	Boosting bool

	config Config
}

// NewLightCycle creates a cycle at the given position with full boost energy
func NewLightCycle(config Config, x, y float64, dir Direction, col color.NRGBA, kind ControllerKind) *LightCycle {
	return &LightCycle{
		Position:    Point{X: x, Y: y},
		Direction:   dir,
		Trail:       NewTrail(config.TrailMaxLength),
		Color:       col,
		Alive:       true,
		Kind:        kind,
		BoostEnergy: config.MaxBoostEnergy,
		config:      config,
	}
}

// Update advances the cycle by one tick: boost energy bookkeeping, position
// integration, trail densification, then wall and trail collision against
// the pre-tick snapshot. Calling Update on a dead cycle is a no-op.
//
// slot is the cycle's roster index, used to exempt the newest points of its
// own trail from the collision test.
func (c *LightCycle) Update(dt float64, snap *Snapshot, slot int) {
	if !c.Alive {
		return
	}

	// Drain while boosting, regenerate otherwise, clamped at both ends.
	// Hitting empty turns the boost off until re-engaged.
	if c.Boosting && c.BoostEnergy > 0 {
		c.BoostEnergy = math.Max(0, c.BoostEnergy-c.config.BoostDrainRate*dt)
		if c.BoostEnergy == 0 {
			c.Boosting = false
		}
	} else if !c.Boosting && c.BoostEnergy < c.config.MaxBoostEnergy {
		c.BoostEnergy = math.Min(c.config.MaxBoostEnergy, c.BoostEnergy+c.config.BoostRechargeRate*dt)
	}

	speed := c.config.CruiseSpeed
	if c.Boosting {
		speed = c.config.BoostSpeed
	}

	vx, vy := c.Direction.Vector()
	old := c.Position
	c.Position.X += vx * speed * dt
	c.Position.Y += vy * speed * dt

	// Sample the traveled segment densely enough that no gap in the trail
	// is wide enough for a head to slip through, even at boost speed
	dist := math.Hypot(c.Position.X-old.X, c.Position.Y-old.Y)
	steps := int(math.Ceil(dist / c.config.TrailSampleStep))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.Trail.Push(Point{
			X: old.X + (c.Position.X-old.X)*t,
			Y: old.Y + (c.Position.Y-old.Y)*t,
		})
	}

	// Wall check wins over trail check; the tick that exits the arena is
	// the tick the cycle dies
	if !c.config.InBounds(c.Position.X, c.Position.Y) {
		c.Alive = false
		return
	}

	if snap.HitsTrail(c.Position.X, c.Position.Y, c.config.CollisionRadius, slot, c.config.SelfTrailGrace) {
		c.Alive = false
	}
}

// HandleDirection applies a directional trigger press to a human cycle.
// Requests for the exact opposite of the current heading are ignored.
func (c *LightCycle) HandleDirection(dir Direction) {
	if !c.Alive || c.Kind != ControllerHuman {
		return
	}
	if !dir.IsOpposite(c.Direction) {
		c.Direction = dir
	}
}

// SetBoosting applies the boost level trigger to a human cycle. Engaging
// requires energy above the minimum threshold; releasing always disengages.
func (c *LightCycle) SetBoosting(on bool) {
	if !c.Alive || c.Kind != ControllerHuman {
		return
	}
	c.Boosting = on && c.BoostEnergy > c.config.BoostMinEnergy
}
