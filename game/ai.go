package game

import (
	"math/rand"
)

// Difficulty selects one of the three AI tiers
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// String returns a human-readable name for the difficulty
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	}
	return "Unknown"
}

// Next cycles to the following difficulty, wrapping around
func (d Difficulty) Next() Difficulty {
	switch d {
	case DifficultyEasy:
		return DifficultyMedium
	case DifficultyMedium:
		return DifficultyHard
	default:
		return DifficultyEasy
	}
}

// DifficultyConfig holds the per-tier AI tuning parameters
type DifficultyConfig struct {
	// LookAhead is how far ahead of the head hazards are probed, in pixels
	LookAhead float64

	// ReactionRadius is the trail-point distance that counts as a hazard
	ReactionRadius float64

	// TurnChance is the percent chance per tick of a spontaneous
	// perpendicular turn while no hazard is ahead
	TurnChance int

	// BoostThreshold is the minimum energy before the AI considers boosting
	BoostThreshold float64

	// BoostChance is the percent chance per tick of boosting while safe.
	// While hazard-flagged the chance is ten times higher (escape burst).
	BoostChance int
}

// GetDifficultyConfig returns the tuning parameters for a tier. Easy is
// short-sighted and jumpy; Hard sees far, reacts early and boosts often.
func GetDifficultyConfig(d Difficulty) DifficultyConfig {
	switch d {
	case DifficultyEasy:
		return DifficultyConfig{
			LookAhead:      60.0,
			ReactionRadius: 24.0,
			TurnChance:     5,
			BoostThreshold: 30.0,
			BoostChance:    1,
		}
	case DifficultyHard:
		return DifficultyConfig{
			LookAhead:      180.0,
			ReactionRadius: 64.0,
			TurnChance:     1,
			BoostThreshold: 70.0,
			BoostChance:    5,
		}
	default:
		return DifficultyConfig{
			LookAhead:      120.0,
			ReactionRadius: 40.0,
			TurnChance:     2,
			BoostThreshold: 50.0,
			BoostChance:    3,
		}
	}
}

// aiOpenStep is the stride of the open-space scoring probes used by the
// Hard tier to break ties between safe headings
const aiOpenStep = 30.0

// aiOpenProbes is how many forward strides the open-space scan covers
const aiOpenProbes = 9

// UpdateAI runs one AI decision for a computer-controlled cycle: heading
// choice and boost choice against the pre-tick trail snapshot. No-op for
// human or dead cycles.
func UpdateAI(c *LightCycle, snap *Snapshot, rng *rand.Rand) {
	if c.Kind != ControllerComputer || !c.Alive {
		return
	}
	aiDecide(c, GetDifficultyConfig(c.Difficulty), snap, rng)
}

// aiDecide is the shared decision procedure, parameterized by tier config so
// tests can pin or zero the probabilistic branches
func aiDecide(c *LightCycle, params DifficultyConfig, snap *Snapshot, rng *rand.Rand) {
	danger := c.aiHazardAhead(c.Direction, params, snap)

	if danger {
		// Enumerate the up-to-three legal headings and keep the safe ones
		var safe []Direction
		for _, dir := range Directions {
			if dir.IsOpposite(c.Direction) {
				continue
			}
			if !c.aiHazardAhead(dir, params, snap) {
				safe = append(safe, dir)
			}
		}

		if len(safe) > 0 {
			if c.Difficulty == DifficultyHard && len(safe) > 1 {
				c.Direction = c.aiMostOpen(safe)
			} else {
				c.Direction = safe[rng.Intn(len(safe))]
			}
		}
		// No safe heading: hold course and accept what comes
	} else if params.TurnChance > 0 && rng.Intn(100) < params.TurnChance {
		// Occasional random turn for unpredictability
		perp := c.Direction.Perpendicular()
		c.Direction = perp[rng.Intn(2)]
	}

	// Boost is re-decided every tick, independent of the turn decision
	if c.BoostEnergy > params.BoostThreshold {
		if danger && rng.Intn(100) < params.BoostChance*10 {
			c.Boosting = true
		} else if !danger && rng.Intn(100) < params.BoostChance {
			c.Boosting = true
		} else {
			c.Boosting = false
		}
	} else {
		c.Boosting = false
	}
}

// aiHazardAhead projects the head forward along dir by the tier's look-ahead
// and reports whether the projected point is hugging a wall or within the
// reaction radius of any stored trail point, own trail included
func (c *LightCycle) aiHazardAhead(dir Direction, params DifficultyConfig, snap *Snapshot) bool {
	vx, vy := dir.Vector()
	px := c.Position.X + vx*params.LookAhead
	py := c.Position.Y + vy*params.LookAhead

	margin := c.config.WallMargin
	if px < margin || px >= c.config.ArenaWidth-margin ||
		py < margin || py >= c.config.ArenaHeight-margin {
		return true
	}
	return snap.NearAnyTrail(px, py, params.ReactionRadius)
}

// aiMostOpen scores each safe heading by how far it can travel in fixed
// strides before leaving the arena and returns the most open one; ties keep
// the first-found
func (c *LightCycle) aiMostOpen(safe []Direction) Direction {
	best := safe[0]
	maxSpace := 0.0
	for _, dir := range safe {
		vx, vy := dir.Vector()
		space := 0.0
		for i := 1; i <= aiOpenProbes; i++ {
			px := c.Position.X + vx*float64(i)*aiOpenStep
			py := c.Position.Y + vy*float64(i)*aiOpenStep
			if !c.config.InBounds(px, py) {
				break
			}
			space += aiOpenStep
		}
		if space > maxSpace {
			maxSpace = space
			best = dir
		}
	}
	return best
}
