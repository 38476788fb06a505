package game

// Config holds game configuration constants
type Config struct {
	// ArenaWidth is the playfield width in pixels
	ArenaWidth float64

	// ArenaHeight is the playfield height in pixels
	ArenaHeight float64

	// CruiseSpeed is the normal cycle speed in pixels per second
	CruiseSpeed float64

	// BoostSpeed is the boosted cycle speed in pixels per second
	BoostSpeed float64

	// TrailMaxLength is the maximum number of retained trail points per cycle
	TrailMaxLength int

	// TrailSampleStep is the spacing between interpolated trail samples in pixels
	TrailSampleStep float64

	// CollisionRadius is the kill distance between a cycle head and a trail point
	CollisionRadius float64

	// SelfTrailGrace is how many of a cycle's newest trail points are exempt
	// from its own collision check (the head always sits inside this suffix
	// right after a turn)
	SelfTrailGrace int

	// MaxBoostEnergy is the boost energy capacity
	MaxBoostEnergy float64

	// BoostDrainRate is energy drained per second while boosting
	BoostDrainRate float64

	// BoostRechargeRate is energy regained per second while not boosting
	BoostRechargeRate float64

	// BoostMinEnergy is the minimum energy needed to engage boost manually
	BoostMinEnergy float64

	// WallMargin is the safety margin from arena edges used by AI probes
	WallMargin float64

	// GridCellSize is the size of each trail-index cell in pixels
	GridCellSize float64

	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ArenaWidth:        1600.0,
		ArenaHeight:       1000.0,
		CruiseSpeed:       180.0, // 3 px per tick at 60 Hz
		BoostSpeed:        360.0,
		TrailMaxLength:    15000,
		TrailSampleStep:   2.0,
		CollisionRadius:   8.0,
		SelfTrailGrace:    10,
		MaxBoostEnergy:    100.0,
		BoostDrainRate:    40.0,
		BoostRechargeRate: 15.0,
		BoostMinEnergy:    10.0,
		WallMargin:        10.0,
		GridCellSize:      64.0,
		ScreenWidth:       1600,
		ScreenHeight:      1000,
	}
}

// CellCountX returns the number of trail-index cells in the X direction
func (c Config) CellCountX() int {
	return int(c.ArenaWidth/c.GridCellSize) + 1
}

// CellCountY returns the number of trail-index cells in the Y direction
func (c Config) CellCountY() int {
	return int(c.ArenaHeight/c.GridCellSize) + 1
}

// InBounds reports whether a point is inside the arena rectangle.
// The low edges are inclusive, the high edges exclusive.
func (c Config) InBounds(x, y float64) bool {
	return x >= 0 && x < c.ArenaWidth && y >= 0 && y < c.ArenaHeight
}
