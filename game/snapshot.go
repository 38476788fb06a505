package game

// trailPoint is one stored trail sample with its owning roster slot and
// append sequence number
type trailPoint struct {
	X, Y  float64
	owner int
	seq   int
}

// Snapshot is a read-only copy of every cycle's trail, bucketed into a
// spatial grid for radius queries. One snapshot is captured before the AI
// pass and one before the physics pass, so every consumer in a pass sees the
// same pre-pass world no matter the roster iteration order.
//
// The struct is reused across captures; cell storage keeps its capacity.
type Snapshot struct {
	config Config
	cells  [][]trailPoint

	// appended[slot] is the owning trail's total append count at capture
	// time, used to identify the newest points for the self-collision
	// exemption
	appended []int
}

// NewSnapshot creates an empty snapshot with a preallocated cell grid
func NewSnapshot(config Config) *Snapshot {
	cellCount := config.CellCountX() * config.CellCountY()
	cells := make([][]trailPoint, cellCount)
	for i := range cells {
		cells[i] = make([]trailPoint, 0, 64)
	}
	return &Snapshot{
		config: config,
		cells:  cells,
	}
}

// cellIndex converts arena coordinates to a cell slot, clamping out-of-range
// positions to the border cells. Trail points can sit slightly outside the
// arena (the samples laid down on a cycle's dying tick), and those still
// belong to edge cells that cover them.
func (s *Snapshot) cellIndex(x, y float64) int {
	cx := int(x / s.config.GridCellSize)
	cy := int(y / s.config.GridCellSize)
	cx = clampInt(cx, 0, s.config.CellCountX()-1)
	cy = clampInt(cy, 0, s.config.CellCountY()-1)
	return cy*s.config.CellCountX() + cx
}

// Capture refills the snapshot from the current trails of all cycles
func (s *Snapshot) Capture(cycles []*LightCycle) {
	for i := range s.cells {
		s.cells[i] = s.cells[i][:0]
	}
	if cap(s.appended) < len(cycles) {
		s.appended = make([]int, len(cycles))
	}
	s.appended = s.appended[:len(cycles)]

	for slot, cycle := range cycles {
		trail := cycle.Trail
		s.appended[slot] = trail.Appended()
		for i := 0; i < trail.Len(); i++ {
			p := trail.At(i)
			idx := s.cellIndex(p.X, p.Y)
			s.cells[idx] = append(s.cells[idx], trailPoint{
				X:     p.X,
				Y:     p.Y,
				owner: slot,
				seq:   trail.SeqAt(i),
			})
		}
	}
}

// forEachNear visits every stored point within radius of (x, y), sweeping
// the cell range that covers the query circle. Returns true as soon as
// visit does.
func (s *Snapshot) forEachNear(x, y, radius float64, visit func(trailPoint) bool) bool {
	minX := clampInt(int((x-radius)/s.config.GridCellSize), 0, s.config.CellCountX()-1)
	maxX := clampInt(int((x+radius)/s.config.GridCellSize), 0, s.config.CellCountX()-1)
	minY := clampInt(int((y-radius)/s.config.GridCellSize), 0, s.config.CellCountY()-1)
	maxY := clampInt(int((y+radius)/s.config.GridCellSize), 0, s.config.CellCountY()-1)

	radiusSq := radius * radius
	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			cell := s.cells[cy*s.config.CellCountX()+cx]
			for _, p := range cell {
				dx := p.X - x
				dy := p.Y - y
				if dx*dx+dy*dy < radiusSq {
					if visit(p) {
						return true
					}
				}
			}
		}
	}
	return false
}

// HitsTrail reports whether (x, y) is within radius of any stored trail
// point, exempting the newest grace points of the owner's own trail
func (s *Snapshot) HitsTrail(x, y, radius float64, owner, grace int) bool {
	return s.forEachNear(x, y, radius, func(p trailPoint) bool {
		if p.owner == owner && p.seq > s.appended[owner]-grace {
			return false
		}
		return true
	})
}

// NearAnyTrail reports whether (x, y) is within radius of any stored trail
// point, own trail included. Used by AI hazard probes, which treat the
// probing cycle's own trail as an obstacle like any other.
func (s *Snapshot) NearAnyTrail(x, y, radius float64) bool {
	return s.forEachNear(x, y, radius, func(trailPoint) bool {
		return true
	})
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
