package game

// Direction is one of the four axis-aligned headings a cycle can travel
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	}
	return "Unknown"
}

// Vector returns the unit velocity vector for the direction.
// Y grows downward, matching the screen coordinate convention.
func (d Direction) Vector() (float64, float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// IsOpposite reports whether other is the exact reverse of this direction.
// A cycle can never be commanded to its opposite in one step: reversal would
// drive the head straight through its own freshest trail.
func (d Direction) IsOpposite(other Direction) bool {
	switch {
	case d == DirUp && other == DirDown:
		return true
	case d == DirDown && other == DirUp:
		return true
	case d == DirLeft && other == DirRight:
		return true
	case d == DirRight && other == DirLeft:
		return true
	}
	return false
}

// Perpendicular returns the two headings at right angles to this one
func (d Direction) Perpendicular() [2]Direction {
	switch d {
	case DirUp, DirDown:
		return [2]Direction{DirLeft, DirRight}
	default:
		return [2]Direction{DirUp, DirDown}
	}
}

// Directions lists all four headings in a fixed order
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}
