package game

// Point is a position in arena coordinates
type Point struct {
	X, Y float64
}

// Trail is the bounded sequence of points a cycle has occupied. Points are
// appended at the tail every tick; once the retained length hits the cap the
// oldest points are evicted from the head. Backed by a ring buffer so both
// ends are O(1).
type Trail struct {
	points []Point
	head   int
	count  int

	// appended counts every point ever pushed, including evicted ones.
	// Collision checks use it to identify the newest points of a cycle's
	// own trail, which are exempt from self-collision.
	appended int
}

// NewTrail creates an empty trail with the given retained-length cap
func NewTrail(maxLength int) *Trail {
	return &Trail{
		points: make([]Point, maxLength),
	}
}

// Push appends a point at the tail, evicting from the head when full
func (t *Trail) Push(p Point) {
	if t.count == len(t.points) {
		// Overwrite the oldest slot
		t.points[t.head] = p
		t.head = (t.head + 1) % len(t.points)
	} else {
		t.points[(t.head+t.count)%len(t.points)] = p
		t.count++
	}
	t.appended++
}

// Len returns the number of retained points
func (t *Trail) Len() int {
	return t.count
}

// At returns the i-th retained point, oldest first
func (t *Trail) At(i int) Point {
	return t.points[(t.head+i)%len(t.points)]
}

// SeqAt returns the append sequence number of the i-th retained point.
// Sequence numbers are 1-based and monotonically increasing; the newest
// retained point has sequence Appended().
func (t *Trail) SeqAt(i int) int {
	return t.appended - t.count + i + 1
}

// Appended returns the total number of points ever pushed
func (t *Trail) Appended() int {
	return t.appended
}

// Points returns the retained points in order, oldest first. The slice is a
// copy and stays valid after further pushes.
func (t *Trail) Points() []Point {
	out := make([]Point, t.count)
	for i := 0; i < t.count; i++ {
		out[i] = t.At(i)
	}
	return out
}

// Clear drops all retained points and resets the append counter
func (t *Trail) Clear() {
	t.head = 0
	t.count = 0
	t.appended = 0
}
