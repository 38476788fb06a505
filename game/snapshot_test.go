package game

import "testing"

func snapshotCycle(config Config, x, y float64, dir Direction) *LightCycle {
	return NewLightCycle(config, x, y, dir, colorPlayerOne, ControllerHuman)
}

func TestSnapshotFindsTrailPointsWithinRadius(t *testing.T) {
	config := DefaultConfig()
	a := snapshotCycle(config, 100, 100, DirRight)
	b := snapshotCycle(config, 500, 500, DirLeft)
	b.Trail.Push(Point{X: 300, Y: 300})

	snap := NewSnapshot(config)
	snap.Capture([]*LightCycle{a, b})

	if !snap.NearAnyTrail(303, 300, 8) {
		t.Fatal("point 3px from a stored trail point not found within radius 8")
	}
	if snap.NearAnyTrail(320, 300, 8) {
		t.Fatal("point 20px away reported within radius 8")
	}
}

func TestSnapshotSelfGraceExemptsNewestOwnPoints(t *testing.T) {
	config := DefaultConfig()
	c := snapshotCycle(config, 100, 100, DirRight)
	other := snapshotCycle(config, 900, 900, DirLeft)
	for i := 0; i < 20; i++ {
		c.Trail.Push(Point{X: 100 + float64(i), Y: 100})
	}

	snap := NewSnapshot(config)
	snap.Capture([]*LightCycle{c, other})

	// Head sits on its own newest points; the grace window must exempt them
	if snap.HitsTrail(119, 100, config.CollisionRadius, 0, config.SelfTrailGrace) {
		t.Fatal("newest own trail points not exempt from self collision")
	}
	// Older own points still kill
	if !snap.HitsTrail(100, 100, config.CollisionRadius, 0, config.SelfTrailGrace) {
		t.Fatal("old own trail points should still collide")
	}
	// Another cycle gets no exemption anywhere
	if !snap.HitsTrail(119, 100, config.CollisionRadius, 1, config.SelfTrailGrace) {
		t.Fatal("other cycle should collide with the trail tip")
	}
}

func TestSnapshotIsFrozenAtCaptureTime(t *testing.T) {
	config := DefaultConfig()
	c := snapshotCycle(config, 100, 100, DirRight)
	c.Trail.Push(Point{X: 100, Y: 100})

	snap := NewSnapshot(config)
	snap.Capture([]*LightCycle{c})

	// Points pushed after capture must be invisible to snapshot consumers
	c.Trail.Push(Point{X: 700, Y: 700})
	if snap.NearAnyTrail(700, 700, 8) {
		t.Fatal("snapshot observed a point pushed after capture")
	}
	if !snap.NearAnyTrail(100, 100, 8) {
		t.Fatal("snapshot lost a point stored before capture")
	}
}

func TestSnapshotHoldsOutOfBoundsPoints(t *testing.T) {
	config := DefaultConfig()
	c := snapshotCycle(config, 100, 100, DirRight)
	// The samples laid down on a dying tick can sit slightly past the wall
	c.Trail.Push(Point{X: config.ArenaWidth + 4, Y: 500})

	snap := NewSnapshot(config)
	snap.Capture([]*LightCycle{c})

	if !snap.NearAnyTrail(config.ArenaWidth-1, 500, 8) {
		t.Fatal("out-of-bounds trail point not reachable from inside the arena")
	}
}
