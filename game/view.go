package game

import (
	"math/rand"
)

// View maps arena coordinates to screen coordinates. The arena and window
// share dimensions, so the only transform is the screen-shake jitter applied
// while a collision shake is active.
type View struct {
	OffsetX, OffsetY float64
}

// UpdateShake re-rolls the jitter offset for this frame from the remaining
// shake amplitude. Zero amplitude pins the view.
func (v *View) UpdateShake(amplitude float64, rng *rand.Rand) {
	if amplitude <= 0 {
		v.OffsetX = 0
		v.OffsetY = 0
		return
	}
	v.OffsetX = randRange(rng, -amplitude, amplitude)
	v.OffsetY = randRange(rng, -amplitude, amplitude)
}

// ArenaToScreen converts arena coordinates to screen coordinates
func (v *View) ArenaToScreen(x, y float64) (float32, float32) {
	return float32(x + v.OffsetX), float32(y + v.OffsetY)
}
