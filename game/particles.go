package game

import (
	"image/color"
	"math"
	"math/rand"
)

// Particle is a single short-lived cosmetic fragment
type Particle struct {
	Pos      Point
	Vel      Point
	Lifetime float64
	Color    color.NRGBA
}

// Explosion is the particle burst spawned where a cycle dies
type Explosion struct {
	Particles []Particle
}

// explosionParticleCount is how many fragments a death burst throws
const explosionParticleCount = 50

// NewExplosion creates a radial burst of particles in the cycle's color
func NewExplosion(pos Point, col color.NRGBA, rng *rand.Rand) *Explosion {
	particles := make([]Particle, explosionParticleCount)
	for i := range particles {
		angle := rng.Float64() * 2 * math.Pi
		speed := randRange(rng, 50, 200)
		particles[i] = Particle{
			Pos: pos,
			Vel: Point{
				X: math.Cos(angle) * speed,
				Y: math.Sin(angle) * speed,
			},
			Lifetime: randRange(rng, 0.5, 1.5),
			Color: color.NRGBA{
				R: col.R,
				G: col.G,
				B: col.B,
				A: uint8(randRange(rng, 128, 255)),
			},
		}
	}
	return &Explosion{Particles: particles}
}

// Update advances fragments and drops the expired ones
func (e *Explosion) Update(dt float64) {
	alive := e.Particles[:0]
	for i := range e.Particles {
		p := &e.Particles[i]
		p.Pos.X += p.Vel.X * dt
		p.Pos.Y += p.Vel.Y * dt
		p.Lifetime -= dt
		p.Vel.X *= 0.98
		p.Vel.Y *= 0.98
		if p.Lifetime > 0 {
			alive = append(alive, *p)
		}
	}
	e.Particles = alive
}

// Finished reports whether every fragment has expired
func (e *Explosion) Finished() bool {
	return len(e.Particles) == 0
}

// Spark is a single boost-exhaust particle trailing behind a boosting cycle
type Spark struct {
	Pos      Point
	Vel      Point
	Lifetime float64
	Color    color.NRGBA
}

// NewSpark creates an exhaust particle drifting opposite the travel direction
func NewSpark(pos Point, dir Direction, col color.NRGBA, cruiseSpeed float64, rng *rand.Rand) Spark {
	vx, vy := dir.Vector()
	return Spark{
		Pos: pos,
		Vel: Point{
			X: -vx*cruiseSpeed*0.5 + randRange(rng, -10, 10),
			Y: -vy*cruiseSpeed*0.5 + randRange(rng, -10, 10),
		},
		Lifetime: randRange(rng, 0.2, 0.5),
		Color: color.NRGBA{
			R: col.R,
			G: col.G,
			B: col.B,
			A: uint8(randRange(rng, 76, 178)),
		},
	}
}

// Update advances the spark
func (s *Spark) Update(dt float64) {
	s.Pos.X += s.Vel.X * dt
	s.Pos.Y += s.Vel.Y * dt
	s.Lifetime -= dt
	s.Vel.X *= 0.95
	s.Vel.Y *= 0.95
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
