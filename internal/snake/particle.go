package snake

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/neon-snake/internal/core"
)

// Particle speed range, in particle-space units per frame.
const (
	particleMinSpeed = 1.0
	particleMaxSpeed = 4.0
)

// Particle is one short-lived visual fragment.
// Coordinates are in particle space: cellSize units per grid cell.
type Particle struct {
	X, Y     float64
	VX, VY   float64
	Color    core.Color
	Size     float64
	Age      int
	Lifetime int
}

// Opacity returns the linear fade 1 - age/lifetime.
func (p Particle) Opacity() float64 {
	if p.Lifetime <= 0 {
		return 0
	}
	return core.ClampF(1-float64(p.Age)/float64(p.Lifetime), 0, 1)
}

// Alive reports whether the particle is still drawn.
func (p Particle) Alive() bool {
	return p.Age < p.Lifetime
}

// ParticleSystem owns a set of live particles.
type ParticleSystem struct {
	rng       *rand.Rand
	particles []Particle
}

// NewParticleSystem creates an empty system drawing randomness from rng.
func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{rng: rng}
}

// Spawn adds one particle at (x, y) moving at a random speed in [1,4]
// towards a random angle in [0, 2π).
func (ps *ParticleSystem) Spawn(x, y float64, color core.Color, size float64, lifetime int) Particle {
	speed := particleMinSpeed + ps.rng.Float64()*(particleMaxSpeed-particleMinSpeed)
	angle := ps.rng.Float64() * 2 * math.Pi
	p := Particle{
		X:        x,
		Y:        y,
		VX:       math.Cos(angle) * speed,
		VY:       math.Sin(angle) * speed,
		Color:    color,
		Size:     size,
		Lifetime: lifetime,
	}
	if lifetime > 0 {
		ps.particles = append(ps.particles, p)
	}
	return p
}

// Burst spawns count particles at (x, y), each colored uniformly from palette.
func (ps *ParticleSystem) Burst(x, y float64, count int, palette []core.Color, size float64, lifetime int) {
	if len(palette) == 0 {
		return
	}
	for i := 0; i < count; i++ {
		color := palette[ps.rng.Intn(len(palette))]
		ps.Spawn(x, y, color, size, lifetime)
	}
}

// Advance moves every particle one frame and drops those that reached their lifetime.
func (ps *ParticleSystem) Advance() {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.X += p.VX
		p.Y += p.VY
		p.Age++
		if p.Alive() {
			live = append(live, p)
		}
	}
	ps.particles = live
}

// Particles returns a copy of the live particles.
func (ps *ParticleSystem) Particles() []Particle {
	out := make([]Particle, len(ps.particles))
	copy(out, ps.particles)
	return out
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Clear removes every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
