package snake

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/neon-snake/internal/core"
)

func TestParticlePruning(t *testing.T) {
	const lifetime = 4
	ps := NewParticleSystem(rand.New(rand.NewSource(1)))
	ps.Spawn(10, 10, core.ColorRed, 2, lifetime)

	// Visible on ticks 0..L-1
	for tick := 0; tick < lifetime; tick++ {
		if ps.Len() != 1 {
			t.Fatalf("tick %d: expected particle to be live, got %d", tick, ps.Len())
		}
		if got := ps.Particles()[0].Age; got != tick {
			t.Errorf("tick %d: age = %d", tick, got)
		}
		ps.Advance()
	}

	// Gone from tick L onwards
	if ps.Len() != 0 {
		t.Errorf("expected particle pruned at age %d, got %d live", lifetime, ps.Len())
	}
	ps.Advance()
	if ps.Len() != 0 {
		t.Errorf("pruned particle came back")
	}
}

func TestParticleSpawnVelocity(t *testing.T) {
	ps := NewParticleSystem(rand.New(rand.NewSource(7)))
	for i := 0; i < 500; i++ {
		p := ps.Spawn(0, 0, core.ColorWhite, 1, 10)
		speed := math.Hypot(p.VX, p.VY)
		if speed < particleMinSpeed-1e-9 || speed > particleMaxSpeed+1e-9 {
			t.Fatalf("speed %.3f outside [1,4]", speed)
		}
	}
	if ps.Len() != 500 {
		t.Errorf("expected 500 live particles, got %d", ps.Len())
	}
}

func TestParticleAdvanceMovesAndFades(t *testing.T) {
	ps := NewParticleSystem(rand.New(rand.NewSource(3)))
	p := ps.Spawn(5, 5, core.ColorWhite, 1, 4)
	if p.Opacity() != 1 {
		t.Errorf("fresh particle opacity = %v, expected 1", p.Opacity())
	}

	ps.Advance()
	moved := ps.Particles()[0]
	if moved.X != p.X+p.VX || moved.Y != p.Y+p.VY {
		t.Errorf("position = (%v, %v), expected (%v, %v)", moved.X, moved.Y, p.X+p.VX, p.Y+p.VY)
	}
	if moved.Opacity() != 0.75 {
		t.Errorf("opacity after one frame = %v, expected 0.75", moved.Opacity())
	}
}

func TestParticleBurstPalette(t *testing.T) {
	ps := NewParticleSystem(rand.New(rand.NewSource(11)))
	palette := []core.Color{core.ColorRed, core.ColorYellow}
	ps.Burst(0, 0, 50, palette, 3, 20)

	if ps.Len() != 50 {
		t.Fatalf("expected 50 particles, got %d", ps.Len())
	}
	seen := make(map[core.Color]int)
	for _, p := range ps.Particles() {
		if p.Color != core.ColorRed && p.Color != core.ColorYellow {
			t.Fatalf("color %v not in palette", p.Color)
		}
		seen[p.Color]++
	}
	if len(seen) != 2 {
		t.Errorf("expected both palette colors, got %v", seen)
	}

	ps.Clear()
	ps.Burst(0, 0, 10, nil, 3, 20)
	if ps.Len() != 0 {
		t.Errorf("empty palette should spawn nothing, got %d", ps.Len())
	}
	ps.Spawn(0, 0, core.ColorRed, 1, 0)
	if ps.Len() != 0 {
		t.Errorf("zero-lifetime particle should never be live")
	}
}
