package main

import (
	"fmt"
	"image/color"
)

// Particle is a disc: position, radius and a display color. The color is
// carried for the renderer only and never affects the solver.
type Particle struct {
	Pos    Vec2
	Radius float64
	Color  color.RGBA
}

// ParticleSet holds the ordered particles of one scene plus the
// distinguished main particle (the cursor follower / anchor). Indices are
// stable for the lifetime of the set; the owning simulation mutates it in
// place and hands out read-only views.
type ParticleSet struct {
	Main      Particle
	Particles []Particle
}

// Snapshot returns the ordered particles. The slice aliases the
// simulation's internal buffer; the renderer must not hold on to it past
// the next Update.
func (ps *ParticleSet) Snapshot() []Particle {
	return ps.Particles
}

func validateCount(count int) error {
	if count <= 0 {
		return fmt.Errorf("particle count must be positive, got %d", count)
	}
	return nil
}

func validateRadius(name string, r float64) error {
	if r <= 0 {
		return fmt.Errorf("%s must be positive, got %g", name, r)
	}
	return nil
}
