package main

import (
	"fmt"
	"math/rand"
)

// LinkChain is a rope of particles connected by rigid links. The head
// follows the cursor; a forward pass cascades the link-distance constraint
// down the chain. Two optional behaviors stack on top:
//
//   - FABRIK: a backward pass that pins the tail to an external anchor and
//     re-tightens the chain toward it. After this pass the head no longer
//     sits exactly under the cursor; that is the trade-off, not a bug.
//   - Ball collision: exhaustive pairwise separation. Chains are tens of
//     particles, so the O(n^2) sweep is cheaper than maintaining a hash.
type LinkChain struct {
	set          ParticleSet
	linkDistance float64
	useFabrik    bool
	ballCollide  bool
	anchorPos    Vec2
}

func NewLinkChain(count int, ballRadius, linkDistance float64, start Vec2, policy ColorPolicy, rng *rand.Rand) (*LinkChain, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}
	if err := validateRadius("ball radius", ballRadius); err != nil {
		return nil, err
	}
	if linkDistance <= 0 {
		return nil, fmt.Errorf("link distance must be positive, got %g", linkDistance)
	}

	colors := newColorizer(policy, colorWhite, rng)

	// Lay the chain out to the right of the start, one link apart.
	particles := make([]Particle, 0, count)
	for i := 0; i < count; i++ {
		pos := V(start.X+float64(i+1)*linkDistance, start.Y)
		particles = append(particles, Particle{
			Pos:    pos,
			Radius: ballRadius,
			Color:  colors.colorAt(pos),
		})
	}

	return &LinkChain{
		set: ParticleSet{
			Main:      Particle{Pos: start, Radius: ballRadius, Color: colorWhite},
			Particles: particles,
		},
		linkDistance: linkDistance,
		anchorPos:    start,
	}, nil
}

func (s *LinkChain) SetFabrik(enabled bool)        { s.useFabrik = enabled }
func (s *LinkChain) SetBallCollision(enabled bool) { s.ballCollide = enabled }
func (s *LinkChain) SetAnchorPos(pos Vec2)         { s.anchorPos = pos }

func (s *LinkChain) FabrikEnabled() bool        { return s.useFabrik }
func (s *LinkChain) BallCollisionEnabled() bool { return s.ballCollide }
func (s *LinkChain) LinkDistance() float64      { return s.linkDistance }

// SetLinkDistance changes the link length live; values <= 0 are ignored.
func (s *LinkChain) SetLinkDistance(d float64) {
	if d > 0 {
		s.linkDistance = d
	}
}

func (s *LinkChain) Update(cursor Vec2) {
	particles := s.set.Particles
	if len(particles) == 0 {
		return
	}

	// Forward pass: drag the head to the cursor and cascade the link
	// constraint down the chain. Each step uses the just-updated previous
	// particle, so the error propagates from the head instead of
	// accumulating uniformly.
	particles[0].Pos = cursor
	for i := 1; i < len(particles); i++ {
		particles[i].Pos = Project(particles[i].Pos, particles[i-1].Pos, s.linkDistance)
	}

	// FABRIK backward pass: pin the tail to the anchor and walk back.
	if s.useFabrik {
		last := len(particles) - 1
		particles[last].Pos = s.anchorPos
		for i := last; i >= 1; i-- {
			particles[i-1].Pos = Project(particles[i-1].Pos, particles[i].Pos, s.linkDistance)
		}
	}

	if s.ballCollide {
		for i := 0; i < len(particles); i++ {
			for j := i + 1; j < len(particles); j++ {
				separatePair(&particles[i], &particles[j])
			}
		}
	}

	// Cosmetic: consumers expecting a main particle get the head.
	s.set.Main.Pos = particles[0].Pos
}

func (s *LinkChain) Particles() []Particle   { return s.set.Snapshot() }
func (s *LinkChain) MainParticle() *Particle { return &s.set.Main }
func (s *LinkChain) DrawsMainParticle() bool { return false }
