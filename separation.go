package main

import (
	"image/color"
	"math/rand"
)

const (
	// DefaultSeparationIterations bounds the per-frame cost: the solve is
	// relaxed, not exact, and three passes are enough to look settled.
	DefaultSeparationIterations = 3
	maxSeparationIterations     = 10

	separationSpawnCols = 50
)

// MassSeparation packs thousands of particles that must not overlap each
// other or the cursor-following main particle. The main particle is
// infinite mass: the anchor pass pushes only the other particle of a
// colliding pair, never the cursor follower.
type MassSeparation struct {
	set        ParticleSet
	iterations int

	// Broad phase buckets and the neighbor scratch buffer are reused
	// across iterations and frames; this runs at interactive rates
	// against thousands of particles.
	hash   *SpatialHash
	nearby []int
}

func NewMassSeparation(count int, ballRadius, mainRadius float64, start Vec2, mainColor color.RGBA, policy ColorPolicy, rng *rand.Rand) (*MassSeparation, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}
	if err := validateRadius("ball radius", ballRadius); err != nil {
		return nil, err
	}
	if err := validateRadius("main radius", mainRadius); err != nil {
		return nil, err
	}

	colors := newColorizer(policy, colorWhite, rng)

	// Spawn in a tight grid to the right of the start position; the first
	// separation passes relax it into a blob.
	particles := make([]Particle, 0, count)
	gridX, gridY := 0, 0
	for i := 0; i < count; i++ {
		if i > 0 && i%separationSpawnCols == 0 {
			gridX = 0
			gridY++
		}
		pos := V(
			start.X+100+float64(gridX)*ballRadius,
			start.Y+float64(gridY)*ballRadius,
		)
		particles = append(particles, Particle{
			Pos:    pos,
			Radius: ballRadius,
			Color:  colors.colorAt(pos),
		})
		gridX++
	}

	return &MassSeparation{
		set: ParticleSet{
			Main:      Particle{Pos: start, Radius: mainRadius, Color: mainColor},
			Particles: particles,
		},
		iterations: DefaultSeparationIterations,
		// Cell size 2r guarantees overlapping equal-radius discs share a
		// cell or sit in adjacent ones.
		hash: NewSpatialHash(ballRadius * 2),
	}, nil
}

// SetIterations adjusts the relaxation pass count, clamped to [1,10].
func (s *MassSeparation) SetIterations(n int) {
	if n < 1 {
		n = 1
	}
	if n > maxSeparationIterations {
		n = maxSeparationIterations
	}
	s.iterations = n
}

func (s *MassSeparation) Iterations() int { return s.iterations }

func (s *MassSeparation) Update(cursor Vec2) {
	s.set.Main.Pos = cursor

	// Anchor pass: push overlapping particles out of the main particle.
	// Only the particle moves; the anchor tracks the cursor exactly.
	for i := range s.set.Particles {
		p := &s.set.Particles[i]
		toParticle := s.set.Main.Pos.Sub(p.Pos)
		minDistance := s.set.Main.Radius + p.Radius
		if toParticle.Length() < minDistance {
			corrected := toParticle.WithLength(minDistance)
			p.Pos = p.Pos.Add(toParticle.Sub(corrected))
		}
	}

	// Separation passes, Gauss-Seidel style: corrections land in place, so
	// later pairs in the same pass see already-corrected positions.
	// Particles move during a pass, so the hash is rebuilt every pass.
	for iter := 0; iter < s.iterations; iter++ {
		s.hash.Clear()
		for i := range s.set.Particles {
			s.hash.Insert(i, s.set.Particles[i].Pos)
		}
		for i := range s.set.Particles {
			s.nearby = s.hash.GetNearby(s.set.Particles[i].Pos, s.nearby[:0])
			for _, j := range s.nearby {
				// j > i visits each unordered pair once and skips self.
				if j <= i {
					continue
				}
				separatePair(&s.set.Particles[i], &s.set.Particles[j])
			}
		}
	}
}

// separatePair resolves one overlapping pair by splitting the correction
// evenly between both particles.
func separatePair(a, b *Particle) {
	toOther := b.Pos.Sub(a.Pos)
	minDistance := a.Radius + b.Radius
	if toOther.Length() > minDistance {
		return
	}
	corrected := toOther.WithLength(minDistance)
	halfOffset := toOther.Sub(corrected).Div(2)
	a.Pos = a.Pos.Add(halfOffset)
	b.Pos = b.Pos.Sub(halfOffset)
}

func (s *MassSeparation) Particles() []Particle   { return s.set.Snapshot() }
func (s *MassSeparation) MainParticle() *Particle { return &s.set.Main }
func (s *MassSeparation) DrawsMainParticle() bool { return true }
