package main

import "image/color"

// BasicContainment is the simplest scene: the main particle follows the
// cursor exactly, and a single satellite particle is kept inside it. The
// constraint is one-sided: the satellite may sit anywhere within
// mainRadius-satelliteRadius of the cursor and is only pushed when it
// would poke out.
type BasicContainment struct {
	set ParticleSet
}

func NewBasicContainment(mainRadius, satelliteRadius float64, start Vec2, mainColor, satelliteColor color.RGBA) (*BasicContainment, error) {
	if err := validateRadius("main radius", mainRadius); err != nil {
		return nil, err
	}
	if err := validateRadius("satellite radius", satelliteRadius); err != nil {
		return nil, err
	}
	return &BasicContainment{
		set: ParticleSet{
			Main: Particle{
				Pos:    start,
				Radius: mainRadius,
				Color:  mainColor,
			},
			Particles: []Particle{{
				Pos:    start,
				Radius: satelliteRadius,
				Color:  satelliteColor,
			}},
		},
	}, nil
}

func (s *BasicContainment) Update(cursor Vec2) {
	s.set.Main.Pos = cursor

	satellite := &s.set.Particles[0]
	maxDistance := s.set.Main.Radius - satellite.Radius
	if satellite.Pos.Sub(cursor).Length() > maxDistance {
		satellite.Pos = Project(satellite.Pos, cursor, maxDistance)
	}
}

func (s *BasicContainment) Particles() []Particle   { return s.set.Snapshot() }
func (s *BasicContainment) MainParticle() *Particle { return &s.set.Main }
func (s *BasicContainment) DrawsMainParticle() bool { return true }
