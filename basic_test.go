package main

import "testing"

func TestBasicContainmentBound(t *testing.T) {
	sim, err := NewBasicContainment(50, 15, V(400, 400), colorWhite, colorBlack)
	if err != nil {
		t.Fatal(err)
	}

	bound := 50.0 - 15.0
	cursors := []Vec2{V(0, 0), V(700, 100), V(400, 400), V(401, 400)}
	for _, cursor := range cursors {
		sim.Update(cursor)
		if d := sim.Particles()[0].Pos.Distance(cursor); d > bound+1e-6 {
			t.Errorf("after Update(%v): satellite distance %v exceeds bound %v", cursor, d, bound)
		}
		if sim.MainParticle().Pos != cursor {
			t.Errorf("after Update(%v): main particle at %v", cursor, sim.MainParticle().Pos)
		}
	}
}

func TestBasicContainmentLeavesInteriorAlone(t *testing.T) {
	sim, err := NewBasicContainment(50, 15, V(100, 100), colorWhite, colorBlack)
	if err != nil {
		t.Fatal(err)
	}

	// The satellite starts on the cursor; a tiny cursor move keeps it well
	// inside the bound, so the one-sided constraint must not touch it.
	sim.Update(V(100, 100))
	before := sim.Particles()[0].Pos
	sim.Update(V(105, 100))
	if got := sim.Particles()[0].Pos; got != before {
		t.Errorf("satellite moved from %v to %v while inside the bound", before, got)
	}
}

func TestBasicContainmentConfigErrors(t *testing.T) {
	if _, err := NewBasicContainment(0, 15, V(0, 0), colorWhite, colorBlack); err == nil {
		t.Error("main radius 0 accepted")
	}
	if _, err := NewBasicContainment(50, -1, V(0, 0), colorWhite, colorBlack); err == nil {
		t.Error("negative satellite radius accepted")
	}
}
