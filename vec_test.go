package main

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestVec2Length(t *testing.T) {
	v := V(3, 4)
	if !almostEqual(v.Length(), 5) {
		t.Errorf("Length() = %v, want 5", v.Length())
	}
	if !almostEqual(v.LengthSquared(), 25) {
		t.Errorf("LengthSquared() = %v, want 25", v.LengthSquared())
	}
}

func TestVec2WithLength(t *testing.T) {
	v := V(3, 4).WithLength(10)
	if !almostEqual(v.Length(), 10) {
		t.Errorf("WithLength(10).Length() = %v, want 10", v.Length())
	}
	// Direction preserved.
	if !almostEqual(v.X, 6) || !almostEqual(v.Y, 8) {
		t.Errorf("WithLength(10) = %v, want (6, 8)", v)
	}
}

func TestVec2WithLengthZeroPolicy(t *testing.T) {
	// Target length 0 collapses any vector to zero.
	if got := V(3, 4).WithLength(0); got != (Vec2{}) {
		t.Errorf("WithLength(0) = %v, want zero vector", got)
	}
	// The zero vector has no direction; positive lengths fall back to +X.
	got := Vec2{}.WithLength(7)
	if got != V(7, 0) {
		t.Errorf("zero.WithLength(7) = %v, want (7, 0)", got)
	}
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Error("zero-length rescale produced NaN")
	}
}

func TestProjectDistanceInvariant(t *testing.T) {
	anchor := V(3, -2)
	points := []Vec2{V(10, 0), V(-4, 7), V(3.5, -2.5), V(1000, 1000)}
	for _, p := range points {
		for _, d := range []float64{0, 1, 5, 123.5} {
			got := Project(p, anchor, d)
			if !almostEqual(got.Distance(anchor), d) {
				t.Errorf("Project(%v, %v, %v): distance = %v", p, anchor, d, got.Distance(anchor))
			}
			// Result lies on the ray from the anchor through the point.
			dir := p.Sub(anchor)
			res := got.Sub(anchor)
			cross := dir.X*res.Y - dir.Y*res.X
			if !almostEqual(cross, 0) || dir.X*res.X+dir.Y*res.Y < -epsilon {
				t.Errorf("Project(%v, %v, %v) = %v, off the anchor ray", p, anchor, d, got)
			}
		}
	}
}

func TestProjectCoincidentPointAndAnchor(t *testing.T) {
	anchor := V(5, 5)
	got := Project(anchor, anchor, 3)
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Fatalf("Project(anchor, anchor, 3) = %v, produced NaN", got)
	}
	if !almostEqual(got.Distance(anchor), 3) {
		t.Errorf("Project(anchor, anchor, 3) = %v, want distance 3 from anchor", got)
	}
}

func TestProjectScenario(t *testing.T) {
	// Project((10,0), (0,0), 5) -> (5,0)
	got := Project(V(10, 0), V(0, 0), 5)
	if !almostEqual(got.X, 5) || !almostEqual(got.Y, 0) {
		t.Errorf("Project((10,0), (0,0), 5) = %v, want (5, 0)", got)
	}
}
