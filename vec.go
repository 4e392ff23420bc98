package main

import "math"

// Vec2 is a 2D point/vector
type Vec2 struct {
	X, Y float64
}

// V is a shorthand constructor
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

// Length returns the magnitude of v
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Distance returns the distance between v and o
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// WithLength rescales v to the given magnitude along its current direction.
// The zero vector has no direction, so rescaling it to a positive length
// falls back to the +X axis; rescaling anything to length 0 gives the zero
// vector. Never produces NaN.
func (v Vec2) WithLength(length float64) Vec2 {
	if length == 0 {
		return Vec2{}
	}
	mag := v.Length()
	if mag == 0 {
		return Vec2{X: length}
	}
	return Vec2{v.X / mag * length, v.Y / mag * length}
}

// Project moves point onto the circle of the given radius around anchor,
// along the ray from anchor through point. This is the single primitive
// behind every distance constraint in the simulations.
func Project(point, anchor Vec2, distance float64) Vec2 {
	return point.Sub(anchor).WithLength(distance).Add(anchor)
}
