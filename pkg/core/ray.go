package core

import "math"

// Ray represents a half-line with a valid parameter interval [TMin, TMax)
// and a recursion depth counter. Rays are immutable; every bounce builds
// a fresh one.
type Ray struct {
	Origin    Point
	Direction Vec
	TMin      float64
	TMax      float64
	Depth     int
}

// NewRay creates a ray with the default parameter interval [1e-5, +inf)
func NewRay(origin Point, direction Vec) Ray {
	return Ray{
		Origin:    origin,
		Direction: direction,
		TMin:      1e-5,
		TMax:      math.Inf(1),
		Depth:     0,
	}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Point {
	return r.Origin.AddVec(r.Direction.Multiply(t))
}

// Transform returns the ray mapped through the given transformation
func (r Ray) Transform(t Transformation) Ray {
	return Ray{
		Origin:    t.ApplyPoint(r.Origin),
		Direction: t.ApplyVec(r.Direction),
		TMin:      r.TMin,
		TMax:      r.TMax,
		Depth:     r.Depth,
	}
}

// IsClose compares origin and direction of two rays within a tolerance
func (r Ray) IsClose(other Ray, epsilon float64) bool {
	return r.Origin.IsClose(other.Origin, epsilon) &&
		r.Direction.IsClose(other.Direction, epsilon)
}
