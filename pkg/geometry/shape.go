package geometry

import (
	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/material"
)

// Shape is the closed set of renderable solids: sphere, plane, cube and
// CSG composites. Every shape carries an object-to-world transformation,
// a material and a unique name.
type Shape interface {
	// Name returns the identifier the shape was declared with
	Name() string

	// Material returns the surface material
	Material() material.Material

	// Transform returns the object-to-world transformation
	Transform() core.Transformation

	// RayIntersection returns the closest hit within the ray's valid
	// parameter interval, or false when the ray misses
	RayIntersection(ray core.Ray) (*HitRecord, bool)

	// RayIntervals returns the ordered list of disjoint [tIn, tOut]
	// sub-intervals where the ray is inside the solid. Required only
	// for CSG operands; endpoints may be unbounded.
	RayIntervals(ray core.Ray) []Interval

	// Clone creates an independent deep duplicate under a new name, so
	// the same logical geometry can appear in several places without
	// aliasing
	Clone(newName string) Shape
}

// HitRecord describes a ray-surface intersection. Value type, produced
// fresh per intersection test.
type HitRecord struct {
	WorldPoint core.Point
	Normal     core.Normal
	SurfaceUV  core.Vec2
	T          float64
	Ray        core.Ray
	Shape      Shape
}

// IsClose compares two hit records within an absolute tolerance, used by
// tests
func (h *HitRecord) IsClose(other *HitRecord, epsilon float64) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.WorldPoint.IsClose(other.WorldPoint, epsilon) &&
		h.Normal.IsClose(other.Normal, epsilon) &&
		absDiff(h.T, other.T) < epsilon
}

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
