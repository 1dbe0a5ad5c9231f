package geometry

import "github.com/baronauta/RayTracer-sub001/pkg/core"

// World is the ordered set of top-level shapes. Insertion order does not
// affect correctness; nearest-hit selection always picks the smallest t.
type World struct {
	Shapes []Shape
}

// NewWorld creates an empty world
func NewWorld() *World {
	return &World{}
}

// AddShape appends a shape to the world
func (w *World) AddShape(s Shape) {
	w.Shapes = append(w.Shapes, s)
}

// RayIntersection returns the closest hit over all shapes, or false when
// the ray escapes the scene
func (w *World) RayIntersection(ray core.Ray) (*HitRecord, bool) {
	var closest *HitRecord
	for _, shape := range w.Shapes {
		hit, ok := shape.RayIntersection(ray)
		if !ok {
			continue
		}
		if closest == nil || hit.T < closest.T {
			closest = hit
		}
	}
	return closest, closest != nil
}
