package geometry

import (
	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/material"
)

// CSG combines two child shapes with a boolean solid operation. It owns
// its children exclusively: shapes consumed into a CSG node leave the
// world unless explicitly copied first. Evaluation is defined purely in
// terms of the ray-parameter intervals where each child is inside.
type CSG struct {
	name      string
	left      Shape
	right     Shape
	op        Operation
	transform core.Transformation
}

// NewCSG creates a named boolean combination of two shapes
func NewCSG(name string, left, right Shape, op Operation, transform core.Transformation) *CSG {
	return &CSG{name: name, left: left, right: right, op: op, transform: transform}
}

// Name implements the Shape interface
func (c *CSG) Name() string { return c.name }

// Material implements the Shape interface. Hits report the child shape
// that contributed the boundary, so this is only a fallback.
func (c *CSG) Material() material.Material { return c.left.Material() }

// Transform implements the Shape interface
func (c *CSG) Transform() core.Transformation { return c.transform }

// Op returns the boolean operation of the node
func (c *CSG) Op() Operation { return c.op }

// Children returns the two owned child shapes
func (c *CSG) Children() (left, right Shape) { return c.left, c.right }

// Clone implements the Shape interface, deep-duplicating both children
func (c *CSG) Clone(newName string) Shape {
	return &CSG{
		name:      newName,
		left:      c.left.Clone(c.left.Name()),
		right:     c.right.Clone(c.right.Name()),
		op:        c.op,
		transform: c.transform,
	}
}

// RayIntervals implements the Shape interface by recursively combining
// the children's interval lists
func (c *CSG) RayIntervals(ray core.Ray) []Interval {
	invRay := ray.Transform(c.transform.Inverse())

	combined := combineIntervals(
		c.left.RayIntervals(invRay),
		c.right.RayIntervals(invRay),
		c.op,
	)

	// Map the boundary hits back into world space. The ray parameter is
	// unchanged, the transform being affine.
	for i := range combined {
		combined[i].InHit = c.hitToWorld(combined[i].InHit, ray)
		combined[i].OutHit = c.hitToWorld(combined[i].OutHit, ray)
	}
	return combined
}

// hitToWorld lifts a child hit from CSG-local space into world space
func (c *CSG) hitToWorld(hit *HitRecord, worldRay core.Ray) *HitRecord {
	if hit == nil {
		return nil
	}
	return &HitRecord{
		WorldPoint: c.transform.ApplyPoint(hit.WorldPoint),
		Normal:     c.transform.ApplyNormal(hit.Normal).Normalize(),
		SurfaceUV:  hit.SurfaceUV,
		T:          hit.T,
		Ray:        worldRay,
		Shape:      hit.Shape,
	}
}

// RayIntersection implements the Shape interface: the nearest combined
// boundary within the ray's valid range. Normal and material come from
// whichever child contributed that boundary.
func (c *CSG) RayIntersection(ray core.Ray) (*HitRecord, bool) {
	var closest *HitRecord
	for _, iv := range c.RayIntervals(ray) {
		for _, hit := range [2]*HitRecord{iv.InHit, iv.OutHit} {
			if hit == nil || hit.T <= ray.TMin || hit.T >= ray.TMax {
				continue
			}
			if closest == nil || hit.T < closest.T {
				closest = hit
			}
		}
	}
	return closest, closest != nil
}
