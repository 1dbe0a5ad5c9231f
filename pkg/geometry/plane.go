package geometry

import (
	"math"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/material"
)

// Plane is the z=0 plane of its object space. As a solid (for CSG
// operands) it is the z<0 half-space.
type Plane struct {
	name      string
	transform core.Transformation
	mat       material.Material
}

// NewPlane creates a named plane with the given placement and material
func NewPlane(name string, transform core.Transformation, mat material.Material) *Plane {
	return &Plane{name: name, transform: transform, mat: mat}
}

// Name implements the Shape interface
func (p *Plane) Name() string { return p.name }

// Material implements the Shape interface
func (p *Plane) Material() material.Material { return p.mat }

// Transform implements the Shape interface
func (p *Plane) Transform() core.Transformation { return p.transform }

// Clone implements the Shape interface
func (p *Plane) Clone(newName string) Shape {
	clone := *p
	clone.name = newName
	return &clone
}

// planeHitAt builds the world-space hit record for parameter t
func (p *Plane) planeHitAt(ray, invRay core.Ray, t float64) *HitRecord {
	objPoint := invRay.At(t)

	objNormal := core.NewNormal(0, 0, 1)
	if invRay.Direction.Z > 0 {
		objNormal = objNormal.Negate()
	}

	return &HitRecord{
		WorldPoint: p.transform.ApplyPoint(objPoint),
		Normal:     p.transform.ApplyNormal(objNormal).Normalize(),
		SurfaceUV: core.NewVec2(
			objPoint.X-math.Floor(objPoint.X),
			objPoint.Y-math.Floor(objPoint.Y),
		),
		T:     t,
		Ray:   ray,
		Shape: p,
	}
}

// RayIntersection implements the Shape interface
func (p *Plane) RayIntersection(ray core.Ray) (*HitRecord, bool) {
	invRay := ray.Transform(p.transform.Inverse())

	if math.Abs(invRay.Direction.Z) < 1e-12 {
		return nil, false
	}

	t := -invRay.Origin.Z / invRay.Direction.Z
	if t <= ray.TMin || t >= ray.TMax {
		return nil, false
	}

	return p.planeHitAt(ray, invRay, t), true
}

// RayIntervals implements the Shape interface
func (p *Plane) RayIntervals(ray core.Ray) []Interval {
	invRay := ray.Transform(p.transform.Inverse())

	if math.Abs(invRay.Direction.Z) < 1e-12 {
		// Parallel ray: either entirely inside the half-space or
		// entirely outside
		if invRay.Origin.Z < 0 {
			return []Interval{{TIn: math.Inf(-1), TOut: math.Inf(1)}}
		}
		return nil
	}

	t := -invRay.Origin.Z / invRay.Direction.Z
	hit := p.planeHitAt(ray, invRay, t)

	if invRay.Direction.Z < 0 {
		// Ray descends into the half-space at t
		return []Interval{{TIn: t, TOut: math.Inf(1), InHit: hit}}
	}
	// Ray leaves the half-space at t
	return []Interval{{TIn: math.Inf(-1), TOut: t, OutHit: hit}}
}
