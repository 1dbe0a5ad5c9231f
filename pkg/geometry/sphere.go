package geometry

import (
	"math"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/material"
)

// Sphere is the unit sphere centered at the origin of its object space
type Sphere struct {
	name      string
	transform core.Transformation
	mat       material.Material
}

// NewSphere creates a named unit sphere with the given placement and material
func NewSphere(name string, transform core.Transformation, mat material.Material) *Sphere {
	return &Sphere{name: name, transform: transform, mat: mat}
}

// Name implements the Shape interface
func (s *Sphere) Name() string { return s.name }

// Material implements the Shape interface
func (s *Sphere) Material() material.Material { return s.mat }

// Transform implements the Shape interface
func (s *Sphere) Transform() core.Transformation { return s.transform }

// Clone implements the Shape interface
func (s *Sphere) Clone(newName string) Shape {
	clone := *s
	clone.name = newName
	return &clone
}

// sphereRoots solves the quadratic for the object-space ray, returning the
// two parameters in ascending order
func sphereRoots(invRay core.Ray) (t1, t2 float64, ok bool) {
	originVec := invRay.Origin.ToVec()
	a := invRay.Direction.SquaredNorm()
	halfB := originVec.Dot(invRay.Direction)
	c := originVec.SquaredNorm() - 1.0

	delta := halfB*halfB - a*c
	if delta <= 0 {
		return 0, 0, false
	}

	sqrtDelta := math.Sqrt(delta)
	return (-halfB - sqrtDelta) / a, (-halfB + sqrtDelta) / a, true
}

// spherePointToUV maps an object-space surface point to spherical UV
func spherePointToUV(p core.Point) core.Vec2 {
	u := math.Atan2(p.Y, p.X) / (2.0 * math.Pi)
	if u < 0 {
		u += 1.0
	}
	v := math.Acos(math.Max(-1, math.Min(1, p.Z))) / math.Pi
	return core.NewVec2(u, v)
}

// sphereHitAt builds the world-space hit record for parameter t
func (s *Sphere) sphereHitAt(ray, invRay core.Ray, t float64) *HitRecord {
	objPoint := invRay.At(t)

	objNormal := core.NewNormal(objPoint.X, objPoint.Y, objPoint.Z)
	if objPoint.ToVec().Dot(invRay.Direction) > 0 {
		objNormal = objNormal.Negate()
	}

	return &HitRecord{
		WorldPoint: s.transform.ApplyPoint(objPoint),
		Normal:     s.transform.ApplyNormal(objNormal).Normalize(),
		SurfaceUV:  spherePointToUV(objPoint),
		T:          t,
		Ray:        ray,
		Shape:      s,
	}
}

// RayIntersection implements the Shape interface
func (s *Sphere) RayIntersection(ray core.Ray) (*HitRecord, bool) {
	invRay := ray.Transform(s.transform.Inverse())

	t1, t2, ok := sphereRoots(invRay)
	if !ok {
		return nil, false
	}

	var t float64
	switch {
	case t1 > ray.TMin && t1 < ray.TMax:
		t = t1
	case t2 > ray.TMin && t2 < ray.TMax:
		t = t2
	default:
		return nil, false
	}

	return s.sphereHitAt(ray, invRay, t), true
}

// RayIntervals implements the Shape interface
func (s *Sphere) RayIntervals(ray core.Ray) []Interval {
	invRay := ray.Transform(s.transform.Inverse())

	t1, t2, ok := sphereRoots(invRay)
	if !ok {
		return nil
	}

	return []Interval{{
		TIn:    t1,
		TOut:   t2,
		InHit:  s.sphereHitAt(ray, invRay, t1),
		OutHit: s.sphereHitAt(ray, invRay, t2),
	}}
}
