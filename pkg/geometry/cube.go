package geometry

import (
	"math"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/material"
)

// Cube is the axis-aligned unit cube spanning [-0.5, 0.5] on every axis of
// its object space
type Cube struct {
	name      string
	transform core.Transformation
	mat       material.Material
}

// NewCube creates a named unit cube with the given placement and material
func NewCube(name string, transform core.Transformation, mat material.Material) *Cube {
	return &Cube{name: name, transform: transform, mat: mat}
}

// Name implements the Shape interface
func (c *Cube) Name() string { return c.name }

// Material implements the Shape interface
func (c *Cube) Material() material.Material { return c.mat }

// Transform implements the Shape interface
func (c *Cube) Transform() core.Transformation { return c.transform }

// Clone implements the Shape interface
func (c *Cube) Clone(newName string) Shape {
	clone := *c
	clone.name = newName
	return &clone
}

// cubeSlabs runs the slab method over the three axis pairs, returning the
// entry and exit parameters together with the axis that bounded each
func cubeSlabs(invRay core.Ray) (tMin, tMax float64, axisMin, axisMax int, ok bool) {
	tMin = math.Inf(-1)
	tMax = math.Inf(1)

	origin := [3]float64{invRay.Origin.X, invRay.Origin.Y, invRay.Origin.Z}
	dir := [3]float64{invRay.Direction.X, invRay.Direction.Y, invRay.Direction.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < 1e-12 {
			// Parallel to this slab pair: miss unless between the faces
			if origin[axis] < -0.5 || origin[axis] > 0.5 {
				return 0, 0, 0, 0, false
			}
			continue
		}

		invD := 1.0 / dir[axis]
		tNear := (-0.5 - origin[axis]) * invD
		tFar := (0.5 - origin[axis]) * invD
		if tNear > tFar {
			tNear, tFar = tFar, tNear
		}

		if tNear > tMin {
			tMin, axisMin = tNear, axis
		}
		if tFar < tMax {
			tMax, axisMax = tFar, axis
		}
		if tMin >= tMax {
			return 0, 0, 0, 0, false
		}
	}

	return tMin, tMax, axisMin, axisMax, true
}

// cubePointToUV maps an object-space point on the given face axis to a
// per-face [0, 1]² parameterization
func cubePointToUV(p core.Point, axis int) core.Vec2 {
	switch axis {
	case 0:
		return core.NewVec2(p.Y+0.5, p.Z+0.5)
	case 1:
		return core.NewVec2(p.X+0.5, p.Z+0.5)
	default:
		return core.NewVec2(p.X+0.5, p.Y+0.5)
	}
}

// cubeHitAt builds the world-space hit record for parameter t on the face
// perpendicular to the given axis
func (c *Cube) cubeHitAt(ray, invRay core.Ray, t float64, axis int) *HitRecord {
	objPoint := invRay.At(t)

	var objNormal core.Normal
	switch axis {
	case 0:
		objNormal = core.NewNormal(1, 0, 0)
		if invRay.Direction.X > 0 {
			objNormal = objNormal.Negate()
		}
	case 1:
		objNormal = core.NewNormal(0, 1, 0)
		if invRay.Direction.Y > 0 {
			objNormal = objNormal.Negate()
		}
	default:
		objNormal = core.NewNormal(0, 0, 1)
		if invRay.Direction.Z > 0 {
			objNormal = objNormal.Negate()
		}
	}

	return &HitRecord{
		WorldPoint: c.transform.ApplyPoint(objPoint),
		Normal:     c.transform.ApplyNormal(objNormal).Normalize(),
		SurfaceUV:  cubePointToUV(objPoint, axis),
		T:          t,
		Ray:        ray,
		Shape:      c,
	}
}

// RayIntersection implements the Shape interface
func (c *Cube) RayIntersection(ray core.Ray) (*HitRecord, bool) {
	invRay := ray.Transform(c.transform.Inverse())

	tMin, tMax, axisMin, axisMax, ok := cubeSlabs(invRay)
	if !ok {
		return nil, false
	}

	var t float64
	var axis int
	switch {
	case tMin > ray.TMin && tMin < ray.TMax:
		t, axis = tMin, axisMin
	case tMax > ray.TMin && tMax < ray.TMax:
		t, axis = tMax, axisMax
	default:
		return nil, false
	}

	return c.cubeHitAt(ray, invRay, t, axis), true
}

// RayIntervals implements the Shape interface
func (c *Cube) RayIntervals(ray core.Ray) []Interval {
	invRay := ray.Transform(c.transform.Inverse())

	tMin, tMax, axisMin, axisMax, ok := cubeSlabs(invRay)
	if !ok {
		return nil
	}

	return []Interval{{
		TIn:    tMin,
		TOut:   tMax,
		InHit:  c.cubeHitAt(ray, invRay, tMin, axisMin),
		OutHit: c.cubeHitAt(ray, invRay, tMax, axisMax),
	}}
}
