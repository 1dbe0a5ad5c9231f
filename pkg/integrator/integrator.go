// Package integrator implements the three rendering algorithms: the
// visibility-only tracer, the flat tracer and the Monte-Carlo path tracer.
// Each is a pure function of (world, ray, generator) returning radiance.
package integrator

import (
	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/geometry"
)

// Integrator turns a camera ray into a radiance estimate
type Integrator interface {
	RayColor(ray core.Ray) core.Color
}

// OnOffIntegrator returns a fixed color on any hit and the background
// color otherwise. Useful for silhouette debugging; no recursion.
type OnOffIntegrator struct {
	World           *geometry.World
	BackgroundColor core.Color
	HitColor        core.Color
}

// NewOnOffIntegrator creates a visibility tracer with white-on-black colors
func NewOnOffIntegrator(world *geometry.World) *OnOffIntegrator {
	return &OnOffIntegrator{
		World:           world,
		BackgroundColor: core.Black,
		HitColor:        core.White,
	}
}

// RayColor implements the Integrator interface
func (o *OnOffIntegrator) RayColor(ray core.Ray) core.Color {
	if _, ok := o.World.RayIntersection(ray); ok {
		return o.HitColor
	}
	return o.BackgroundColor
}

// FlatIntegrator returns pigment plus emission at the hit point, with no
// lighting integration and no recursion
type FlatIntegrator struct {
	World           *geometry.World
	BackgroundColor core.Color
}

// NewFlatIntegrator creates a flat tracer over a black background
func NewFlatIntegrator(world *geometry.World) *FlatIntegrator {
	return &FlatIntegrator{World: world, BackgroundColor: core.Black}
}

// RayColor implements the Integrator interface
func (f *FlatIntegrator) RayColor(ray core.Ray) core.Color {
	hit, ok := f.World.RayIntersection(ray)
	if !ok {
		return f.BackgroundColor
	}

	mat := hit.Shape.Material()
	return mat.BRDF.Pigment().Evaluate(hit.SurfaceUV).
		Add(mat.EmittedRadiance.Evaluate(hit.SurfaceUV))
}
