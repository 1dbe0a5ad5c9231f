package integrator

import (
	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/geometry"
)

// PathTracer is a recursive Monte-Carlo estimator of the rendering
// equation. Radiance at a hit is emission plus the average of NumRays
// BRDF-sampled recursive estimates; Russian roulette keeps the estimator
// unbiased while bounding recursion.
type PathTracer struct {
	World                *geometry.World
	BackgroundColor      core.Color
	Pcg                  *core.PCG
	NumRays              int
	MaxDepth             int
	RussianRouletteLimit int
}

// NewPathTracer creates a path tracer with the given sampling parameters
func NewPathTracer(world *geometry.World, pcg *core.PCG, numRays, maxDepth, rouletteLimit int) *PathTracer {
	return &PathTracer{
		World:                world,
		BackgroundColor:      core.Black,
		Pcg:                  pcg,
		NumRays:              numRays,
		MaxDepth:             maxDepth,
		RussianRouletteLimit: rouletteLimit,
	}
}

// RayColor implements the Integrator interface
func (pt *PathTracer) RayColor(ray core.Ray) core.Color {
	if ray.Depth > pt.MaxDepth {
		return core.Black
	}

	hit, ok := pt.World.RayIntersection(ray)
	if !ok {
		return pt.BackgroundColor
	}

	mat := hit.Shape.Material()
	hitColor := mat.BRDF.Pigment().Evaluate(hit.SurfaceUV)
	emitted := mat.EmittedRadiance.Evaluate(hit.SurfaceUV)

	hitColorLum := hitColor.MaxComponent()

	// Russian roulette: from RussianRouletteLimit onwards, continue with
	// probability derived from the reflectance and reweight survivors by
	// 1/p so the estimator stays unbiased
	if ray.Depth >= pt.RussianRouletteLimit {
		p := clampProb(hitColorLum)
		if pt.Pcg.RandomFloat() > p {
			return emitted
		}
		hitColor = hitColor.Multiply(1.0 / p)
	}

	cumRadiance := core.Black
	if hitColorLum > 0 {
		// A mirror bounce is deterministic with zero variance; averaging
		// it over NumRays would waste every sample but the first
		numRays := pt.NumRays
		if mat.BRDF.IsSpecular() {
			numRays = 1
		}

		for i := 0; i < numRays; i++ {
			newRay := mat.BRDF.ScatterRay(
				pt.Pcg, hit.Ray.Direction, hit.WorldPoint, hit.Normal, ray.Depth+1)
			newRadiance := pt.RayColor(newRay)
			cumRadiance = cumRadiance.Add(hitColor.MultiplyColor(newRadiance))
		}
		cumRadiance = cumRadiance.Multiply(1.0 / float64(numRays))
	}

	return emitted.Add(cumRadiance)
}

// clampProb bounds the continuation probability away from 0 and 1
func clampProb(p float64) float64 {
	if p < 0.05 {
		return 0.05
	}
	if p > 0.95 {
		return 0.95
	}
	return p
}
