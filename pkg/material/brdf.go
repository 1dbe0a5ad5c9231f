package material

import (
	"math"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
)

// BRDF governs how incoming light scatters at a surface. The variant set
// is closed: diffuse (Lambertian) and specular (perfect mirror).
type BRDF interface {
	// Pigment returns the spatially varying reflectance color
	Pigment() Pigment

	// Eval returns the BRDF value for a given pair of directions
	Eval(normal core.Normal, inDir, outDir core.Vec, uv core.Vec2) core.Color

	// ScatterRay draws the outgoing ray for the next path segment
	ScatterRay(pcg *core.PCG, incomingDir core.Vec, point core.Point, normal core.Normal, depth int) core.Ray

	// IsSpecular reports whether scattering is a zero-variance delta
	// function that consumes no sampling randomness
	IsSpecular() bool
}

// DiffuseBRDF is the Lambertian reflectance model
type DiffuseBRDF struct {
	pigment Pigment
}

// NewDiffuseBRDF creates a Lambertian BRDF over the given pigment
func NewDiffuseBRDF(pigment Pigment) *DiffuseBRDF {
	return &DiffuseBRDF{pigment: pigment}
}

// Pigment implements the BRDF interface
func (b *DiffuseBRDF) Pigment() Pigment { return b.pigment }

// Eval implements the BRDF interface: reflectance / pi
func (b *DiffuseBRDF) Eval(normal core.Normal, inDir, outDir core.Vec, uv core.Vec2) core.Color {
	return b.pigment.Evaluate(uv).Multiply(1.0 / math.Pi)
}

// ScatterRay draws a cosine-weighted direction in the hemisphere around
// the surface normal
func (b *DiffuseBRDF) ScatterRay(pcg *core.PCG, incomingDir core.Vec, point core.Point, normal core.Normal, depth int) core.Ray {
	direction := core.SampleCosineHemisphere(pcg, normal.Normalize())
	return core.Ray{
		Origin:    point,
		Direction: direction,
		TMin:      1e-3,
		TMax:      math.Inf(1),
		Depth:     depth,
	}
}

// IsSpecular implements the BRDF interface
func (b *DiffuseBRDF) IsSpecular() bool { return false }

// SpecularBRDF is the perfect-mirror reflectance model
type SpecularBRDF struct {
	pigment Pigment
}

// NewSpecularBRDF creates a mirror BRDF over the given pigment
func NewSpecularBRDF(pigment Pigment) *SpecularBRDF {
	return &SpecularBRDF{pigment: pigment}
}

// Pigment implements the BRDF interface
func (b *SpecularBRDF) Pigment() Pigment { return b.pigment }

// Eval implements the BRDF interface. The mirror is a delta function;
// it only contributes along the exact reflection direction.
func (b *SpecularBRDF) Eval(normal core.Normal, inDir, outDir core.Vec, uv core.Vec2) core.Color {
	thetaIn := math.Acos(normal.Dot(inDir.Normalize()))
	thetaOut := math.Acos(normal.Dot(outDir.Normalize()))
	if math.Abs(thetaIn-thetaOut) < 1e-3 {
		return b.pigment.Evaluate(uv)
	}
	return core.Black
}

// ScatterRay returns the single deterministic mirror reflection; no
// sampling randomness is consumed
func (b *SpecularBRDF) ScatterRay(pcg *core.PCG, incomingDir core.Vec, point core.Point, normal core.Normal, depth int) core.Ray {
	dir := incomingDir.Normalize()
	n := normal.Normalize().ToVec()
	reflected := dir.Subtract(n.Multiply(2 * dir.Dot(n)))

	return core.Ray{
		Origin:    point,
		Direction: reflected,
		TMin:      1e-3,
		TMax:      math.Inf(1),
		Depth:     depth,
	}
}

// IsSpecular implements the BRDF interface
func (b *SpecularBRDF) IsSpecular() bool { return true }
