package material

import "github.com/baronauta/RayTracer-sub001/pkg/core"

// Material pairs a BRDF with an emitted-radiance pigment. Immutable after
// construction.
type Material struct {
	BRDF            BRDF
	EmittedRadiance Pigment
}

// NewMaterial creates a material; a nil brdf defaults to a white diffuse
// surface and a nil emitted pigment defaults to no emission
func NewMaterial(brdf BRDF, emitted Pigment) Material {
	if brdf == nil {
		brdf = NewDiffuseBRDF(NewUniformPigment(core.White))
	}
	if emitted == nil {
		emitted = NewUniformPigment(core.Black)
	}
	return Material{BRDF: brdf, EmittedRadiance: emitted}
}
