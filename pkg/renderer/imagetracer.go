package renderer

import (
	"fmt"
	"math"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/hdr"
)

// ImageTracer maps the discrete pixel raster to camera rays and drives
// per-pixel evaluation of a rendering algorithm. With more than one
// sample per pixel it stratifies the sub-pixel positions on a k×k grid.
type ImageTracer struct {
	Image          *hdr.HdrImage
	Camera         Camera
	SamplesPerSide int
	Pcg            *core.PCG
}

// NewImageTracer creates an image tracer. samplesPerPixel must be a
// perfect square; the generator is only consumed when it is larger
// than one.
func NewImageTracer(img *hdr.HdrImage, camera Camera, samplesPerPixel int, pcg *core.PCG) (*ImageTracer, error) {
	samplesPerSide, err := perfectSquareSide(samplesPerPixel)
	if err != nil {
		return nil, err
	}
	return &ImageTracer{
		Image:          img,
		Camera:         camera,
		SamplesPerSide: samplesPerSide,
		Pcg:            pcg,
	}, nil
}

// perfectSquareSide returns k for spp == k², or a configuration error
func perfectSquareSide(samplesPerPixel int) (int, error) {
	if samplesPerPixel < 1 {
		return 0, &core.ConfigurationError{
			Reason: fmt.Sprintf("samples per pixel must be positive, got %d", samplesPerPixel),
		}
	}
	side := int(math.Round(math.Sqrt(float64(samplesPerPixel))))
	if side*side != samplesPerPixel {
		return 0, &core.ConfigurationError{
			Reason: fmt.Sprintf("samples per pixel must be a perfect square, got %d", samplesPerPixel),
		}
	}
	return side, nil
}

// FireRay generates the ray through pixel (col, row) at the sub-pixel
// offset (uPixel, vPixel) in [0, 1]²
func (t *ImageTracer) FireRay(col, row int, uPixel, vPixel float64) core.Ray {
	u := 2.0*(float64(col)+uPixel)/float64(t.Image.Width) - 1.0
	v := 1.0 - 2.0*(float64(row)+vPixel)/float64(t.Image.Height)
	return t.Camera.FireRay(u, v)
}

// RenderPixel evaluates the rendering algorithm for every sub-sample of
// pixel (col, row) and writes the mean radiance into the raster
func (t *ImageTracer) RenderPixel(col, row int, radiance func(core.Ray) core.Color) {
	if t.SamplesPerSide == 1 {
		// Single centered sample, no stratification randomness
		t.Image.SetPixel(col, row, radiance(t.FireRay(col, row, 0.5, 0.5)))
		return
	}

	side := float64(t.SamplesPerSide)
	sum := core.Black
	for subRow := 0; subRow < t.SamplesPerSide; subRow++ {
		for subCol := 0; subCol < t.SamplesPerSide; subCol++ {
			uPixel := (float64(subCol) + t.Pcg.RandomFloat()) / side
			vPixel := (float64(subRow) + t.Pcg.RandomFloat()) / side
			sum = sum.Add(radiance(t.FireRay(col, row, uPixel, vPixel)))
		}
	}
	t.Image.SetPixel(col, row, sum.Multiply(1.0/(side*side)))
}

// FireAllRays renders every pixel of the raster sequentially
func (t *ImageTracer) FireAllRays(radiance func(core.Ray) core.Color) {
	for row := 0; row < t.Image.Height; row++ {
		for col := 0; col < t.Image.Width; col++ {
			t.RenderPixel(col, row, radiance)
		}
	}
}
