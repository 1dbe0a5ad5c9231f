package material

import (
	"math"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/hdr"
)

// Pigment maps a surface UV pair to an RGB color. The variant set is
// closed: uniform, checkered and image pigments.
type Pigment interface {
	Evaluate(uv core.Vec2) core.Color
}

// UniformPigment returns the same color everywhere
type UniformPigment struct {
	Color core.Color
}

// NewUniformPigment creates a pigment with a single flat color
func NewUniformPigment(c core.Color) *UniformPigment {
	return &UniformPigment{Color: c}
}

// Evaluate implements the Pigment interface
func (p *UniformPigment) Evaluate(uv core.Vec2) core.Color {
	return p.Color
}

// CheckeredPigment alternates two colors on a grid of SquaresPerUnit cells
// per unit of UV distance
type CheckeredPigment struct {
	Color1         core.Color
	Color2         core.Color
	SquaresPerUnit int
}

// NewCheckeredPigment creates a checkerboard pigment
func NewCheckeredPigment(c1, c2 core.Color, squaresPerUnit int) *CheckeredPigment {
	return &CheckeredPigment{Color1: c1, Color2: c2, SquaresPerUnit: squaresPerUnit}
}

// Evaluate implements the Pigment interface using the parity of the cell
// indices floor(u*n) + floor(v*n)
func (p *CheckeredPigment) Evaluate(uv core.Vec2) core.Color {
	n := float64(p.SquaresPerUnit)
	col := int(math.Floor(uv.X * n))
	row := int(math.Floor(uv.Y * n))

	if (col+row)%2 == 0 {
		return p.Color1
	}
	return p.Color2
}

// ImagePigment samples a loaded 2D color field by UV, nearest-pixel
type ImagePigment struct {
	Image *hdr.HdrImage
}

// NewImagePigment creates a pigment backed by an image
func NewImagePigment(img *hdr.HdrImage) *ImagePigment {
	return &ImagePigment{Image: img}
}

// Evaluate implements the Pigment interface, clamping UV to [0, 1)
func (p *ImagePigment) Evaluate(uv core.Vec2) core.Color {
	col := int(uv.X * float64(p.Image.Width))
	row := int(uv.Y * float64(p.Image.Height))

	if col < 0 {
		col = 0
	} else if col >= p.Image.Width {
		col = p.Image.Width - 1
	}
	if row < 0 {
		row = 0
	} else if row >= p.Image.Height {
		row = p.Image.Height - 1
	}

	return p.Image.GetPixel(col, row)
}
