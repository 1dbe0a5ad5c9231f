// Package hdr provides the floating-point RGB raster buffer the rendering
// kernel writes into, together with PFM input/output, tone mapping and
// LDR export.
package hdr

import (
	"fmt"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
)

// HdrImage is a mutable 2D buffer of RGB radiance values, row-major with
// the origin at the top-left corner
type HdrImage struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewHdrImage creates a black image of the given size
func NewHdrImage(width, height int) *HdrImage {
	return &HdrImage{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// ValidCoordinates reports whether (col, row) addresses a pixel
func (img *HdrImage) ValidCoordinates(col, row int) bool {
	return col >= 0 && col < img.Width && row >= 0 && row < img.Height
}

// pixelOffset returns the index of (col, row) in the pixel slice
func (img *HdrImage) pixelOffset(col, row int) int {
	return row*img.Width + col
}

// GetPixel returns the color at (col, row)
func (img *HdrImage) GetPixel(col, row int) core.Color {
	return img.Pixels[img.pixelOffset(col, row)]
}

// SetPixel overwrites the color at (col, row)
func (img *HdrImage) SetPixel(col, row int, c core.Color) {
	img.Pixels[img.pixelOffset(col, row)] = c
}

// FileError reports a missing or corrupt image file
type FileError struct {
	Path   string
	Reason string
}

func (e *FileError) Error() string {
	return fmt.Sprintf("image file %q: %s", e.Path, e.Reason)
}
