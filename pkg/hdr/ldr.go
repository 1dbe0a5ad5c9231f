package hdr

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
)

// WriteLdrFile tone-maps nothing by itself; it converts the (already
// normalized and clamped) image to 8-bit and encodes it according to the
// file extension. Supported extensions: .png, .jpg, .jpeg.
func (img *HdrImage) WriteLdrFile(path string, gamma float64) error {
	ldr := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))

	invGamma := 1.0 / gamma
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			c := img.GetPixel(col, row)
			ldr.Set(col, row, color.RGBA{
				R: toLdrChannel(c.R, invGamma),
				G: toLdrChannel(c.G, invGamma),
				B: toLdrChannel(c.B, invGamma),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return png.Encode(f, ldr)
	case ".jpg", ".jpeg":
		return jpeg.Encode(f, ldr, &jpeg.Options{Quality: 95})
	default:
		return &core.ConfigurationError{
			Reason: fmt.Sprintf("unsupported output extension %q", filepath.Ext(path)),
		}
	}
}

// toLdrChannel applies gamma correction and quantizes a [0, 1] sample
func toLdrChannel(sample, invGamma float64) uint8 {
	corrected := math.Pow(math.Max(0, math.Min(1, sample)), invGamma)
	return uint8(255 * corrected)
}
