package hdr

import (
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
)

// LoadImage reads an image usable as a textured pigment. PFM files keep
// their full dynamic range; PNG/JPEG files are converted to [0, 1] floats.
// Loading happens once at scene-build time, before rendering begins.
func LoadImage(path string) (*HdrImage, error) {
	if strings.ToLower(filepath.Ext(path)) == ".pfm" {
		return ReadPFMFile(path)
	}
	return loadLdrImage(path)
}

// loadLdrImage decodes a PNG or JPEG image into an HDR buffer
func loadLdrImage(path string) (*HdrImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Reason: err.Error()}
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, &FileError{Path: path, Reason: err.Error()}
	}

	bounds := decoded.Bounds()
	img := NewHdrImage(bounds.Dx(), bounds.Dy())
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			r, g, b, _ := decoded.At(col+bounds.Min.X, row+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			img.SetPixel(col, row, core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			))
		}
	}

	return img, nil
}
