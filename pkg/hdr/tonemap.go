package hdr

import "math"

// AverageLuminosity returns the logarithmic average of the pixel
// luminosities. The delta guards against zero-luminosity pixels.
func (img *HdrImage) AverageLuminosity(delta float64) float64 {
	sum := 0.0
	for _, pixel := range img.Pixels {
		sum += math.Log10(delta + pixel.Luminosity())
	}
	return math.Pow(10, sum/float64(len(img.Pixels)))
}

// NormalizeImage rescales every pixel so that the image average luminosity
// maps to the given alpha value
func (img *HdrImage) NormalizeImage(alpha float64) {
	factor := alpha / img.AverageLuminosity(1e-10)
	for i, pixel := range img.Pixels {
		img.Pixels[i] = pixel.Multiply(factor)
	}
}

// clamp compresses an unbounded radiance value into [0, 1)
func clamp(x float64) float64 {
	return x / (1 + x)
}

// ClampImage compresses every channel into the displayable [0, 1) range
func (img *HdrImage) ClampImage() {
	for i, pixel := range img.Pixels {
		img.Pixels[i].R = clamp(pixel.R)
		img.Pixels[i].G = clamp(pixel.G)
		img.Pixels[i].B = clamp(pixel.B)
	}
}
