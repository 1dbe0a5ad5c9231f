package core

import "math"

// Color represents an RGB radiance value with float64 components
type Color struct {
	R, G, B float64
}

// Predefined colors used as defaults by the tracers
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns component-wise multiplication of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Luminosity returns the Shinya/Ichimura luminosity (max+min)/2 of the color
func (c Color) Luminosity() float64 {
	maxC := math.Max(c.R, math.Max(c.G, c.B))
	minC := math.Min(c.R, math.Min(c.G, c.B))
	return (maxC + minC) / 2
}

// MaxComponent returns the largest of the three channels
func (c Color) MaxComponent() float64 {
	return math.Max(c.R, math.Max(c.G, c.B))
}

// IsClose compares two colors within an absolute tolerance
func (c Color) IsClose(other Color, epsilon float64) bool {
	return math.Abs(c.R-other.R) < epsilon &&
		math.Abs(c.G-other.G) < epsilon &&
		math.Abs(c.B-other.B) < epsilon
}
