package core

import "math"

// Vec represents a 3D direction or displacement (homogeneous coordinate 0)
type Vec struct {
	X, Y, Z float64
}

// Point represents a 3D location (homogeneous coordinate 1)
type Point struct {
	X, Y, Z float64
}

// Normal represents a surface normal; it transforms by the inverse
// transpose of a Transformation rather than by the matrix itself
type Normal struct {
	X, Y, Z float64
}

// Vec2 represents a 2D value, used for surface UV coordinates
type Vec2 struct {
	X, Y float64
}

// NewVec creates a new Vec
func NewVec(x, y, z float64) Vec {
	return Vec{X: x, Y: y, Z: z}
}

// NewPoint creates a new Point
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// NewNormal creates a new Normal
func NewNormal(x, y, z float64) Normal {
	return Normal{X: x, Y: y, Z: z}
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors
func (v Vec) Add(other Vec) Vec {
	return Vec{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec) Subtract(other Vec) Vec {
	return Vec{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec) Multiply(scalar float64) Vec {
	return Vec{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Negate returns the negative of the vector
func (v Vec) Negate() Vec {
	return Vec{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors
func (v Vec) Dot(other Vec) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec) Cross(other Vec) Vec {
	return Vec{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Norm returns the magnitude of the vector
func (v Vec) Norm() float64 {
	return math.Sqrt(v.SquaredNorm())
}

// SquaredNorm returns the squared magnitude of the vector
func (v Vec) SquaredNorm() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize returns a unit vector in the same direction.
// A near-zero input yields the degenerate zero vector; callers must guard.
func (v Vec) Normalize() Vec {
	norm := v.Norm()
	if norm < 1e-12 {
		return Vec{0, 0, 0}
	}
	return Vec{v.X / norm, v.Y / norm, v.Z / norm}
}

// ToNormal reinterprets the vector as a surface normal
func (v Vec) ToNormal() Normal {
	return Normal{v.X, v.Y, v.Z}
}

// IsClose compares two vectors within an absolute tolerance
func (v Vec) IsClose(other Vec, epsilon float64) bool {
	return math.Abs(v.X-other.X) < epsilon &&
		math.Abs(v.Y-other.Y) < epsilon &&
		math.Abs(v.Z-other.Z) < epsilon
}

// AddVec returns the point displaced by a vector
func (p Point) AddVec(v Vec) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// SubtractVec returns the point displaced by the negated vector
func (p Point) SubtractVec(v Vec) Point {
	return Point{p.X - v.X, p.Y - v.Y, p.Z - v.Z}
}

// Subtract returns the displacement vector from other to p
func (p Point) Subtract(other Point) Vec {
	return Vec{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// ToVec reinterprets the point as a displacement from the origin
func (p Point) ToVec() Vec {
	return Vec{p.X, p.Y, p.Z}
}

// IsClose compares two points within an absolute tolerance
func (p Point) IsClose(other Point, epsilon float64) bool {
	return math.Abs(p.X-other.X) < epsilon &&
		math.Abs(p.Y-other.Y) < epsilon &&
		math.Abs(p.Z-other.Z) < epsilon
}

// ToVec reinterprets the normal as an ordinary vector
func (n Normal) ToVec() Vec {
	return Vec{n.X, n.Y, n.Z}
}

// Negate returns the flipped normal
func (n Normal) Negate() Normal {
	return Normal{-n.X, -n.Y, -n.Z}
}

// Normalize returns a unit-length normal.
// A near-zero input yields the degenerate zero normal; callers must guard.
func (n Normal) Normalize() Normal {
	norm := math.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if norm < 1e-12 {
		return Normal{0, 0, 0}
	}
	return Normal{n.X / norm, n.Y / norm, n.Z / norm}
}

// Dot returns the dot product between the normal and a vector
func (n Normal) Dot(v Vec) float64 {
	return n.X*v.X + n.Y*v.Y + n.Z*v.Z
}

// IsClose compares two normals within an absolute tolerance
func (n Normal) IsClose(other Normal, epsilon float64) bool {
	return math.Abs(n.X-other.X) < epsilon &&
		math.Abs(n.Y-other.Y) < epsilon &&
		math.Abs(n.Z-other.Z) < epsilon
}
