package core

import (
	"fmt"
	"math"
)

// matrix is a 4x4 row-major homogeneous matrix
type matrix [4][4]float64

var identityMatrix = matrix{
	{1, 0, 0, 0},
	{0, 1, 0, 0},
	{0, 0, 1, 0},
	{0, 0, 0, 1},
}

// mul returns the matrix product m * other
func (m matrix) mul(other matrix) matrix {
	var result matrix
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row][k] * other[k][col]
			}
			result[row][col] = sum
		}
	}
	return result
}

// isClose compares two matrices element-wise within an absolute tolerance
func (m matrix) isClose(other matrix, epsilon float64) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if math.Abs(m[row][col]-other[row][col]) > epsilon {
				return false
			}
		}
	}
	return true
}

// Transformation is an affine transform carrying its precomputed inverse,
// so intersection tests never pay for a matrix inversion
type Transformation struct {
	M    matrix
	InvM matrix
}

// Identity returns the neutral transformation
func Identity() Transformation {
	return Transformation{M: identityMatrix, InvM: identityMatrix}
}

// Translation returns the transformation moving points by the given vector
func Translation(v Vec) Transformation {
	return Transformation{
		M: matrix{
			{1, 0, 0, v.X},
			{0, 1, 0, v.Y},
			{0, 0, 1, v.Z},
			{0, 0, 0, 1},
		},
		InvM: matrix{
			{1, 0, 0, -v.X},
			{0, 1, 0, -v.Y},
			{0, 0, 1, -v.Z},
			{0, 0, 0, 1},
		},
	}
}

// Scaling returns the transformation scaling each axis by the given factor.
// A zero factor produces a non-invertible matrix and is rejected.
func Scaling(sx, sy, sz float64) (Transformation, error) {
	if sx == 0 || sy == 0 || sz == 0 {
		return Transformation{}, &DegenerateGeometryError{
			Op:     "scaling",
			Reason: fmt.Sprintf("zero scaling factor (%g, %g, %g)", sx, sy, sz),
		}
	}
	return Transformation{
		M: matrix{
			{sx, 0, 0, 0},
			{0, sy, 0, 0},
			{0, 0, sz, 0},
			{0, 0, 0, 1},
		},
		InvM: matrix{
			{1 / sx, 0, 0, 0},
			{0, 1 / sy, 0, 0},
			{0, 0, 1 / sz, 0},
			{0, 0, 0, 1},
		},
	}, nil
}

// RotationX returns the rotation around the X axis by the given angle in degrees
func RotationX(angleDeg float64) Transformation {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	return Transformation{
		M: matrix{
			{1, 0, 0, 0},
			{0, cos, -sin, 0},
			{0, sin, cos, 0},
			{0, 0, 0, 1},
		},
		InvM: matrix{
			{1, 0, 0, 0},
			{0, cos, sin, 0},
			{0, -sin, cos, 0},
			{0, 0, 0, 1},
		},
	}
}

// RotationY returns the rotation around the Y axis by the given angle in degrees
func RotationY(angleDeg float64) Transformation {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	return Transformation{
		M: matrix{
			{cos, 0, sin, 0},
			{0, 1, 0, 0},
			{-sin, 0, cos, 0},
			{0, 0, 0, 1},
		},
		InvM: matrix{
			{cos, 0, -sin, 0},
			{0, 1, 0, 0},
			{sin, 0, cos, 0},
			{0, 0, 0, 1},
		},
	}
}

// RotationZ returns the rotation around the Z axis by the given angle in degrees
func RotationZ(angleDeg float64) Transformation {
	sin, cos := math.Sincos(angleDeg * math.Pi / 180)
	return Transformation{
		M: matrix{
			{cos, -sin, 0, 0},
			{sin, cos, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
		InvM: matrix{
			{cos, sin, 0, 0},
			{-sin, cos, 0, 0},
			{0, 0, 1, 0},
			{0, 0, 0, 1},
		},
	}
}

// Compose returns the transformation applying other first and t second,
// matching the right-to-left convention of matrix products
func (t Transformation) Compose(other Transformation) Transformation {
	return Transformation{
		M:    t.M.mul(other.M),
		InvM: other.InvM.mul(t.InvM),
	}
}

// Inverse returns the inverse transformation by swapping the cached matrices
func (t Transformation) Inverse() Transformation {
	return Transformation{M: t.InvM, InvM: t.M}
}

// IsConsistent reports whether M * InvM is the identity, used by tests
func (t Transformation) IsConsistent(epsilon float64) bool {
	return t.M.mul(t.InvM).isClose(identityMatrix, epsilon)
}

// IsClose compares two transformations within an absolute tolerance
func (t Transformation) IsClose(other Transformation, epsilon float64) bool {
	return t.M.isClose(other.M, epsilon) && t.InvM.isClose(other.InvM, epsilon)
}

// ApplyPoint transforms a point (homogeneous coordinate 1)
func (t Transformation) ApplyPoint(p Point) Point {
	result := Point{
		X: t.M[0][0]*p.X + t.M[0][1]*p.Y + t.M[0][2]*p.Z + t.M[0][3],
		Y: t.M[1][0]*p.X + t.M[1][1]*p.Y + t.M[1][2]*p.Z + t.M[1][3],
		Z: t.M[2][0]*p.X + t.M[2][1]*p.Y + t.M[2][2]*p.Z + t.M[2][3],
	}
	w := t.M[3][0]*p.X + t.M[3][1]*p.Y + t.M[3][2]*p.Z + t.M[3][3]
	if w != 1 && w != 0 {
		result = Point{result.X / w, result.Y / w, result.Z / w}
	}
	return result
}

// ApplyVec transforms a vector (homogeneous coordinate 0)
func (t Transformation) ApplyVec(v Vec) Vec {
	return Vec{
		X: t.M[0][0]*v.X + t.M[0][1]*v.Y + t.M[0][2]*v.Z,
		Y: t.M[1][0]*v.X + t.M[1][1]*v.Y + t.M[1][2]*v.Z,
		Z: t.M[2][0]*v.X + t.M[2][1]*v.Y + t.M[2][2]*v.Z,
	}
}

// ApplyNormal transforms a surface normal using the transposed inverse matrix
func (t Transformation) ApplyNormal(n Normal) Normal {
	return Normal{
		X: t.InvM[0][0]*n.X + t.InvM[1][0]*n.Y + t.InvM[2][0]*n.Z,
		Y: t.InvM[0][1]*n.X + t.InvM[1][1]*n.Y + t.InvM[2][1]*n.Z,
		Z: t.InvM[0][2]*n.X + t.InvM[1][2]*n.Y + t.InvM[2][2]*n.Z,
	}
}
