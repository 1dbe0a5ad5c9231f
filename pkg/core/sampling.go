package core

import "math"

// CreateONB builds a right-handed orthonormal basis whose third axis is the
// given normal, using the branchless construction by Duff et al. (2017).
// The normal must be unit length.
func CreateONB(normal Normal) (e1, e2, e3 Vec) {
	sign := math.Copysign(1.0, normal.Z)
	a := -1.0 / (sign + normal.Z)
	b := normal.X * normal.Y * a

	e1 = NewVec(1.0+sign*normal.X*normal.X*a, sign*b, -sign*normal.X)
	e2 = NewVec(b, sign+normal.Y*normal.Y*a, -normal.Y)
	e3 = normal.ToVec()
	return e1, e2, e3
}

// SampleCosineHemisphere draws a cosine-weighted direction in the hemisphere
// around the given unit normal, consuming two values from the generator
func SampleCosineHemisphere(pcg *PCG, normal Normal) Vec {
	e1, e2, e3 := CreateONB(normal)

	cosThetaSq := pcg.RandomFloat()
	cosTheta := math.Sqrt(cosThetaSq)
	sinTheta := math.Sqrt(1.0 - cosThetaSq)
	phi := 2.0 * math.Pi * pcg.RandomFloat()

	return e1.Multiply(math.Cos(phi) * sinTheta).
		Add(e2.Multiply(math.Sin(phi) * sinTheta)).
		Add(e3.Multiply(cosTheta))
}
