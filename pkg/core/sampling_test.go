package core

import (
	"math"
	"testing"
)

func TestCreateONB(t *testing.T) {
	pcg := NewPCG(42, 54)
	for i := 0; i < 100; i++ {
		normal := NewNormal(
			2*pcg.RandomFloat()-1,
			2*pcg.RandomFloat()-1,
			2*pcg.RandomFloat()-1,
		).Normalize()
		if normal.ToVec().Norm() == 0 {
			continue
		}

		e1, e2, e3 := CreateONB(normal)
		if !e3.IsClose(normal.ToVec(), 1e-9) {
			t.Fatalf("e3 = %v, want the normal %v", e3, normal)
		}
		for _, pair := range [][2]Vec{{e1, e2}, {e1, e3}, {e2, e3}} {
			if dot := pair[0].Dot(pair[1]); math.Abs(dot) > 1e-9 {
				t.Fatalf("basis vectors not orthogonal: dot = %g", dot)
			}
		}
		for _, e := range []Vec{e1, e2, e3} {
			if math.Abs(e.Norm()-1) > 1e-9 {
				t.Fatalf("basis vector has norm %f", e.Norm())
			}
		}
		// Right-handed basis
		if !e1.Cross(e2).IsClose(e3, 1e-9) {
			t.Fatalf("e1 x e2 = %v, want %v", e1.Cross(e2), e3)
		}
	}
}

func TestSampleCosineHemisphere(t *testing.T) {
	pcg := NewPCG(1, 2)
	normal := NewNormal(0, 0, 1)

	sum := 0.0
	const n = 10000
	for i := 0; i < n; i++ {
		dir := SampleCosineHemisphere(pcg, normal)
		cos := dir.Dot(normal.ToVec())
		if cos < 0 {
			t.Fatalf("sampled direction below the surface: %v", dir)
		}
		if math.Abs(dir.Norm()-1) > 1e-9 {
			t.Fatalf("sampled direction has norm %f", dir.Norm())
		}
		sum += cos
	}
	// E[cos θ] = 2/3 for cosine-weighted sampling
	mean := sum / n
	if math.Abs(mean-2.0/3.0) > 0.01 {
		t.Errorf("mean cosine = %f, want 2/3", mean)
	}
}
