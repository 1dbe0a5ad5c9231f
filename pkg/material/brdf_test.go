package material

import (
	"math"
	"testing"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
)

func TestDiffuseBRDFEval(t *testing.T) {
	b := NewDiffuseBRDF(NewUniformPigment(core.NewColor(0.5, 0.5, 0.5)))
	got := b.Eval(core.NewNormal(0, 0, 1), core.NewVec(0, 0, -1), core.NewVec(0, 0, 1), core.Vec2{})
	want := core.NewColor(0.5/math.Pi, 0.5/math.Pi, 0.5/math.Pi)
	if !got.IsClose(want, 1e-9) {
		t.Errorf("Eval = %v, want %v", got, want)
	}
}

func TestDiffuseBRDFScatterStaysAboveSurface(t *testing.T) {
	b := NewDiffuseBRDF(NewUniformPigment(core.White))
	pcg := core.NewPCG(42, 54)
	point := core.NewPoint(0, 0, 0)
	normal := core.NewNormal(0, 0, 1)

	for i := 0; i < 100; i++ {
		ray := b.ScatterRay(pcg, core.NewVec(1, 0, -1), point, normal, 3)
		if ray.Direction.Dot(normal.ToVec()) < 0 {
			t.Fatalf("scattered ray goes below the surface: %v", ray.Direction)
		}
		if ray.Depth != 3 {
			t.Fatalf("scattered ray has depth %d, want 3", ray.Depth)
		}
	}
}

func TestSpecularBRDFScatterReflects(t *testing.T) {
	b := NewSpecularBRDF(NewUniformPigment(core.White))
	point := core.NewPoint(0, 0, 0)
	normal := core.NewNormal(0, 0, 1)

	tests := []struct {
		in   core.Vec
		want core.Vec
	}{
		{core.NewVec(1, 0, -1), core.NewVec(1, 0, 1)},
		{core.NewVec(0, 0, -1), core.NewVec(0, 0, 1)},
		{core.NewVec(0, 2, -2), core.NewVec(0, 2, 2)},
	}
	for _, tt := range tests {
		ray := b.ScatterRay(nil, tt.in, point, normal, 1)
		if !ray.Direction.Normalize().IsClose(tt.want.Normalize(), 1e-9) {
			t.Errorf("ScatterRay(%v) direction = %v, want %v", tt.in, ray.Direction, tt.want)
		}
	}
}

func TestSpecularBRDFIsDeterministic(t *testing.T) {
	b := NewSpecularBRDF(NewUniformPigment(core.White))
	if !b.IsSpecular() {
		t.Error("specular BRDF reports IsSpecular() = false")
	}

	// A nil generator must be safe: mirrors draw no random numbers.
	r1 := b.ScatterRay(nil, core.NewVec(1, 2, -3), core.NewPoint(0, 0, 0), core.NewNormal(0, 0, 1), 0)
	r2 := b.ScatterRay(nil, core.NewVec(1, 2, -3), core.NewPoint(0, 0, 0), core.NewNormal(0, 0, 1), 0)
	if !r1.IsClose(r2, 1e-12) {
		t.Error("two mirror scatters of the same ray differ")
	}
}

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial(nil, nil)
	if m.BRDF == nil {
		t.Fatal("default material has nil BRDF")
	}
	if got := m.EmittedRadiance.Evaluate(core.Vec2{}); !got.IsClose(core.Black, 1e-9) {
		t.Errorf("default emitted radiance = %v, want black", got)
	}
	if got := m.BRDF.Pigment().Evaluate(core.Vec2{}); !got.IsClose(core.White, 1e-9) {
		t.Errorf("default reflectance = %v, want white", got)
	}
}
