package geometry

import (
	"math"
	"testing"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
	"github.com/baronauta/RayTracer-sub001/pkg/material"
)

func testMaterial() material.Material {
	return material.NewMaterial(nil, nil)
}

func TestSphereHit(t *testing.T) {
	sphere := NewSphere("s", core.Identity(), testMaterial())

	tests := []struct {
		name       string
		ray        core.Ray
		wantPoint  core.Point
		wantNormal core.Normal
		wantT      float64
	}{
		{
			name:       "from above",
			ray:        core.NewRay(core.NewPoint(0, 0, 2), core.NewVec(0, 0, -1)),
			wantPoint:  core.NewPoint(0, 0, 1),
			wantNormal: core.NewNormal(0, 0, 1),
			wantT:      1.0,
		},
		{
			name:       "from the left",
			ray:        core.NewRay(core.NewPoint(3, 0, 0), core.NewVec(-1, 0, 0)),
			wantPoint:  core.NewPoint(1, 0, 0),
			wantNormal: core.NewNormal(1, 0, 0),
			wantT:      2.0,
		},
		{
			name:       "from inside",
			ray:        core.NewRay(core.NewPoint(0, 0, 0), core.NewVec(1, 0, 0)),
			wantPoint:  core.NewPoint(1, 0, 0),
			wantNormal: core.NewNormal(-1, 0, 0),
			wantT:      1.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := sphere.RayIntersection(tt.ray)
			if !ok {
				t.Fatal("expected a hit")
			}
			if !hit.WorldPoint.IsClose(tt.wantPoint, 1e-9) {
				t.Errorf("point = %v, want %v", hit.WorldPoint, tt.wantPoint)
			}
			if !hit.Normal.IsClose(tt.wantNormal, 1e-9) {
				t.Errorf("normal = %v, want %v", hit.Normal, tt.wantNormal)
			}
			if math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("t = %f, want %f", hit.T, tt.wantT)
			}
		})
	}
}

func TestSphereMiss(t *testing.T) {
	sphere := NewSphere("s", core.Identity(), testMaterial())

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"off axis", core.NewRay(core.NewPoint(0, 2, 2), core.NewVec(0, 0, -1))},
		{"pointing away", core.NewRay(core.NewPoint(0, 0, 2), core.NewVec(0, 0, 1))},
		{"behind origin", core.NewRay(core.NewPoint(3, 0, 0), core.NewVec(1, 0, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := sphere.RayIntersection(tt.ray); ok {
				t.Error("unexpected hit")
			}
		})
	}
}

func TestSphereTransformed(t *testing.T) {
	sphere := NewSphere("s", core.Translation(core.NewVec(10, 0, 0)), testMaterial())

	hit, ok := sphere.RayIntersection(
		core.NewRay(core.NewPoint(10, 0, 2), core.NewVec(0, 0, -1)))
	if !ok {
		t.Fatal("expected a hit on the translated sphere")
	}
	if !hit.WorldPoint.IsClose(core.NewPoint(10, 0, 1), 1e-9) {
		t.Errorf("point = %v", hit.WorldPoint)
	}
	if !hit.Normal.IsClose(core.NewNormal(0, 0, 1), 1e-9) {
		t.Errorf("normal = %v", hit.Normal)
	}

	// The untransformed location no longer intersects
	if _, ok := sphere.RayIntersection(
		core.NewRay(core.NewPoint(0, 0, 2), core.NewVec(0, 0, -1))); ok {
		t.Error("hit at the original location after translation")
	}
}

func TestSphereScaledNormal(t *testing.T) {
	scaling, _ := core.Scaling(2, 1, 1)
	sphere := NewSphere("s", scaling, testMaterial())

	hit, ok := sphere.RayIntersection(
		core.NewRay(core.NewPoint(3, 0, 0), core.NewVec(-1, 0, 0)))
	if !ok {
		t.Fatal("expected a hit on the scaled sphere")
	}
	if !hit.WorldPoint.IsClose(core.NewPoint(2, 0, 0), 1e-9) {
		t.Errorf("point = %v", hit.WorldPoint)
	}
	if !hit.Normal.Normalize().IsClose(core.NewNormal(1, 0, 0), 1e-9) {
		t.Errorf("normal = %v", hit.Normal)
	}
}

func TestSphereUV(t *testing.T) {
	sphere := NewSphere("s", core.Identity(), testMaterial())

	tests := []struct {
		ray  core.Ray
		want core.Vec2
	}{
		{core.NewRay(core.NewPoint(2, 0, 0), core.NewVec(-1, 0, 0)), core.Vec2{X: 0, Y: 0.5}},
		{core.NewRay(core.NewPoint(0, 2, 0), core.NewVec(0, -1, 0)), core.Vec2{X: 0.25, Y: 0.5}},
		{core.NewRay(core.NewPoint(-2, 0, 0), core.NewVec(1, 0, 0)), core.Vec2{X: 0.5, Y: 0.5}},
		{core.NewRay(core.NewPoint(0, 0, 2), core.NewVec(0, 0, -1)), core.Vec2{X: 0, Y: 0}},
	}
	for _, tt := range tests {
		hit, ok := sphere.RayIntersection(tt.ray)
		if !ok {
			t.Fatal("expected a hit")
		}
		if math.Abs(hit.SurfaceUV.X-tt.want.X) > 1e-9 || math.Abs(hit.SurfaceUV.Y-tt.want.Y) > 1e-9 {
			t.Errorf("uv = %v, want %v", hit.SurfaceUV, tt.want)
		}
	}
}

func TestSphereRayIntervals(t *testing.T) {
	sphere := NewSphere("s", core.Identity(), testMaterial())

	intervals := sphere.RayIntervals(
		core.NewRay(core.NewPoint(0, 0, 3), core.NewVec(0, 0, -1)))
	if len(intervals) != 1 {
		t.Fatalf("got %d intervals, want 1", len(intervals))
	}
	iv := intervals[0]
	if math.Abs(iv.TIn-2) > 1e-9 || math.Abs(iv.TOut-4) > 1e-9 {
		t.Errorf("interval = [%f, %f], want [2, 4]", iv.TIn, iv.TOut)
	}
	if iv.InHit == nil || iv.OutHit == nil {
		t.Fatal("interval endpoints carry no hit records")
	}
	if !iv.InHit.WorldPoint.IsClose(core.NewPoint(0, 0, 1), 1e-9) {
		t.Errorf("entry point = %v", iv.InHit.WorldPoint)
	}
	if !iv.OutHit.WorldPoint.IsClose(core.NewPoint(0, 0, -1), 1e-9) {
		t.Errorf("exit point = %v", iv.OutHit.WorldPoint)
	}

	if missed := sphere.RayIntervals(
		core.NewRay(core.NewPoint(0, 5, 3), core.NewVec(0, 0, -1))); len(missed) != 0 {
		t.Errorf("miss produced %d intervals", len(missed))
	}
}

func TestSphereClone(t *testing.T) {
	scaling, _ := core.Scaling(2, 2, 2)
	sphere := NewSphere("orig", scaling, testMaterial())
	clone := sphere.Clone("copy")

	if clone.Name() != "copy" {
		t.Errorf("clone name = %q", clone.Name())
	}
	if !clone.Transform().IsClose(sphere.Transform(), 1e-9) {
		t.Error("clone transform differs from the original")
	}
}
