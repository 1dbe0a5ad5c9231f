package renderer

import (
	"math"
	"testing"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
)

func TestOrthogonalCameraFireRay(t *testing.T) {
	cam := NewOrthogonalCamera(core.Identity())
	cam.SetAspectRatio(2.0)

	// The four image-plane corners at t = 1
	tests := []struct {
		u, v float64
		want core.Point
	}{
		{-1, -1, core.NewPoint(0, 2, -1)},
		{1, -1, core.NewPoint(0, -2, -1)},
		{-1, 1, core.NewPoint(0, 2, 1)},
		{1, 1, core.NewPoint(0, -2, 1)},
	}
	for _, tt := range tests {
		ray := cam.FireRay(tt.u, tt.v)
		if got := ray.At(1); !got.IsClose(tt.want, 1e-9) {
			t.Errorf("FireRay(%f, %f).At(1) = %v, want %v", tt.u, tt.v, got, tt.want)
		}
		if !ray.Direction.IsClose(core.NewVec(1, 0, 0), 1e-9) {
			t.Errorf("direction = %v, want (1, 0, 0)", ray.Direction)
		}
	}
}

func TestPerspectiveCameraFireRay(t *testing.T) {
	cam := NewPerspectiveCamera(1.0, core.Identity())
	cam.SetAspectRatio(2.0)

	// All rays leave the same eye point
	r1 := cam.FireRay(0, 0)
	r2 := cam.FireRay(1, 1)
	if !r1.Origin.IsClose(r2.Origin, 1e-9) {
		t.Errorf("eye points differ: %v vs %v", r1.Origin, r2.Origin)
	}
	if !r1.Origin.IsClose(core.NewPoint(-1, 0, 0), 1e-9) {
		t.Errorf("eye point = %v, want (-1, 0, 0)", r1.Origin)
	}

	// The center ray looks straight down +x
	if !r1.Direction.IsClose(core.NewVec(1, 0, 0), 1e-9) {
		t.Errorf("center direction = %v", r1.Direction)
	}

	// Directions are normalized
	if math.Abs(r2.Direction.Norm()-1) > 1e-9 {
		t.Errorf("direction norm = %f", r2.Direction.Norm())
	}

	// The corner ray reaches the image-plane corner on x = 0
	dir := core.NewVec(1, -2, 1).Normalize()
	if !r2.Direction.IsClose(dir, 1e-9) {
		t.Errorf("corner direction = %v, want %v", r2.Direction, dir)
	}
}

func TestPerspectiveCameraTransformed(t *testing.T) {
	base := NewPerspectiveCamera(1.0, core.Identity())
	moved := base.Transformed(core.Translation(core.NewVec(0, 10, 0)))

	ray := moved.FireRay(0, 0)
	if !ray.Origin.IsClose(core.NewPoint(-1, 10, 0), 1e-9) {
		t.Errorf("transformed eye point = %v", ray.Origin)
	}

	// The base camera is untouched
	if got := base.FireRay(0, 0).Origin; !got.IsClose(core.NewPoint(-1, 0, 0), 1e-9) {
		t.Errorf("base eye point moved to %v", got)
	}
}

func TestMotionFrameCamera(t *testing.T) {
	cam := NewOrthogonalCamera(core.Identity())
	motion := Motion{Transform: core.Translation(core.NewVec(0, 0, 1)), NumFrames: 4}

	for frame := 0; frame < motion.NumFrames; frame++ {
		ray := motion.FrameCamera(cam, frame).FireRay(0, 0)
		want := core.NewPoint(-1, 0, float64(frame))
		if !ray.Origin.IsClose(want, 1e-9) {
			t.Errorf("frame %d origin = %v, want %v", frame, ray.Origin, want)
		}
	}
}

func TestMotionRotationAccumulates(t *testing.T) {
	cam := NewOrthogonalCamera(core.Identity())
	motion := Motion{Transform: core.RotationZ(90), NumFrames: 4}

	// After two 90-degree steps the forward axis is reversed
	ray := motion.FrameCamera(cam, 2).FireRay(0, 0)
	if !ray.Direction.IsClose(core.NewVec(-1, 0, 0), 1e-9) {
		t.Errorf("frame 2 direction = %v, want (-1, 0, 0)", ray.Direction)
	}
}
