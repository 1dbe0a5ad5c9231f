package renderer

import (
	"math"

	"github.com/baronauta/RayTracer-sub001/pkg/core"
)

// Camera maps normalized image-plane coordinates (u, v) in [-1, 1]² to
// world-space rays. The variant set is closed: perspective and orthogonal.
type Camera interface {
	// FireRay generates the ray through image-plane coordinates (u, v)
	FireRay(u, v float64) core.Ray

	// SetAspectRatio adapts the horizontal field to the output raster;
	// call it once before tracing
	SetAspectRatio(aspect float64)

	// Transformed returns a copy of the camera with the given transform
	// applied on top of its own, used for animation frames
	Transformed(t core.Transformation) Camera
}

// PerspectiveCamera fires rays from a fixed eye point through the image
// plane at ScreenDistance. A larger distance narrows the field of view.
type PerspectiveCamera struct {
	ScreenDistance float64
	AspectRatio    float64
	Transform      core.Transformation
}

// NewPerspectiveCamera creates a perspective camera; the aspect ratio
// defaults to 1 until SetAspectRatio is called
func NewPerspectiveCamera(screenDistance float64, transform core.Transformation) *PerspectiveCamera {
	return &PerspectiveCamera{
		ScreenDistance: screenDistance,
		AspectRatio:    1.0,
		Transform:      transform,
	}
}

// FireRay implements the Camera interface
func (c *PerspectiveCamera) FireRay(u, v float64) core.Ray {
	origin := core.NewPoint(-c.ScreenDistance, 0, 0)
	direction := core.NewVec(c.ScreenDistance, -u*c.AspectRatio, v)

	ray := core.Ray{
		Origin:    c.Transform.ApplyPoint(origin),
		Direction: c.Transform.ApplyVec(direction).Normalize(),
		TMin:      1e-5,
		TMax:      math.Inf(1),
		Depth:     0,
	}
	return ray
}

// SetAspectRatio implements the Camera interface
func (c *PerspectiveCamera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
}

// Transformed implements the Camera interface
func (c *PerspectiveCamera) Transformed(t core.Transformation) Camera {
	clone := *c
	clone.Transform = t.Compose(c.Transform)
	return &clone
}

// OrthogonalCamera fires parallel rays along its forward axis, with the
// origin varying across the image plane
type OrthogonalCamera struct {
	AspectRatio float64
	Transform   core.Transformation
}

// NewOrthogonalCamera creates an orthogonal camera; the aspect ratio
// defaults to 1 until SetAspectRatio is called
func NewOrthogonalCamera(transform core.Transformation) *OrthogonalCamera {
	return &OrthogonalCamera{AspectRatio: 1.0, Transform: transform}
}

// FireRay implements the Camera interface
func (c *OrthogonalCamera) FireRay(u, v float64) core.Ray {
	origin := core.NewPoint(-1, -u*c.AspectRatio, v)
	direction := core.NewVec(1, 0, 0)

	return core.Ray{
		Origin:    c.Transform.ApplyPoint(origin),
		Direction: c.Transform.ApplyVec(direction),
		TMin:      1e-5,
		TMax:      math.Inf(1),
		Depth:     0,
	}
}

// SetAspectRatio implements the Camera interface
func (c *OrthogonalCamera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
}

// Transformed implements the Camera interface
func (c *OrthogonalCamera) Transformed(t core.Transformation) Camera {
	clone := *c
	clone.Transform = t.Compose(c.Transform)
	return &clone
}

// Motion describes camera animation: the per-frame transformation step
// and the number of frames to render
type Motion struct {
	Transform core.Transformation
	NumFrames int
}

// FrameCamera returns the camera for frame index k (0-based): the motion
// step applied k times on top of the scene camera
func (m Motion) FrameCamera(cam Camera, frame int) Camera {
	step := core.Identity()
	for i := 0; i < frame; i++ {
		step = m.Transform.Compose(step)
	}
	return cam.Transformed(step)
}
