package camera

import "github.com/Faultbox/orrery/pkg/math"

// Lens describes the perspective projection used with the camera.
type Lens struct {
	FovY float32 // radians
	Near float32
	Far  float32
}

// DefaultLens is a 45 degree lens that keeps the outermost orbit in range.
func DefaultLens() Lens {
	return Lens{
		FovY: math.Radians(45),
		Near: 0.1,
		Far:  1000,
	}
}

// Projection returns the perspective matrix for the given aspect ratio.
// A non-positive aspect (minimized window) falls back to 1.
func (l Lens) Projection(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(l.FovY, aspect, l.Near, l.Far)
}
