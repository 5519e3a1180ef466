package celestial

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/internal/engine/gfx"
	"github.com/Faultbox/orrery/pkg/math"
)

// DefaultOrbitSegments is the line resolution of an orbit circle.
const DefaultOrbitSegments = 100

// Orbit is a closed circle of the given radius in the y=0 plane, drawn as
// a line loop. The geometry is immutable after construction.
type Orbit struct {
	radius   float32
	segments int
	points   []math.Vec3

	backend gfx.Backend
	mesh    gfx.Mesh
}

// NewOrbit generates segments+1 points around the circle; the first and
// last coincide.
func NewOrbit(radius float32, segments int) (*Orbit, error) {
	if radius < 0 {
		return nil, fmt.Errorf("orbit radius %v: %w", radius, ErrNegativeRadius)
	}
	if segments < 3 {
		return nil, fmt.Errorf("orbit with %d segments: %w", segments, ErrInvalidSegments)
	}

	step := 2 * math32.Pi / float32(segments)
	points := make([]math.Vec3, 0, segments+1)
	for i := 0; i <= segments; i++ {
		s, c := math32.Sincos(float32(i) * step)
		points = append(points, math.Vec3{X: radius * c, Y: 0, Z: radius * s})
	}
	// Close the loop exactly; sin/cos of 2*pi in float32 is not exact.
	points[segments] = points[0]

	return &Orbit{
		radius:   radius,
		segments: segments,
		points:   points,
	}, nil
}

// Radius returns the orbit radius.
func (o *Orbit) Radius() float32 { return o.radius }

// Segments returns the number of line segments.
func (o *Orbit) Segments() int { return o.segments }

// Points returns the generated points. Callers must not modify them.
func (o *Orbit) Points() []math.Vec3 { return o.points }

// Vertices returns the points as interleaved xyz floats.
func (o *Orbit) Vertices() []float32 {
	out := make([]float32, 0, len(o.points)*3)
	for _, p := range o.points {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}

// Upload creates the GPU line buffer. Calling it again is a no-op.
func (o *Orbit) Upload(b gfx.Backend) error {
	if o.mesh.Valid() {
		return nil
	}
	mesh, err := b.CreateMesh(o.Vertices(), gfx.LayoutPosition, nil)
	if err != nil {
		return fmt.Errorf("uploading orbit r=%v: %w", o.radius, err)
	}
	o.backend = b
	o.mesh = mesh
	return nil
}

// Uploaded reports whether GPU resources exist.
func (o *Orbit) Uploaded() bool {
	return o.mesh.Valid()
}

// Draw renders the loop. It does nothing if Upload never succeeded.
func (o *Orbit) Draw() {
	if !o.mesh.Valid() {
		return
	}
	o.backend.DrawLineLoop(o.mesh)
}

// Release frees the GPU buffer. Safe to call more than once.
func (o *Orbit) Release() {
	if o.backend == nil {
		return
	}
	o.backend.DeleteMesh(&o.mesh)
	o.backend = nil
}
