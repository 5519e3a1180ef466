package celestial

import (
	"fmt"

	"github.com/Faultbox/orrery/internal/engine/gfx"
)

// Body is a textured sphere that may travel along its own orbit. The mesh
// is fixed at construction; the speeds and the surface texture may change
// at any time.
type Body struct {
	Name string

	// RotationSpeed is the spin about the body's own Y axis, radians per
	// unit of scene time. Negative spins retrograde.
	RotationSpeed float32
	// OrbitSpeed is the angular speed along the orbit, radians per unit of
	// scene time.
	OrbitSpeed float32
	// Texture is the surface appearance bound before drawing.
	Texture gfx.Texture

	mesh  *SphereMesh
	orbit *Orbit // nil for a body that does not orbit

	backend gfx.Backend
	gpu     gfx.Mesh
}

// NewBody generates the sphere geometry and, when orbitRadius > 0, the
// orbit the body exclusively owns. orbitSegments <= 0 selects
// DefaultOrbitSegments.
func NewBody(name string, radius float32, sectors, stacks int, orbitRadius float32, orbitSegments int) (*Body, error) {
	mesh, err := BuildSphere(radius, sectors, stacks)
	if err != nil {
		return nil, fmt.Errorf("body %q: %w", name, err)
	}

	b := &Body{Name: name, mesh: mesh}

	if orbitRadius > 0 {
		if orbitSegments <= 0 {
			orbitSegments = DefaultOrbitSegments
		}
		b.orbit, err = NewOrbit(orbitRadius, orbitSegments)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", name, err)
		}
	}

	return b, nil
}

// Radius returns the logical body radius.
func (b *Body) Radius() float32 { return b.mesh.Radius }

// Mesh returns the generated sphere geometry.
func (b *Body) Mesh() *SphereMesh { return b.mesh }

// Orbit returns the owned orbit, or nil.
func (b *Body) Orbit() *Orbit { return b.orbit }

// OrbitRadius returns the orbit radius, or 0 for a body without an orbit.
func (b *Body) OrbitRadius() float32 {
	if b.orbit == nil {
		return 0
	}
	return b.orbit.Radius()
}

// Upload creates the GPU buffers for the sphere and its orbit. On failure
// the body stays drawable as a no-op.
func (b *Body) Upload(backend gfx.Backend) error {
	if !b.gpu.Valid() {
		gpu, err := backend.CreateMesh(b.mesh.Vertices, gfx.LayoutPositionTexCoord, b.mesh.Indices)
		if err != nil {
			return fmt.Errorf("uploading body %q: %w", b.Name, err)
		}
		b.backend = backend
		b.gpu = gpu
	}

	if b.orbit != nil {
		if err := b.orbit.Upload(backend); err != nil {
			return fmt.Errorf("body %q: %w", b.Name, err)
		}
	}
	return nil
}

// Uploaded reports whether the sphere's GPU buffers exist.
func (b *Body) Uploaded() bool {
	return b.gpu.Valid()
}

// Draw binds the surface texture and draws the sphere with whatever model
// transform the caller has set.
func (b *Body) Draw() {
	if !b.gpu.Valid() {
		return
	}
	b.backend.BindTexture(b.Texture)
	b.backend.DrawTriangles(b.gpu)
}

// DrawOrbit draws the owned orbit, if any.
func (b *Body) DrawOrbit() {
	if b.orbit != nil {
		b.orbit.Draw()
	}
}

// Release frees the sphere buffers and the owned orbit. Safe to call more
// than once; the texture is not owned and is left alone.
func (b *Body) Release() {
	if b.backend != nil {
		b.backend.DeleteMesh(&b.gpu)
		b.backend = nil
	}
	if b.orbit != nil {
		b.orbit.Release()
	}
}
