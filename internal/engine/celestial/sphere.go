package celestial

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/pkg/math"
)

// ShellScale widens every latitude ring of a generated sphere relative to
// its logical radius, so the rendered shell is slightly oblate. Keep it in
// sync with any pass that draws over the surface.
const ShellScale = 1.02

// VertexStride is the float count per sphere vertex: position xyz + uv.
const VertexStride = 5

// SphereMesh is a UV sphere: (stacks+1) rings of (sectors+1) vertices, with
// the seam column duplicated so texture coordinates run 0..1.
type SphereMesh struct {
	Radius  float32
	Sectors int
	Stacks  int

	Vertices []float32 // interleaved, VertexStride floats per vertex
	Indices  []uint32  // triangle list
}

// BuildSphere generates the sphere mesh. Ring i sits at latitude
// pi/2 - i*pi/stacks, so ring 0 is the +Z pole and texture v grows toward
// the -Z pole.
func BuildSphere(radius float32, sectors, stacks int) (*SphereMesh, error) {
	if radius < 0 {
		return nil, fmt.Errorf("sphere radius %v: %w", radius, ErrNegativeRadius)
	}
	if sectors < 1 || stacks < 1 {
		return nil, fmt.Errorf("sphere %dx%d: %w", sectors, stacks, ErrInvalidTessellation)
	}

	m := &SphereMesh{
		Radius:   radius,
		Sectors:  sectors,
		Stacks:   stacks,
		Vertices: make([]float32, 0, (sectors+1)*(stacks+1)*VertexStride),
		Indices:  make([]uint32, 0, 6*sectors*max(stacks-1, 0)),
	}
	m.generateVertices()
	m.generateIndices()
	return m, nil
}

func (m *SphereMesh) generateVertices() {
	sectorStep := 2 * math32.Pi / float32(m.Sectors)
	stackStep := math32.Pi / float32(m.Stacks)

	for i := 0; i <= m.Stacks; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep
		sinStack, cosStack := math32.Sincos(stackAngle)
		xy := ShellScale * m.Radius * cosStack
		z := m.Radius * sinStack

		for j := 0; j <= m.Sectors; j++ {
			sinSector, cosSector := math32.Sincos(float32(j) * sectorStep)
			m.Vertices = append(m.Vertices,
				xy*cosSector, xy*sinSector, z,
				float32(j)/float32(m.Sectors), float32(i)/float32(m.Stacks),
			)
		}
	}
}

// generateIndices stitches ring i to ring i+1. The first and last bands
// touch a pole, where one triangle of each quad would be degenerate, so it
// is skipped.
func (m *SphereMesh) generateIndices() {
	for i := 0; i < m.Stacks; i++ {
		k1 := uint32(i * (m.Sectors + 1))
		k2 := k1 + uint32(m.Sectors) + 1

		for j := 0; j < m.Sectors; j, k1, k2 = j+1, k1+1, k2+1 {
			if i != 0 {
				m.Indices = append(m.Indices, k1, k2, k1+1)
			}
			if i != m.Stacks-1 {
				m.Indices = append(m.Indices, k1+1, k2, k2+1)
			}
		}
	}
}

// VertexCount returns the number of vertices.
func (m *SphereMesh) VertexCount() int {
	return len(m.Vertices) / VertexStride
}

// TriangleCount returns the number of triangles.
func (m *SphereMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Position returns the position of vertex i.
func (m *SphereMesh) Position(i int) math.Vec3 {
	v := m.Vertices[i*VertexStride:]
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// TexCoord returns the texture coordinate of vertex i.
func (m *SphereMesh) TexCoord(i int) math.Vec2 {
	v := m.Vertices[i*VertexStride:]
	return math.Vec2{X: v[3], Y: v[4]}
}
