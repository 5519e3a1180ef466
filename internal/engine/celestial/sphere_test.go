package celestial

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
)

func TestBuildSphereCounts(t *testing.T) {
	tests := []struct {
		sectors, stacks int
	}{
		{36, 18},
		{48, 24},
		{3, 2},
		{1, 1},
		{4, 1},
		{1, 5},
		{7, 3},
	}

	for _, tt := range tests {
		m, err := BuildSphere(2, tt.sectors, tt.stacks)
		if err != nil {
			t.Fatalf("BuildSphere(%d, %d): %v", tt.sectors, tt.stacks, err)
		}

		wantVerts := (tt.sectors + 1) * (tt.stacks + 1)
		if m.VertexCount() != wantVerts {
			t.Errorf("%dx%d: %d vertices, want %d", tt.sectors, tt.stacks, m.VertexCount(), wantVerts)
		}

		wantTris := 2 * tt.sectors * (tt.stacks - 1)
		if m.TriangleCount() != wantTris {
			t.Errorf("%dx%d: %d triangles, want %d", tt.sectors, tt.stacks, m.TriangleCount(), wantTris)
		}
		if len(m.Indices)%3 != 0 {
			t.Errorf("%dx%d: index count %d is not a multiple of 3", tt.sectors, tt.stacks, len(m.Indices))
		}

		for i, idx := range m.Indices {
			if int(idx) >= wantVerts {
				t.Fatalf("%dx%d: index %d references vertex %d of %d", tt.sectors, tt.stacks, i, idx, wantVerts)
			}
		}
	}
}

func TestBuildSphereNoDegenerateTriangles(t *testing.T) {
	m, _ := BuildSphere(3, 36, 18)
	for tri := 0; tri < m.TriangleCount(); tri++ {
		a := m.Position(int(m.Indices[tri*3]))
		b := m.Position(int(m.Indices[tri*3+1]))
		c := m.Position(int(m.Indices[tri*3+2]))
		if area := b.Sub(a).Cross(c.Sub(a)).Length(); area < 1e-6 {
			t.Fatalf("triangle %d is degenerate: %v %v %v", tri, a, b, c)
		}
	}
}

func TestBuildSphereGeometry(t *testing.T) {
	const radius = 2
	m, _ := BuildSphere(radius, 36, 18)

	for i := 0; i < m.VertexCount(); i++ {
		p := m.Position(i)

		// Height follows the logical radius; rings are widened by ShellScale.
		ring := math32.Hypot(p.X, p.Y)
		h := p.Z / radius
		if h < -1.0001 || h > 1.0001 {
			t.Fatalf("vertex %d height %v outside the sphere", i, p.Z)
		}
		want := ShellScale * radius * math32.Sqrt(max(0, 1-h*h))
		if math32.Abs(ring-want) > 1e-3 {
			t.Errorf("vertex %d ring radius %v, want %v", i, ring, want)
		}

		uv := m.TexCoord(i)
		if uv.X < 0 || uv.X > 1 || uv.Y < 0 || uv.Y > 1 {
			t.Errorf("vertex %d texcoord %v outside [0,1]", i, uv)
		}
	}

	// Ring 0 is the +Z pole, the last ring the -Z pole.
	if p := m.Position(0); math32.Abs(p.Z-radius) > 1e-5 {
		t.Errorf("first vertex %v, want +Z pole", p)
	}
	if p := m.Position(m.VertexCount() - 1); math32.Abs(p.Z+radius) > 1e-5 {
		t.Errorf("last vertex %v, want -Z pole", p)
	}

	// Equator vertex at sector 0 is inflated along +X.
	eq := m.Position(9 * 37)
	if math32.Abs(eq.X-ShellScale*radius) > 1e-4 || math32.Abs(eq.Z) > 1e-4 {
		t.Errorf("equator vertex %v, want (%v, 0, 0)", eq, ShellScale*radius)
	}
	if uv := m.TexCoord(9*37 + 36); uv.X != 1 || uv.Y != 0.5 {
		t.Errorf("equator seam texcoord %v, want (1, 0.5)", uv)
	}
}

func TestBuildSphereInvalid(t *testing.T) {
	tests := []struct {
		name            string
		radius          float32
		sectors, stacks int
		want            error
	}{
		{"zero sectors", 1, 0, 18, ErrInvalidTessellation},
		{"zero stacks", 1, 36, 0, ErrInvalidTessellation},
		{"negative stacks", 1, 36, -2, ErrInvalidTessellation},
		{"negative radius", -1, 36, 18, ErrNegativeRadius},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := BuildSphere(tt.radius, tt.sectors, tt.stacks)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if m != nil {
				t.Error("expected nil mesh on error")
			}
		})
	}
}
