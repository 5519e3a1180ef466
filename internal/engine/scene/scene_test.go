package scene

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/orrery/internal/engine/celestial"
	"github.com/Faultbox/orrery/internal/engine/gfx/gfxtest"
	"github.com/Faultbox/orrery/pkg/math"
)

func TestComposeWithoutOrbitIsPureRotation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		tm := rng.Float64() * 1000
		spin := float32(rng.NormFloat64() * 3)

		m := Compose(tm, 0, 0.7, spin)
		if tr := m.Translation(); tr != (math.Vec3{}) {
			t.Fatalf("t=%v: translation %v, want none", tm, tr)
		}
		if m[3] != 0 || m[7] != 0 || m[11] != 0 || m[15] != 1 {
			t.Fatalf("t=%v: bottom row %v %v %v %v", tm, m[3], m[7], m[11], m[15])
		}
		// Columns stay orthonormal.
		x := m.TransformDirection(math.UnitX)
		z := m.TransformDirection(math.UnitZ)
		if math32.Abs(x.Length()-1) > 1e-5 || math32.Abs(x.Dot(z)) > 1e-5 {
			t.Fatalf("t=%v: not a rotation: %v", tm, m)
		}
	}
}

func TestComposeMercuryScenario(t *testing.T) {
	const (
		orbitRadius   = 40
		rotationSpeed = 0.02
		orbitSpeed    = 4.17
	)

	m := Compose(1.0, orbitRadius, orbitSpeed, rotationSpeed)

	want := math.RotateY(orbitSpeed).Mul(math.Translate(orbitRadius, 0, 0)).Mul(math.RotateY(rotationSpeed))
	if !m.ApproxEqual(want, 1e-5) {
		t.Errorf("Compose = %v, want %v", m, want)
	}

	// The body's own origin is unaffected by its spin.
	center := m.TransformPoint(math.Vec3{})
	expected := math.Vec3{
		X: orbitRadius * math32.Cos(orbitSpeed),
		Y: 0,
		Z: -orbitRadius * math32.Sin(orbitSpeed),
	}
	if !center.ApproxEqual(expected, 1e-3) {
		t.Errorf("body center = %v, want %v", center, expected)
	}
}

func TestComposeMatchesMathGL(t *testing.T) {
	tests := []struct {
		t                  float64
		radius, orbit, rot float32
	}{
		{0, 85, 1, 1},
		{3.5, 150, 0.084, 2.4},
		{12, 300, 0.012, -1.39},
		{7.25, 60, 1.61, 0},
	}

	for _, tt := range tests {
		got := Compose(tt.t, tt.radius, tt.orbit, tt.rot)
		want := mgl32.HomogRotate3DY(float32(tt.t) * tt.orbit).
			Mul4(mgl32.Translate3D(tt.radius, 0, 0)).
			Mul4(mgl32.HomogRotate3DY(float32(tt.t) * tt.rot))
		if !got.ApproxEqual(math.Mat4(want), 1e-3) {
			t.Errorf("Compose(%v, %v, %v, %v) = %v, want %v", tt.t, tt.radius, tt.orbit, tt.rot, got, want)
		}
	}
}

func TestSpinDoesNotMoveOrbitPosition(t *testing.T) {
	a := Compose(2, 110, 0.53, 0)
	b := Compose(2, 110, 0.53, 0.97)
	if !a.Translation().ApproxEqual(b.Translation(), 1e-4) {
		t.Errorf("spin changed position: %v vs %v", a.Translation(), b.Translation())
	}
}

func TestOrbitPositionStaysOnOrbitPath(t *testing.T) {
	b, _ := celestial.NewBody("Earth", 3, 36, 18, 85, 0)
	b.OrbitSpeed = 1
	b.RotationSpeed = 1

	for _, tm := range []float64{0, 0.3, 1.7, 42} {
		p := Transform(b, tm).Translation()
		if r := math32.Hypot(p.X, p.Z); math32.Abs(r-85) > 1e-3 || p.Y != 0 {
			t.Errorf("t=%v: body at %v, off the r=85 orbit", tm, p)
		}
	}
}

func newTestScene(t *testing.T) *Scene {
	t.Helper()

	sun, err := celestial.NewBody("Sun", 25, 48, 24, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	sun.RotationSpeed = 0.2

	mercury, err := celestial.NewBody("Mercury", 2, 36, 18, 40, 0)
	if err != nil {
		t.Fatal(err)
	}
	mercury.RotationSpeed = 0.02
	mercury.OrbitSpeed = 4.17

	return New(sun, mercury)
}

func TestSceneTransforms(t *testing.T) {
	s := newTestScene(t)

	buf := make([]math.Mat4, 0, 8)
	got := s.Transforms(1, buf)
	if len(got) != 2 {
		t.Fatalf("got %d transforms, want 2", len(got))
	}
	if &got[0] != &buf[:1][0] {
		t.Error("Transforms should reuse dst storage")
	}
	if got[0] != math.RotateY(0.2) {
		t.Errorf("sun transform = %v, want RotateY(0.2)", got[0])
	}
	if got[1] != Compose(1, 40, 4.17, 0.02) {
		t.Errorf("mercury transform mismatch")
	}

	if s.BodyByName("Mercury") != s.Bodies[1] || s.BodyByName("Pluto") != nil {
		t.Error("BodyByName lookup failed")
	}
}

func TestSceneUploadDrawRelease(t *testing.T) {
	s := newTestScene(t)
	rec := gfxtest.New()

	if failed := s.Upload(rec); failed != nil {
		t.Fatalf("Upload failures: %v", failed)
	}
	// Sun sphere, Mercury sphere, Mercury orbit.
	if rec.Live() != 3 {
		t.Errorf("live meshes = %d, want 3", rec.Live())
	}

	rec.Reset()
	s.DrawOrbits()
	if rec.Count("lineloop") != 1 {
		t.Errorf("lineloop draws = %d, want 1", rec.Count("lineloop"))
	}

	s.Release()
	if rec.Live() != 0 {
		t.Errorf("live meshes = %d after Release", rec.Live())
	}
}

func TestSceneUploadReportsFailures(t *testing.T) {
	s := newTestScene(t)
	rec := gfxtest.New()
	rec.FailCreate = true

	failed := s.Upload(rec)
	if len(failed) != 2 || failed["Sun"] == nil || failed["Mercury"] == nil {
		t.Errorf("failed = %v, want both bodies", failed)
	}
}
