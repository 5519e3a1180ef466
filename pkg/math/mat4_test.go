package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func fromMGL(m mgl32.Mat4) Mat4 {
	return Mat4(m)
}

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 || m[12] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	if got := m.Mul(Identity()); got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
	if got := Identity().Mul(m); got != m {
		t.Errorf("I * M = %v, want %v", got, m)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)
	if got := m.Translation(); got != (Vec3{5, 10, 15}) {
		t.Errorf("Translation() = %v, want (5, 10, 15)", got)
	}
	if got := m.TransformPoint(Vec3{1, 2, 3}); got != (Vec3{6, 12, 18}) {
		t.Errorf("TransformPoint = %v, want (6, 12, 18)", got)
	}
	if got := m.TransformDirection(Vec3{1, 2, 3}); got != (Vec3{1, 2, 3}) {
		t.Errorf("TransformDirection should ignore translation, got %v", got)
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)
	if got := m.TransformPoint(Vec3{1, 1, 1}); got != (Vec3{2, 3, 4}) {
		t.Errorf("Scale: got %v, want (2, 3, 4)", got)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(math.Pi / 2)
	got := m.TransformPoint(UnitX)
	if !got.ApproxEqual(Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestRotateYMatchesMathGL(t *testing.T) {
	for _, angle := range []float32{0, 0.02, 1, math.Pi, 4.17, -2.5} {
		got := RotateY(angle)
		want := fromMGL(mgl32.HomogRotate3DY(angle))
		if !got.ApproxEqual(want, 1e-6) {
			t.Errorf("RotateY(%v) = %v, want %v", angle, got, want)
		}
	}
}

func TestMulMatchesMathGL(t *testing.T) {
	a := RotateY(0.7).Mul(Translate(3, -1, 2))
	b := Scale(2, 1, 0.5).Mul(RotateY(-1.3))

	ma := mgl32.HomogRotate3DY(0.7).Mul4(mgl32.Translate3D(3, -1, 2))
	mb := mgl32.Scale3D(2, 1, 0.5).Mul4(mgl32.HomogRotate3DY(-1.3))

	if got, want := a.Mul(b), fromMGL(ma.Mul4(mb)); !got.ApproxEqual(want, 1e-5) {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	got := Perspective(Radians(45), 1800.0/1400.0, 0.1, 1000)
	want := fromMGL(mgl32.Perspective(mgl32.DegToRad(45), 1800.0/1400.0, 0.1, 1000))
	if !got.ApproxEqual(want, 1e-5) {
		t.Errorf("Perspective = %v, want %v", got, want)
	}
	if got[11] != -1 || got[15] != 0 {
		t.Errorf("Perspective w row: got [11]=%f [15]=%f, want -1, 0", got[11], got[15])
	}
}

func TestOrtho(t *testing.T) {
	got := Ortho2D(0, 1800, 0, 1400)
	want := fromMGL(mgl32.Ortho2D(0, 1800, 0, 1400))
	if !got.ApproxEqual(want, 1e-6) {
		t.Errorf("Ortho2D = %v, want %v", got, want)
	}
}

func TestLookAt(t *testing.T) {
	tests := []struct {
		name string
		eye  Vec3
		up   Vec3
	}{
		{"on z axis", Vec3{0, 0, 5}, UnitY},
		{"on x axis", Vec3{300, 0, 0}, UnitY},
		{"above plane", Vec3{120, 80, -40}, UnitY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookAt(tt.eye, Vec3{}, tt.up)
			want := fromMGL(mgl32.LookAtV(
				mgl32.Vec3{tt.eye.X, tt.eye.Y, tt.eye.Z},
				mgl32.Vec3{},
				mgl32.Vec3{tt.up.X, tt.up.Y, tt.up.Z},
			))
			if !got.ApproxEqual(want, 1e-4) {
				t.Errorf("LookAt = %v, want %v", got, want)
			}

			// The eye lands on the view-space origin.
			if p := got.TransformPoint(tt.eye); !p.ApproxEqual(Vec3{}, 1e-3) {
				t.Errorf("eye in view space = %v, want origin", p)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		x, lo, hi, want float32
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
	}
	for _, tt := range tests {
		if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
		}
	}
}
