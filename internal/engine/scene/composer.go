package scene

import (
	"github.com/Faultbox/orrery/pkg/math"
)

// Compose returns a body's world transform at scene time t:
//
//	RotateY(t*orbitSpeed) * Translate(orbitRadius, 0, 0) * RotateY(t*rotationSpeed)
//
// Read right to left: the body spins about its own axis, is pushed out to
// its orbit radius, and the displaced body is swept around the origin. A
// body with orbitRadius 0 only spins in place.
func Compose(t float64, orbitRadius, orbitSpeed, rotationSpeed float32) math.Mat4 {
	orbitAngle := float32(t * float64(orbitSpeed))
	spinAngle := float32(t * float64(rotationSpeed))

	return math.RotateY(orbitAngle).
		Mul(math.Translate(orbitRadius, 0, 0)).
		Mul(math.RotateY(spinAngle))
}
