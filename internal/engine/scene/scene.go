// Package scene holds the body collection and composes each body's world
// transform from the scene clock.
package scene

import (
	"github.com/Faultbox/orrery/internal/engine/celestial"
	"github.com/Faultbox/orrery/internal/engine/gfx"
	"github.com/Faultbox/orrery/pkg/math"
)

// Scene is the ordered set of bodies drawn each frame. The scene owns its
// bodies and releases them in Release.
type Scene struct {
	Bodies []*celestial.Body
}

// New creates a scene from the given bodies.
func New(bodies ...*celestial.Body) *Scene {
	return &Scene{Bodies: bodies}
}

// Add appends a body.
func (s *Scene) Add(b *celestial.Body) {
	s.Bodies = append(s.Bodies, b)
}

// BodyByName returns the first body with the given name, or nil.
func (s *Scene) BodyByName(name string) *celestial.Body {
	for _, b := range s.Bodies {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// Transform returns one body's world transform at scene time t.
func Transform(b *celestial.Body, t float64) math.Mat4 {
	return Compose(t, b.OrbitRadius(), b.OrbitSpeed, b.RotationSpeed)
}

// Transforms writes the world transform of every body at scene time t into
// dst, reusing its storage, and returns it. The result is indexed like
// Bodies.
func (s *Scene) Transforms(t float64, dst []math.Mat4) []math.Mat4 {
	dst = dst[:0]
	for _, b := range s.Bodies {
		dst = append(dst, Transform(b, t))
	}
	return dst
}

// Upload creates GPU resources for every body. It keeps going past
// failures so one broken body does not blank the scene, and returns the
// errors keyed by body name.
func (s *Scene) Upload(backend gfx.Backend) map[string]error {
	var failed map[string]error
	for _, b := range s.Bodies {
		if err := b.Upload(backend); err != nil {
			if failed == nil {
				failed = make(map[string]error)
			}
			failed[b.Name] = err
		}
	}
	return failed
}

// DrawOrbits draws every owned orbit. Orbits live in world space, so the
// caller sets an identity model transform first.
func (s *Scene) DrawOrbits() {
	for _, b := range s.Bodies {
		b.DrawOrbit()
	}
}

// Release frees every body's GPU resources.
func (s *Scene) Release() {
	for _, b := range s.Bodies {
		b.Release()
	}
}
