// Package camera provides the spherical orbit camera that circles the scene
// origin.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/pkg/math"
)

// Default camera placement.
const (
	DefaultRadius = 300
	DefaultTheta  = 0
	DefaultPhi    = math32.Pi / 2
)

// Default tunables.
const (
	DefaultAngularSpeed = 1.0  // radians per second
	DefaultPoleMargin   = 0.01 // radians kept between theta and the poles
	DefaultZoomScale    = 10.0 // radius units per scroll step
	DefaultMinRadius    = 50.0
)

// Direction selects which spherical angle an input adjusts.
type Direction int

const (
	AzimuthDecrease Direction = iota
	AzimuthIncrease
	ElevationIncrease
	ElevationDecrease
)

func (d Direction) String() string {
	switch d {
	case AzimuthDecrease:
		return "azimuth-"
	case AzimuthIncrease:
		return "azimuth+"
	case ElevationIncrease:
		return "elevation+"
	case ElevationDecrease:
		return "elevation-"
	default:
		return "unknown"
	}
}

// SphericalCamera sits on a sphere of the given radius and always looks at
// the origin. The basis is recomputed after every mutation, so the accessors
// never return stale vectors.
type SphericalCamera struct {
	radius float32
	theta  float32 // elevation
	phi    float32 // azimuth, unbounded

	position math.Vec3
	front    math.Vec3
	right    math.Vec3
	up       math.Vec3

	// Tunables. Changing them does not move the camera until the next
	// mutation.
	AngularSpeed float32
	PoleMargin   float32
	ZoomScale    float32
	MinRadius    float32
}

// New creates a camera at the given spherical coordinates with default
// tunables.
func New(radius, theta, phi float32) *SphericalCamera {
	c := &SphericalCamera{
		radius:       radius,
		theta:        theta,
		phi:          phi,
		AngularSpeed: DefaultAngularSpeed,
		PoleMargin:   DefaultPoleMargin,
		ZoomScale:    DefaultZoomScale,
		MinRadius:    DefaultMinRadius,
	}
	c.update()
	return c
}

// Default creates the start-up camera.
func Default() *SphericalCamera {
	return New(DefaultRadius, DefaultTheta, DefaultPhi)
}

// Radius returns the distance from the origin.
func (c *SphericalCamera) Radius() float32 { return c.radius }

// Theta returns the elevation angle in radians.
func (c *SphericalCamera) Theta() float32 { return c.theta }

// Phi returns the azimuth angle in radians.
func (c *SphericalCamera) Phi() float32 { return c.phi }

// Position returns the camera position in world space.
func (c *SphericalCamera) Position() math.Vec3 { return c.position }

// Front returns the unit vector from the camera toward the origin.
func (c *SphericalCamera) Front() math.Vec3 { return c.front }

// Right returns the camera's unit right vector.
func (c *SphericalCamera) Right() math.Vec3 { return c.right }

// Up returns the camera's unit up vector.
func (c *SphericalCamera) Up() math.Vec3 { return c.up }

// ApplyAngularInput turns the camera around the origin by AngularSpeed*dt
// in the given direction.
func (c *SphericalCamera) ApplyAngularInput(dir Direction, dt float32) {
	step := c.AngularSpeed * dt

	switch dir {
	case AzimuthDecrease:
		c.phi -= step
	case AzimuthIncrease:
		c.phi += step
	case ElevationIncrease:
		c.theta += step
	case ElevationDecrease:
		c.theta -= step
	}

	c.update()
}

// Zoom moves the camera toward the origin for positive delta. The radius
// never drops below MinRadius.
func (c *SphericalCamera) Zoom(delta float32) {
	c.SetRadius(c.radius - delta*c.ZoomScale)
}

// SetRadius places the camera at the given distance, floored at MinRadius.
// The floor applies only here and in Zoom; New keeps whatever radius it is
// given.
func (c *SphericalCamera) SetRadius(radius float32) {
	if radius < c.MinRadius {
		radius = c.MinRadius
	}
	c.radius = radius
	c.update()
}

// SetAngles places the camera at the given elevation and azimuth.
func (c *SphericalCamera) SetAngles(theta, phi float32) {
	c.theta = theta
	c.phi = phi
	c.update()
}

// ViewMatrix returns the right-handed look-at transform toward the origin.
func (c *SphericalCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, math.Vec3{}, c.up)
}

// update clamps theta and recomputes position and basis.
// theta must stay strictly inside the poles: at +-pi/2 front is parallel to
// world up and the cross product below collapses.
func (c *SphericalCamera) update() {
	limit := math32.Pi/2 - c.PoleMargin
	c.theta = math.Clamp(c.theta, -limit, limit)

	st, ct := math32.Sincos(c.theta)
	sp, cp := math32.Sincos(c.phi)

	c.position = math.Vec3{
		X: c.radius * ct * sp,
		Y: c.radius * st,
		Z: c.radius * ct * cp,
	}
	c.front = c.position.Negate().Normalize()
	c.right = c.front.Cross(math.UnitY).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
