package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate reports every setting that would leave the scene unusable.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		add("window: size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}

	cam := c.Camera
	if cam.MinRadius <= 0 {
		add("camera: min_radius %v must be positive", cam.MinRadius)
	}
	if cam.PoleMargin <= 0 || cam.PoleMargin >= math.Pi/2 {
		add("camera: pole_margin %v must be in (0, pi/2)", cam.PoleMargin)
	}
	if cam.FovDegrees <= 0 || cam.FovDegrees >= 180 {
		add("camera: fov_degrees %v must be in (0, 180)", cam.FovDegrees)
	}
	if cam.Near <= 0 || cam.Far <= cam.Near {
		add("camera: need 0 < near < far, got near %v far %v", cam.Near, cam.Far)
	}

	if c.Scene.OrbitSegments < 3 {
		add("scene: orbit_segments %d must be at least 3", c.Scene.OrbitSegments)
	}
	if len(c.Scene.Bodies) == 0 {
		add("scene: no bodies")
	}
	seen := make(map[string]bool)
	for i, b := range c.Scene.Bodies {
		name := b.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		} else if seen[name] {
			add("scene: duplicate body name %q", name)
		}
		seen[b.Name] = true

		if b.Sectors < 1 || b.Stacks < 1 {
			add("body %s: tessellation %dx%d must be at least 1x1", name, b.Sectors, b.Stacks)
		}
		if b.Radius < 0 || b.OrbitRadius < 0 {
			add("body %s: radius %v and orbit_radius %v must not be negative", name, b.Radius, b.OrbitRadius)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		add("audio: volume %v must be in [0, 1]", c.Audio.Volume)
	}

	return errors.Join(errs...)
}
