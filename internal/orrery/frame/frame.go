// Package frame holds the scene state carried between frames and advances
// it one frame at a time. It links no window or GL code.
package frame

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/celestial"
	"github.com/Faultbox/orrery/internal/engine/clock"
	"github.com/Faultbox/orrery/internal/engine/scene"
	"github.com/Faultbox/orrery/pkg/math"
)

// Frame is the state carried from one frame to the next. Only Update
// mutates it, once per frame, on the thread that owns the GL context.
type Frame struct {
	Camera *camera.SphericalCamera
	Clock  *clock.Animation
	Scene  *scene.Scene
	Lens   camera.Lens
	Aspect float32

	models []math.Mat4
}

// Controls is one frame of input, already mapped to scene actions.
type Controls struct {
	Directions  []camera.Direction
	TogglePause bool
	Scroll      float32
	DeltaTime   float32 // wall-clock seconds since the previous frame
}

// State is what the draw pass needs for one frame. Models is indexed like
// Scene.Bodies and is only valid until the next Update.
type State struct {
	View       math.Mat4
	Projection math.Mat4
	SceneTime  float64
	Paused     bool
	Models     []math.Mat4
}

// Update advances f by one frame at wall-clock time now. The order is
// fixed: camera turns, then zoom, then the pause toggle, then the body
// transforms at the resulting scene time.
func Update(f *Frame, c Controls, now float64) State {
	for _, dir := range c.Directions {
		f.Camera.ApplyAngularInput(dir, c.DeltaTime)
	}
	if c.Scroll != 0 {
		f.Camera.Zoom(c.Scroll)
	}
	if c.TogglePause {
		f.Clock.Toggle(now)
	}

	t := f.Clock.SceneTime(now)
	f.models = f.Scene.Transforms(t, f.models)

	return State{
		View:       f.Camera.ViewMatrix(),
		Projection: f.Lens.Projection(f.Aspect),
		SceneTime:  t,
		Paused:     f.Clock.Paused(),
		Models:     f.models,
	}
}

// New builds the camera, clock and bodies described by cfg. The clock
// starts at now, paused if the scene asks for it. Nothing touches the GPU.
func New(cfg *config.Config, now float64) (*Frame, error) {
	cc := cfg.Camera
	cam := camera.New(cc.Radius, cc.Theta, math.Radians(cc.PhiDegrees))
	cam.AngularSpeed = cc.AngularSpeed
	cam.PoleMargin = cc.PoleMargin
	cam.ZoomScale = cc.ZoomScale
	cam.MinRadius = cc.MinRadius
	// Re-apply the angles so theta is clamped with the configured margin.
	cam.SetAngles(cc.Theta, math.Radians(cc.PhiDegrees))

	anim := clock.New(now)
	if cfg.Scene.StartPaused {
		anim.Pause(now)
	}

	s := scene.New()
	for _, bc := range cfg.Scene.Bodies {
		b, err := celestial.NewBody(bc.Name, bc.Radius, bc.Sectors, bc.Stacks, bc.OrbitRadius, cfg.Scene.OrbitSegments)
		if err != nil {
			return nil, fmt.Errorf("building scene: %w", err)
		}
		b.RotationSpeed = bc.RotationSpeed
		b.OrbitSpeed = bc.OrbitSpeed
		s.Add(b)
	}

	return &Frame{
		Camera: cam,
		Clock:  anim,
		Scene:  s,
		Lens: camera.Lens{
			FovY: math.Radians(cc.FovDegrees),
			Near: cc.Near,
			Far:  cc.Far,
		},
		Aspect: float32(cfg.Window.Width) / math32.Max(float32(cfg.Window.Height), 1),
	}, nil
}
