package frame

import (
	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/input"
)

var turns = []struct {
	action input.Action
	dir    camera.Direction
}{
	{input.AzimuthDecrease, camera.AzimuthDecrease},
	{input.AzimuthIncrease, camera.AzimuthIncrease},
	{input.ElevationIncrease, camera.ElevationIncrease},
	{input.ElevationDecrease, camera.ElevationDecrease},
}

// Mapper turns raw input into Controls. Turning keys act every frame they
// are held; the pause key fires once per press.
type Mapper struct {
	Bindings input.Bindings

	pause input.Edge
	dirs  []camera.Direction
}

// NewMapper creates a mapper for the given bindings.
func NewMapper(b input.Bindings) *Mapper {
	return &Mapper{Bindings: b}
}

// Controls reads s for one frame. The returned Directions slice is reused
// by the next call.
func (m *Mapper) Controls(s *input.State, dt float32) Controls {
	m.dirs = m.dirs[:0]
	for _, t := range turns {
		if s.ActionHeld(m.Bindings, t.action) {
			m.dirs = append(m.dirs, t.dir)
		}
	}

	return Controls{
		Directions:  m.dirs,
		TogglePause: m.pause.Rising(s.ActionHeld(m.Bindings, input.TogglePause)),
		Scroll:      s.ScrollDelta(),
		DeltaTime:   dt,
	}
}

// BindingNames lists the configured key name for every action.
func BindingNames(c config.ControlsConfig) map[input.Action]string {
	return map[input.Action]string{
		input.AzimuthDecrease:   c.AzimuthDecrease,
		input.AzimuthIncrease:   c.AzimuthIncrease,
		input.ElevationIncrease: c.ElevationIncrease,
		input.ElevationDecrease: c.ElevationDecrease,
		input.TogglePause:       c.TogglePause,
		input.Quit:              c.Quit,
		input.Screenshot:        c.Screenshot,
		input.Mute:              c.Mute,
	}
}
