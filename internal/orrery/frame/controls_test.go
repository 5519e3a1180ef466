package frame

import (
	"reflect"
	"testing"

	"github.com/Faultbox/orrery/internal/config"
	"github.com/Faultbox/orrery/internal/engine/camera"
	"github.com/Faultbox/orrery/internal/engine/input"
)

const (
	keyA input.Key = iota + 4
	keyD
	keyW
	keyS
	keySpace
)

func testBindings() input.Bindings {
	return input.Bindings{
		input.AzimuthDecrease:   keyA,
		input.AzimuthIncrease:   keyD,
		input.ElevationIncrease: keyW,
		input.ElevationDecrease: keyS,
		input.TogglePause:       keySpace,
	}
}

func TestMapperDirections(t *testing.T) {
	m := NewMapper(testBindings())
	s := input.NewState()
	s.KeyDown(keyA, false)
	s.KeyDown(keyW, false)
	s.Scroll(2)

	c := m.Controls(s, 0.25)

	want := []camera.Direction{camera.AzimuthDecrease, camera.ElevationIncrease}
	if !reflect.DeepEqual(c.Directions, want) {
		t.Errorf("directions = %v, want %v", c.Directions, want)
	}
	if c.Scroll != 2 || c.DeltaTime != 0.25 {
		t.Errorf("scroll %v dt %v, want 2 0.25", c.Scroll, c.DeltaTime)
	}

	s.BeginFrame()
	s.KeyUp(keyA)
	c = m.Controls(s, 0.25)
	if !reflect.DeepEqual(c.Directions, []camera.Direction{camera.ElevationIncrease}) {
		t.Errorf("after release directions = %v", c.Directions)
	}
	if c.Scroll != 0 {
		t.Errorf("scroll carried over: %v", c.Scroll)
	}
}

func TestMapperPauseFiresOncePerPress(t *testing.T) {
	m := NewMapper(testBindings())
	s := input.NewState()

	frames := []struct {
		down, up bool
		want     bool
	}{
		{down: true, want: true},
		{want: false}, // still held
		{want: false},
		{up: true, want: false},
		{down: true, want: true},
	}

	for i, fr := range frames {
		s.BeginFrame()
		if fr.down {
			s.KeyDown(keySpace, false)
		}
		if fr.up {
			s.KeyUp(keySpace)
		}
		if got := m.Controls(s, 0.016).TogglePause; got != fr.want {
			t.Errorf("frame %d: TogglePause = %v, want %v", i, got, fr.want)
		}
	}
}

func TestBindingNamesCoverEveryAction(t *testing.T) {
	names := BindingNames(config.Default().Controls)

	want := map[input.Action]string{
		input.AzimuthDecrease:   "A",
		input.AzimuthIncrease:   "D",
		input.ElevationIncrease: "W",
		input.ElevationDecrease: "S",
		input.TogglePause:       "Space",
		input.Quit:              "Escape",
		input.Screenshot:        "F12",
		input.Mute:              "M",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}
