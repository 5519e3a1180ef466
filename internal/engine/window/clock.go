package window

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Clock reads the high-resolution performance counter as seconds since
// the clock was created. It implements clock.Source.
type Clock struct {
	start uint64
	freq  float64
}

// NewClock starts a clock. SDL must be initialized.
func NewClock() *Clock {
	return &Clock{
		start: sdl.GetPerformanceCounter(),
		freq:  float64(sdl.GetPerformanceFrequency()),
	}
}

// Now returns elapsed seconds. It never decreases.
func (c *Clock) Now() float64 {
	return float64(sdl.GetPerformanceCounter()-c.start) / c.freq
}
