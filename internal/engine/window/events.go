package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/orrery/internal/engine/input"
)

// Poll drains pending SDL events into s. Call s.BeginFrame first.
func (w *Window) Poll(s *input.State) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.RequestQuit()

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				// Data1/Data2 are in screen coordinates; GL needs pixels.
				width, height := w.DrawableSize()
				s.Resize(width, height)
			}

		case *sdl.KeyboardEvent:
			key := input.Key(e.Keysym.Scancode)
			if e.Type == sdl.KEYDOWN {
				s.KeyDown(key, e.Repeat != 0)
			} else if e.Type == sdl.KEYUP {
				s.KeyUp(key)
			}

		case *sdl.MouseWheelEvent:
			dy := float32(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			s.Scroll(dy)
		}
	}
}

// KeyFromName resolves an SDL key name such as "W", "Space" or "F12" to a
// scancode, or 0 when the name is unknown.
func KeyFromName(name string) input.Key {
	return input.Key(sdl.GetScancodeFromName(name))
}
