// Package input tracks keyboard, wheel and window events for one frame and
// maps keys to actions. Event sources (see window.Poll) feed a State; the
// frame driver reads it.
package input

import (
	"fmt"
)

// Key is a platform scancode. Zero is "unknown".
type Key uint32

// Action is something a key can be bound to.
type Action int

// Actions.
const (
	AzimuthDecrease Action = iota
	AzimuthIncrease
	ElevationIncrease
	ElevationDecrease
	TogglePause
	Quit
	Screenshot
	Mute
	actionCount
)

var actionNames = [...]string{
	AzimuthDecrease:   "azimuth_decrease",
	AzimuthIncrease:   "azimuth_increase",
	ElevationIncrease: "elevation_increase",
	ElevationDecrease: "elevation_decrease",
	TogglePause:       "toggle_pause",
	Quit:              "quit",
	Screenshot:        "screenshot",
	Mute:              "mute",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// Bindings maps each action to a key.
type Bindings map[Action]Key

// ParseBindings resolves key names with lookup, which returns 0 for names
// it does not know. Empty names leave the action unbound.
func ParseBindings(names map[Action]string, lookup func(string) Key) (Bindings, error) {
	b := make(Bindings, len(names))
	for action, name := range names {
		if name == "" {
			continue
		}
		key := lookup(name)
		if key == 0 {
			return nil, fmt.Errorf("%s: unknown key %q", action, name)
		}
		b[action] = key
	}
	return b, nil
}

// State is the input seen so far in the current frame plus the keys held
// across frames.
type State struct {
	held    map[Key]bool
	pressed map[Key]bool

	scroll  float32
	quit    bool
	resized bool
	width   int
	height  int
}

// NewState creates an empty state.
func NewState() *State {
	return &State{
		held:    make(map[Key]bool),
		pressed: make(map[Key]bool),
	}
}

// BeginFrame forgets per-frame events. Held keys persist.
func (s *State) BeginFrame() {
	clear(s.pressed)
	s.scroll = 0
	s.resized = false
}

// KeyDown records a key press. Auto-repeat presses keep the key held but
// do not count as a new press.
func (s *State) KeyDown(k Key, repeat bool) {
	s.held[k] = true
	if !repeat {
		s.pressed[k] = true
	}
}

// KeyUp records a key release.
func (s *State) KeyUp(k Key) {
	delete(s.held, k)
}

// Scroll accumulates vertical wheel motion; positive is away from the user.
func (s *State) Scroll(dy float32) {
	s.scroll += dy
}

// RequestQuit records a window close request.
func (s *State) RequestQuit() {
	s.quit = true
}

// Resize records a new drawable size.
func (s *State) Resize(width, height int) {
	s.resized = true
	s.width, s.height = width, height
}

// Held reports whether k is down.
func (s *State) Held(k Key) bool {
	return k != 0 && s.held[k]
}

// Pressed reports whether k went down this frame.
func (s *State) Pressed(k Key) bool {
	return k != 0 && s.pressed[k]
}

// ScrollDelta returns this frame's wheel motion.
func (s *State) ScrollDelta() float32 {
	return s.scroll
}

// QuitRequested reports whether the window was asked to close.
func (s *State) QuitRequested() bool {
	return s.quit
}

// Resized returns the new size if the window was resized this frame.
func (s *State) Resized() (width, height int, ok bool) {
	return s.width, s.height, s.resized
}

// ActionHeld reports whether the key bound to a is down.
func (s *State) ActionHeld(b Bindings, a Action) bool {
	return s.Held(b[a])
}

// ActionPressed reports whether the key bound to a went down this frame.
func (s *State) ActionPressed(b Bindings, a Action) bool {
	return s.Pressed(b[a])
}

// Edge turns a level signal into a one-shot trigger: Rising is true only on
// the first sample where level becomes true, and re-arms once it drops.
type Edge struct {
	last bool
}

// Rising samples level and reports a false to true transition.
func (e *Edge) Rising(level bool) bool {
	rising := level && !e.last
	e.last = level
	return rising
}
