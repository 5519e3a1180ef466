// Package clock provides the pausable scene clock that drives all periodic
// motion.
package clock

// State is the running state of an Animation clock.
type State int

const (
	Running State = iota
	Paused
)

func (s State) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// Source supplies monotonic wall-clock time in seconds.
type Source interface {
	Now() float64
}

// SourceFunc adapts a function to Source.
type SourceFunc func() float64

// Now calls f.
func (f SourceFunc) Now() float64 { return f() }

// Animation converts wall-clock time into scene time. Time spent paused is
// accumulated and subtracted, so scene time freezes while paused and
// resumes without a jump.
//
// All methods take the current wall-clock time; now must not decrease
// between calls.
type Animation struct {
	accumulated float64 // wall-clock seconds spent paused, plus the start offset
	pauseStart  float64
	paused      bool
}

// New creates a running clock whose scene time is zero at start.
func New(start float64) *Animation {
	return &Animation{accumulated: start}
}

// State returns the current state.
func (a *Animation) State() State {
	if a.paused {
		return Paused
	}
	return Running
}

// Paused reports whether scene time is frozen.
func (a *Animation) Paused() bool {
	return a.paused
}

// Toggle flips between running and paused.
func (a *Animation) Toggle(now float64) {
	if a.paused {
		a.Resume(now)
	} else {
		a.Pause(now)
	}
}

// Pause freezes scene time at its value for now. Pausing a paused clock
// does nothing.
func (a *Animation) Pause(now float64) {
	if a.paused {
		return
	}
	a.pauseStart = now
	a.paused = true
}

// Resume restarts scene time from where it froze. Resuming a running clock
// does nothing.
func (a *Animation) Resume(now float64) {
	if !a.paused {
		return
	}
	a.accumulated += now - a.pauseStart
	a.paused = false
}

// SceneTime returns the scene time at wall-clock time now.
func (a *Animation) SceneTime(now float64) float64 {
	if a.paused {
		return a.pauseStart - a.accumulated
	}
	return now - a.accumulated
}
