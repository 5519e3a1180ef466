package clock

import "testing"

func TestRunningTracksWallClock(t *testing.T) {
	a := New(0)
	for _, now := range []float64{0, 0.5, 1, 10.25} {
		if got := a.SceneTime(now); got != now {
			t.Errorf("SceneTime(%v) = %v, want %v", now, got, now)
		}
	}
}

func TestStartOffset(t *testing.T) {
	a := New(100)
	if got := a.SceneTime(100); got != 0 {
		t.Errorf("SceneTime at start = %v, want 0", got)
	}
	if got := a.SceneTime(103.5); got != 3.5 {
		t.Errorf("SceneTime = %v, want 3.5", got)
	}
}

func TestPauseFreezes(t *testing.T) {
	a := New(0)
	a.Toggle(2)

	if a.State() != Paused || !a.Paused() {
		t.Fatalf("State() = %v, want paused", a.State())
	}
	for _, now := range []float64{2, 3, 7.5, 1000} {
		if got := a.SceneTime(now); got != 2 {
			t.Errorf("paused SceneTime(%v) = %v, want 2", now, got)
		}
	}
}

func TestResumeHasNoJump(t *testing.T) {
	a := New(0)
	a.Toggle(2) // pause at scene time 2
	a.Toggle(5) // resume after 3s paused

	if a.State() != Running {
		t.Fatalf("State() = %v, want running", a.State())
	}
	if got := a.SceneTime(5); got != 2 {
		t.Errorf("SceneTime right after resume = %v, want 2", got)
	}
	if got := a.SceneTime(6); got != 3 {
		t.Errorf("SceneTime 1s after resume = %v, want 3", got)
	}
}

func TestDoubleToggleIsTransparentWithoutPauseTime(t *testing.T) {
	plain := New(0)
	toggled := New(0)

	toggled.Toggle(4)
	toggled.Toggle(4)

	for _, now := range []float64{4, 5, 9} {
		if toggled.SceneTime(now) != plain.SceneTime(now) {
			t.Errorf("SceneTime(%v): toggled %v, plain %v", now, toggled.SceneTime(now), plain.SceneTime(now))
		}
	}
}

func TestNeverGoesBackward(t *testing.T) {
	a := New(0)
	toggles := map[int]bool{10: true, 25: true, 26: true, 40: true, 70: true, 71: true, 72: true}

	prev := a.SceneTime(0)
	for i := 1; i <= 100; i++ {
		now := float64(i) * 0.125
		if toggles[i] {
			a.Toggle(now)
		}
		got := a.SceneTime(now)
		if got < prev {
			t.Fatalf("step %d: scene time went back from %v to %v", i, prev, got)
		}
		prev = got
	}
}

func TestPauseResumeIdempotent(t *testing.T) {
	a := New(0)
	a.Resume(1)
	if a.SceneTime(1) != 1 {
		t.Errorf("Resume on running clock changed time: %v", a.SceneTime(1))
	}

	a.Pause(2)
	a.Pause(5)
	if got := a.SceneTime(6); got != 2 {
		t.Errorf("second Pause moved the freeze point: %v, want 2", got)
	}
}

func TestSourceFunc(t *testing.T) {
	var s Source = SourceFunc(func() float64 { return 42 })
	if s.Now() != 42 {
		t.Errorf("Now() = %v, want 42", s.Now())
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || Paused.String() != "paused" {
		t.Errorf("String() = %q, %q", Running.String(), Paused.String())
	}
}
