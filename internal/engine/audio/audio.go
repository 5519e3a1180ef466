// Package audio plays an optional looping soundtrack.
package audio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"
)

// DefaultSampleRate is the speaker sample rate.
const DefaultSampleRate = beep.SampleRate(44100)

// ErrNotInitialized is returned by Play before Init succeeds.
var ErrNotInitialized = errors.New("audio not initialized")

// Soundtrack loops one music track with volume, mute and pause control.
// It is safe to call from any goroutine; the speaker streams on its own.
type Soundtrack struct {
	mu sync.Mutex

	initialized bool
	sampleRate  beep.SampleRate

	source beep.StreamSeekCloser
	ctrl   *beep.Ctrl
	volume *effects.Volume
	name   string

	level  float64
	muted  bool
	paused bool

	log *zap.Logger
}

// New creates a soundtrack at the given volume (0.0 to 1.0).
func New(level float64, muted bool, log *zap.Logger) *Soundtrack {
	return &Soundtrack{
		level:      clamp(level, 0, 1),
		muted:      muted,
		sampleRate: DefaultSampleRate,
		log:        log,
	}
}

// Init opens the audio device.
func (s *Soundtrack) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/30)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	s.initialized = true
	return nil
}

// Play decodes a WAV stream and loops it, replacing any current track.
func (s *Soundtrack) Play(r io.ReadCloser, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		r.Close()
		return ErrNotInitialized
	}

	source, format, err := wav.Decode(r)
	if err != nil {
		r.Close()
		return fmt.Errorf("decode %s: %w", name, err)
	}
	looped, err := loop(source, format, s.sampleRate)
	if err != nil {
		source.Close()
		return fmt.Errorf("loop %s: %w", name, err)
	}

	s.stopLocked()

	s.source = source
	s.ctrl = &beep.Ctrl{Streamer: looped, Paused: s.paused}
	s.volume = &effects.Volume{Streamer: s.ctrl, Base: 10}
	s.name = name
	s.applyVolume()

	speaker.Play(s.volume)
	s.log.Info("soundtrack started",
		zap.String("track", name),
		zap.Int("sample_rate", int(format.SampleRate)),
		zap.Duration("length", format.SampleRate.D(source.Len())),
	)
	return nil
}

// loop repeats source forever, resampled to rate.
func loop(source beep.StreamSeeker, format beep.Format, rate beep.SampleRate) (beep.Streamer, error) {
	looped, err := beep.Loop2(source)
	if err != nil {
		return nil, err
	}
	if format.SampleRate == rate {
		return looped, nil
	}
	return beep.Resample(4, format.SampleRate, rate, looped), nil
}

// SetVolume sets the level (0.0 to 1.0).
func (s *Soundtrack) SetVolume(level float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.level = clamp(level, 0, 1)
	s.withSpeaker(s.applyVolume)
}

// Volume returns the level.
func (s *Soundtrack) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// ToggleMute flips mute and returns the new state.
func (s *Soundtrack) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = !s.muted
	s.withSpeaker(s.applyVolume)
	return s.muted
}

// Muted reports whether output is muted.
func (s *Soundtrack) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// SetPaused pauses or resumes the track without losing its position.
func (s *Soundtrack) SetPaused(paused bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = paused
	s.withSpeaker(func() {
		if s.ctrl != nil {
			s.ctrl.Paused = paused
		}
	})
}

// Playing reports whether a track is loaded and not paused.
func (s *Soundtrack) Playing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl != nil && !s.paused
}

// Track returns the name of the loaded track.
func (s *Soundtrack) Track() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name
}

// Close stops playback and releases the track.
func (s *Soundtrack) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *Soundtrack) stopLocked() {
	if s.initialized {
		speaker.Clear()
	}
	if s.source != nil {
		s.source.Close()
		s.source = nil
	}
	s.ctrl = nil
	s.volume = nil
	s.name = ""
}

// withSpeaker runs f under the speaker lock when the speaker is running.
func (s *Soundtrack) withSpeaker(f func()) {
	if s.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	f()
}

func (s *Soundtrack) applyVolume() {
	if s.volume == nil {
		return
	}
	gain := s.gain()
	s.volume.Silent = gain <= 0
	s.volume.Volume = volumeToDb(gain) / 20
}

// gain is the effective linear output level.
func (s *Soundtrack) gain() float64 {
	if s.muted {
		return 0
	}
	return s.level
}

// volumeToDb converts a 0-1 volume to decibels: 1 -> 0 dB, 0.5 -> about -6 dB.
func volumeToDb(vol float64) float64 {
	if vol <= 0 {
		return -100 // Effectively silent
	}
	return 20 * math.Log10(vol)
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
