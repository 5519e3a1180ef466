package audio

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"go.uber.org/zap"
)

func TestVolumeConversion(t *testing.T) {
	tests := []struct {
		vol float64
		min float64
		max float64
	}{
		{1.0, -1, 1},     // Full volume should be ~0dB
		{0.5, -8, -4},    // Half volume should be around -6dB
		{0.25, -14, -10}, // Quarter volume should be around -12dB
		{0.0, -200, -90}, // Zero volume should be very negative
	}

	for _, tt := range tests {
		db := volumeToDb(tt.vol)
		if db < tt.min || db > tt.max {
			t.Errorf("volumeToDb(%f) = %f, want between %f and %f", tt.vol, db, tt.min, tt.max)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
		{0, 0, 1, 0},
		{1, 0, 1, 1},
	}

	for _, tt := range tests {
		got := clamp(tt.v, tt.min, tt.max)
		if got != tt.want {
			t.Errorf("clamp(%f, %f, %f) = %f, want %f", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}

func TestNewClampsVolume(t *testing.T) {
	if v := New(1.7, false, zap.NewNop()).Volume(); v != 1 {
		t.Errorf("volume = %v, want 1", v)
	}
	s := New(0.7, false, zap.NewNop())
	s.SetVolume(-3)
	if s.Volume() != 0 {
		t.Errorf("volume = %v, want 0", s.Volume())
	}
}

func TestToggleMute(t *testing.T) {
	s := New(0.7, false, zap.NewNop())

	if !s.ToggleMute() || !s.Muted() {
		t.Fatal("first toggle should mute")
	}
	if s.gain() != 0 {
		t.Errorf("muted gain = %v", s.gain())
	}
	if s.ToggleMute() {
		t.Fatal("second toggle should unmute")
	}
	if s.gain() != 0.7 {
		t.Errorf("gain = %v, want 0.7", s.gain())
	}
	if s.Volume() != 0.7 {
		t.Error("mute must not change the volume level")
	}
}

func TestPlayBeforeInit(t *testing.T) {
	s := New(1, false, zap.NewNop())
	err := s.Play(io.NopCloser(strings.NewReader("RIFF")), "ambient.wav")
	if err != ErrNotInitialized {
		t.Errorf("err = %v, want ErrNotInitialized", err)
	}
	if s.Playing() || s.Track() != "" {
		t.Error("nothing should be loaded")
	}
	s.SetPaused(true)
	s.Close()
}

// writeTone encodes n samples of a sine tone as a WAV file.
func writeTone(t *testing.T, n int, rate beep.SampleRate) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tone.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	i := 0
	tone := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if i >= n {
			return 0, false
		}
		k := 0
		for ; k < len(samples) && i < n; k++ {
			v := 0.5 * math.Sin(float64(i)/8)
			samples[k] = [2]float64{v, v}
			i++
		}
		return k, true
	})

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, tone, format); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoopOutlivesSource(t *testing.T) {
	tests := []struct {
		name string
		rate beep.SampleRate
	}{
		{"native rate", DefaultSampleRate},
		{"resampled", 22050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const n = 512
			f, err := os.Open(writeTone(t, n, tt.rate))
			if err != nil {
				t.Fatal(err)
			}

			source, format, err := wav.Decode(f)
			if err != nil {
				t.Fatal(err)
			}
			defer source.Close()
			if source.Len() != n {
				t.Fatalf("decoded %d samples, want %d", source.Len(), n)
			}

			looped, err := loop(source, format, DefaultSampleRate)
			if err != nil {
				t.Fatal(err)
			}

			buf := make([][2]float64, 5*n)
			got, ok := looped.Stream(buf)
			if !ok || got != len(buf) {
				t.Errorf("Stream = %d, %v; want %d, true", got, ok, len(buf))
			}
		})
	}
}
