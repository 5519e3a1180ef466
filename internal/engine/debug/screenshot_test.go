package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// twoRows returns a 2x2 frame, bottom row red, top row blue, as GL
// returns it.
func twoRows() []byte {
	return []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
}

func TestFromPixelsFlips(t *testing.T) {
	img, err := FromPixels(twoRows(), 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{B: 255, A: 255}) {
		t.Errorf("top-left = %v, want blue", got)
	}
	if got := img.RGBAAt(1, 1); got != (color.RGBA{R: 255, A: 255}) {
		t.Errorf("bottom-right = %v, want red", got)
	}
}

func TestFromPixelsRejectsBadSize(t *testing.T) {
	tests := []struct {
		name   string
		pixels []byte
		w, h   int
	}{
		{"short", make([]byte, 12), 2, 2},
		{"zero width", nil, 0, 2},
	}
	for _, tt := range tests {
		if _, err := FromPixels(tt.pixels, tt.w, tt.h); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestCaptureWritesUniqueFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	s := NewScreenshots(dir, "orrery")
	fixed := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	first, err := s.Capture(twoRows(), 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	second, err := s.Capture(twoRows(), 2, 2)
	if err != nil {
		t.Fatal(err)
	}

	if want := filepath.Join(dir, "orrery_2024-05-01_12-30-00.png"); first != want {
		t.Errorf("first = %s, want %s", first, want)
	}
	if want := filepath.Join(dir, "orrery_2024-05-01_12-30-00_1.png"); second != want {
		t.Errorf("second = %s, want %s", second, want)
	}

	f, err := os.Open(first)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	r, _, b, _ := img.At(0, 0).RGBA()
	if r != 0 || b != 0xffff {
		t.Errorf("saved top-left is not blue")
	}
}
