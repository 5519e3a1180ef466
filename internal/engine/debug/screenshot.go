// Package debug provides frame capture for inspecting the rendered scene.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes captured frames as timestamped PNG files.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewScreenshots creates a capture writing <dir>/<prefix>_<timestamp>.png.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{
		dir:    dir,
		prefix: prefix,
		now:    time.Now,
	}
}

// Dir returns the output directory.
func (s *Screenshots) Dir() string {
	return s.dir
}

// Capture saves raw back-buffer pixels, as returned by glReadPixels in
// RGBA with the bottom row first, and returns the written path.
func (s *Screenshots) Capture(pixels []byte, width, height int) (string, error) {
	img, err := FromPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return s.Save(img)
}

// FromPixels copies bottom-up RGBA rows into a top-down image.
func FromPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		copy(img.Pix[y*img.Stride:y*img.Stride+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}

// Save encodes img into a new file. A second capture within the same
// second gets a numeric suffix rather than overwriting the first.
func (s *Screenshots) Save(img image.Image) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	base := fmt.Sprintf("%s_%s", s.prefix, s.now().Format("2006-01-02_15-04-05"))
	var file *os.File
	var path string
	for n := 0; ; n++ {
		name := base + ".png"
		if n > 0 {
			name = fmt.Sprintf("%s_%d.png", base, n)
		}
		path = filepath.Join(s.dir, name)

		var err error
		file, err = os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return "", fmt.Errorf("creating file: %w", err)
		}
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return path, nil
}
