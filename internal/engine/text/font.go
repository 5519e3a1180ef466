// Package text draws a static line of text as a single textured quad.
package text

import (
	"errors"
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// ErrEmpty is returned when a string rasterizes to nothing.
var ErrEmpty = errors.New("text has no visible glyphs")

// DefaultSize is the font size in pixels.
const DefaultSize = 24

// LoadFace parses TrueType or OpenType data at the given pixel size.
func LoadFace(data []byte, size float64) (font.Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("creating font face: %w", err)
	}
	return face, nil
}

// FallbackFace is used when no font file can be loaded.
func FallbackFace() font.Face {
	return basicfont.Face7x13
}

// Glyphs is a rasterized string. Image holds white pixels whose alpha is the
// glyph coverage, tightly cropped to the ink.
type Glyphs struct {
	Image *image.RGBA
	// Origin is the position of the pen start on the baseline, in image
	// pixels from the top-left corner.
	Origin image.Point
}

// Rasterize draws s with face.
func Rasterize(face font.Face, s string) (Glyphs, error) {
	bounds, _ := font.BoundString(face, s)
	minX, minY := bounds.Min.X.Floor(), bounds.Min.Y.Floor()
	maxX, maxY := bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()
	if maxX <= minX || maxY <= minY {
		return Glyphs{}, ErrEmpty
	}

	img := image.NewRGBA(image.Rect(0, 0, maxX-minX, maxY-minY))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P(-minX, -minY),
	}
	d.DrawString(s)

	return Glyphs{
		Image:  img,
		Origin: image.Pt(-minX, -minY),
	}, nil
}

// Ascent returns how many pixels of ink lie above the baseline.
func (g Glyphs) Ascent() int {
	return g.Origin.Y
}

// Descent returns how many pixels of ink lie below the baseline.
func (g Glyphs) Descent() int {
	return g.Image.Rect.Dy() - g.Origin.Y
}
