// Package texture decodes surface images and uploads them as GPU textures.
package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"path"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode decodes an image file into RGBA. The format is sniffed from the
// data, except for TGA which has no magic number and is chosen by the
// .tga extension.
func Decode(data []byte, name string) (*image.RGBA, error) {
	if strings.EqualFold(path.Ext(name), ".tga") {
		return DecodeTGA(data)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decoding %s: empty %s image", name, format)
	}
	return ToRGBA(img), nil
}

// ToRGBA converts any image to a tightly packed *image.RGBA with its origin
// at (0, 0).
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == b.Dx()*4 {
		return rgba
	}
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
