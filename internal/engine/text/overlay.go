package text

import (
	"fmt"

	"golang.org/x/image/font"

	"github.com/Faultbox/orrery/internal/engine/gfx"
	"github.com/Faultbox/orrery/pkg/math"
)

// Overlay is a line of text placed in window pixel coordinates with the
// origin at the bottom-left, drawn with an orthographic projection.
type Overlay struct {
	Color math.Vec3

	glyphs Glyphs
	scale  float32
	x, y   float32

	device  gfx.Device
	texture gfx.Texture
	quad    gfx.Mesh
}

// NewOverlay rasterizes s once. Position it with Place before drawing.
func NewOverlay(face font.Face, s string, scale float32, color math.Vec3) (*Overlay, error) {
	g, err := Rasterize(face, s)
	if err != nil {
		return nil, fmt.Errorf("rasterizing %q: %w", s, err)
	}
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{Color: color, glyphs: g, scale: scale}, nil
}

// Glyphs returns the rasterized text.
func (o *Overlay) Glyphs() Glyphs {
	return o.glyphs
}

// Upload creates the glyph texture. Calling it again is a no-op.
func (o *Overlay) Upload(device gfx.Device) error {
	if o.texture.Valid() {
		return nil
	}
	t, err := device.CreateTexture(o.glyphs.Image, gfx.SamplingOverlay)
	if err != nil {
		return fmt.Errorf("uploading text texture: %w", err)
	}
	o.device = device
	o.texture = t
	return nil
}

// Place moves the pen start to (x, y) on the baseline and rebuilds the quad
// if the position changed.
func (o *Overlay) Place(x, y float32) error {
	if o.device == nil {
		return nil
	}
	if o.quad.Valid() && x == o.x && y == o.y {
		return nil
	}

	o.device.DeleteMesh(&o.quad)
	quad, err := o.device.CreateMesh(o.Vertices(x, y), gfx.Layout2DTexCoord, nil)
	if err != nil {
		return fmt.Errorf("uploading text quad: %w", err)
	}
	o.quad = quad
	o.x, o.y = x, y
	return nil
}

// Bounds returns the quad covering the ink when the pen starts at (x, y).
func (o *Overlay) Bounds(x, y float32) gfx.Rect {
	size := o.glyphs.Image.Rect.Size()
	left := x - float32(o.glyphs.Origin.X)*o.scale
	bottom := y - float32(o.glyphs.Descent())*o.scale
	return gfx.Rect{
		X0: left,
		Y0: bottom,
		X1: left + float32(size.X)*o.scale,
		Y1: bottom + float32(size.Y)*o.scale,
	}
}

// Vertices returns the quad for a pen start of (x, y). Image row 0 is the
// top of the text, so v runs downward.
func (o *Overlay) Vertices(x, y float32) []float32 {
	return gfx.QuadVertices(o.Bounds(x, y), gfx.Rect{X0: 0, Y0: 1, X1: 1, Y1: 0})
}

// Draw binds the glyph texture and draws the quad. The caller sets the
// projection, color and blending. It does nothing until Upload and Place
// succeed.
func (o *Overlay) Draw() {
	if !o.quad.Valid() || !o.texture.Valid() {
		return
	}
	o.device.BindTexture(o.texture)
	o.device.DrawTriangles(o.quad)
}

// Release frees the texture and quad.
func (o *Overlay) Release() {
	if o.device == nil {
		return
	}
	o.device.DeleteMesh(&o.quad)
	o.device.DeleteTexture(&o.texture)
}

// Projection maps window pixels to clip space, origin bottom-left.
func Projection(width, height int) math.Mat4 {
	return math.Ortho2D(0, float32(width), 0, float32(height))
}
