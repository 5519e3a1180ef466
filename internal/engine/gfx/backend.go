// Package gfx defines the render backend contract that scene objects draw
// through, so geometry code stays independent of the GL binding.
package gfx

import "image"

// Mesh is a GPU vertex array with its buffers. The zero value is an invalid
// mesh that draws nothing.
type Mesh struct {
	VAO   uint32
	VBO   uint32
	EBO   uint32 // 0 for non-indexed meshes
	Count int32  // index count, or vertex count when EBO is 0
}

// Valid reports whether the mesh was created successfully.
func (m Mesh) Valid() bool {
	return m.VAO != 0 && m.Count > 0
}

// Indexed reports whether the mesh draws through an element buffer.
func (m Mesh) Indexed() bool {
	return m.EBO != 0
}

// Texture is a GPU texture handle. Zero means "no texture".
type Texture uint32

// Valid reports whether the handle refers to an uploaded texture.
func (t Texture) Valid() bool {
	return t != 0
}

// Layout lists the float component count of each vertex attribute in
// location order, e.g. {3, 2} for position + texcoord.
type Layout []int32

// Stride returns the vertex size in floats.
func (l Layout) Stride() int32 {
	var n int32
	for _, c := range l {
		n += c
	}
	return n
}

// Common layouts.
var (
	LayoutPosition         = Layout{3}
	LayoutPositionTexCoord = Layout{3, 2}
	Layout2DTexCoord       = Layout{2, 2}
)

// Backend is the subset of the graphics API the scene objects depend on.
// Implementations are not safe for concurrent use; all calls happen on the
// render thread.
type Backend interface {
	// CreateMesh uploads interleaved vertices (and optional indices).
	CreateMesh(vertices []float32, layout Layout, indices []uint32) (Mesh, error)
	// DeleteMesh releases the buffers and zeroes the handle.
	DeleteMesh(m *Mesh)
	// DrawTriangles issues an indexed or array triangle draw.
	DrawTriangles(m Mesh)
	// DrawLineLoop draws the vertices as a closed line strip.
	DrawLineLoop(m Mesh)
	// BindTexture binds a 2D texture to unit 0. Zero unbinds.
	BindTexture(t Texture)
}

// Sampling selects how an uploaded texture is filtered and wrapped.
type Sampling struct {
	Repeat  bool // wrap with GL_REPEAT instead of clamping to the edge
	Mipmaps bool // generate mipmaps and filter trilinearly
}

// Sampling presets.
var (
	// SamplingSurface suits planet and background images.
	SamplingSurface = Sampling{Repeat: true, Mipmaps: true}
	// SamplingOverlay suits pixel-exact overlays such as rasterized text.
	SamplingOverlay = Sampling{}
)

// TextureUploader creates and frees 2D textures from decoded images.
type TextureUploader interface {
	CreateTexture(img *image.RGBA, s Sampling) (Texture, error)
	DeleteTexture(t *Texture)
}

// Device is a backend that can also manage textures.
type Device interface {
	Backend
	TextureUploader
}
