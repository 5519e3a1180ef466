// Package gfxtest provides a recording gfx.Backend for tests that
// run without a GL context.
package gfxtest

import (
	"errors"
	"image"

	"github.com/Faultbox/orrery/internal/engine/gfx"
)

var (
	_ gfx.Backend         = (*Recorder)(nil)
	_ gfx.TextureUploader = (*Recorder)(nil)
)

// ErrCreateFailed is returned by CreateMesh and CreateTexture when
// FailCreate is set.
var ErrCreateFailed = errors.New("gfxtest: resource creation failed")

// Call is one recorded backend call.
type Call struct {
	Op      string // "create", "delete", "triangles", "lineloop", "texture", "upload", "free"
	VAO     uint32
	Texture gfx.Texture
	Size    image.Point // uploaded image size
}

// Recorder implements gfx.Backend by recording calls.
type Recorder struct {
	FailCreate bool

	Calls    []Call
	nextID   uint32
	live     map[uint32]bool
	Deletes  map[uint32]int
	textures map[gfx.Texture]gfx.Sampling
}

// New creates an empty recorder.
func New() *Recorder {
	return &Recorder{
		live:     make(map[uint32]bool),
		Deletes:  make(map[uint32]int),
		textures: make(map[gfx.Texture]gfx.Sampling),
	}
}

// CreateMesh records a mesh and hands out a fresh VAO id.
func (r *Recorder) CreateMesh(vertices []float32, layout gfx.Layout, indices []uint32) (gfx.Mesh, error) {
	if r.FailCreate {
		return gfx.Mesh{}, ErrCreateFailed
	}
	if len(vertices) == 0 {
		return gfx.Mesh{}, errors.New("gfxtest: empty vertex data")
	}

	r.nextID++
	m := gfx.Mesh{VAO: r.nextID, VBO: r.nextID}
	if len(indices) > 0 {
		m.EBO = r.nextID
		m.Count = int32(len(indices))
	} else {
		m.Count = int32(len(vertices)) / layout.Stride()
	}
	r.live[m.VAO] = true
	r.Calls = append(r.Calls, Call{Op: "create", VAO: m.VAO})
	return m, nil
}

// DeleteMesh records the release and zeroes the handle.
func (r *Recorder) DeleteMesh(m *gfx.Mesh) {
	if m.VAO == 0 {
		return
	}
	r.Deletes[m.VAO]++
	delete(r.live, m.VAO)
	r.Calls = append(r.Calls, Call{Op: "delete", VAO: m.VAO})
	*m = gfx.Mesh{}
}

// DrawTriangles records a triangle draw.
func (r *Recorder) DrawTriangles(m gfx.Mesh) {
	r.Calls = append(r.Calls, Call{Op: "triangles", VAO: m.VAO})
}

// DrawLineLoop records a line-loop draw.
func (r *Recorder) DrawLineLoop(m gfx.Mesh) {
	r.Calls = append(r.Calls, Call{Op: "lineloop", VAO: m.VAO})
}

// BindTexture records a texture bind.
func (r *Recorder) BindTexture(t gfx.Texture) {
	r.Calls = append(r.Calls, Call{Op: "texture", Texture: t})
}

// CreateTexture records an upload and hands out a fresh handle.
func (r *Recorder) CreateTexture(img *image.RGBA, s gfx.Sampling) (gfx.Texture, error) {
	if r.FailCreate {
		return 0, ErrCreateFailed
	}
	r.nextID++
	t := gfx.Texture(r.nextID)
	r.textures[t] = s
	r.Calls = append(r.Calls, Call{Op: "upload", Texture: t, Size: img.Bounds().Size()})
	return t, nil
}

// DeleteTexture records the release and zeroes the handle.
func (r *Recorder) DeleteTexture(t *gfx.Texture) {
	if !t.Valid() {
		return
	}
	delete(r.textures, *t)
	r.Calls = append(r.Calls, Call{Op: "free", Texture: *t})
	*t = 0
}

// Sampling returns how a live texture was uploaded.
func (r *Recorder) Sampling(t gfx.Texture) (gfx.Sampling, bool) {
	s, ok := r.textures[t]
	return s, ok
}

// LiveTextures returns the number of textures not yet deleted.
func (r *Recorder) LiveTextures() int {
	return len(r.textures)
}

// Live returns the number of meshes created and not yet deleted.
func (r *Recorder) Live() int {
	return len(r.live)
}

// Count returns how many calls of the given op were recorded.
func (r *Recorder) Count(op string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Reset forgets recorded calls but keeps live mesh bookkeeping.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
