// Package renderer implements the gfx backend on OpenGL 4.1 core.
package renderer

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/engine/gfx"
	"github.com/Faultbox/orrery/internal/logger"
)

var (
	_ gfx.Backend         = (*Renderer)(nil)
	_ gfx.TextureUploader = (*Renderer)(nil)
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
}

// Renderer owns global GL state and creates GPU resources.
type Renderer struct {
	config Config
	log    *zap.Logger
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close logs renderer shutdown. Resources are released by their owners.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current drawable size in pixels.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Aspect returns width / height of the drawable.
func (r *Renderer) Aspect() float32 {
	if r.config.Height <= 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SetDepthTest toggles depth testing.
func (r *Renderer) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// SetBlend toggles alpha blending.
func (r *Renderer) SetBlend(enabled bool) {
	if enabled {
		gl.Enable(gl.BLEND)
	} else {
		gl.Disable(gl.BLEND)
	}
}

// CreateMesh uploads interleaved float vertices described by layout, plus
// an optional element buffer.
func (r *Renderer) CreateMesh(vertices []float32, layout gfx.Layout, indices []uint32) (gfx.Mesh, error) {
	stride := layout.Stride()
	if stride == 0 || len(vertices) == 0 || len(vertices)%int(stride) != 0 {
		return gfx.Mesh{}, fmt.Errorf("vertex data of %d floats does not fit layout %v", len(vertices), layout)
	}

	var m gfx.Mesh
	gl.GenVertexArrays(1, &m.VAO)
	gl.BindVertexArray(m.VAO)

	gl.GenBuffers(1, &m.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	var offset uintptr
	for loc, size := range layout {
		gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, stride*4, offset)
		gl.EnableVertexAttribArray(uint32(loc))
		offset += uintptr(size) * 4
	}

	if len(indices) > 0 {
		gl.GenBuffers(1, &m.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
		m.Count = int32(len(indices))
	} else {
		m.Count = int32(len(vertices)) / stride
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if m.VAO == 0 {
		return gfx.Mesh{}, errors.New("glGenVertexArrays returned 0")
	}

	r.log.Debug("mesh created",
		zap.Uint32("vao", m.VAO),
		zap.Int32("count", m.Count),
		zap.Bool("indexed", m.Indexed()),
	)
	return m, nil
}

// DeleteMesh releases the mesh buffers and zeroes the handle.
func (r *Renderer) DeleteMesh(m *gfx.Mesh) {
	if m.EBO != 0 {
		gl.DeleteBuffers(1, &m.EBO)
	}
	if m.VBO != 0 {
		gl.DeleteBuffers(1, &m.VBO)
	}
	if m.VAO != 0 {
		gl.DeleteVertexArrays(1, &m.VAO)
	}
	*m = gfx.Mesh{}
}

// DrawTriangles draws the mesh as a triangle list.
func (r *Renderer) DrawTriangles(m gfx.Mesh) {
	r.draw(m, gl.TRIANGLES)
}

// DrawLineLoop draws the mesh vertices as a closed polyline.
func (r *Renderer) DrawLineLoop(m gfx.Mesh) {
	r.draw(m, gl.LINE_LOOP)
}

func (r *Renderer) draw(m gfx.Mesh, mode uint32) {
	if !m.Valid() {
		return
	}
	gl.BindVertexArray(m.VAO)
	if m.Indexed() {
		gl.DrawElements(mode, m.Count, gl.UNSIGNED_INT, nil)
	} else {
		gl.DrawArrays(mode, 0, m.Count)
	}
	gl.BindVertexArray(0)
}

// BindTexture binds t to texture unit 0.
func (r *Renderer) BindTexture(t gfx.Texture) {
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
}

// CreateTexture uploads an RGBA image. Row 0 of the image becomes v = 0.
func (r *Renderer) CreateTexture(img *image.RGBA, s gfx.Sampling) (gfx.Texture, error) {
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 {
		return 0, errors.New("empty image")
	}
	if img.Stride != size.X*4 {
		img = repack(img)
	}

	var id uint32
	gl.GenTextures(1, &id)
	if id == 0 {
		return 0, errors.New("glGenTextures returned 0")
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))

	wrap := int32(gl.CLAMP_TO_EDGE)
	if s.Repeat {
		wrap = gl.REPEAT
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrap)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrap)

	if s.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return gfx.Texture(id), nil
}

// DeleteTexture frees the texture and zeroes the handle.
func (r *Renderer) DeleteTexture(t *gfx.Texture) {
	if !t.Valid() {
		return
	}
	id := uint32(*t)
	gl.DeleteTextures(1, &id)
	*t = 0
}

// ReadPixels reads the back buffer as tightly packed RGBA rows, bottom row
// first as GL returns them.
func (r *Renderer) ReadPixels() (pixels []byte, width, height int) {
	width, height = r.config.Width, r.config.Height
	if width <= 0 || height <= 0 {
		return nil, 0, 0
	}
	pixels = make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, width, height
}

// repack copies a sub-image into a tightly packed RGBA.
func repack(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		copy(out.Pix[y*out.Stride:(y+1)*out.Stride], img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):])
	}
	return out
}
