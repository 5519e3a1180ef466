package scene

import (
	"fmt"

	"github.com/Faultbox/orrery/internal/engine/gfx"
)

// Background is a textured quad covering the whole viewport. It is drawn
// first with depth testing off, so it never occludes the bodies.
type Background struct {
	Texture gfx.Texture

	backend gfx.Backend
	quad    gfx.Mesh
}

// Upload creates the quad. Calling it again is a no-op.
func (b *Background) Upload(backend gfx.Backend) error {
	if b.quad.Valid() {
		return nil
	}
	quad, err := backend.CreateMesh(gfx.QuadVertices(gfx.FullScreen, gfx.UnitUV), gfx.Layout2DTexCoord, nil)
	if err != nil {
		return fmt.Errorf("uploading background quad: %w", err)
	}
	b.backend = backend
	b.quad = quad
	return nil
}

// Draw binds the texture and draws the quad. It does nothing until Upload
// succeeds.
func (b *Background) Draw() {
	if !b.quad.Valid() {
		return
	}
	b.backend.BindTexture(b.Texture)
	b.backend.DrawTriangles(b.quad)
}

// Release frees the quad. The texture belongs to whoever loaded it.
func (b *Background) Release() {
	if b.backend != nil {
		b.backend.DeleteMesh(&b.quad)
	}
}
