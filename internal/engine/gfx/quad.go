package gfx

// Rect is an axis-aligned rectangle from (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0, X1, Y1 float32
}

// QuadVertices returns two triangles covering pos, in Layout2DTexCoord.
// The corner at (pos.X0, pos.Y0) samples (uv.X0, uv.Y0), and likewise for
// the other corners, so swapping uv.Y0 and uv.Y1 flips the image.
func QuadVertices(pos, uv Rect) []float32 {
	tl := [4]float32{pos.X0, pos.Y1, uv.X0, uv.Y1}
	bl := [4]float32{pos.X0, pos.Y0, uv.X0, uv.Y0}
	br := [4]float32{pos.X1, pos.Y0, uv.X1, uv.Y0}
	tr := [4]float32{pos.X1, pos.Y1, uv.X1, uv.Y1}

	out := make([]float32, 0, 6*4)
	for _, v := range [6][4]float32{tl, bl, br, tl, br, tr} {
		out = append(out, v[:]...)
	}
	return out
}

// FullScreen covers clip space.
var FullScreen = Rect{X0: -1, Y0: -1, X1: 1, Y1: 1}

// UnitUV maps the whole texture with v growing upward.
var UnitUV = Rect{X0: 0, Y0: 0, X1: 1, Y1: 1}
