package glbackend

import "github.com/hubastard/cartridge/engine/geom"

// pos2 + uv2
const (
	floatsPerVertex = 4
	vertsPerQuad    = 6
	quadFloats      = floatsPerVertex * vertsPerQuad
)

// quadVerts lays out r as two triangles with uv (0,0) at the top-left corner.
func quadVerts(r geom.Rect) [quadFloats]float32 {
	x0, y0 := float32(r.X), float32(r.Y)
	x1, y1 := float32(r.X+r.W), float32(r.Y+r.H)
	return [quadFloats]float32{
		x0, y0, 0, 0,
		x1, y0, 1, 0,
		x1, y1, 1, 1,

		x0, y0, 0, 0,
		x1, y1, 1, 1,
		x0, y1, 0, 1,
	}
}

// ortho is column-major, GLSL-style.
func ortho(l, r, b, t, n, f float32) [16]float32 {
	rl := 1 / (r - l)
	tb := 1 / (t - b)
	fn := 1 / (f - n)
	return [16]float32{
		2 * rl, 0, 0, 0,
		0, 2 * tb, 0, 0,
		0, 0, -2 * fn, 0,
		-(r + l) * rl, -(t + b) * tb, -(f + n) * fn, 1,
	}
}

// pixelProjection maps window pixels (origin top-left, y down) to clip space.
func pixelProjection(w, h int) [16]float32 {
	return ortho(0, float32(w), float32(h), 0, -1, 1)
}
