package glbackend

import (
	"testing"

	"github.com/hubastard/cartridge/engine/geom"
	"github.com/stretchr/testify/assert"
)

func apply(m [16]float32, x, y float32) (float32, float32) {
	return m[0]*x + m[4]*y + m[12], m[1]*x + m[5]*y + m[13]
}

func TestPixelProjectionCorners(t *testing.T) {
	m := pixelProjection(200, 100)

	x, y := apply(m, 0, 0)
	assert.InDelta(t, -1, x, 1e-6)
	assert.InDelta(t, 1, y, 1e-6)

	x, y = apply(m, 200, 100)
	assert.InDelta(t, 1, x, 1e-6)
	assert.InDelta(t, -1, y, 1e-6)

	x, y = apply(m, 100, 50)
	assert.InDelta(t, 0, x, 1e-6)
	assert.InDelta(t, 0, y, 1e-6)
}

func TestQuadVerts(t *testing.T) {
	v := quadVerts(geom.R(10, 20, 30, 40))

	// first vertex is the top-left corner with uv (0,0)
	assert.Equal(t, []float32{10, 20, 0, 0}, v[0:4])
	// third vertex is the bottom-right corner with uv (1,1)
	assert.Equal(t, []float32{40, 60, 1, 1}, v[8:12])
	// last vertex is the bottom-left corner
	assert.Equal(t, []float32{10, 60, 0, 1}, v[20:24])
}
