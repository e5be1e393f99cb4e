package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is straight (non-premultiplied) RGBA in [0..1].
type Color [4]float32

var (
	White     = Color{1, 1, 1, 1}
	Red       = Color{1, 0, 0, 1}
	Green     = Color{0, 1, 0, 1}
	Blue      = Color{0, 0, 1, 1}
	Black     = Color{0, 0, 0, 1}
	Magenta   = Color{1, 0, 1, 1}
	Cyan      = Color{0, 1, 1, 1}
	Yellow    = Color{1, 1, 0, 1}
	Gray      = Color{0.5, 0.5, 0.5, 1}
	DarkGray  = Color{0.08, 0.10, 0.12, 1}
	LightGray = RGBA8(224, 224, 224, 255)
	SteelBlue = RGBA8(70, 130, 180, 255)
	Goldenrod = RGBA8(218, 165, 32, 255)
	Clear     = Color{}
)

// RGBA8 builds a Color from 8-bit channels.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
}

func (c Color) WithAlpha(a float32) Color {
	c[3] = a
	return c
}

// NRGBA converts c to an 8-bit image/color value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c[0]), G: to8(c[1]), B: to8(c[2]), A: to8(c[3])}
}

// Premultiplied returns c with its color channels scaled by alpha.
func (c Color) Premultiplied() Color {
	return Color{c[0] * c[3], c[1] * c[3], c[2] * c[3], c[3]}
}

func (c Color) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (the leading # is optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]}) + "ff"
	case 6:
		h += "ff"
	case 8:
	default:
		return Color{}, fmt.Errorf("colors: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("colors: invalid hex color %q: %w", s, err)
	}
	return RGBA8(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

func to8(f float32) uint8 {
	switch {
	case f <= 0:
		return 0
	case f >= 1:
		return 255
	}
	return uint8(f*255 + 0.5)
}
