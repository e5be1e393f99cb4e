package assets

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// LoadImage decodes a PNG file, used for window icons.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode png %q: %w", path, err)
	}
	return img, nil
}

// Pixels returns the r sub-rectangle of img as tightly packed RGBA8 rows
// (stride == 4*w, top-left origin), ready for a texture upload.
func Pixels(img image.Image, r image.Rectangle) (w, h int, rgba []byte) {
	r = r.Intersect(img.Bounds())
	w, h = r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return 0, 0, nil
	}
	m := ToRGBA(img)
	out := make([]byte, w*h*4)

	// Copy row by row
	for y := 0; y < h; y++ {
		off := m.PixOffset(r.Min.X, r.Min.Y+y)
		copy(out[y*w*4:(y+1)*w*4], m.Pix[off:off+w*4])
	}
	return w, h, out
}

// ToRGBA returns img as *image.RGBA, converting only when it is not one already.
func ToRGBA(img image.Image) *image.RGBA {
	if m, ok := img.(*image.RGBA); ok {
		return m
	}
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, img, b.Min, draw.Src)
	return dst
}
