package text

import (
	"fmt"
	"image"

	"github.com/hubastard/cartridge/engine/colors"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// Image is a rasterized string. The caller owns it and must Release it
// before the frame it was produced for ends.
type Image struct {
	rgba *image.RGBA
}

func NewImage(rgba *image.RGBA) *Image { return &Image{rgba: rgba} }

// Size is (0, 0) for a nil or released image.
func (img *Image) Size() (w, h int) {
	if img == nil || img.rgba == nil {
		return 0, 0
	}
	b := img.rgba.Bounds()
	return b.Dx(), b.Dy()
}

func (img *Image) RGBA() *image.RGBA {
	if img == nil {
		return nil
	}
	return img.rgba
}

func (img *Image) Release() {
	if img != nil {
		img.rgba = nil
	}
}

// Rasterize draws a single line of s in color c into a tightly sized image:
// as wide as the text's advance and as tall as the face's ascent+descent.
func Rasterize(s string, f *Font, sizePt float64, c colors.Color) (*Image, error) {
	if f == nil {
		return nil, ErrNoFont
	}
	s = norm.NFC.String(s)
	if s == "" {
		return nil, ErrEmptyText
	}
	face, err := f.Face(sizePt)
	if err != nil {
		return nil, err
	}

	m := face.Metrics()
	w := font.MeasureString(face, s).Ceil()
	h := (m.Ascent + m.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("text: %q measures %dx%d", s, w, h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: m.Ascent},
	}
	d.DrawString(s)
	return &Image{rgba: dst}, nil
}

// Measure returns the size Rasterize would produce, without drawing.
func Measure(s string, f *Font, sizePt float64) (w, h int, err error) {
	face, err := f.Face(sizePt)
	if err != nil {
		return 0, 0, err
	}
	m := face.Metrics()
	return font.MeasureString(face, norm.NFC.String(s)).Ceil(), (m.Ascent + m.Descent).Ceil(), nil
}
