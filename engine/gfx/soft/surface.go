// Package soft is a CPU rendition of core.Surface on an *image.RGBA. It backs
// headless windows and lets drawing code be checked pixel by pixel.
package soft

import (
	"image"
	"image/draw"

	"github.com/hubastard/cartridge/engine/colors"
	"github.com/hubastard/cartridge/engine/geom"
	xdraw "golang.org/x/image/draw"
)

type Surface struct {
	img      *image.RGBA
	bg       colors.Color
	presents int
	onFlip   func(*image.RGBA)
}

func New(w, h int) *Surface {
	return &Surface{img: image.NewRGBA(image.Rect(0, 0, w, h)), bg: colors.Black}
}

// OnPresent installs fn to receive the back buffer on every Present.
// fn must not retain the image past the call.
func (s *Surface) OnPresent(fn func(*image.RGBA)) { s.onFlip = fn }

func (s *Surface) SetBackground(c colors.Color) { s.bg = c }

func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.bg.NRGBA()), image.Point{}, draw.Src)
}

func (s *Surface) FillRect(r geom.Rect, c colors.Color) {
	dr := r.Image().Intersect(s.img.Bounds())
	if dr.Empty() {
		return
	}
	draw.Draw(s.img, dr, image.NewUniform(c.NRGBA()), image.Point{}, draw.Over)
}

// DrawImage composites src of img onto dst. Sizes are expected to match; a
// mismatch is resolved by scaling with nearest-neighbour sampling.
func (s *Surface) DrawImage(img image.Image, src, dst geom.Rect) {
	if img == nil || src.Empty() || dst.Empty() {
		return
	}
	sr := src.Image().Add(img.Bounds().Min)
	if src.W == dst.W && src.H == dst.H {
		xdraw.Copy(s.img, dst.Image().Min, img, sr, xdraw.Over, nil)
		return
	}
	xdraw.NearestNeighbor.Scale(s.img, dst.Image(), img, sr, xdraw.Over, nil)
}

func (s *Surface) Present() {
	s.presents++
	if s.onFlip != nil {
		s.onFlip(s.img)
	}
}

func (s *Surface) Destroy() {}

func (s *Surface) Image() *image.RGBA { return s.img }
func (s *Surface) Presents() int      { return s.presents }
