// Package geom holds the integer pixel rectangle math used by widgets.
// Nothing here touches a renderer.
package geom

import "image"

// Rect is an axis-aligned rectangle in pixels with its origin at the top-left.
type Rect struct {
	X, Y int
	W, H int
}

// R builds a Rect, clamping negative sizes to zero.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: max(w, 0), H: max(h, 0)}
}

// Contains reports whether (x, y) lies in r. All four edges are inclusive,
// so a point at X+W or Y+H still counts as inside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Image converts r to the half-open image.Rectangle covering the same pixels.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// FromImage converts an image.Rectangle to a Rect.
func FromImage(ir image.Rectangle) Rect {
	return R(ir.Min.X, ir.Min.Y, ir.Dx(), ir.Dy())
}

// LabelRects places a w×h image inside area.
//
// dst is centered in area, but its origin never precedes area's origin, and
// it is never larger than area. When the image overflows area on an axis, src
// crops the excess evenly from both edges instead of scaling.
func LabelRects(area Rect, w, h int) (src, dst Rect) {
	w, h = max(w, 0), max(h, 0)

	dst = Rect{
		X: max(area.X, area.X+area.W/2-w/2),
		Y: max(area.Y, area.Y+area.H/2-h/2),
		W: min(w, area.W),
		H: min(h, area.H),
	}

	clipW := max(w-area.W, 0)
	clipH := max(h-area.H, 0)
	src = Rect{X: clipW / 2, Y: clipH / 2, W: w - clipW, H: h - clipH}
	return src, dst
}
