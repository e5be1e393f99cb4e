package ui

import (
	"github.com/hubastard/cartridge/engine/colors"
	"github.com/hubastard/cartridge/engine/core"
	"github.com/hubastard/cartridge/engine/geom"
	"github.com/hubastard/cartridge/engine/text"
)

// Rasterizer turns a label into an image. *text.Fonts is the usual one; a
// nil result means the label is skipped for that frame.
type Rasterizer interface {
	Rasterize(s string, f *text.Font, sizePt float64, c colors.Color) *text.Image
}

// Widget is anything a Group can hold.
type Widget interface {
	core.Handler
	Render(s core.Surface)
}

// Common holds what every widget has: a fixed area, a fill color and a
// label. The chained setters return the owning widget and are meant to be
// used while building it.
type Common[T any] struct {
	owner T
	area  geom.Rect
	color colors.Color

	text      string
	font      *text.Font
	fontSize  float64
	textColor colors.Color
	raster    Rasterizer
}

// NewCommon takes the label style defaults from fonts, which may be nil.
func NewCommon[T any](owner T, fonts *text.Fonts, area geom.Rect, label string) Common[T] {
	c := Common[T]{
		owner:     owner,
		area:      geom.R(area.X, area.Y, area.W, area.H),
		text:      label,
		font:      fonts.DefaultFont(),
		fontSize:  fonts.DefaultSize(),
		textColor: fonts.DefaultColor(),
	}
	if fonts != nil {
		c.raster = fonts
	}
	return c
}

func (c *Common[T]) Font(f *text.Font) T          { c.font = f; return c.owner }
func (c *Common[T]) FontSize(pt float64) T        { c.fontSize = pt; return c.owner }
func (c *Common[T]) TextColor(col colors.Color) T { c.textColor = col; return c.owner }
func (c *Common[T]) BgColor(col colors.Color) T   { c.color = col; return c.owner }
func (c *Common[T]) Rasterizer(r Rasterizer) T    { c.raster = r; return c.owner }

func (c *Common[T]) Area() geom.Rect        { return c.area }
func (c *Common[T]) Label() string          { return c.text }
func (c *Common[T]) SetLabel(s string)      { c.text = s }
func (c *Common[T]) Contains(x, y int) bool { return c.area.Contains(x, y) }

// drawLabel rasterizes the label and composites it centered in the area,
// cropping evenly when it does not fit. The image never outlives the call.
func (c *Common[T]) drawLabel(s core.Surface) {
	if c.raster == nil {
		return
	}
	img := c.raster.Rasterize(c.text, c.font, c.fontSize, c.textColor)
	if img == nil {
		return
	}
	defer img.Release()

	w, h := img.Size()
	src, dst := geom.LabelRects(c.area, w, h)
	if dst.Empty() {
		return
	}
	s.DrawImage(img.RGBA(), src, dst)
}
