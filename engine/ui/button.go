package ui

import (
	"github.com/hubastard/cartridge/engine/colors"
	"github.com/hubastard/cartridge/engine/core"
	"github.com/hubastard/cartridge/engine/geom"
	"github.com/hubastard/cartridge/engine/text"
)

var (
	DefaultButtonColor    = colors.LightGray
	DefaultHighlightColor = colors.White
)

// Action runs when a button is clicked. It receives the button so it can
// relabel it.
type Action func(b *UIButton)

// UIButton is a rectangular push button with a text label.
//
// A click is a press that starts inside the area followed by a release that
// is also inside. Hover only changes the fill color.
type UIButton struct {
	Common[*UIButton]
	highlight colors.Color
	onClick   Action

	pressed bool
	hovered bool
}

func Button(fonts *text.Fonts, area geom.Rect, label string, onClick Action) *UIButton {
	b := &UIButton{highlight: DefaultHighlightColor, onClick: onClick}
	b.Common = NewCommon(b, fonts, area, label)
	b.color = DefaultButtonColor
	return b
}

func (b *UIButton) HighlightColor(c colors.Color) *UIButton { b.highlight = c; return b }
func (b *UIButton) OnClick(fn Action) *UIButton             { b.onClick = fn; return b }

func (b *UIButton) Pressed() bool { return b.pressed }
func (b *UIButton) Hovered() bool { return b.hovered }

func (b *UIButton) HandleEvent(ev core.Event) {
	switch e := ev.(type) {
	case core.EventPointerMove:
		b.hovered = b.Contains(e.X, e.Y)
	case core.EventPointerDown:
		if b.Contains(e.X, e.Y) {
			b.pressed = true
		}
	case core.EventPointerUp:
		if b.pressed && b.Contains(e.X, e.Y) && b.onClick != nil {
			b.onClick(b)
		}
		b.pressed = false
	}
}

func (b *UIButton) Render(s core.Surface) {
	fill := b.color
	if b.hovered {
		fill = b.highlight
	}
	s.FillRect(b.area, fill)
	b.drawLabel(s)
}
