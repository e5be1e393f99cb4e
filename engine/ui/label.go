package ui

import (
	"github.com/hubastard/cartridge/engine/colors"
	"github.com/hubastard/cartridge/engine/core"
	"github.com/hubastard/cartridge/engine/geom"
	"github.com/hubastard/cartridge/engine/text"
)

// UILabel is static text centered in an area. The background is only
// filled when BgColor was given a visible color.
type UILabel struct {
	Common[*UILabel]
}

func Label(fonts *text.Fonts, area geom.Rect, str string) *UILabel {
	l := &UILabel{}
	l.Common = NewCommon(l, fonts, area, str)
	l.color = colors.Clear
	return l
}

func (l *UILabel) HandleEvent(core.Event) {}

func (l *UILabel) Render(s core.Surface) {
	if l.color[3] > 0 {
		s.FillRect(l.area, l.color)
	}
	l.drawLabel(s)
}
