package main

import (
	"fmt"

	"github.com/hubastard/cartridge/engine/colors"
	"github.com/hubastard/cartridge/engine/core"
	"github.com/hubastard/cartridge/engine/geom"
	"github.com/hubastard/cartridge/engine/text"
	"github.com/hubastard/cartridge/engine/ui"
)

// ------- Widgets demo -------
type LayerUI struct {
	root    *ui.UIGroup
	title   *ui.UILabel
	counter *ui.UIButton
	quit    *ui.UIButton
	clicks  int
}

func NewLayerUI(s *core.Scheduler, fonts *text.Fonts) *LayerUI {
	l := &LayerUI{}
	w, h := s.Width(), s.Height()
	const bw, bh = 220, 48

	l.title = ui.Label(fonts, geom.R(0, h/6, w, 40), s.Title()).
		FontSize(28).
		TextColor(colors.White)

	l.counter = ui.Button(fonts, geom.R(w/2-bw/2, h/2-bh, bw, bh), clickLabel(0), func(b *ui.UIButton) {
		l.clicks++
		b.SetLabel(clickLabel(l.clicks))
	}).HighlightColor(colors.Goldenrod)

	l.quit = ui.Button(fonts, geom.R(w/2-bw/2, h/2+bh/2, bw, bh), "Quit", func(*ui.UIButton) {
		s.Close()
	}).BgColor(colors.SteelBlue).TextColor(colors.White)

	l.root = ui.Group(l.title, l.counter, l.quit)
	return l
}

func (l *LayerUI) HandleEvent(ev core.Event) { l.root.HandleEvent(ev) }
func (l *LayerUI) OnUpdate()                 {}
func (l *LayerUI) OnRender(s core.Surface)   { l.root.Render(s) }

func clickLabel(n int) string {
	if n == 1 {
		return "Clicked 1 time"
	}
	return fmt.Sprintf("Clicked %d times", n)
}
