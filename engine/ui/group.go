package ui

import "github.com/hubastard/cartridge/engine/core"

// UIGroup forwards events to its widgets and renders them in insertion
// order, so later widgets draw on top.
type UIGroup struct {
	widgets []Widget
}

var _ core.Handler = (*UIGroup)(nil)

func Group(ws ...Widget) *UIGroup { return &UIGroup{widgets: ws} }

func (g *UIGroup) Add(ws ...Widget) *UIGroup {
	g.widgets = append(g.widgets, ws...)
	return g
}

func (g *UIGroup) Len() int { return len(g.widgets) }

func (g *UIGroup) HandleEvent(ev core.Event) {
	for _, w := range g.widgets {
		w.HandleEvent(ev)
	}
}

func (g *UIGroup) Render(s core.Surface) {
	for _, w := range g.widgets {
		w.Render(s)
	}
}
