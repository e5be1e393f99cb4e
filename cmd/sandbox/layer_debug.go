package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/hubastard/cartridge/engine/colors"
	"github.com/hubastard/cartridge/engine/core"
	"github.com/hubastard/cartridge/engine/geom"
	"github.com/hubastard/cartridge/engine/text"
	"github.com/hubastard/cartridge/engine/ui"
)

// statsEvery is how many updates pass between refreshes of the overlay.
const statsEvery = 30

// ------- Frame statistics overlay -------
type LayerDebug struct {
	sched *core.Scheduler
	label *ui.UILabel
	shown bool

	lastAt            time.Time
	lastFrames, ticks uint64
}

func NewLayerDebug(s *core.Scheduler, fonts *text.Fonts) *LayerDebug {
	l := &LayerDebug{sched: s, shown: true, lastAt: time.Now()}
	l.label = ui.Label(fonts, geom.R(8, s.Height()-28, 360, 20), "measuring").
		FontSize(12).
		TextColor(colors.Yellow).
		BgColor(colors.DarkGray.WithAlpha(0.8))
	return l
}

// HandleEvent toggles the overlay with P. Holding the key toggles once.
func (l *LayerDebug) HandleEvent(ev core.Event) {
	if k, ok := ev.(core.EventKey); ok && k.Down && !k.Repeat && k.Key == core.KeyP {
		l.shown = !l.shown
	}
}

func (l *LayerDebug) OnUpdate() {
	l.ticks++
	if l.ticks%statsEvery != 0 {
		return
	}
	now := time.Now()
	frames := l.sched.Frames()
	fps := float64(frames-l.lastFrames) / now.Sub(l.lastAt).Seconds()
	l.lastAt, l.lastFrames = now, frames

	l.label.SetLabel(fmt.Sprintf("frames %d  updates %d  %.1f fps  goroutines %d",
		frames, l.sched.Updates(), fps, runtime.NumGoroutine()))
}

func (l *LayerDebug) OnRender(s core.Surface) {
	if l.shown {
		l.label.Render(s)
	}
}
