// Package headless is a core.Display with no native windowing. Windows are
// software surfaces and events are whatever the caller pushes. It drives
// tests and the sandbox's --headless mode.
package headless

import (
	"errors"

	"github.com/hubastard/cartridge/engine/core"
	"github.com/hubastard/cartridge/engine/gfx/soft"
)

var ErrNotStarted = errors.New("headless: not started")

type Display struct {
	core.Watchers

	initialized bool
	nextID      core.WindowID
	queue       []core.Event
	surfaces    map[core.WindowID]*soft.Surface
}

var _ core.Display = (*Display)(nil)

func New() *Display {
	return &Display{surfaces: map[core.WindowID]*soft.Surface{}}
}

func (d *Display) StartUp() error {
	d.initialized = true
	return nil
}

func (d *Display) ShutDown() {
	d.initialized = false
	d.queue = nil
}

func (d *Display) Initialized() bool { return d.initialized }

func (d *Display) CreateWindow(cfg core.Config) (core.NativeWindow, core.NativeSurface, error) {
	if !d.initialized {
		return nil, nil, ErrNotStarted
	}
	d.nextID++
	w := &window{id: d.nextID, d: d}
	s := soft.New(cfg.Width, cfg.Height)
	d.surfaces[w.id] = s
	return w, s, nil
}

// Push injects ev as if the native layer had produced it: watchers see it
// immediately and it is queued for the next poll.
func (d *Display) Push(evs ...core.Event) {
	for _, ev := range evs {
		d.Notify(ev)
		d.queue = append(d.queue, ev)
	}
}

func (d *Display) PollEvent() (core.Event, bool) {
	if len(d.queue) == 0 {
		return nil, false
	}
	ev := d.queue[0]
	d.queue[0] = nil
	d.queue = d.queue[1:]
	return ev, true
}

// Pending is the number of queued events.
func (d *Display) Pending() int { return len(d.queue) }

// Surface returns the software surface of a live window.
func (d *Display) Surface(id core.WindowID) (*soft.Surface, bool) {
	s, ok := d.surfaces[id]
	return s, ok
}

type window struct {
	id core.WindowID
	d  *Display
}

func (w *window) ID() core.WindowID { return w.id }
func (w *window) Destroy()          { delete(w.d.surfaces, w.id) }
