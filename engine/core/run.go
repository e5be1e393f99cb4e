package core

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/hubastard/cartridge/engine/colors"
	"github.com/hubastard/cartridge/engine/profiler"
)

var (
	ErrClosed  = errors.New("core: scheduler is closed")
	ErrRunning = errors.New("core: scheduler is already running")
)

type State int

const (
	StateInitialized State = iota
	StateRunning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type (
	UpdateFunc func()
	DrawFunc   func(s Surface)
	EventFunc  func(ev Event)
)

// Scheduler owns one native window and its surface, and runs the
// fixed-timestep update/render loop for it.
type Scheduler struct {
	display Display
	window  NativeWindow
	surface NativeSurface
	clock   Clock

	width, height int
	title         string
	clearColor    colors.Color

	interval   time.Duration
	maxUpdates int
	state      State

	onUpdate UpdateFunc
	onDraw   DrawFunc
	onEvent  EventFunc
	handlers HandlerStack
	input    *Input

	updates, frames uint64
}

type Option func(*Scheduler)

// WithClock replaces the wall clock used to measure frame time.
func WithClock(c Clock) Option { return func(s *Scheduler) { s.clock = c } }

// NewScheduler creates the window and its surface.
//
// The display must already be initialized; calling this earlier is a
// programmer error and panics. Window or surface creation failures are
// returned and are meant to be fatal for the caller.
func NewScheduler(d Display, cfg Config, opts ...Option) (*Scheduler, error) {
	if d == nil || !d.Initialized() {
		panic("core: NewScheduler called before the display was initialized")
	}

	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.Title == "" {
		cfg.Title = def.Title
	}
	if cfg.UpdateIntervalMs == 0 {
		cfg.UpdateIntervalMs = def.UpdateIntervalMs
	}
	if cfg.MaxUpdatesPerFrame == 0 {
		cfg.MaxUpdatesPerFrame = def.MaxUpdatesPerFrame
	}

	win, surf, err := d.CreateWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("create window %q: %w", cfg.Title, err)
	}

	s := &Scheduler{
		display:    d,
		window:     win,
		surface:    surf,
		clock:      SystemClock,
		width:      cfg.Width,
		height:     cfg.Height,
		title:      cfg.Title,
		clearColor: cfg.ClearColor,
		state:      StateInitialized,
		input:      NewInput(),
	}
	s.SetUpdateInterval(cfg.UpdateIntervalMs)
	s.SetMaxUpdatesPerFrame(cfg.MaxUpdatesPerFrame)
	for _, o := range opts {
		o(s)
	}

	slog.Debug("window created", "title", s.title, "width", s.width, "height", s.height, "id", win.ID())
	return s, nil
}

func (s *Scheduler) SetUpdateFunc(fn UpdateFunc) { s.onUpdate = fn }
func (s *Scheduler) SetDrawFunc(fn DrawFunc)     { s.onDraw = fn }
func (s *Scheduler) SetEventFunc(fn EventFunc)   { s.onEvent = fn }

// Register adds h to the handlers that see every pumped event, in order.
func (s *Scheduler) Register(h Handler)        { s.handlers.Push(h) }
func (s *Scheduler) Unregister(h Handler) bool { return s.handlers.Remove(h) }

// MaxUpdatesPerFrame is the catch-up cap applied each iteration.
func (s *Scheduler) MaxUpdatesPerFrame() int { return s.maxUpdates }

// SetMaxUpdatesPerFrame sets the catch-up cap. Values below 1 become 1.
func (s *Scheduler) SetMaxUpdatesPerFrame(n int) {
	if n <= 0 {
		n = 1
	}
	s.maxUpdates = n
}

// UpdateInterval is the fixed simulation step in milliseconds.
func (s *Scheduler) UpdateInterval() float64      { return durationToMs(s.interval) }
func (s *Scheduler) SetUpdateInterval(ms float64) { s.interval = msToDuration(ms) }

func (s *Scheduler) Width() int          { return s.width }
func (s *Scheduler) Height() int         { return s.height }
func (s *Scheduler) Title() string       { return s.title }
func (s *Scheduler) ID() WindowID        { return s.window.ID() }
func (s *Scheduler) State() State        { return s.state }
func (s *Scheduler) Open() bool          { return s.state != StateClosed }
func (s *Scheduler) Input() *Input       { return s.input }
func (s *Scheduler) Updates() uint64     { return s.updates }
func (s *Scheduler) Frames() uint64      { return s.frames }
func (s *Scheduler) Events() EventSource { return s.display }

// Close stops the loop. It is safe to call from any callback, or before Run.
// Closing from an update callback or an event skips the rest of that
// iteration, render included; closing from the draw callback lets the
// current frame be presented first.
func (s *Scheduler) Close() { s.state = StateClosed }

// Run blocks until the scheduler is closed.
func (s *Scheduler) Run() error {
	switch s.state {
	case StateClosed:
		return ErrClosed
	case StateRunning:
		return ErrRunning
	}
	// Graphics contexts require the main OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	s.state = StateRunning
	stopWatching := s.display.Watch(s.watchClose)
	defer stopWatching()

	// Create an initial state to render.
	s.update()

	var (
		lag  time.Duration
		prev = s.clock.Now()
	)
	for s.state == StateRunning {
		now := s.clock.Now()
		lag += now.Sub(prev)
		prev = now

		steps := 0
		for lag >= s.interval && steps < s.maxUpdates && s.state == StateRunning {
			s.update()
			lag -= s.interval
			steps++
		}
		if s.state != StateRunning {
			break
		}

		s.render()
	}

	slog.Debug("loop exit", "title", s.title, "updates", s.updates, "frames", s.frames)
	return nil
}

// Destroy closes the scheduler and tears down the surface, then the window.
// Calling it more than once is a no-op.
func (s *Scheduler) Destroy() {
	s.Close()
	if s.surface != nil {
		s.surface.Destroy()
		s.surface = nil
	}
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
}

func (s *Scheduler) watchClose(ev Event) {
	c, ok := ev.(EventCloseRequested)
	if !ok {
		return
	}
	if c.Window == 0 || (s.window != nil && c.Window == s.window.ID()) {
		slog.Debug("close requested", "title", s.title, "window", c.Window)
		s.Close()
	}
}

func (s *Scheduler) update() {
	defer profiler.Start("scheduler.update")()

	// The native queue must be drained every update or the window stops
	// responding, even when nobody handles the events.
	for {
		ev, ok := s.display.PollEvent()
		if !ok {
			break
		}
		s.input.Handle(ev)
		s.handlers.Dispatch(ev)
		if s.onEvent != nil {
			s.onEvent(ev)
		}
	}

	if s.onUpdate != nil {
		s.onUpdate()
	}
	s.updates++
}

func (s *Scheduler) render() {
	defer profiler.Start("scheduler.render")()

	s.surface.SetBackground(s.clearColor)
	s.surface.Clear()
	if s.onDraw != nil {
		s.onDraw(s.surface)
	}
	s.surface.Present()
	s.frames++
}
