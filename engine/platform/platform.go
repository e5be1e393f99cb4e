// Package platform is the GLFW/OpenGL display: it owns the native
// subsystem's lifecycle, creates windows with GL surfaces, and queues their
// input as core events.
package platform

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/cartridge/engine/core"
	glbackend "github.com/hubastard/cartridge/engine/gfx/gl"
	"github.com/hubastard/cartridge/engine/text"
)

var ErrNotStarted = errors.New("platform: not started")

// Platform implements core.Display. StartUp and ShutDown bracket its use and
// must run on the main thread.
type Platform struct {
	core.Watchers

	fonts       *text.Fonts
	initialized bool
	glLoaded    bool

	nextID  core.WindowID
	windows map[core.WindowID]*Window
	queue   []core.Event
}

var _ core.Display = (*Platform)(nil)

// New wires the font service in; it is started and stopped with the platform.
// fonts may be nil.
func New(fonts *text.Fonts) *Platform {
	return &Platform{fonts: fonts, windows: map[core.WindowID]*Window{}}
}

func (p *Platform) Initialized() bool { return p.initialized }

// StartUp initializes GLFW, then the fonts. A GLFW failure is returned and
// leaves the platform down; a font failure is logged and the platform
// carries on without text.
func (p *Platform) StartUp() error {
	if p.initialized {
		return nil
	}
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	p.initialized = true

	if p.fonts != nil {
		if err := p.fonts.StartUp(); err != nil {
			slog.Warn("fonts unavailable, labels will not render", "err", err)
		}
	}
	slog.Debug("platform started", "glfw", glfw.GetVersionString())
	return nil
}

// ShutDown destroys any window still open and terminates GLFW. Extra calls
// are no-ops.
func (p *Platform) ShutDown() {
	if !p.initialized {
		return
	}
	for _, w := range p.windows {
		w.Destroy()
	}
	p.fonts.ShutDown()
	glfw.Terminate()
	p.queue = nil
	p.initialized = false
	p.glLoaded = false
	slog.Debug("platform shut down")
}

// CreateWindow opens a GL 3.3 core window and its surface.
func (p *Platform) CreateWindow(cfg core.Config) (core.NativeWindow, core.NativeSurface, error) {
	if !p.initialized {
		return nil, nil, ErrNotStarted
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	gw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	gw.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if !p.glLoaded {
		if err := gl.Init(); err != nil {
			gw.Destroy()
			return nil, nil, fmt.Errorf("gl init: %w", err)
		}
		p.glLoaded = true
		slog.Info("opengl ready", "version", gl.GoStr(gl.GetString(gl.VERSION)))
	}
	if cfg.Icon != nil {
		gw.SetIcon([]image.Image{cfg.Icon})
	}

	surf, err := glbackend.NewSurface(gw)
	if err != nil {
		gw.Destroy()
		return nil, nil, err
	}

	p.nextID++
	w := &Window{id: p.nextID, w: gw, p: p}
	w.installCallbacks()
	p.windows[w.id] = w
	return w, surf, nil
}

// PollEvent pumps GLFW whenever the queue runs dry.
func (p *Platform) PollEvent() (core.Event, bool) {
	if len(p.queue) == 0 && p.initialized {
		glfw.PollEvents()
	}
	if len(p.queue) == 0 {
		return nil, false
	}
	ev := p.queue[0]
	p.queue[0] = nil
	p.queue = p.queue[1:]
	return ev, true
}

// emit runs on the GLFW callback path: watchers see the event first, then
// it joins the queue.
func (p *Platform) emit(ev core.Event) {
	p.Notify(ev)
	p.queue = append(p.queue, ev)
}
