package main

import (
	"errors"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"runtime"

	"github.com/hubastard/cartridge/engine/config"
	"github.com/hubastard/cartridge/engine/core"
	"github.com/hubastard/cartridge/engine/logx"
	"github.com/hubastard/cartridge/engine/platform"
	"github.com/hubastard/cartridge/engine/platform/headless"
	"github.com/hubastard/cartridge/engine/profiler"
	"github.com/spf13/pflag"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

type options struct {
	configPath string
	verbose    int
	quiet      bool
	headless   bool
	frames     int
	screenshot string
	profileOut string
}

// headlessFrames bounds a headless run when --frames is not given; there is
// no window to close.
const headlessFrames = 120

// system is a display with a lifecycle.
type system interface {
	core.Display
	StartUp() error
	ShutDown()
}

// layer is one slice of the sandbox. Layers see events through the
// scheduler's handler stack and update and draw in registration order.
type layer interface {
	core.Handler
	OnUpdate()
	OnRender(s core.Surface)
}

func main() {
	var o options
	pflag.StringVarP(&o.configPath, "config", "c", config.DefaultPath, "path to the YAML config file")
	pflag.CountVarP(&o.verbose, "verbose", "v", "more logging (-v info, -vv debug)")
	pflag.BoolVarP(&o.quiet, "quiet", "q", false, "only log errors")
	pflag.BoolVar(&o.headless, "headless", false, "render to memory instead of a window")
	pflag.IntVar(&o.frames, "frames", 0, "stop after this many frames (0: until closed)")
	pflag.StringVar(&o.screenshot, "screenshot", "", "headless only: write the last frame as PNG")
	pflag.StringVar(&o.profileOut, "profile-out", "", "write a speedscope profile on exit (build with -tags profile)")
	pflag.Parse()

	if err := run(o); err != nil {
		slog.Error("sandbox failed", "err", err)
		os.Exit(1)
	}
}

func run(o options) error {
	logx.Setup(os.Stderr, logx.LevelFromFlags(o.verbose > 1, o.verbose == 1, o.quiet))

	cfg, err := config.LoadOptional(o.configPath)
	if err != nil {
		return err
	}
	if o.verbose == 0 && !o.quiet {
		lvl, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		logx.Setup(os.Stderr, lvl)
	}

	fonts, err := cfg.Fonts()
	if err != nil {
		return err
	}
	wcfg, err := cfg.Core()
	if err != nil {
		return err
	}

	var (
		sys system
		hd  *headless.Display
	)
	if o.headless {
		hd = headless.New()
		sys = hd
		if o.frames <= 0 {
			o.frames = headlessFrames
		}
		if err := fonts.StartUp(); err != nil {
			slog.Warn("fonts unavailable, labels will not render", "err", err)
		}
		defer fonts.ShutDown()
	} else {
		sys = platform.New(fonts)
	}
	if err := sys.StartUp(); err != nil {
		return fmt.Errorf("start display: %w", err)
	}
	defer sys.ShutDown()

	if o.profileOut != "" && !profiler.Enabled {
		slog.Warn("--profile-out ignored, rebuild with -tags profile")
	}
	if o.profileOut != "" && profiler.Enabled {
		profiler.Init(0)
		defer func() {
			if err := profiler.Dump(o.profileOut); err != nil {
				slog.Warn("profile not written", "path", o.profileOut, "err", err)
			}
		}()
	}

	sched, err := core.NewScheduler(sys, wcfg)
	if err != nil {
		return err
	}
	defer sched.Destroy()

	uiLayer := NewLayerUI(sched, fonts)
	layers := []layer{uiLayer, NewLayerDebug(sched, fonts)}
	for _, l := range layers {
		sched.Register(l)
	}

	sched.SetEventFunc(func(ev core.Event) {
		if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyEscape {
			sched.Close()
		}
	})
	sched.SetUpdateFunc(func() {
		for _, l := range layers {
			l.OnUpdate()
		}
	})
	sched.SetDrawFunc(func(s core.Surface) {
		for _, l := range layers {
			l.OnRender(s)
		}
		if o.frames > 0 && sched.Frames()+1 >= uint64(o.frames) {
			sched.Close()
		}
	})

	if hd != nil {
		// Script one click so a headless frame shows the button reacting.
		x, y := uiLayer.counter.Area().X+1, uiLayer.counter.Area().Y+1
		hd.Push(
			core.EventPointerMove{X: x, Y: y},
			core.EventPointerDown{X: x, Y: y, Button: core.MouseLeft},
			core.EventPointerUp{X: x, Y: y, Button: core.MouseLeft},
		)
	}

	slog.Info("running", "title", sched.Title(), "headless", o.headless)
	if err := sched.Run(); err != nil {
		return err
	}
	slog.Info("stopped", "frames", sched.Frames(), "updates", sched.Updates())

	if hd != nil && o.screenshot != "" {
		return writeScreenshot(hd, sched.ID(), o.screenshot)
	}
	return nil
}

func writeScreenshot(hd *headless.Display, id core.WindowID, path string) error {
	surf, ok := hd.Surface(id)
	if !ok {
		return errors.New("screenshot: window is gone")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	if err := png.Encode(f, surf.Image()); err != nil {
		f.Close()
		return fmt.Errorf("screenshot %q: %w", path, err)
	}
	return f.Close()
}
