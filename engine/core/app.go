package core

import (
	"image"
	"time"

	"github.com/hubastard/cartridge/engine/colors"
	"github.com/hubastard/cartridge/engine/geom"
)

// Display is the native windowing subsystem: it creates windows with their
// drawing surfaces and owns the process-wide event queue.
type Display interface {
	// Initialized reports whether the subsystem has been brought up.
	// Creating a window before that is a programmer error.
	Initialized() bool
	CreateWindow(cfg Config) (NativeWindow, NativeSurface, error)
	EventSource
}

// EventSource is the native event queue.
type EventSource interface {
	// PollEvent returns the next pending event, or false once the queue is empty.
	PollEvent() (Event, bool)
	// Watch registers fn to observe every event as it enters the queue,
	// before anyone polls it. The returned func removes the observer.
	Watch(fn func(Event)) (cancel func())
}

type NativeWindow interface {
	ID() WindowID
	Destroy()
}

// Surface is what draw callbacks receive. It is only valid for the duration
// of the callback.
type Surface interface {
	SetBackground(c colors.Color)
	Clear()
	FillRect(r geom.Rect, c colors.Color)
	// DrawImage copies the src sub-rectangle of img (in img's own pixel
	// space, origin at img.Bounds().Min) into dst. src and dst have equal sizes.
	DrawImage(img image.Image, src, dst geom.Rect)
	Present()
}

type NativeSurface interface {
	Surface
	Destroy()
}

const (
	DefaultWidth              = 1024
	DefaultHeight             = 768
	DefaultTitle              = "Cartridge"
	DefaultUpdateIntervalMs   = 1000.0 / 60.0
	DefaultMaxUpdatesPerFrame = 4
)

var DefaultClearColor = colors.Black

// Config for a scheduler and its window.
type Config struct {
	Title      string
	Width      int
	Height     int
	VSync      bool
	ClearColor colors.Color
	Icon       image.Image

	UpdateIntervalMs   float64
	MaxUpdatesPerFrame int
}

// DefaultConfig returns the stock 1024x768 60 Hz configuration.
func DefaultConfig() Config {
	return Config{
		Title:              DefaultTitle,
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		ClearColor:         DefaultClearColor,
		UpdateIntervalMs:   DefaultUpdateIntervalMs,
		MaxUpdatesPerFrame: DefaultMaxUpdatesPerFrame,
	}
}

func msToDuration(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

func durationToMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
