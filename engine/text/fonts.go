package text

import (
	"fmt"
	"log/slog"

	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/hubastard/cartridge/engine/assets"
	"github.com/hubastard/cartridge/engine/colors"
)

const DefaultSizePt = 12

var DefaultColor = colors.Black

// Fonts provides the default label font. It is an explicit service object:
// build one, start it, and hand it to whatever draws text.
//
// StartUp and ShutDown are idempotent and may be paired any number of times.
// A nil *Fonts behaves like one that never started.
type Fonts struct {
	path  string
	size  float64
	color colors.Color

	initialized bool
	def         *Font
}

// NewFonts configures the service. An empty path selects the embedded
// Latin Modern Sans face; sizePt <= 0 selects DefaultSizePt.
func NewFonts(path string, sizePt float64, c colors.Color) *Fonts {
	if sizePt <= 0 {
		sizePt = DefaultSizePt
	}
	return &Fonts{path: path, size: sizePt, color: c}
}

func (fs *Fonts) Initialized() bool { return fs != nil && fs.initialized }

// StartUp loads the default font. On failure the service stays
// uninitialized and callers are expected to carry on without labels.
func (fs *Fonts) StartUp() error {
	if fs == nil {
		return ErrNoFont
	}
	if fs.initialized {
		return nil
	}
	var (
		data []byte
		name = "lmsans10-regular"
		err  error
	)
	if fs.path == "" {
		data = lmsans10regular.TTF
	} else {
		name = fs.path
		data, err = assets.ReadFont(fs.path)
		if err != nil {
			return fmt.Errorf("fonts: %w", err)
		}
	}
	f, err := Parse(name, data)
	if err != nil {
		return fmt.Errorf("fonts: %w", err)
	}
	fs.def = f
	fs.initialized = true
	slog.Debug("fonts started", "font", name, "size", fs.size)
	return nil
}

func (fs *Fonts) ShutDown() {
	if !fs.Initialized() {
		return
	}
	fs.def.Close()
	fs.def = nil
	fs.initialized = false
}

func (fs *Fonts) DefaultFont() *Font {
	if !fs.Initialized() {
		return nil
	}
	return fs.def
}

func (fs *Fonts) DefaultSize() float64 {
	if fs == nil {
		return DefaultSizePt
	}
	return fs.size
}

func (fs *Fonts) DefaultColor() colors.Color {
	if fs == nil {
		return DefaultColor
	}
	return fs.color
}

// Rasterize is the non-failing form of the package-level Rasterize: any
// error is logged and reported as a nil image.
func (fs *Fonts) Rasterize(s string, f *Font, sizePt float64, c colors.Color) *Image {
	img, err := Rasterize(s, f, sizePt, c)
	if err != nil {
		slog.Debug("rasterize failed", "text", s, "err", err)
		return nil
	}
	return img
}
