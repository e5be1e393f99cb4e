package text

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

var (
	ErrNoFont     = errors.New("text: no font")
	ErrFontClosed = errors.New("text: font is closed")
	ErrEmptyText  = errors.New("text: nothing to render")
)

// Font is a parsed TrueType/OpenType font. It is immutable once loaded and
// meant to be shared: many widgets hold the same *Font, none of them own it.
// Faces are built lazily, one per point size.
type Font struct {
	Name string

	otf    *opentype.Font
	mu     sync.Mutex
	faces  map[float64]font.Face
	closed bool
}

// Parse loads a font from raw TTF/OTF bytes.
func Parse(name string, data []byte) (*Font, error) {
	otf, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %q: %w", name, err)
	}
	return &Font{Name: name, otf: otf, faces: map[float64]font.Face{}}, nil
}

// Face returns the face for sizePt at 72 DPI, so one point is one pixel.
func (f *Font) Face(sizePt float64) (font.Face, error) {
	if f == nil {
		return nil, ErrNoFont
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrFontClosed
	}
	if face, ok := f.faces[sizePt]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size: sizePt, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font %q at %vpt: %w", f.Name, sizePt, err)
	}
	f.faces[sizePt] = face
	return face, nil
}

// Close releases every face. Later Face calls fail with ErrFontClosed.
func (f *Font) Close() {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	for size, face := range f.faces {
		_ = face.Close()
		delete(f.faces, size)
	}
	f.closed = true
}
