package ui

import (
	"image"
	"testing"

	"github.com/hubastard/cartridge/engine/colors"
	"github.com/hubastard/cartridge/engine/core"
	"github.com/hubastard/cartridge/engine/geom"
	"github.com/hubastard/cartridge/engine/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fill struct {
	r geom.Rect
	c colors.Color
}

type blit struct {
	img      image.Image
	src, dst geom.Rect
}

type fakeSurface struct {
	fills []fill
	blits []blit
}

func (s *fakeSurface) SetBackground(colors.Color)           {}
func (s *fakeSurface) Clear()                               {}
func (s *fakeSurface) Present()                             {}
func (s *fakeSurface) FillRect(r geom.Rect, c colors.Color) { s.fills = append(s.fills, fill{r, c}) }
func (s *fakeSurface) DrawImage(img image.Image, src, dst geom.Rect) {
	s.blits = append(s.blits, blit{img, src, dst})
}

// fakeRaster hands out fixed-size images and remembers them.
type fakeRaster struct {
	w, h   int
	fail   bool
	calls  []string
	images []*text.Image
}

func (r *fakeRaster) Rasterize(s string, _ *text.Font, _ float64, _ colors.Color) *text.Image {
	r.calls = append(r.calls, s)
	if r.fail {
		return nil
	}
	img := text.NewImage(image.NewRGBA(image.Rect(0, 0, r.w, r.h)))
	r.images = append(r.images, img)
	return img
}

func newButton(onClick Action) (*UIButton, *fakeRaster) {
	r := &fakeRaster{w: 20, h: 10}
	b := Button(nil, geom.R(10, 10, 100, 50), "Click", onClick).Rasterizer(r)
	return b, r
}

func TestHoverTracksPointer(t *testing.T) {
	b, _ := newButton(nil)

	b.HandleEvent(core.EventPointerMove{X: 50, Y: 30})
	assert.True(t, b.Hovered())
	assert.False(t, b.Pressed())

	b.HandleEvent(core.EventPointerMove{X: 500, Y: 30})
	assert.False(t, b.Hovered())
}

func TestHitTestIsInclusive(t *testing.T) {
	b, _ := newButton(nil)
	tests := []struct {
		x, y int
		in   bool
	}{
		{10, 10, true},
		{110, 60, true},
		{110, 10, true},
		{10, 60, true},
		{9, 10, false},
		{111, 60, false},
		{50, 61, false},
		{50, 9, false},
	}
	for _, tt := range tests {
		b.HandleEvent(core.EventPointerMove{X: tt.x, Y: tt.y})
		assert.Equal(t, tt.in, b.Hovered(), "(%d,%d)", tt.x, tt.y)
	}
}

func TestClickInsideFiresOnce(t *testing.T) {
	var clicks []*UIButton
	b, _ := newButton(func(b *UIButton) { clicks = append(clicks, b) })

	b.HandleEvent(core.EventPointerDown{X: 20, Y: 20})
	assert.True(t, b.Pressed())
	assert.Empty(t, clicks)

	b.HandleEvent(core.EventPointerUp{X: 30, Y: 30})
	require.Len(t, clicks, 1)
	assert.Same(t, b, clicks[0])
	assert.False(t, b.Pressed())

	// a second release without a press is not a click
	b.HandleEvent(core.EventPointerUp{X: 30, Y: 30})
	assert.Len(t, clicks, 1)
}

func TestPressOutsideReleaseInside(t *testing.T) {
	clicks := 0
	b, _ := newButton(func(*UIButton) { clicks++ })

	b.HandleEvent(core.EventPointerDown{X: 0, Y: 0})
	assert.False(t, b.Pressed())
	b.HandleEvent(core.EventPointerUp{X: 20, Y: 20})
	assert.Zero(t, clicks)
	assert.False(t, b.Pressed())
}

func TestPressOutsideKeepsEarlierPress(t *testing.T) {
	clicks := 0
	b, _ := newButton(func(*UIButton) { clicks++ })

	b.HandleEvent(core.EventPointerDown{X: 20, Y: 20, Button: core.MouseLeft})
	b.HandleEvent(core.EventPointerMove{X: 500, Y: 500})
	b.HandleEvent(core.EventPointerDown{X: 500, Y: 500, Button: core.MouseRight})
	assert.True(t, b.Pressed())

	b.HandleEvent(core.EventPointerMove{X: 20, Y: 20})
	b.HandleEvent(core.EventPointerUp{X: 20, Y: 20, Button: core.MouseLeft})
	assert.Equal(t, 1, clicks)
	assert.False(t, b.Pressed())
}

func TestPressInsideReleaseOutside(t *testing.T) {
	clicks := 0
	b, _ := newButton(func(*UIButton) { clicks++ })

	b.HandleEvent(core.EventPointerDown{X: 20, Y: 20})
	b.HandleEvent(core.EventPointerUp{X: 200, Y: 200})
	assert.Zero(t, clicks)
	assert.False(t, b.Pressed())
}

func TestClickSurvivesLeavingAndReturning(t *testing.T) {
	clicks := 0
	b, _ := newButton(func(*UIButton) { clicks++ })

	b.HandleEvent(core.EventPointerDown{X: 20, Y: 20})
	b.HandleEvent(core.EventPointerMove{X: 300, Y: 300})
	assert.True(t, b.Pressed())
	b.HandleEvent(core.EventPointerMove{X: 40, Y: 40})
	b.HandleEvent(core.EventPointerUp{X: 40, Y: 40})
	assert.Equal(t, 1, clicks)
}

func TestBoundaryPointIsInside(t *testing.T) {
	b := Button(nil, geom.R(10, 10, 100, 40), "", nil)
	assert.True(t, b.Contains(110, 50))
	assert.True(t, b.Contains(10, 10))
	assert.False(t, b.Contains(110, 51))
}

func TestClickOnEdge(t *testing.T) {
	clicks := 0
	b, _ := newButton(func(*UIButton) { clicks++ })
	b.HandleEvent(core.EventPointerDown{X: 110, Y: 60})
	b.HandleEvent(core.EventPointerUp{X: 10, Y: 10})
	assert.Equal(t, 1, clicks)
}

func TestActionCanRelabel(t *testing.T) {
	n := 0
	b, r := newButton(func(b *UIButton) {
		n++
		b.SetLabel("Clicked")
	})
	b.HandleEvent(core.EventPointerDown{X: 20, Y: 20})
	b.HandleEvent(core.EventPointerUp{X: 20, Y: 20})
	assert.Equal(t, "Clicked", b.Label())

	b.Render(&fakeSurface{})
	assert.Equal(t, []string{"Clicked"}, r.calls)
}

func TestOtherEventsIgnored(t *testing.T) {
	b, _ := newButton(func(*UIButton) { t.Fatal("unexpected click") })
	b.HandleEvent(core.EventPointerDown{X: 20, Y: 20})
	b.HandleEvent(core.EventKey{Key: core.KeyEnter, Down: true})
	b.HandleEvent(core.EventResize{W: 1, H: 1})
	b.HandleEvent(core.EventCloseRequested{})
	assert.True(t, b.Pressed())
}

func TestRenderFillColor(t *testing.T) {
	b, _ := newButton(nil)
	b.BgColor(colors.SteelBlue).HighlightColor(colors.Goldenrod)

	s := &fakeSurface{}
	b.Render(s)
	require.Len(t, s.fills, 1)
	assert.Equal(t, fill{geom.R(10, 10, 100, 50), colors.SteelBlue}, s.fills[0])

	b.HandleEvent(core.EventPointerMove{X: 20, Y: 20})
	b.Render(s)
	require.Len(t, s.fills, 2)
	assert.Equal(t, colors.Goldenrod, s.fills[1].c)
}

func TestRenderDoesNotChangeState(t *testing.T) {
	b, _ := newButton(nil)
	b.HandleEvent(core.EventPointerMove{X: 20, Y: 20})
	b.HandleEvent(core.EventPointerDown{X: 20, Y: 20})
	b.Render(&fakeSurface{})
	b.Render(&fakeSurface{})
	assert.True(t, b.Hovered())
	assert.True(t, b.Pressed())
}

func TestLabelCentered(t *testing.T) {
	b, r := newButton(nil)
	s := &fakeSurface{}
	b.Render(s)

	require.Len(t, s.blits, 1)
	assert.Equal(t, geom.R(0, 0, 20, 10), s.blits[0].src)
	assert.Equal(t, geom.R(50, 30, 20, 10), s.blits[0].dst)

	// the image is released once rendering is done
	require.Len(t, r.images, 1)
	w, h := r.images[0].Size()
	assert.Zero(t, w+h)
}

func TestLabelCroppedWhenTooWide(t *testing.T) {
	r := &fakeRaster{w: 70, h: 10}
	b := Button(nil, geom.R(0, 0, 50, 20), "Wide label", nil).Rasterizer(r)

	s := &fakeSurface{}
	b.Render(s)
	require.Len(t, s.blits, 1)
	assert.Equal(t, geom.R(10, 0, 50, 10), s.blits[0].src)
	assert.Equal(t, geom.R(0, 5, 50, 10), s.blits[0].dst)
}

func TestNilRasterizationDrawsNoLabel(t *testing.T) {
	b, r := newButton(nil)
	r.fail = true

	s := &fakeSurface{}
	b.Render(s)
	assert.Len(t, s.fills, 1)
	assert.Empty(t, s.blits)
}

func TestNegativeAreaClamped(t *testing.T) {
	b := Button(nil, geom.Rect{X: 5, Y: 5, W: -3, H: -1}, "x", nil)
	assert.Equal(t, geom.R(5, 5, 0, 0), b.Area())

	b.HandleEvent(core.EventPointerMove{X: 5, Y: 5})
	assert.True(t, b.Hovered())
}

func TestDefaultsWithoutFonts(t *testing.T) {
	b := Button(nil, geom.R(0, 0, 10, 10), "x", nil)
	assert.Equal(t, DefaultButtonColor, b.color)
	assert.Equal(t, DefaultHighlightColor, b.highlight)
	assert.Equal(t, text.DefaultColor, b.textColor)
	assert.Equal(t, float64(text.DefaultSizePt), b.fontSize)
	assert.Nil(t, b.font)
	assert.Nil(t, b.raster)

	// no rasterizer means nothing but the fill
	s := &fakeSurface{}
	b.Render(s)
	assert.Len(t, s.fills, 1)
	assert.Empty(t, s.blits)
}

func TestDefaultsFromFonts(t *testing.T) {
	fonts := text.NewFonts("", 0, colors.Black)
	require.NoError(t, fonts.StartUp())
	defer fonts.ShutDown()

	b := Button(fonts, geom.R(0, 0, 120, 40), "Hello", nil)
	assert.Same(t, fonts.DefaultFont(), b.font)
	assert.Equal(t, 12.0, b.fontSize)
	assert.Equal(t, colors.Black, b.textColor)

	s := &fakeSurface{}
	b.Render(s)
	require.Len(t, s.blits, 1)
	assert.False(t, s.blits[0].dst.Empty())
}

func TestLabelWidget(t *testing.T) {
	r := &fakeRaster{w: 4, h: 2}
	l := Label(nil, geom.R(0, 0, 10, 10), "title").Rasterizer(r)

	s := &fakeSurface{}
	l.Render(s)
	assert.Empty(t, s.fills)
	require.Len(t, s.blits, 1)
	assert.Equal(t, geom.R(3, 4, 4, 2), s.blits[0].dst)

	l.BgColor(colors.DarkGray)
	l.Render(s)
	assert.Len(t, s.fills, 1)
}

func TestGroupForwardsAndRendersInOrder(t *testing.T) {
	var order []string
	a, _ := newButton(func(*UIButton) { order = append(order, "a") })
	b, _ := newButton(func(*UIButton) { order = append(order, "b") })
	b.BgColor(colors.Red)
	g := Group(a).Add(b)
	assert.Equal(t, 2, g.Len())

	g.HandleEvent(core.EventPointerDown{X: 20, Y: 20})
	g.HandleEvent(core.EventPointerUp{X: 20, Y: 20})
	assert.Equal(t, []string{"a", "b"}, order)

	s := &fakeSurface{}
	g.Render(s)
	require.Len(t, s.fills, 2)
	assert.Equal(t, DefaultButtonColor, s.fills[0].c)
	assert.Equal(t, colors.Red, s.fills[1].c)
}
