package glbackend

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/cartridge/engine/assets"
	"github.com/hubastard/cartridge/engine/colors"
	"github.com/hubastard/cartridge/engine/geom"
)

// Window is the part of a native window a Surface needs. *glfw.Window
// satisfies it.
type Window interface {
	MakeContextCurrent()
	SwapBuffers()
	GetSize() (width, height int)
	GetFramebufferSize() (width, height int)
}

// Surface is an immediate-mode 2D surface on the window's GL context.
// Every method must run on the thread that owns that context.
type Surface struct {
	win Window

	program uint32
	vao     uint32
	vbo     uint32

	uProj, uColor, uTextured, uTex int32

	bg colors.Color
}

// NewSurface compiles the pipeline. The window's context must be current
// and gl.Init must already have run.
func NewSurface(win Window) (*Surface, error) {
	s := &Surface{win: win, bg: colors.Black}

	var err error
	s.program, err = makeProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("gl surface: %w", err)
	}
	s.uProj = uniform(s.program, "uProj")
	s.uColor = uniform(s.program, "uColor")
	s.uTextured = uniform(s.program, "uTextured")
	s.uTex = uniform(s.program, "uTex")

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, quadFloats*4, nil, gl.DYNAMIC_DRAW)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	const stride = floatsPerVertex * 4 // bytes
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(0)))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, unsafe.Pointer(uintptr(2*4)))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	return s, nil
}

func (s *Surface) SetBackground(c colors.Color) { s.bg = c }

// Clear makes the context current, so several windows can share a thread.
// It also picks up window resizes: the viewport follows the framebuffer
// and the projection follows the window's logical size.
func (s *Surface) Clear() {
	s.win.MakeContextCurrent()
	fw, fh := s.win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))

	c := s.bg
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	w, h := s.win.GetSize()
	proj := pixelProjection(w, h)
	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.uProj, 1, false, &proj[0])
	gl.Uniform1i(s.uTex, 0)
	gl.UseProgram(0)
}

func (s *Surface) FillRect(r geom.Rect, c colors.Color) {
	if r.Empty() {
		return
	}
	p := c.Premultiplied()
	gl.UseProgram(s.program)
	gl.Uniform1i(s.uTextured, 0)
	gl.Uniform4f(s.uColor, p[0], p[1], p[2], p[3])
	s.drawQuad(r)
	gl.UseProgram(0)
}

// DrawImage uploads the src region as a throwaway texture. Label images
// live for one frame, so nothing is cached.
func (s *Surface) DrawImage(img image.Image, src, dst geom.Rect) {
	if img == nil || src.Empty() || dst.Empty() {
		return
	}
	w, h, px := assets.Pixels(img, src.Image().Add(img.Bounds().Min))
	if len(px) == 0 {
		return
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(px))

	gl.UseProgram(s.program)
	gl.Uniform1i(s.uTextured, 1)
	s.drawQuad(dst)
	gl.UseProgram(0)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.DeleteTextures(1, &tex)
}

func (s *Surface) Present() { s.win.SwapBuffers() }

func (s *Surface) Destroy() {
	s.win.MakeContextCurrent()
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
		s.vbo = 0
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		s.vao = 0
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}

func (s *Surface) drawQuad(r geom.Rect) {
	v := quadVerts(r)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(v)*4, gl.Ptr(&v[0]))
	gl.DrawArrays(gl.TRIANGLES, 0, vertsPerQuad)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}
