package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/cartridge/engine/core"
)

// Window implements core.NativeWindow and translates GLFW callbacks into
// core events on its platform's queue.
type Window struct {
	id core.WindowID
	w  *glfw.Window
	p  *Platform
}

func (w *Window) ID() core.WindowID { return w.id }

func (w *Window) Destroy() {
	if w.w == nil {
		return
	}
	w.w.Destroy()
	w.w = nil
	delete(w.p.windows, w.id)
}

func (w *Window) installCallbacks() {
	// Callbacks -> translate to core.Event
	w.w.SetCloseCallback(func(*glfw.Window) {
		w.p.emit(core.EventCloseRequested{Window: w.id})
	})
	w.w.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.p.emit(core.EventResize{W: width, H: height})
	})
	w.w.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.p.emit(core.EventPointerMove{X: int(x), Y: int(y)})
	})
	w.w.SetMouseButtonCallback(func(gw *glfw.Window, b glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		btn, ok := translateButton(b)
		if !ok {
			return
		}
		fx, fy := gw.GetCursorPos()
		x, y := int(fx), int(fy)
		switch action {
		case glfw.Press:
			w.p.emit(core.EventPointerDown{X: x, Y: y, Button: btn})
		case glfw.Release:
			w.p.emit(core.EventPointerUp{X: x, Y: y, Button: btn})
		}
	})
	w.w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if ev, ok := keyEvent(key, action, mods); ok {
			w.p.emit(ev)
		}
	})
	w.w.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		w.p.emit(core.EventScroll{Xoff: xoff, Yoff: yoff})
	})
}

func translateButton(b glfw.MouseButton) (core.MouseButton, bool) {
	switch b {
	case glfw.MouseButtonLeft:
		return core.MouseLeft, true
	case glfw.MouseButtonRight:
		return core.MouseRight, true
	case glfw.MouseButtonMiddle:
		return core.MouseMiddle, true
	default:
		return 0, false
	}
}

func translateKey(k glfw.Key) core.Key {
	switch k {
	case glfw.KeyEscape:
		return core.KeyEscape
	case glfw.KeySpace:
		return core.KeySpace
	case glfw.KeyEnter:
		return core.KeyEnter
	case glfw.KeyW:
		return core.KeyW
	case glfw.KeyA:
		return core.KeyA
	case glfw.KeyS:
		return core.KeyS
	case glfw.KeyD:
		return core.KeyD
	case glfw.KeyP:
		return core.KeyP
	case glfw.KeyQ:
		return core.KeyQ
	default:
		return core.KeyUnknown
	}
}

func keyEvent(key glfw.Key, action glfw.Action, mods glfw.ModifierKey) (core.EventKey, bool) {
	k := translateKey(key)
	if k == core.KeyUnknown {
		return core.EventKey{}, false
	}
	return core.EventKey{
		Key:    k,
		Down:   action != glfw.Release,
		Repeat: action == glfw.Repeat,
		Mods:   translateMods(mods),
	}, true
}

func translateMods(m glfw.ModifierKey) core.Mod {
	var out core.Mod
	if m&glfw.ModShift != 0 {
		out |= core.ModShift
	}
	if m&glfw.ModControl != 0 {
		out |= core.ModCtrl
	}
	if m&glfw.ModAlt != 0 {
		out |= core.ModAlt
	}
	if m&glfw.ModSuper != 0 {
		out |= core.ModSuper
	}
	return out
}
