package core

// Event model. Pointer and close events drive the core; the rest are
// forwarded to handlers and otherwise discarded.
type Event interface{ isEvent() }

// WindowID identifies a native window. The zero value means "every window",
// which is what a process-wide quit carries.
type WindowID uint32

type EventCloseRequested struct{ Window WindowID }

func (EventCloseRequested) isEvent() {}

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

type EventPointerMove struct{ X, Y int }

func (EventPointerMove) isEvent() {}

type EventPointerDown struct {
	X, Y   int
	Button MouseButton
}

func (EventPointerDown) isEvent() {}

type EventPointerUp struct {
	X, Y   int
	Button MouseButton
}

func (EventPointerUp) isEvent() {}

type EventResize struct{ W, H int }

func (EventResize) isEvent() {}

type EventScroll struct{ Xoff, Yoff float64 }

func (EventScroll) isEvent() {}

// EventKey reports a key transition. Repeat marks auto-repeated downs
// while the key is held.
type EventKey struct {
	Key    Key
	Down   bool
	Repeat bool
	Mods   Mod
}

func (EventKey) isEvent() {}

// Key/mod enums (subset; add as needed).
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeySpace
	KeyEnter
	KeyW
	KeyA
	KeyS
	KeyD
	KeyP
	KeyQ
)

type Mod int

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModSuper Mod = 1 << 3
)
