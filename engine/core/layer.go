package core

import "reflect"

// Handler receives every event pumped by the scheduler. Widgets implement it.
type Handler interface {
	HandleEvent(ev Event)
}

// HandlerFunc adapts a plain func to Handler.
type HandlerFunc func(ev Event)

func (f HandlerFunc) HandleEvent(ev Event) { f(ev) }

// HandlerStack dispatches events to handlers in registration order.
type HandlerStack struct{ list []Handler }

func (hs *HandlerStack) Push(h Handler) { hs.list = append(hs.list, h) }

// Remove drops the most recently pushed occurrence of h. Handlers of a
// non-comparable type, such as HandlerFunc, cannot be removed and report false.
func (hs *HandlerStack) Remove(h Handler) bool {
	if h == nil || !reflect.TypeOf(h).Comparable() {
		return false
	}
	for i := len(hs.list) - 1; i >= 0; i-- {
		if hs.list[i] == h {
			hs.list = append(hs.list[:i:i], hs.list[i+1:]...)
			return true
		}
	}
	return false
}

func (hs *HandlerStack) Len() int { return len(hs.list) }

// Dispatch runs over a snapshot, so a handler may unregister itself.
func (hs *HandlerStack) Dispatch(ev Event) {
	for _, h := range hs.list {
		h.HandleEvent(ev)
	}
}
