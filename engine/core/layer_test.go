package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	name string
	log  *[]string
}

func (r *recorder) HandleEvent(Event) { *r.log = append(*r.log, r.name) }

func TestHandlerStackOrder(t *testing.T) {
	var log []string
	a := &recorder{"a", &log}
	b := &recorder{"b", &log}

	var hs HandlerStack
	hs.Push(a)
	hs.Push(b)
	hs.Push(a)
	hs.Dispatch(EventResize{})
	assert.Equal(t, []string{"a", "b", "a"}, log)

	assert.True(t, hs.Remove(a))
	assert.Equal(t, 2, hs.Len())
	log = nil
	hs.Dispatch(EventResize{})
	assert.Equal(t, []string{"a", "b"}, log)
}

func TestRemoveFuncHandlerReportsFalse(t *testing.T) {
	var (
		hs  HandlerStack
		log []string
	)
	fn := HandlerFunc(func(Event) { log = append(log, "fn") })
	hs.Push(fn)
	hs.Push(&recorder{"r", &log})

	assert.NotPanics(t, func() { assert.False(t, hs.Remove(fn)) })
	assert.False(t, hs.Remove(nil))
	assert.Equal(t, 2, hs.Len())

	hs.Dispatch(EventResize{})
	assert.Equal(t, []string{"fn", "r"}, log)
}

func TestHandlerRemovesItselfDuringDispatch(t *testing.T) {
	var (
		hs  HandlerStack
		log []string
	)
	hs.Push(&selfRemover{hs: &hs, log: &log})
	hs.Push(&recorder{"after", &log})

	hs.Dispatch(EventResize{})
	assert.Equal(t, []string{"self", "after"}, log)
	assert.Equal(t, 1, hs.Len())
}

type selfRemover struct {
	hs  *HandlerStack
	log *[]string
}

func (s *selfRemover) HandleEvent(Event) {
	*s.log = append(*s.log, "self")
	s.hs.Remove(s)
}

func TestWatchersCancel(t *testing.T) {
	var w Watchers
	n := 0
	var cancelB func()
	cancelA := w.Watch(func(Event) {
		n++
		cancelB()
	})
	cancelB = w.Watch(func(Event) { n += 10 })

	w.Notify(EventCloseRequested{})
	assert.Equal(t, 11, n, "a watcher cancelled mid-notify still sees the current event")
	assert.Equal(t, 1, w.Len())

	cancelA()
	cancelA()
	w.Notify(EventCloseRequested{})
	assert.Equal(t, 11, n)
	assert.Zero(t, w.Len())
}

func TestInputTracksState(t *testing.T) {
	in := NewInput()
	in.Handle(EventKey{Key: KeySpace, Down: true})
	in.Handle(EventPointerMove{X: 4, Y: 5})
	assert.True(t, in.IsKeyDown(KeySpace))
	x, y := in.Pointer()
	assert.Equal(t, [2]int{4, 5}, [2]int{x, y})

	in.Handle(EventPointerDown{X: 1, Y: 1, Button: MouseRight})
	assert.True(t, in.IsButtonDown(MouseRight))
	in.Handle(EventPointerUp{X: 2, Y: 2, Button: MouseRight})
	assert.False(t, in.IsButtonDown(MouseRight))
	in.Handle(EventKey{Key: KeySpace})
	assert.False(t, in.IsKeyDown(KeySpace))
}
