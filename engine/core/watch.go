package core

// Watchers is the observer list behind EventSource.Watch. Display
// implementations embed it and call Notify as events enter their queue.
type Watchers struct {
	next int
	fns  []watcher
}

type watcher struct {
	id int
	fn func(Event)
}

func (w *Watchers) Watch(fn func(Event)) (cancel func()) {
	w.next++
	id := w.next
	w.fns = append(w.fns, watcher{id: id, fn: fn})
	return func() {
		for i, x := range w.fns {
			if x.id == id {
				w.fns = append(w.fns[:i:i], w.fns[i+1:]...)
				return
			}
		}
	}
}

func (w *Watchers) Notify(ev Event) {
	// Copy so a watcher may cancel itself (or others) while being notified.
	fns := append([]watcher(nil), w.fns...)
	for _, x := range fns {
		x.fn(ev)
	}
}

func (w *Watchers) Len() int { return len(w.fns) }
