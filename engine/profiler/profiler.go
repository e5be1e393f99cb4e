//go:build profile

// Package profiler records nested timing scopes into a fixed-size ring and
// writes them out in speedscope's evented format.
package profiler

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"
)

const Enabled = true

// Init must be called once with the number of scope samples to keep.
// Older samples are overwritten once the ring is full.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 16
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.samples = make([]sample, capacity)
	rec.n = 0
}

// Start opens a scope and returns the func that closes it.
//
//	defer profiler.Start("scheduler.update")()
func Start(name string) func() {
	id, ok := rec.open(name)
	if !ok {
		return func() {}
	}
	return func() { rec.close(id) }
}

// Dump writes everything recorded so far to path as a speedscope profile.
func Dump(path string) error {
	samples, names := rec.snapshot()
	if len(samples) == 0 {
		return errors.New("profiler: nothing recorded")
	}
	doc := speedscope(samples, names)

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("profiler: encode: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("profiler: %w", err)
	}
	return os.Rename(tmp, path)
}

type sample struct {
	at    time.Time
	frame int
	open  bool
}

type recorder struct {
	mu      sync.Mutex
	samples []sample
	n       int // total pushed, wraps over len(samples)
	names   []string
	index   map[string]int
}

var rec = recorder{index: map[string]int{}}

func (r *recorder) open(name string) (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.samples) == 0 {
		return 0, false
	}
	id, ok := r.index[name]
	if !ok {
		id = len(r.names)
		r.index[name] = id
		r.names = append(r.names, name)
	}
	r.push(sample{at: time.Now(), frame: id, open: true})
	return id, true
}

func (r *recorder) close(id int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.push(sample{at: time.Now(), frame: id})
}

func (r *recorder) push(s sample) {
	r.samples[r.n%len(r.samples)] = s
	r.n++
}

// snapshot returns samples oldest first.
func (r *recorder) snapshot() ([]sample, []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	size := min(r.n, len(r.samples))
	out := make([]sample, 0, size)
	for k := r.n - size; k < r.n; k++ {
		out = append(out, r.samples[k%len(r.samples)])
	}
	return out, append([]string(nil), r.names...)
}

type ssFile struct {
	Schema   string      `json:"$schema"`
	Shared   ssShared    `json:"shared"`
	Profiles []ssProfile `json:"profiles"`
	Name     string      `json:"name"`
	Exporter string      `json:"exporter"`
}

type ssShared struct {
	Frames []ssFrame `json:"frames"`
}

type ssFrame struct {
	Name string `json:"name"`
}

type ssProfile struct {
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	Unit       string    `json:"unit"`
	StartValue int64     `json:"startValue"`
	EndValue   int64     `json:"endValue"`
	Events     []ssEvent `json:"events"`
}

type ssEvent struct {
	Type  string `json:"type"`
	At    int64  `json:"at"`
	Frame int    `json:"frame"`
}

// speedscope converts samples to balanced open/close events. A close with no
// matching open (its open was overwritten by the ring) is dropped, and scopes
// still open at the end are closed at the last timestamp.
func speedscope(samples []sample, names []string) ssFile {
	base := samples[0].at
	var (
		events []ssEvent
		stack  []int
		last   int64
	)
	for _, s := range samples {
		at := max(s.at.Sub(base).Microseconds(), last)
		if s.open {
			stack = append(stack, s.frame)
			events = append(events, ssEvent{Type: "O", At: at, Frame: s.frame})
		} else {
			if len(stack) == 0 || stack[len(stack)-1] != s.frame {
				continue
			}
			stack = stack[:len(stack)-1]
			events = append(events, ssEvent{Type: "C", At: at, Frame: s.frame})
		}
		last = at
	}
	for i := len(stack) - 1; i >= 0; i-- {
		events = append(events, ssEvent{Type: "C", At: last, Frame: stack[i]})
	}

	frames := make([]ssFrame, len(names))
	for i, n := range names {
		frames[i] = ssFrame{Name: n}
	}
	return ssFile{
		Schema: "https://www.speedscope.app/file-format-schema.json",
		Shared: ssShared{Frames: frames},
		Profiles: []ssProfile{{
			Type:     "evented",
			Name:     "cartridge frame loop",
			Unit:     "microseconds",
			EndValue: last,
			Events:   events,
		}},
		Name:     "cartridge capture",
		Exporter: "cartridge-profiler",
	}
}
