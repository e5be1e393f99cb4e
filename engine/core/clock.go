package core

import "time"

// Clock is the scheduler's time source. Tests inject a fake to drive the
// loop deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock reads wall-clock time.
var SystemClock Clock = realClock{}
