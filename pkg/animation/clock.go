package animation

import (
	"sync/atomic"
	"time"
)

// Clock is the time source of tickers. Tests swap in a fake with SetClock to
// step animations deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads wall-clock time.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

type clockBox struct{ Clock }

var clock atomic.Pointer[clockBox]

func init() {
	clock.Store(&clockBox{SystemClock{}})
}

// SetClock replaces the animation clock and returns the previous one so
// callers can restore it. A nil clock restores SystemClock.
func SetClock(c Clock) Clock {
	if c == nil {
		c = SystemClock{}
	}
	return clock.Swap(&clockBox{c}).Clock
}

// Now returns the current time from the active clock.
func Now() time.Time { return clock.Load().Now() }
