// Package animation drives time-based widget animations.
//
// A [Controller] produces a value moving between 0 and 1 over a duration,
// shaped by an easing curve. [WidgetAnimation] binds a controller to a widget
// and implements widget.Animation, so it can be attached with attrs.Animate.
//
// Nothing here owns a goroutine. Running [Ticker]s belong to a [Frames] group
// whose frame loop calls [Frames.Step] on the UI thread. Tickers created
// without a group join the package default, stepped by [StepTickers].
package animation

import (
	"slices"
	"sync"
	"time"
)

// Frames is a group of running tickers advanced together, usually one group
// per event loop. The zero value is ready to use.
type Frames struct {
	mu      sync.Mutex
	running []*Ticker
}

// NewFrames returns an empty group.
func NewFrames() *Frames {
	return &Frames{}
}

var defaultFrames = NewFrames()

// DefaultFrames returns the group used by tickers that were not given one.
func DefaultFrames() *Frames {
	return defaultFrames
}

// NewTicker returns a stopped ticker that runs in f once started.
func (f *Frames) NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{frames: f, callback: callback}
}

func (f *Frames) add(t *Ticker) {
	f.mu.Lock()
	f.running = append(f.running, t)
	f.mu.Unlock()
}

func (f *Frames) remove(t *Ticker) {
	f.mu.Lock()
	f.running = slices.DeleteFunc(f.running, func(r *Ticker) bool { return r == t })
	f.mu.Unlock()
}

// Step calls every running ticker once, in start order, and returns how many
// ran. Tickers started by a callback wait for the next frame; tickers stopped
// by a callback are skipped.
func (f *Frames) Step() int {
	f.mu.Lock()
	batch := slices.Clone(f.running)
	f.mu.Unlock()
	if len(batch) == 0 {
		return 0
	}

	now := Now()
	n := 0
	for _, t := range batch {
		if !t.running || t.callback == nil {
			continue
		}
		t.callback(now.Sub(t.start))
		n++
	}
	return n
}

// Active reports whether any ticker in f is running, that is whether the
// frame loop should keep producing frames.
func (f *Frames) Active() bool {
	return f.Len() > 0
}

// Len returns the number of running tickers.
func (f *Frames) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.running)
}

// Ticker calls its callback once per frame of its group while running. The
// callback receives the time since Start.
type Ticker struct {
	frames   *Frames
	callback func(elapsed time.Duration)
	running  bool
	start    time.Time
}

// NewTicker returns a stopped ticker in the default group.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return defaultFrames.NewTicker(callback)
}

// Start runs the ticker from now on. Starting a running ticker does nothing.
func (t *Ticker) Start() {
	if t.running {
		return
	}
	t.running = true
	t.start = Now()
	t.group().add(t)
}

// Stop takes the ticker out of its group.
func (t *Ticker) Stop() {
	if !t.running {
		return
	}
	t.running = false
	t.group().remove(t)
}

// IsActive reports whether the ticker is running.
func (t *Ticker) IsActive() bool {
	return t.running
}

func (t *Ticker) group() *Frames {
	if t.frames == nil {
		return defaultFrames
	}
	return t.frames
}

// StepTickers steps the default group.
func StepTickers() {
	defaultFrames.Step()
}

// HasActiveTickers reports whether the default group has running tickers.
func HasActiveTickers() bool {
	return defaultFrames.Active()
}
