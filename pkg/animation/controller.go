package animation

import (
	"fmt"
	"time"
)

// Status is the state of a Controller.
//
//	          Forward()
//	Dismissed ─────────► Completed
//	    ▲                    │
//	    └──── Reverse() ─────┘
//
// While moving, status is Forward or Reverse. Stop leaves the value where it
// is and reports Stopped until the next Forward/Reverse/Reset.
type Status int

const (
	// Dismissed means the controller rests at the lower bound.
	Dismissed Status = iota
	// Forward means the controller is moving toward the upper bound.
	Forward
	// Reverse means the controller is moving toward the lower bound.
	Reverse
	// Completed means the controller rests at the upper bound.
	Completed
	// Stopped means the controller was stopped mid-flight.
	Stopped
)

func (s Status) String() string {
	switch s {
	case Dismissed:
		return "dismissed"
	case Forward:
		return "forward"
	case Reverse:
		return "reverse"
	case Completed:
		return "completed"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Controller moves Value between 0 and 1 over Duration.
//
// Always call Dispose when done to stop the ticker.
type Controller struct {
	// Value is the current value in [0, 1].
	Value float64

	// Duration is the time a full 0→1 run takes.
	Duration time.Duration

	// Curve shapes linear progress (optional).
	Curve func(float64) float64

	status          Status
	frames          *Frames
	ticker          *Ticker
	target          float64
	startValue      float64
	listeners       map[int]func()
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewController creates a controller with the given duration.
func NewController(duration time.Duration) *Controller {
	return &Controller{
		Duration:        duration,
		Curve:           LinearCurve,
		listeners:       make(map[int]func()),
		statusListeners: make(map[int]func(Status)),
	}
}

// SetFrames moves the controller to group f; nil means the default group.
// A running controller moves on its next Forward or Reverse.
func (c *Controller) SetFrames(f *Frames) {
	c.frames = f
}

// Forward animates toward 1.
func (c *Controller) Forward() {
	c.animateTo(1, Forward)
}

// Reverse animates toward 0.
func (c *Controller) Reverse() {
	c.animateTo(0, Reverse)
}

func (c *Controller) animateTo(target float64, direction Status) {
	if c.ticker != nil {
		c.ticker.Stop()
	}
	c.target = target
	c.startValue = c.Value
	c.setStatus(direction)

	if c.frames != nil {
		c.ticker = c.frames.NewTicker(c.tick)
	} else {
		c.ticker = NewTicker(c.tick)
	}
	c.ticker.Start()
}

func (c *Controller) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = c.target
		c.notifyListeners()
		c.settle()
		return
	}

	progress := float64(elapsed) / float64(c.Duration)
	if progress >= 1 {
		progress = 1
	}
	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.startValue + (c.target-c.startValue)*eased
	c.notifyListeners()

	if progress >= 1 {
		c.Value = c.target
		c.settle()
	}
}

// settle stops the ticker after reaching the target.
func (c *Controller) settle() {
	c.stopTicker()
	if c.target <= 0 {
		c.setStatus(Dismissed)
	} else {
		c.setStatus(Completed)
	}
}

func (c *Controller) stopTicker() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}

// Reset stops the controller and sets the value to 0.
func (c *Controller) Reset() {
	c.stopTicker()
	c.Value = 0
	c.setStatus(Dismissed)
	c.notifyListeners()
}

// Stop halts a running controller at its current value. Stopping a controller
// that is not moving does nothing.
func (c *Controller) Stop() {
	if !c.IsAnimating() {
		return
	}
	c.stopTicker()
	c.setStatus(Stopped)
}

// Status returns the current status.
func (c *Controller) Status() Status {
	return c.status
}

// IsAnimating reports whether the controller is moving.
func (c *Controller) IsAnimating() bool {
	return c.status == Forward || c.status == Reverse
}

// AddListener adds a callback fired on every value change.
// Returns an unsubscribe function.
func (c *Controller) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

// AddStatusListener adds a callback fired on every status change.
// Returns an unsubscribe function.
func (c *Controller) AddStatusListener(fn func(Status)) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.statusListeners[id] = fn
	return func() {
		delete(c.statusListeners, id)
	}
}

func (c *Controller) setStatus(status Status) {
	if c.status == status {
		return
	}
	c.status = status
	for _, listener := range c.statusListeners {
		listener(status)
	}
}

func (c *Controller) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *Controller) Dispose() {
	c.stopTicker()
	c.listeners = nil
	c.statusListeners = nil
}
