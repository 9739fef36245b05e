package animation

import (
	"time"

	"github.com/go-drift/inplace/pkg/widget"
)

// WidgetAnimation runs a Controller and feeds each value to a widget.
// It implements widget.Animation.
type WidgetAnimation struct {
	controller *Controller
	apply      func(w widget.Widget, value float64)
	target     widget.Widget
	started    bool
}

// NewWidgetAnimation returns an animation lasting d that calls apply with the
// curved value on every frame while running. A nil curve means linear.
func NewWidgetAnimation(d time.Duration, curve func(float64) float64, apply func(w widget.Widget, value float64)) *WidgetAnimation {
	a := &WidgetAnimation{
		controller: NewController(d),
		apply:      apply,
	}
	if curve != nil {
		a.controller.Curve = curve
	}
	a.controller.AddListener(a.update)
	return a
}

func (a *WidgetAnimation) update() {
	if a.target != nil && a.apply != nil {
		a.apply(a.target, a.controller.Value)
	}
}

// SetTarget binds the animation to w.
func (a *WidgetAnimation) SetTarget(w widget.Widget) {
	a.target = w
}

// SetFrames picks the frame group that steps the animation.
func (a *WidgetAnimation) SetFrames(f *Frames) {
	a.controller.SetFrames(f)
}

// Target returns the bound widget.
func (a *WidgetAnimation) Target() widget.Widget {
	return a.target
}

// Start runs the animation from the beginning, restarting it if running.
func (a *WidgetAnimation) Start() {
	a.started = true
	a.controller.Reset()
	a.controller.Forward()
}

// Cancel stops a running animation and resets the target to the start value.
// Cancelling an animation that is not running does nothing.
func (a *WidgetAnimation) Cancel() {
	if !a.controller.IsAnimating() {
		return
	}
	a.controller.Reset()
}

// HasStarted reports whether Start was ever called.
func (a *WidgetAnimation) HasStarted() bool {
	return a.started
}

// HasEnded reports whether a started animation finished or was cancelled.
func (a *WidgetAnimation) HasEnded() bool {
	return a.started && !a.controller.IsAnimating()
}

// Value returns the current animation value.
func (a *WidgetAnimation) Value() float64 {
	return a.controller.Value
}

// Controller exposes the underlying controller.
func (a *WidgetAnimation) Controller() *Controller {
	return a.controller
}

var _ widget.Animation = (*WidgetAnimation)(nil)
