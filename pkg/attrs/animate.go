package attrs

import (
	"github.com/go-drift/inplace/pkg/core"
	"github.com/go-drift/inplace/pkg/widget"
)

// Anim is the value of the animation attribute.
type Anim struct {
	Animation widget.Animation
	// Trigger starts the animation on the pass where it becomes true.
	Trigger bool
}

var AnimateAttr core.AttrFunc[Anim] = &animateAttr{name: "animate"}

// Animate binds anim to the widget. The animation starts on the pass where
// trigger turns true (or where a different animation arrives with trigger
// true). When trigger turns false while the animation is still running, it is
// cancelled. The caller owns the trigger and should lower it once the
// animation is no longer wanted.
func Animate(c *core.Cursor, anim widget.Animation, trigger bool) {
	core.Apply(c, AnimateAttr, Anim{Animation: anim, Trigger: trigger})
}

type animateAttr struct{ name string }

func (*animateAttr) Apply(w widget.Widget, v, prev Anim, hasPrev bool) {
	same := hasPrev && core.Equal(v.Animation, prev.Animation)

	// Falling edge, or a running animation replaced by another one.
	if hasPrev && prev.Trigger && (!v.Trigger || !same) {
		cancelRunning(prev.Animation)
	}

	if v.Trigger && v.Animation != nil && !(same && prev.Trigger) {
		v.Animation.SetTarget(w)
		v.Animation.Start()
	}
}

func cancelRunning(a widget.Animation) {
	if a == nil || !a.HasStarted() || a.HasEnded() {
		return
	}
	a.Cancel()
}
