package animation_test

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/inplace/pkg/animation"
	mounttest "github.com/go-drift/inplace/pkg/testing"
	"github.com/go-drift/inplace/pkg/widget"
)

func useFakeClock(t *testing.T) *mounttest.FakeClock {
	t.Helper()
	clk := mounttest.NewFakeClock()
	prev := animation.SetClock(clk)
	t.Cleanup(func() { animation.SetClock(prev) })
	return clk
}

func step(clk *mounttest.FakeClock, d time.Duration) {
	clk.Advance(d)
	animation.StepTickers()
}

func TestControllerForward(t *testing.T) {
	clk := useFakeClock(t)
	c := animation.NewController(100 * time.Millisecond)
	defer c.Dispose()

	var statuses []animation.Status
	c.AddStatusListener(func(s animation.Status) { statuses = append(statuses, s) })

	c.Forward()
	if !c.IsAnimating() {
		t.Fatal("controller should animate after Forward")
	}

	step(clk, 50*time.Millisecond)
	if math.Abs(c.Value-0.5) > 1e-9 {
		t.Errorf("Value = %v, want 0.5", c.Value)
	}

	step(clk, 60*time.Millisecond)
	if c.Value != 1 {
		t.Errorf("Value = %v, want 1", c.Value)
	}
	if c.Status() != animation.Completed {
		t.Errorf("Status = %v, want completed", c.Status())
	}
	if animation.HasActiveTickers() {
		t.Error("ticker should stop once the controller settles")
	}
	want := []animation.Status{animation.Forward, animation.Completed}
	if len(statuses) != len(want) || statuses[0] != want[0] || statuses[1] != want[1] {
		t.Errorf("statuses = %v, want %v", statuses, want)
	}
}

func TestControllerReverse(t *testing.T) {
	clk := useFakeClock(t)
	c := animation.NewController(100 * time.Millisecond)
	defer c.Dispose()
	c.Value = 1

	c.Reverse()
	step(clk, 100*time.Millisecond)

	if c.Value != 0 || c.Status() != animation.Dismissed {
		t.Errorf("got value %v status %v, want 0 dismissed", c.Value, c.Status())
	}
}

func TestControllerZeroDurationJumps(t *testing.T) {
	clk := useFakeClock(t)
	c := animation.NewController(0)
	defer c.Dispose()

	c.Forward()
	step(clk, time.Millisecond)

	if c.Value != 1 || c.Status() != animation.Completed {
		t.Errorf("got value %v status %v, want 1 completed", c.Value, c.Status())
	}
}

func TestControllerStop(t *testing.T) {
	clk := useFakeClock(t)
	c := animation.NewController(100 * time.Millisecond)
	defer c.Dispose()

	c.Stop()
	if c.Status() != animation.Dismissed {
		t.Errorf("Stop on an idle controller changed status to %v", c.Status())
	}

	c.Forward()
	step(clk, 25*time.Millisecond)
	c.Stop()
	if c.Status() != animation.Stopped {
		t.Errorf("Status = %v, want stopped", c.Status())
	}
	held := c.Value
	step(clk, 50*time.Millisecond)
	if c.Value != held {
		t.Errorf("stopped controller moved from %v to %v", held, c.Value)
	}
}

func TestControllerListenerUnsubscribe(t *testing.T) {
	clk := useFakeClock(t)
	c := animation.NewController(100 * time.Millisecond)
	defer c.Dispose()

	calls := 0
	remove := c.AddListener(func() { calls++ })
	c.Forward()
	step(clk, 10*time.Millisecond)
	remove()
	step(clk, 10*time.Millisecond)

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestWidgetAnimation(t *testing.T) {
	clk := useFakeClock(t)
	tk := mounttest.NewToolkit()
	target := tk.View.New()

	var applied []float64
	a := animation.NewWidgetAnimation(100*time.Millisecond, nil, func(w widget.Widget, v float64) {
		if w != target {
			t.Errorf("applied to %v, want target", w)
		}
		applied = append(applied, v)
	})
	defer a.Controller().Dispose()

	if a.HasStarted() || a.HasEnded() {
		t.Fatal("fresh animation must be neither started nor ended")
	}

	a.SetTarget(target)
	a.Start()
	if !a.HasStarted() || a.HasEnded() {
		t.Fatal("running animation must be started and not ended")
	}

	step(clk, 100*time.Millisecond)
	if !a.HasEnded() {
		t.Error("animation should have ended")
	}
	if len(applied) == 0 || applied[len(applied)-1] != 1 {
		t.Errorf("applied = %v, want last value 1", applied)
	}
}

func TestWidgetAnimationCancel(t *testing.T) {
	clk := useFakeClock(t)
	a := animation.NewWidgetAnimation(100*time.Millisecond, animation.Pulse, nil)
	defer a.Controller().Dispose()

	a.Start()
	step(clk, 50*time.Millisecond)
	if math.Abs(a.Value()-1) > 1e-9 {
		t.Errorf("pulse at midpoint = %v, want 1", a.Value())
	}

	a.Cancel()
	if !a.HasEnded() || a.Value() != 0 {
		t.Errorf("cancelled animation: ended=%v value=%v", a.HasEnded(), a.Value())
	}

	// Cancelling again is a no-op.
	status := a.Controller().Status()
	a.Cancel()
	if a.Controller().Status() != status {
		t.Error("second Cancel changed status")
	}
}

func TestWidgetAnimationRestart(t *testing.T) {
	clk := useFakeClock(t)
	a := animation.NewWidgetAnimation(100*time.Millisecond, nil, nil)
	defer a.Controller().Dispose()

	a.Start()
	step(clk, 80*time.Millisecond)
	a.Start()
	step(clk, 10*time.Millisecond)

	if math.Abs(a.Value()-0.1) > 1e-9 {
		t.Errorf("restarted value = %v, want 0.1", a.Value())
	}
}

func TestCurves(t *testing.T) {
	curves := map[string]func(float64) float64{
		"linear":    animation.LinearCurve,
		"ease":      animation.Ease,
		"easeIn":    animation.EaseIn,
		"easeOut":   animation.EaseOut,
		"easeInOut": animation.EaseInOut,
	}
	for name, curve := range curves {
		if got := curve(0); math.Abs(got) > 1e-6 {
			t.Errorf("%s(0) = %v", name, got)
		}
		if got := curve(1); math.Abs(got-1) > 1e-6 {
			t.Errorf("%s(1) = %v", name, got)
		}
		prev := 0.0
		for i := 1; i <= 20; i++ {
			got := curve(float64(i) / 20)
			if got < prev-1e-9 {
				t.Errorf("%s is not monotonic at %v: %v < %v", name, float64(i)/20, got, prev)
			}
			prev = got
		}
	}
	if got := animation.CubicBezier(0, 0, 1, 1)(0.3); math.Abs(got-0.3) > 1e-6 {
		t.Errorf("straight bezier(0.3) = %v", got)
	}
	if animation.Pulse(0) != 0 || math.Abs(animation.Pulse(1)) > 1e-9 {
		t.Error("pulse must start and end at rest")
	}
}

func TestSetClockNilRestoresSystem(t *testing.T) {
	prev := animation.SetClock(nil)
	defer animation.SetClock(prev)

	if _, ok := animation.SetClock(nil).(animation.SystemClock); !ok {
		t.Error("SetClock(nil) should install the system clock")
	}
}

func TestFramesStepOnlyTheirTickers(t *testing.T) {
	clk := useFakeClock(t)
	group := animation.NewFrames()

	var inGroup, inDefault []time.Duration
	a := group.NewTicker(func(d time.Duration) { inGroup = append(inGroup, d) })
	b := animation.NewTicker(func(d time.Duration) { inDefault = append(inDefault, d) })
	a.Start()
	b.Start()
	t.Cleanup(a.Stop)
	t.Cleanup(b.Stop)

	clk.Advance(10 * time.Millisecond)
	if n := group.Step(); n != 1 {
		t.Fatalf("Step ran %d tickers, want 1", n)
	}
	if len(inGroup) != 1 || inGroup[0] != 10*time.Millisecond {
		t.Errorf("group ticker saw %v, want [10ms]", inGroup)
	}
	if len(inDefault) != 0 {
		t.Errorf("default ticker ran from the group's frame: %v", inDefault)
	}

	animation.StepTickers()
	if len(inDefault) != 1 || len(inGroup) != 1 {
		t.Errorf("StepTickers stepped group=%d default=%d, want 1 and 1", len(inGroup), len(inDefault))
	}

	a.Stop()
	if group.Active() {
		t.Error("group should be idle after its only ticker stops")
	}
	if group.Step() != 0 {
		t.Error("idle group stepped a ticker")
	}
}

func TestFramesSkipTickerStoppedDuringStep(t *testing.T) {
	useFakeClock(t)
	group := animation.NewFrames()

	var second *animation.Ticker
	calls := 0
	first := group.NewTicker(func(time.Duration) { second.Stop() })
	second = group.NewTicker(func(time.Duration) { calls++ })
	first.Start()
	second.Start()
	t.Cleanup(first.Stop)

	if n := group.Step(); n != 1 {
		t.Errorf("Step ran %d tickers, want 1", n)
	}
	if calls != 0 {
		t.Errorf("stopped ticker ran %d times", calls)
	}
	if group.Len() != 1 {
		t.Errorf("Len = %d, want 1", group.Len())
	}
}

func TestControllerInOwnFrames(t *testing.T) {
	clk := useFakeClock(t)
	group := animation.NewFrames()
	a := animation.NewWidgetAnimation(100*time.Millisecond, nil, nil)
	t.Cleanup(a.Controller().Dispose)
	a.SetFrames(group)
	a.Start()

	if animation.HasActiveTickers() {
		t.Fatal("animation joined the default group")
	}
	clk.Advance(100 * time.Millisecond)
	group.Step()
	if !a.HasEnded() || a.Value() != 1 {
		t.Errorf("HasEnded=%v Value=%v, want true and 1", a.HasEnded(), a.Value())
	}
}
