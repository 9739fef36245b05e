package testing

import (
	"testing"
	"time"

	"github.com/go-drift/inplace/pkg/animation"
	"github.com/go-drift/inplace/pkg/core"
	"github.com/go-drift/inplace/pkg/platform"
)

// Tester wires a fake toolkit, a root container and a scheduler whose passes
// are posted to a looper the test drives by hand.
type Tester struct {
	Toolkit   *Toolkit
	Root      *Container
	Scheduler *core.Scheduler
	Loop      *platform.Looper

	clock     *FakeClock
	prevClock animation.Clock
}

// NewTester builds a tester. build receives the toolkit so the Renderable can
// refer to its widget kinds. Global state (animation clock, platform dispatch)
// is restored through t.Cleanup.
func NewTester(t testing.TB, build func(tk *Toolkit) core.Renderable, opts ...core.Option) *Tester {
	t.Helper()
	tk := NewToolkit()
	loop := platform.NewLooper()
	clk := NewFakeClock()
	tester := &Tester{
		Toolkit: tk,
		Root:    tk.NewRoot(),
		Loop:    loop,
		clock:   clk,
	}
	opts = append([]core.Option{core.WithPoster(func(fn func()) { loop.Post(fn) })}, opts...)
	tester.Scheduler = core.NewScheduler(tester.Root, build(tk), opts...)
	tester.prevClock = animation.SetClock(clk)
	loop.Register()
	t.Cleanup(tester.cleanup)
	return tester
}

func (t *Tester) cleanup() {
	animation.SetClock(t.prevClock)
	platform.RegisterDispatch(nil)
	t.Loop.Close()
}

// Render runs a pass synchronously.
func (t *Tester) Render() error {
	return t.Scheduler.RenderNow()
}

// RequestRender asks the scheduler for a pass; it runs on the next Pump.
func (t *Tester) RequestRender() {
	t.Scheduler.RequestRender()
}

// Pump runs one turn of the UI loop and returns how many callbacks ran.
func (t *Tester) Pump() int {
	return t.Loop.Turn()
}

// PumpAll runs the UI loop until it is idle.
func (t *Tester) PumpAll() int {
	return t.Loop.Drain()
}

// Clock returns the fake animation clock.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Advance moves the animation clock forward and steps active tickers.
func (t *Tester) Advance(d time.Duration) {
	t.clock.Advance(d)
	animation.StepTickers()
}
