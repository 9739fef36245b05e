// Package testing provides an in-memory widget toolkit and a render harness
// for testing code built on the reconciliation engine.
//
// # Quick Start
//
//	func TestGreeting(t *testing.T) {
//	    var name string
//	    tester := mounttest.NewTester(t, func(tk *mounttest.Toolkit) core.Renderable {
//	        return func(c *core.Cursor) {
//	            c.Node(tk.Linear, func() {
//	                c.Node(tk.Text, func() { attrs.Text(c, "Hello "+name) })
//	            })
//	        }
//	    })
//	    require.NoError(t, tester.Render())
//
//	    before := tester.Toolkit.Counts
//	    require.NoError(t, tester.Render())
//	    assert.Equal(t, before, tester.Toolkit.Counts) // idempotent
//	}
//
// Every fake widget setter increments a field of [Counters], so tests can
// assert on the exact number of toolkit mutations a pass made.
//
// # Scheduling
//
// The tester's scheduler posts passes to a [platform.Looper] instead of
// running them inline; call [Tester.Pump] to run one turn of the UI loop.
//
// # Animation Testing
//
// The tester installs a [FakeClock] as the animation clock:
//
//	tester.Advance(100 * time.Millisecond) // moves the clock and steps tickers
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import mounttest "github.com/go-drift/inplace/pkg/testing"
package testing
