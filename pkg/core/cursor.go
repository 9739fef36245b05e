package core

import (
	"time"

	"github.com/go-drift/inplace/pkg/errors"
	"github.com/go-drift/inplace/pkg/widget"
)

// Renderable reproduces, from scratch, the full description of a subtree by
// calling Enter/Leave (or Node) and attribute helpers on the cursor.
type Renderable func(c *Cursor)

// Requester asks for a new render pass.
type Requester interface {
	RequestRender()
}

// PassStats counts what one render pass did to the live tree.
type PassStats struct {
	Created    int
	Reused     int
	Destroyed  int
	Attributes int
}

// frame is one level of the cursor stack: an open widget and the position of
// the next child the description is expected to visit.
type frame struct {
	widget    widget.Widget
	container widget.Container
	next      int
}

// Cursor walks the live widget tree in lock-step with a Renderable, reusing,
// creating and destroying widgets by position.
//
// A Cursor is bound to one pre-existing root widget and is not safe for
// concurrent use.
type Cursor struct {
	root      widget.Widget
	frames    []frame
	active    bool
	rooted    bool
	requester Requester
	stats     PassStats

	// scratch buffers for subtree teardown
	walk  []widget.Widget
	order []widget.Widget
}

// NewCursor returns a cursor bound to root.
func NewCursor(root widget.Widget) *Cursor {
	return &Cursor{
		root:   root,
		frames: make([]frame, 0, 16),
	}
}

// Root returns the widget the cursor is bound to.
func (c *Cursor) Root() widget.Widget {
	return c.root
}

// Depth returns the number of open nodes.
func (c *Cursor) Depth() int {
	return len(c.frames)
}

// Current returns the widget of the innermost open node, or nil.
func (c *Cursor) Current() widget.Widget {
	if len(c.frames) == 0 {
		return nil
	}
	return c.frames[len(c.frames)-1].widget
}

// Requester returns the requester event callbacks should use to ask for a new
// pass. It is never nil.
func (c *Cursor) Requester() Requester {
	if c.requester == nil {
		return nopRequester{}
	}
	return c.requester
}

// RequestRender forwards to the cursor's requester.
func (c *Cursor) RequestRender() {
	c.Requester().RequestRender()
}

// Enter opens a node of type t at the current position and returns its widget.
//
// The first Enter of a pass binds to the root. Afterwards, the child at the
// expected position is reused when its type is t; otherwise it is destroyed and
// a new widget of type t takes its place.
func (c *Cursor) Enter(t widget.Type) widget.Widget {
	if !c.active {
		c.fail("cursor.Enter", errors.ErrNotInPass, t.Name())
	}
	if len(c.frames) == 0 {
		if c.rooted {
			c.fail("cursor.Enter", errors.ErrSecondRoot, t.Name())
		}
		if c.root.Type() != t {
			c.fail("cursor.Enter", errors.ErrRootMismatch, t.Name())
		}
		c.rooted = true
		c.push(c.root)
		return c.root
	}

	top := &c.frames[len(c.frames)-1]
	if top.container == nil {
		c.fail("cursor.Enter", errors.ErrNotContainer, top.widget.Type().Name())
	}
	parent := top.container
	index := top.next
	top.next++

	var w widget.Widget
	if index < parent.ChildCount() {
		existing := parent.ChildAt(index)
		if existing.Type() == t {
			w = existing
			c.stats.Reused++
		} else {
			parent.RemoveChildAt(index)
			c.destroy(existing)
		}
	}
	if w == nil {
		w = t.New()
		w.SetLayoutParams(parent.NewLayoutParams())
		parent.InsertChild(index, w)
		c.stats.Created++
	}
	c.push(w)
	return w
}

// Leave closes the innermost node and destroys every child the pass did not
// revisit.
func (c *Cursor) Leave() {
	if !c.active {
		c.fail("cursor.Leave", errors.ErrNotInPass, "")
	}
	n := len(c.frames)
	if n == 0 {
		c.fail("cursor.Leave", errors.ErrUnbalancedLeave, "")
	}
	f := c.frames[n-1]
	c.frames[n-1] = frame{}
	c.frames = c.frames[:n-1]

	if f.container == nil {
		return
	}
	for i := f.container.ChildCount() - 1; i >= f.next; i-- {
		child := f.container.ChildAt(i)
		f.container.RemoveChildAt(i)
		c.destroy(child)
	}
}

// Node opens a node of type t, runs body, and closes it.
func (c *Cursor) Node(t widget.Type, body func()) widget.Widget {
	w := c.Enter(t)
	if body != nil {
		body()
	}
	c.Leave()
	return w
}

// Render runs one pass of r against the live tree.
//
// Structural mismatches are returned as *errors.MountError and panics raised by
// r as *errors.PanicError. On failure the tree keeps whatever the pass applied
// before the failure point; the next pass starts from an empty cursor stack.
func (c *Cursor) Render(r Renderable) (stats PassStats, err error) {
	if c.active {
		return PassStats{}, c.mountError("cursor.Render", errors.ErrNestedPass, "")
	}
	c.reset()
	c.stats = PassStats{}
	c.active = true
	defer func() {
		if rec := recover(); rec != nil {
			err = recoveredError(rec)
		}
		stats = c.stats
		c.active = false
		c.reset()
	}()

	r(c)
	if n := len(c.frames); n != 0 {
		err = c.mountError("cursor.Render", errors.ErrUnclosedNodes, c.frames[n-1].widget.Type().Name())
	}
	return stats, err
}

func (c *Cursor) push(w widget.Widget) {
	f := frame{widget: w}
	if ct, ok := w.(widget.Container); ok {
		f.container = ct
	}
	c.frames = append(c.frames, f)
}

func (c *Cursor) reset() {
	clear(c.frames)
	c.frames = c.frames[:0]
	c.rooted = false
}

// attrTarget returns the widget attributes apply to, failing fast when no node
// is open.
func (c *Cursor) attrTarget() widget.Widget {
	if !c.active {
		c.fail("core.Apply", errors.ErrNotInPass, "")
	}
	if len(c.frames) == 0 {
		c.fail("core.Apply", errors.ErrNoOpenNode, "")
	}
	return c.frames[len(c.frames)-1].widget
}

// destroy releases w and its whole subtree, children before parents. The walk
// is iterative so deep trees cannot exhaust the stack.
func (c *Cursor) destroy(w widget.Widget) {
	c.walk = append(c.walk[:0], w)
	c.order = c.order[:0]
	for len(c.walk) > 0 {
		n := c.walk[len(c.walk)-1]
		c.walk = c.walk[:len(c.walk)-1]
		c.order = append(c.order, n)
		if ct, ok := n.(widget.Container); ok {
			for i := 0; i < ct.ChildCount(); i++ {
				c.walk = append(c.walk, ct.ChildAt(i))
			}
		}
	}
	for i := len(c.order) - 1; i >= 0; i-- {
		n := c.order[i]
		if r, ok := n.(widget.Releaser); ok {
			r.Release()
		}
		dropCache(n)
		c.stats.Destroyed++
	}
	clear(c.order)
	c.order = c.order[:0]
}

func (c *Cursor) mountError(op string, cause error, widgetName string) *errors.MountError {
	return &errors.MountError{
		Op:         op,
		Kind:       errors.KindStructure,
		Depth:      len(c.frames),
		Widget:     widgetName,
		Err:        cause,
		StackTrace: errors.CaptureStack(),
		Timestamp:  time.Now(),
	}
}

func (c *Cursor) fail(op string, cause error, widgetName string) {
	panic(c.mountError(op, cause, widgetName))
}

func recoveredError(rec any) error {
	if err, ok := rec.(*errors.MountError); ok {
		return err
	}
	return &errors.PanicError{
		Op:         "core.Render",
		Kind:       errors.KindRender,
		Value:      rec,
		StackTrace: errors.CaptureStack(),
		Timestamp:  time.Now(),
	}
}

type nopRequester struct{}

func (nopRequester) RequestRender() {}
