// Package core provides the in-place reconciliation engine: the mount cursor,
// the attribute application protocol, and the render scheduler.
//
// There is no intermediate virtual tree. A [Renderable] describes the UI by
// calling the cursor directly, and the cursor mutates the live widget tree as
// the description arrives.
//
// # Describing a tree
//
//	func view(c *core.Cursor) {
//	    c.Node(terminal.Column, func() {
//	        attrs.PaddingAll(c, 1)
//	        c.Node(terminal.Label, func() {
//	            attrs.Text(c, "Hello")
//	        })
//	    })
//	}
//
// Children are matched by position and type only. A node whose type differs
// from the widget currently at its position replaces that widget and its
// subtree; widgets left over past the last described child are destroyed when
// their parent node is left.
//
// # Attributes
//
// An [AttrFunc] is a stateless singleton that applies one property. [Apply]
// passes it the new value and the value applied on the previous pass, read from
// the widget's diff cache. Apply always calls the function; skipping redundant
// toolkit mutations is up to the function.
//
// # Scheduling
//
// A [Scheduler] owns the root Renderable. [Scheduler.RequestRender] may be
// called from widget callbacks at any time, including during a pass. Requests
// never nest passes: they are merged into the pending pass, or into exactly one
// follow-up pass when they arrive while a pass is running.
package core
