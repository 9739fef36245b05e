package attrs

import (
	"fmt"

	"github.com/go-drift/inplace/pkg/core"
	"github.com/go-drift/inplace/pkg/widget"
)

// alignAttrs holds one attribute function per verb, so each shorthand keeps
// its own diff cache entry and several of them compose on one widget.
var alignAttrs [widget.NumVerbs]core.AttrFunc[int]

func init() {
	for v := range alignAttrs {
		alignAttrs[v] = &alignAttr{name: fmt.Sprintf("align-%d", v), verb: widget.Verb(v)}
	}
}

// AlignAttr returns the attribute function that sets a single rule verb, or
// nil for an unknown verb.
func AlignAttr(verb widget.Verb) core.AttrFunc[int] {
	if !verb.Valid() {
		return nil
	}
	return alignAttrs[verb]
}

// Align adds one rule to the widget's relative rules, keeping the others.
// Anchor 0 removes the rule. Unlike Rules, a rule added here stays when the
// call disappears from the description; describe it with anchor 0 to drop it.
func Align(c *core.Cursor, verb widget.Verb, anchor int) {
	if fn := AlignAttr(verb); fn != nil {
		core.Apply(c, fn, anchor)
	}
}

// Above places the widget above the sibling with the given id.
func Above(c *core.Cursor, id int) { Align(c, widget.Above, id) }

// Below places the widget below the sibling with the given id.
func Below(c *core.Cursor, id int) { Align(c, widget.Below, id) }

// ToLeftOf places the widget left of the sibling with the given id.
func ToLeftOf(c *core.Cursor, id int) { Align(c, widget.LeftOf, id) }

// ToRightOf places the widget right of the sibling with the given id.
func ToRightOf(c *core.Cursor, id int) { Align(c, widget.RightOf, id) }

// AlignLeft lines up the widget's left edge with the sibling's.
func AlignLeft(c *core.Cursor, id int) { Align(c, widget.AlignLeft, id) }

// AlignTop lines up the widget's top edge with the sibling's.
func AlignTop(c *core.Cursor, id int) { Align(c, widget.AlignTop, id) }

// AlignRight lines up the widget's right edge with the sibling's.
func AlignRight(c *core.Cursor, id int) { Align(c, widget.AlignRight, id) }

// AlignBottom lines up the widget's bottom edge with the sibling's.
func AlignBottom(c *core.Cursor, id int) { Align(c, widget.AlignBottom, id) }

// The parent and centering shorthands take no anchor.
func AlignParentLeft(c *core.Cursor)   { Align(c, widget.AlignParentLeft, widget.True) }
func AlignParentTop(c *core.Cursor)    { Align(c, widget.AlignParentTop, widget.True) }
func AlignParentRight(c *core.Cursor)  { Align(c, widget.AlignParentRight, widget.True) }
func AlignParentBottom(c *core.Cursor) { Align(c, widget.AlignParentBottom, widget.True) }
func CenterInParent(c *core.Cursor)    { Align(c, widget.CenterInParent, widget.True) }
func CenterHorizontal(c *core.Cursor)  { Align(c, widget.CenterHorizontal, widget.True) }
func CenterVertical(c *core.Cursor)    { Align(c, widget.CenterVertical, widget.True) }

type alignAttr struct {
	name string
	verb widget.Verb
}

// Apply compares against the widget's current rule so that a Rules call on
// the same node cannot leave the cache and the widget disagreeing.
func (a *alignAttr) Apply(w widget.Widget, v, _ int, _ bool) {
	lp := w.LayoutParams()
	if lp == nil || lp.Kind != widget.ParamsRelative {
		return
	}
	if cur, _ := lp.Rules.Get(a.verb); cur == v {
		return
	}
	lp.Rules[a.verb] = v
	w.SetLayoutParams(lp)
}
