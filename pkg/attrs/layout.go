// Package attrs provides the built-in attribute functions and the declarative
// helpers that apply them.
//
// Each helper packages its arguments into a value and forwards to core.Apply
// with a singleton attribute function. Functions skip the toolkit call when
// the value is unchanged since the previous pass, and are no-ops on widgets
// lacking the capability they need (e.g. Weight outside a linear layout).
package attrs

import (
	"github.com/go-drift/inplace/pkg/core"
	"github.com/go-drift/inplace/pkg/widget"
)

// Attribute singletons. Every helper in this package resolves to one of these,
// so repeated passes hit the same diff cache entry.
var (
	SizeAttr    core.AttrFunc[widget.Size]    = &sizeAttr{name: "size"}
	WidthAttr   core.AttrFunc[int]            = &dimensionAttr{name: "width", height: false}
	HeightAttr  core.AttrFunc[int]            = &dimensionAttr{name: "height", height: true}
	PaddingAttr core.AttrFunc[widget.Insets]  = &paddingAttr{name: "padding"}
	MarginAttr  core.AttrFunc[widget.Insets]  = &marginAttr{name: "margin"}
	WeightAttr  core.AttrFunc[float64]        = &weightAttr{name: "weight"}
	GravityAttr core.AttrFunc[widget.Gravity] = &gravityAttr{name: "gravity"}
	RulesAttr   core.AttrFunc[widget.RuleSet] = &rulesAttr{name: "rules"}
	IDAttr      core.AttrFunc[int]            = &idAttr{name: "id"}
	VisibleAttr core.AttrFunc[bool]           = &visibleAttr{name: "visible"}
)

// Size sets the layout width and height. Either may be widget.MatchParent or
// widget.WrapContent.
func Size(c *core.Cursor, width, height int) {
	core.Apply(c, SizeAttr, widget.Size{Width: width, Height: height})
}

// Width sets the layout width and leaves the height alone.
func Width(c *core.Cursor, width int) {
	core.Apply(c, WidthAttr, width)
}

// Height sets the layout height and leaves the width alone.
func Height(c *core.Cursor, height int) {
	core.Apply(c, HeightAttr, height)
}

// MatchParent makes the widget fill its parent in both directions.
func MatchParent(c *core.Cursor) {
	Size(c, widget.MatchParent, widget.MatchParent)
}

// WrapContent sizes the widget to its content in both directions.
func WrapContent(c *core.Cursor) {
	Size(c, widget.WrapContent, widget.WrapContent)
}

// FillWidth fills the parent horizontally and wraps vertically.
func FillWidth(c *core.Cursor) {
	Size(c, widget.MatchParent, widget.WrapContent)
}

// Padding sets the inner padding.
func Padding(c *core.Cursor, left, top, right, bottom int) {
	core.Apply(c, PaddingAttr, widget.Insets{Left: left, Top: top, Right: right, Bottom: bottom})
}

// PaddingAll sets the same padding on every side.
func PaddingAll(c *core.Cursor, v int) {
	core.Apply(c, PaddingAttr, widget.InsetsAll(v))
}

// PaddingSymmetric sets horizontal and vertical padding.
func PaddingSymmetric(c *core.Cursor, horizontal, vertical int) {
	core.Apply(c, PaddingAttr, widget.InsetsSymmetric(horizontal, vertical))
}

// Margin sets the outer margins.
func Margin(c *core.Cursor, left, top, right, bottom int) {
	core.Apply(c, MarginAttr, widget.Insets{Left: left, Top: top, Right: right, Bottom: bottom})
}

// MarginAll sets the same margin on every side.
func MarginAll(c *core.Cursor, v int) {
	core.Apply(c, MarginAttr, widget.InsetsAll(v))
}

// MarginSymmetric sets horizontal and vertical margins.
func MarginSymmetric(c *core.Cursor, horizontal, vertical int) {
	core.Apply(c, MarginAttr, widget.InsetsSymmetric(horizontal, vertical))
}

// Weight sets the share of leftover space in a linear layout.
func Weight(c *core.Cursor, weight float64) {
	core.Apply(c, WeightAttr, weight)
}

// Gravity positions the widget within its slot in a linear or frame layout.
func Gravity(c *core.Cursor, g widget.Gravity) {
	core.Apply(c, GravityAttr, g)
}

// Rules positions the widget inside a relative layout. The rule set replaces
// the rules of the previous pass.
func Rules(c *core.Cursor, rules ...widget.Rule) {
	core.Apply(c, RulesAttr, widget.NewRuleSet(rules...))
}

// ID sets the widget id that relative rules refer to.
func ID(c *core.Cursor, id int) {
	core.Apply(c, IDAttr, id)
}

// Visible shows or hides the widget. Hidden widgets keep their place in the
// tree and their state.
func Visible(c *core.Cursor, visible bool) {
	core.Apply(c, VisibleAttr, visible)
}

type sizeAttr struct{ name string }

// Apply short-circuits when neither dimension changed so that no layout pass
// is requested.
func (*sizeAttr) Apply(w widget.Widget, v, prev widget.Size, hasPrev bool) {
	if hasPrev && v == prev {
		return
	}
	lp := w.LayoutParams()
	if lp == nil || (lp.Width == v.Width && lp.Height == v.Height) {
		return
	}
	lp.Width, lp.Height = v.Width, v.Height
	w.SetLayoutParams(lp)
}

type dimensionAttr struct {
	name   string
	height bool
}

func (d *dimensionAttr) Apply(w widget.Widget, v, prev int, hasPrev bool) {
	if hasPrev && v == prev {
		return
	}
	lp := w.LayoutParams()
	if lp == nil {
		return
	}
	dim := &lp.Width
	if d.height {
		dim = &lp.Height
	}
	if *dim == v {
		return
	}
	*dim = v
	w.SetLayoutParams(lp)
}

type paddingAttr struct{ name string }

func (*paddingAttr) Apply(w widget.Widget, v, prev widget.Insets, hasPrev bool) {
	p, ok := w.(widget.Padded)
	if !ok || (hasPrev && v == prev) || p.Padding() == v {
		return
	}
	p.SetPadding(v)
}

type marginAttr struct{ name string }

func (*marginAttr) Apply(w widget.Widget, v, prev widget.Insets, hasPrev bool) {
	if hasPrev && v == prev {
		return
	}
	lp := w.LayoutParams()
	if lp == nil || lp.Margin == v {
		return
	}
	lp.Margin = v
	w.SetLayoutParams(lp)
}

type weightAttr struct{ name string }

func (*weightAttr) Apply(w widget.Widget, v, prev float64, hasPrev bool) {
	lp := w.LayoutParams()
	if lp == nil || lp.Kind != widget.ParamsLinear {
		return
	}
	if (hasPrev && v == prev) || lp.Weight == v {
		return
	}
	lp.Weight = v
	w.SetLayoutParams(lp)
}

type gravityAttr struct{ name string }

func (*gravityAttr) Apply(w widget.Widget, v, prev widget.Gravity, hasPrev bool) {
	lp := w.LayoutParams()
	if lp == nil || !lp.SupportsGravity() {
		return
	}
	if (hasPrev && v == prev) || lp.Gravity == v {
		return
	}
	lp.Gravity = v
	w.SetLayoutParams(lp)
}

type rulesAttr struct{ name string }

func (*rulesAttr) Apply(w widget.Widget, v, prev widget.RuleSet, hasPrev bool) {
	lp := w.LayoutParams()
	if lp == nil || lp.Kind != widget.ParamsRelative {
		return
	}
	if (hasPrev && v == prev) || lp.Rules == v {
		return
	}
	lp.Rules = v
	w.SetLayoutParams(lp)
}

type idAttr struct{ name string }

func (*idAttr) Apply(w widget.Widget, v, prev int, hasPrev bool) {
	ident, ok := w.(widget.Identified)
	if !ok || (hasPrev && v == prev) || ident.ID() == v {
		return
	}
	ident.SetID(v)
}

type visibleAttr struct{ name string }

// Apply compares against the widget, so a widget hidden behind the engine's
// back is shown again on the next pass.
func (*visibleAttr) Apply(w widget.Widget, v, _ bool, _ bool) {
	h, ok := w.(widget.Hideable)
	if !ok || h.Visible() == v {
		return
	}
	h.SetVisible(v)
}
