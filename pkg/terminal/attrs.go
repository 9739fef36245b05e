package terminal

import (
	"slices"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/inplace/pkg/animation"
	"github.com/go-drift/inplace/pkg/core"
	"github.com/go-drift/inplace/pkg/widget"
)

// Terminal-only attributes.
var (
	ForegroundAttr core.AttrFunc[tcell.Color] = &foregroundAttr{name: "fg"}
	ItemsAttr      core.AttrFunc[[]string]    = &itemsAttr{name: "items"}
	SelectedAttr   core.AttrFunc[int]         = &selectedAttr{name: "selected"}
)

// Foreground sets the text color of the current widget.
func Foreground(c *core.Cursor, color tcell.Color) {
	core.Apply(c, ForegroundAttr, color)
}

// Items sets the entries of the current List. The cache keeps its own copy,
// so callers may reuse and edit the slice they pass between passes.
func Items(c *core.Cursor, items ...string) {
	core.Apply(c, ItemsAttr, slices.Clone(items))
}

// Selected moves the selection of the current List.
func Selected(c *core.Cursor, pos int) {
	core.Apply(c, SelectedAttr, pos)
}

type foregroundAttr struct{ name string }

func (*foregroundAttr) Apply(w widget.Widget, v, prev tcell.Color, hasPrev bool) {
	view := viewOf(w)
	if view == nil || (hasPrev && v == prev) || view.fg == v {
		return
	}
	view.SetForeground(v)
}

type itemsAttr struct{ name string }

func (*itemsAttr) Apply(w widget.Widget, v, prev []string, hasPrev bool) {
	l, ok := w.(*ListView)
	if !ok || (hasPrev && slices.Equal(v, prev)) || slices.Equal(l.items, v) {
		return
	}
	l.SetItems(v)
}

type selectedAttr struct{ name string }

// Apply only moves the selection when the described position changed, so a
// pick made by the user survives passes until the application adopts it.
// A position past the current items is held by the List until items arrive.
func (*selectedAttr) Apply(w widget.Widget, v, prev int, hasPrev bool) {
	l, ok := w.(*ListView)
	if !ok || (hasPrev && v == prev) {
		return
	}
	l.SetSelected(v)
}

// Flash returns an animation that pulses the target's background once.
func Flash(d time.Duration) *animation.WidgetAnimation {
	return animation.NewWidgetAnimation(d, animation.Pulse, func(w widget.Widget, value float64) {
		if v := viewOf(w); v != nil {
			v.SetHighlight(value)
		}
	})
}
