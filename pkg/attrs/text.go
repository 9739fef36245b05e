package attrs

import (
	"github.com/go-drift/inplace/pkg/core"
	"github.com/go-drift/inplace/pkg/widget"
)

var (
	TextAttr     core.AttrFunc[string]          = &textAttr{name: "text"}
	TypefaceAttr core.AttrFunc[widget.Typeface] = &typefaceAttr{name: "typeface"}
	ShadowAttr   core.AttrFunc[widget.Shadow]   = &shadowAttr{name: "shadow"}
	TagAttr      core.AttrFunc[any]             = &tagAttr{name: "tag"}
	KeyedTagAttr core.AttrFunc[TagEntry]        = &keyedTagAttr{name: "keyed-tag"}
)

// Text sets the displayed text. For text the user edits, bind a buffer with
// binding.Text instead so edits are not overwritten.
func Text(c *core.Cursor, text string) {
	core.Apply(c, TextAttr, text)
}

// Typeface sets the font.
func Typeface(c *core.Cursor, face widget.Typeface) {
	core.Apply(c, TypefaceAttr, face)
}

// Bold sets a bold typeface of the given family and size.
func Bold(c *core.Cursor, family string, size float64) {
	Typeface(c, widget.Typeface{Family: family, Style: widget.StyleBold, Size: size})
}

// Shadow sets a text shadow.
func Shadow(c *core.Cursor, radius, dx, dy float64, color uint32) {
	core.Apply(c, ShadowAttr, widget.Shadow{Radius: radius, DX: dx, DY: dy, Color: color})
}

// Tag stores an arbitrary application value on the widget, readable with
// TagOf. Values are compared with core.Equal.
func Tag(c *core.Cursor, value any) {
	core.Apply(c, TagAttr, value)
}

// TagOf returns the value set with Tag.
func TagOf(w widget.Widget) any {
	return w.Tag(userTag{})
}

// TagEntry is a tag value stored under an application key.
type TagEntry struct {
	Key   any
	Value any
}

// KeyedTag stores value under key, so one widget can carry several tags. The
// key must be comparable. A nil value removes the entry.
func KeyedTag(c *core.Cursor, key, value any) {
	core.Apply(c, KeyedTagAttr, TagEntry{Key: key, Value: value})
}

// KeyedTagOf returns the value stored under key with KeyedTag.
func KeyedTagOf(w widget.Widget, key any) any {
	return w.Tag(userTag{key: key})
}

type textAttr struct{ name string }

// Apply compares against the widget's current text rather than the cached
// value alone, so a widget whose text changed outside the engine is corrected.
func (*textAttr) Apply(w widget.Widget, v, _ string, _ bool) {
	tw, ok := w.(widget.TextWidget)
	if !ok || tw.Text() == v {
		return
	}
	tw.SetText(v)
}

type typefaceAttr struct{ name string }

func (*typefaceAttr) Apply(w widget.Widget, v, prev widget.Typeface, hasPrev bool) {
	tw, ok := w.(widget.TextWidget)
	if !ok || (hasPrev && v == prev) {
		return
	}
	tw.SetTypeface(v)
}

type shadowAttr struct{ name string }

func (*shadowAttr) Apply(w widget.Widget, v, prev widget.Shadow, hasPrev bool) {
	tw, ok := w.(widget.TextWidget)
	if !ok || (hasPrev && v == prev) {
		return
	}
	tw.SetShadow(v)
}

type userTag struct{ key any }

type tagAttr struct{ name string }

func (*tagAttr) Apply(w widget.Widget, v, prev any, hasPrev bool) {
	if hasPrev && core.Equal(v, prev) {
		return
	}
	w.SetTag(userTag{}, v)
}

type keyedTagAttr struct{ name string }

// Apply compares against the widget rather than the cached entry, since a
// node applying several keyed tags shares one cache slot between them.
func (*keyedTagAttr) Apply(w widget.Widget, v, _ TagEntry, _ bool) {
	key := userTag{key: v.Key}
	if core.Equal(w.Tag(key), v.Value) {
		return
	}
	w.SetTag(key, v.Value)
}
