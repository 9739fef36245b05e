// Package terminal is a widget toolkit for character terminals built on tcell.
//
// It implements the widget contract so Renderables can target a terminal:
// Column and Row are weighted linear layouts, Stack overlaps its children,
// Relative positions children with rules, and Label, Input and List are the
// leaf widgets. [App] runs the event loop.
package terminal

import (
	"slices"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/inplace/pkg/widget"
)

// Widget kinds.
var (
	Column   *widget.Kind
	Row      *widget.Kind
	Stack    *widget.Kind
	Relative *widget.Kind
	Box      *widget.Kind
	Label    *widget.Kind
	Input    *widget.Kind
	List     *widget.Kind
)

func init() {
	Column = widget.NewKind("column", func() widget.Widget { return newLayout(Column, modeColumn) })
	Row = widget.NewKind("row", func() widget.Widget { return newLayout(Row, modeRow) })
	Stack = widget.NewKind("stack", func() widget.Widget { return newLayout(Stack, modeStack) })
	Relative = widget.NewKind("relative", func() widget.Widget { return newLayout(Relative, modeRelative) })
	Box = widget.NewKind("box", func() widget.Widget { return &View{kind: Box} })
	Label = widget.NewKind("label", func() widget.Widget { return &TextView{View: View{kind: Label}} })
	Input = widget.NewKind("input", func() widget.Widget { return &EditText{TextView: TextView{View: View{kind: Input}}} })
	List = widget.NewKind("list", func() widget.Widget { return &ListView{View: View{kind: List}} })
}

// dirty is set by any mutation that affects what is on screen.
var dirty atomic.Bool

func invalidate() { dirty.Store(true) }

// Rect is a cell rectangle.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// View is the base terminal widget. Box widgets are bare Views.
type View struct {
	kind      *widget.Kind
	params    *widget.LayoutParams
	tags      map[any]any
	padding   widget.Insets
	id        int
	fg        tcell.Color
	highlight float64
	hidden    bool
	released  bool
	bounds    Rect
}

func (v *View) Type() widget.Type                  { return v.kind }
func (v *View) LayoutParams() *widget.LayoutParams { return v.params }

func (v *View) SetLayoutParams(p *widget.LayoutParams) {
	v.params = p
	invalidate()
}

func (v *View) Tag(key any) any { return v.tags[key] }

func (v *View) SetTag(key, value any) {
	if value == nil {
		delete(v.tags, key)
		return
	}
	if v.tags == nil {
		v.tags = make(map[any]any)
	}
	v.tags[key] = value
}

func (v *View) Padding() widget.Insets { return v.padding }

func (v *View) SetPadding(p widget.Insets) {
	v.padding = p
	invalidate()
}

func (v *View) ID() int      { return v.id }
func (v *View) SetID(id int) { v.id = id; invalidate() }

func (v *View) Visible() bool { return !v.hidden }

// SetVisible shows or hides the view. Hidden views take no space, are not
// drawn and cannot hold focus.
func (v *View) SetVisible(visible bool) {
	v.hidden = !visible
	invalidate()
}

// Foreground returns the text color.
func (v *View) Foreground() tcell.Color { return v.fg }

// SetForeground sets the text color.
func (v *View) SetForeground(c tcell.Color) {
	v.fg = c
	invalidate()
}

// Highlight returns the background highlight in [0, 1].
func (v *View) Highlight() float64 { return v.highlight }

// SetHighlight tints the background; 0 clears it.
func (v *View) SetHighlight(h float64) {
	if v.released {
		return
	}
	v.highlight = h
	invalidate()
}

// Bounds returns the rectangle assigned by the last layout.
func (v *View) Bounds() Rect { return v.bounds }

// Released reports whether the view was destroyed.
func (v *View) Released() bool { return v.released }

// Release implements widget.Releaser.
func (v *View) Release() {
	v.released = true
	v.highlight = 0
}

func (v *View) base() *View { return v }

type layoutMode int

const (
	modeColumn layoutMode = iota
	modeRow
	modeStack
	modeRelative
)

// Layout is a container widget.
type Layout struct {
	View
	mode     layoutMode
	children []widget.Widget
}

func newLayout(kind *widget.Kind, mode layoutMode) *Layout {
	return &Layout{View: View{kind: kind}, mode: mode}
}

func (l *Layout) ChildCount() int                 { return len(l.children) }
func (l *Layout) ChildAt(index int) widget.Widget { return l.children[index] }

func (l *Layout) InsertChild(index int, child widget.Widget) {
	l.children = slices.Insert(l.children, index, child)
	invalidate()
}

func (l *Layout) RemoveChildAt(index int) {
	l.children = slices.Delete(l.children, index, index+1)
	invalidate()
}

func (l *Layout) NewLayoutParams() *widget.LayoutParams {
	switch l.mode {
	case modeStack:
		return widget.NewLayoutParams(widget.ParamsFrame)
	case modeRelative:
		return widget.NewLayoutParams(widget.ParamsRelative)
	default:
		return widget.NewLayoutParams(widget.ParamsLinear)
	}
}

// TextView displays a single line of text.
type TextView struct {
	View
	text   string
	face   widget.Typeface
	shadow widget.Shadow
}

func (t *TextView) Text() string { return t.text }

func (t *TextView) SetText(text string) {
	t.text = text
	invalidate()
}

func (t *TextView) SetTypeface(face widget.Typeface) {
	t.face = face
	invalidate()
}

// SetShadow is stored for completeness; terminals cannot draw shadows.
func (t *TextView) SetShadow(shadow widget.Shadow) { t.shadow = shadow }

func (t *TextView) style() tcell.Style {
	st := tcell.StyleDefault.Foreground(t.fg)
	switch t.face.Style {
	case widget.StyleBold:
		st = st.Bold(true)
	case widget.StyleItalic:
		st = st.Italic(true)
	case widget.StyleBoldItalic:
		st = st.Bold(true).Italic(true)
	}
	return st
}

// EditText is a single-line text input. SetText notifies listeners like a
// user edit.
type EditText struct {
	TextView
	listeners []widget.TextListener
	focused   bool
}

func (e *EditText) SetText(text string) {
	e.TextView.SetText(text)
	e.notify()
}

func (e *EditText) AddTextChangedListener(l widget.TextListener) {
	e.listeners = append(e.listeners, l)
}

func (e *EditText) RemoveTextChangedListener(l widget.TextListener) {
	if i := slices.Index(e.listeners, l); i >= 0 {
		e.listeners = slices.Delete(e.listeners, i, i+1)
	}
}

// Release detaches listeners.
func (e *EditText) Release() {
	e.listeners = nil
	e.focused = false
	e.View.Release()
}

func (e *EditText) notify() {
	for _, l := range slices.Clone(e.listeners) {
		l.AfterTextChanged(e.text)
	}
}

func (e *EditText) setFocused(f bool) {
	e.focused = f
	invalidate()
}

func (e *EditText) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		e.text += string(ev.Rune())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		r := []rune(e.text)
		if len(r) == 0 {
			return true
		}
		e.text = string(r[:len(r)-1])
	case tcell.KeyCtrlU:
		if e.text == "" {
			return true
		}
		e.text = ""
	default:
		return false
	}
	invalidate()
	e.notify()
	return true
}

// ListView shows items and lets the user pick one with the arrow keys.
type ListView struct {
	View
	items    []string
	selected int
	listener widget.ItemSelectedListener
	focused  bool

	// pending is a selection requested before the list was long enough.
	pending    int
	hasPending bool
}

// Items returns the displayed items.
func (l *ListView) Items() []string { return slices.Clone(l.items) }

// SetItems replaces the items. A pending selection that now fits is taken,
// otherwise the selection is clamped.
func (l *ListView) SetItems(items []string) {
	l.items = slices.Clone(items)
	if l.hasPending && l.pending < len(l.items) {
		l.selected = l.pending
		l.hasPending = false
	}
	l.selected = min(l.selected, max(len(l.items)-1, 0))
	invalidate()
}

// Selected returns the selected position.
func (l *ListView) Selected() int { return l.selected }

// SetSelected moves the selection without notifying the listener. A position
// past the end is remembered and taken by the next SetItems that makes it
// valid. Negative positions are ignored.
func (l *ListView) SetSelected(pos int) {
	if pos < 0 {
		return
	}
	if pos >= len(l.items) {
		l.pending, l.hasPending = pos, true
		return
	}
	l.hasPending = false
	if pos == l.selected {
		return
	}
	l.selected = pos
	invalidate()
}

func (l *ListView) SetOnItemSelectedListener(listener widget.ItemSelectedListener) {
	l.listener = listener
}

// Release detaches the listener.
func (l *ListView) Release() {
	l.listener = nil
	l.focused = false
	l.View.Release()
}

func (l *ListView) setFocused(f bool) {
	l.focused = f
	invalidate()
}

func (l *ListView) handleKey(ev *tcell.EventKey) bool {
	pos := l.selected
	switch ev.Key() {
	case tcell.KeyUp:
		pos--
	case tcell.KeyDown:
		pos++
	case tcell.KeyEnter:
	default:
		return false
	}
	if pos < 0 || pos >= len(l.items) {
		return true
	}
	l.selected = pos
	l.hasPending = false
	invalidate()
	if l.listener != nil {
		l.listener.ItemSelected(pos)
	}
	return true
}

// focusable widgets receive key events when focused.
type focusable interface {
	widget.Widget
	setFocused(bool)
	handleKey(ev *tcell.EventKey) bool
}

var (
	_ widget.Container  = (*Layout)(nil)
	_ widget.Padded     = (*View)(nil)
	_ widget.Identified = (*View)(nil)
	_ widget.Hideable   = (*View)(nil)
	_ widget.Releaser   = (*View)(nil)
	_ widget.TextWidget = (*TextView)(nil)
	_ widget.Editable   = (*EditText)(nil)
	_ widget.Selector   = (*ListView)(nil)
	_ focusable         = (*EditText)(nil)
	_ focusable         = (*ListView)(nil)
)
