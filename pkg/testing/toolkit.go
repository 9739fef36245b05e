package testing

import (
	"slices"

	"github.com/go-drift/inplace/pkg/widget"
)

// Counters records every toolkit mutation made through the fake widgets.
// Tests compare snapshots of it to prove passes are idempotent.
type Counters struct {
	Created         int
	Released        int
	Inserted        int
	Removed         int
	LayoutParams    int
	Padding         int
	ID              int
	Text            int
	Typeface        int
	Shadow          int
	ListenerAdds    int
	ListenerRemoves int
	SelectListener  int
	Visibility      int
}

// Mutations returns the number of setter calls, excluding creation and release.
func (c Counters) Mutations() int {
	return c.Inserted + c.Removed + c.LayoutParams + c.Padding + c.ID + c.Text +
		c.Typeface + c.Shadow + c.ListenerAdds + c.ListenerRemoves + c.SelectListener + c.Visibility
}

// Toolkit is an in-memory widget toolkit that counts mutations.
type Toolkit struct {
	Counts Counters

	// View is a leaf widget with padding and an id.
	View *widget.Kind
	// Frame stacks children (ParamsFrame).
	Frame *widget.Kind
	// Linear lays children out in a weighted line (ParamsLinear).
	Linear *widget.Kind
	// Relative positions children with rules (ParamsRelative).
	Relative *widget.Kind
	// Text displays read-only text.
	Text *widget.Kind
	// Edit is an editable text field.
	Edit *widget.Kind
	// Spinner is a single-choice selector.
	Spinner *widget.Kind
}

// NewToolkit returns a toolkit with zeroed counters.
func NewToolkit() *Toolkit {
	tk := &Toolkit{}
	tk.View = widget.NewKind("view", func() widget.Widget { return tk.newView(tk.View) })
	tk.Frame = widget.NewKind("frame", func() widget.Widget { return tk.newContainer(tk.Frame, widget.ParamsFrame) })
	tk.Linear = widget.NewKind("linear", func() widget.Widget { return tk.newContainer(tk.Linear, widget.ParamsLinear) })
	tk.Relative = widget.NewKind("relative", func() widget.Widget { return tk.newContainer(tk.Relative, widget.ParamsRelative) })
	tk.Text = widget.NewKind("text", func() widget.Widget {
		t := &TextView{}
		t.View = *tk.newView(tk.Text)
		return t
	})
	tk.Edit = widget.NewKind("edit", func() widget.Widget {
		e := &Edit{}
		e.View = *tk.newView(tk.Edit)
		return e
	})
	tk.Spinner = widget.NewKind("spinner", func() widget.Widget {
		s := &Spinner{}
		s.View = *tk.newView(tk.Spinner)
		return s
	})
	return tk
}

// NewRoot returns a detached Linear container to bind a cursor to. Its
// creation is not counted.
func (tk *Toolkit) NewRoot() *Container {
	root := tk.newContainer(tk.Linear, widget.ParamsLinear)
	tk.Counts.Created--
	return root
}

// Reset zeroes the counters.
func (tk *Toolkit) Reset() {
	tk.Counts = Counters{}
}

func (tk *Toolkit) newView(kind widget.Type) *View {
	tk.Counts.Created++
	return &View{tk: tk, kind: kind}
}

func (tk *Toolkit) newContainer(kind widget.Type, params widget.ParamsKind) *Container {
	c := &Container{childParams: params}
	c.View = *tk.newView(kind)
	return c
}

// View is the fake base widget.
type View struct {
	tk       *Toolkit
	kind     widget.Type
	params   *widget.LayoutParams
	tags     map[any]any
	padding  widget.Insets
	id       int
	hidden   bool
	released bool
}

func (v *View) Type() widget.Type                  { return v.kind }
func (v *View) LayoutParams() *widget.LayoutParams { return v.params }

func (v *View) SetLayoutParams(p *widget.LayoutParams) {
	v.tk.Counts.LayoutParams++
	v.params = p
}

func (v *View) Tag(key any) any {
	return v.tags[key]
}

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
	v.tk.Counts.Padding++
	v.padding = p
}

func (v *View) ID() int { return v.id }

func (v *View) SetID(id int) {
	v.tk.Counts.ID++
	v.id = id
}

func (v *View) Visible() bool { return !v.hidden }

func (v *View) SetVisible(visible bool) {
	v.tk.Counts.Visibility++
	v.hidden = !visible
}

// Release marks the view released.
func (v *View) Release() {
	v.tk.Counts.Released++
	v.released = true
}

// Released reports whether the engine destroyed the view.
func (v *View) Released() bool { return v.released }

// TagCount returns the number of tags stored on the view.
func (v *View) TagCount() int { return len(v.tags) }

// Container is the fake container widget.
type Container struct {
	View
	childParams widget.ParamsKind
	children    []widget.Widget
}

func (c *Container) ChildCount() int               { return len(c.children) }
func (c *Container) ChildAt(index int) widget.Widget { return c.children[index] }

func (c *Container) InsertChild(index int, child widget.Widget) {
	c.tk.Counts.Inserted++
	c.children = slices.Insert(c.children, index, child)
}

func (c *Container) RemoveChildAt(index int) {
	c.tk.Counts.Removed++
	c.children = slices.Delete(c.children, index, index+1)
}

func (c *Container) NewLayoutParams() *widget.LayoutParams {
	return widget.NewLayoutParams(c.childParams)
}

// Children returns a copy of the child list.
func (c *Container) Children() []widget.Widget {
	return slices.Clone(c.children)
}

// TextView is the fake read-only text widget.
type TextView struct {
	View
	text   string
	face   widget.Typeface
	shadow widget.Shadow
}

func (t *TextView) Text() string { return t.text }

func (t *TextView) SetText(text string) {
	t.tk.Counts.Text++
	t.text = text
}

func (t *TextView) SetTypeface(face widget.Typeface) {
	t.tk.Counts.Typeface++
	t.face = face
}

func (t *TextView) SetShadow(shadow widget.Shadow) {
	t.tk.Counts.Shadow++
	t.shadow = shadow
}

// Typeface returns the last typeface set.
func (t *TextView) Typeface() widget.Typeface { return t.face }

// Shadow returns the last shadow set.
func (t *TextView) Shadow() widget.Shadow { return t.shadow }

// Edit is the fake editable text widget. Like real toolkits, SetText notifies
// the text listeners.
type Edit struct {
	TextView
	listeners []widget.TextListener
}

func (e *Edit) SetText(text string) {
	e.TextView.SetText(text)
	e.notify()
}

func (e *Edit) AddTextChangedListener(l widget.TextListener) {
	e.tk.Counts.ListenerAdds++
	e.listeners = append(e.listeners, l)
}

func (e *Edit) RemoveTextChangedListener(l widget.TextListener) {
	e.tk.Counts.ListenerRemoves++
	if i := slices.Index(e.listeners, l); i >= 0 {
		e.listeners = slices.Delete(e.listeners, i, i+1)
	}
}

// UserEdit simulates the user typing text: the content changes and listeners
// fire, without counting as a programmatic SetText.
func (e *Edit) UserEdit(text string) {
	e.text = text
	e.notify()
}

// Listeners returns the attached listeners.
func (e *Edit) Listeners() []widget.TextListener {
	return slices.Clone(e.listeners)
}

// Release detaches every listener.
func (e *Edit) Release() {
	e.listeners = nil
	e.View.Release()
}

func (e *Edit) notify() {
	for _, l := range slices.Clone(e.listeners) {
		l.AfterTextChanged(e.text)
	}
}

// Spinner is the fake single-choice selector.
type Spinner struct {
	View
	listener widget.ItemSelectedListener
}

func (s *Spinner) SetOnItemSelectedListener(l widget.ItemSelectedListener) {
	s.tk.Counts.SelectListener++
	s.listener = l
}

// Listener returns the attached listener.
func (s *Spinner) Listener() widget.ItemSelectedListener { return s.listener }

// Select simulates the user picking position.
func (s *Spinner) Select(position int) {
	if s.listener != nil {
		s.listener.ItemSelected(position)
	}
}

// Release detaches the listener.
func (s *Spinner) Release() {
	s.listener = nil
	s.View.Release()
}

// Animation is a fake widget.Animation that only runs when told to.
type Animation struct {
	Starts  int
	Cancels int

	target  widget.Widget
	started bool
	running bool
}

func (a *Animation) SetTarget(w widget.Widget) { a.target = w }
func (a *Animation) Target() widget.Widget     { return a.target }

func (a *Animation) Start() {
	a.Starts++
	a.started = true
	a.running = true
}

func (a *Animation) Cancel() {
	if !a.running {
		return
	}
	a.Cancels++
	a.running = false
}

func (a *Animation) HasStarted() bool { return a.started }
func (a *Animation) HasEnded() bool   { return a.started && !a.running }

// Running reports whether the animation is in flight.
func (a *Animation) Running() bool { return a.running }

// Finish completes a running animation.
func (a *Animation) Finish() { a.running = false }

var (
	_ widget.Container  = (*Container)(nil)
	_ widget.Padded     = (*View)(nil)
	_ widget.Identified = (*View)(nil)
	_ widget.Hideable   = (*View)(nil)
	_ widget.Releaser   = (*View)(nil)
	_ widget.TextWidget = (*TextView)(nil)
	_ widget.Editable   = (*Edit)(nil)
	_ widget.Selector   = (*Spinner)(nil)
	_ widget.Animation  = (*Animation)(nil)
)
