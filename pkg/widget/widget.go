// Package widget defines the contract between the reconciliation engine and a
// concrete widget toolkit.
//
// The engine never builds widgets itself. It asks a [Type] for a fresh
// instance, inserts it into a [Container] at a position, and mutates it through
// the capability interfaces declared here ([Padded], [TextWidget], [Editable],
// [Selector], ...). A toolkit implements whichever capabilities its widgets
// support; attributes applied to a widget lacking the capability are no-ops.
//
// All methods are called from the UI thread only.
package widget

// Type describes a concrete widget class. Types are compared by identity, so a
// toolkit declares each one once as a package-level value.
type Type interface {
	// Name returns a human-readable name used in diagnostics.
	Name() string
	// New constructs a fresh, detached widget of this type.
	New() Widget
}

// Kind is the stock Type implementation backed by a constructor function.
type Kind struct {
	name   string
	create func() Widget
}

// NewKind returns a Type with the given name and constructor.
func NewKind(name string, create func() Widget) *Kind {
	return &Kind{name: name, create: create}
}

// Name returns the kind's name.
func (k *Kind) Name() string { return k.name }

// New constructs a widget.
func (k *Kind) New() Widget { return k.create() }

func (k *Kind) String() string { return k.name }

// Widget is a live node of the toolkit's widget tree.
type Widget interface {
	// Type returns the type the widget was created from.
	Type() Type
	// LayoutParams returns the widget's layout parameters, or nil if the
	// widget has not been attached to a container.
	LayoutParams() *LayoutParams
	// SetLayoutParams stores params and requests a layout pass.
	SetLayoutParams(params *LayoutParams)
	// Tag returns the value stored under key, or nil.
	Tag(key any) any
	// SetTag stores value under key. A nil value removes the entry.
	SetTag(key, value any)
}

// Container is a widget that holds an ordered list of children.
type Container interface {
	Widget
	ChildCount() int
	ChildAt(index int) Widget
	// InsertChild inserts child at index, shifting later children right.
	InsertChild(index int, child Widget)
	// RemoveChildAt detaches the child at index.
	RemoveChildAt(index int)
	// NewLayoutParams returns fresh layout parameters of the kind this
	// container positions its children with.
	NewLayoutParams() *LayoutParams
}

// Releaser is implemented by widgets that hold resources which must be freed
// when the engine destroys them (listeners, running animations).
type Releaser interface {
	Release()
}

// Padded is implemented by widgets with inner padding.
type Padded interface {
	Padding() Insets
	SetPadding(padding Insets)
}

// Identified is implemented by widgets that carry a numeric id, used as the
// anchor of relative positioning rules.
type Identified interface {
	ID() int
	SetID(id int)
}

// Hideable is implemented by widgets that can be hidden. A hidden widget stays
// in the tree but takes no space and receives no input.
type Hideable interface {
	Visible() bool
	SetVisible(visible bool)
}

// TextWidget is implemented by widgets that display text.
type TextWidget interface {
	Text() string
	SetText(text string)
	SetTypeface(face Typeface)
	SetShadow(shadow Shadow)
}

// TextListener observes edits of an Editable.
type TextListener interface {
	AfterTextChanged(text string)
}

// Editable is implemented by text widgets the user can edit. SetText on an
// Editable notifies its listeners like a user edit does.
type Editable interface {
	TextWidget
	AddTextChangedListener(l TextListener)
	// RemoveTextChangedListener detaches l. Removing a listener that is not
	// attached is a no-op.
	RemoveTextChangedListener(l TextListener)
}

// ItemSelectedListener observes selection changes of a Selector.
type ItemSelectedListener interface {
	ItemSelected(position int)
}

// Selector is implemented by widgets that let the user pick one item.
type Selector interface {
	// SetOnItemSelectedListener replaces the listener. Nil detaches it.
	SetOnItemSelectedListener(l ItemSelectedListener)
}

// Animation is a toolkit animation that can be bound to a widget.
type Animation interface {
	SetTarget(w Widget)
	Start()
	// Cancel stops the animation. Cancelling an animation that already ended
	// is a no-op.
	Cancel()
	HasStarted() bool
	HasEnded() bool
}
