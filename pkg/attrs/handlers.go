package attrs

import (
	"github.com/go-drift/inplace/pkg/core"
	"github.com/go-drift/inplace/pkg/widget"
)

// TextHandler receives the text of an editable widget after each change.
//
// Handlers are compared with core.Equal between passes. A handler that is
// equal to the previous pass's handler keeps the attached listener. Closures
// are never equal, so wrap them with TextFunc and a stable key.
type TextHandler interface {
	TextChanged(text string)
}

// SelectionHandler receives the position picked in a selector.
type SelectionHandler interface {
	ItemSelected(position int)
}

// TextFunc adapts fn to a TextHandler that is equal to any other TextFunc
// handler with an equal, non-nil key.
func TextFunc(key any, fn func(text string)) TextHandler {
	return keyedText{key: key, fn: fn}
}

// SelectFunc adapts fn to a SelectionHandler keyed like TextFunc.
func SelectFunc(key any, fn func(position int)) SelectionHandler {
	return keyedSelect{key: key, fn: fn}
}

type keyedText struct {
	key any
	fn  func(string)
}

func (h keyedText) TextChanged(text string) { h.fn(text) }

func (h keyedText) Equal(other any) bool {
	o, ok := other.(keyedText)
	return ok && h.key != nil && core.Equal(h.key, o.key)
}

type keyedSelect struct {
	key any
	fn  func(int)
}

func (h keyedSelect) ItemSelected(position int) { h.fn(position) }

func (h keyedSelect) Equal(other any) bool {
	o, ok := other.(keyedSelect)
	return ok && h.key != nil && core.Equal(h.key, o.key)
}

var (
	TextChangedAttr  core.AttrFunc[TextHandler]      = &textChangedAttr{name: "on-text-changed"}
	ItemSelectedAttr core.AttrFunc[SelectionHandler] = &itemSelectedAttr{name: "on-item-selected"}
)

// OnTextChanged attaches h to the current editable widget. A nil handler
// detaches the previous one.
func OnTextChanged(c *core.Cursor, h TextHandler) {
	core.Apply(c, TextChangedAttr, h)
}

// OnItemSelected attaches h to the current selector widget. After h runs, a
// render pass is requested through the cursor's requester, so handlers only
// need to update application state.
func OnItemSelected(c *core.Cursor, h SelectionHandler) {
	if h != nil {
		h = rerender{handler: h, req: c.Requester()}
	}
	core.Apply(c, ItemSelectedAttr, h)
}

// rerender requests a pass after its handler runs. It is equal to another
// rerender with an equal handler and requester.
type rerender struct {
	handler SelectionHandler
	req     core.Requester
}

func (r rerender) ItemSelected(position int) {
	r.handler.ItemSelected(position)
	r.req.RequestRender()
}

func (r rerender) Equal(other any) bool {
	o, ok := other.(rerender)
	return ok && core.Equal(r.handler, o.handler) && core.Equal(r.req, o.req)
}

// textListenerTag holds the platform listener attached by OnTextChanged so it
// can be detached when the handler changes.
type textListenerTag struct{}

type textListener struct{ handler TextHandler }

func (l *textListener) AfterTextChanged(text string) { l.handler.TextChanged(text) }

type textChangedAttr struct{ name string }

func (*textChangedAttr) Apply(w widget.Widget, v, prev TextHandler, hasPrev bool) {
	ed, ok := w.(widget.Editable)
	if !ok {
		return
	}
	if hasPrev && core.Equal(v, prev) {
		return
	}
	if old, ok := w.Tag(textListenerTag{}).(*textListener); ok {
		ed.RemoveTextChangedListener(old)
		w.SetTag(textListenerTag{}, nil)
	}
	if v == nil {
		return
	}
	l := &textListener{handler: v}
	ed.AddTextChangedListener(l)
	w.SetTag(textListenerTag{}, l)
}

type selectionListener struct{ handler SelectionHandler }

func (l *selectionListener) ItemSelected(position int) { l.handler.ItemSelected(position) }

type itemSelectedAttr struct{ name string }

// Apply replaces the selector's single listener slot, which detaches the old
// listener.
func (*itemSelectedAttr) Apply(w widget.Widget, v, prev SelectionHandler, hasPrev bool) {
	s, ok := w.(widget.Selector)
	if !ok {
		return
	}
	if hasPrev && core.Equal(v, prev) {
		return
	}
	if v == nil {
		if hasPrev {
			s.SetOnItemSelectedListener(nil)
		}
		return
	}
	s.SetOnItemSelectedListener(&selectionListener{handler: v})
}
