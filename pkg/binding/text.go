package binding

import (
	"github.com/go-drift/inplace/pkg/core"
	"github.com/go-drift/inplace/pkg/widget"
)

// bound is the value of the text binding attribute.
type bound struct {
	buf *Buffer
	req core.Requester
}

var textBinding core.AttrFunc[bound] = &textBindingAttr{name: "bind-text"}

// Text binds buf to the text of the current widget.
//
// The buffer's content is pushed into the widget on the first pass and
// whenever it differs from the text last observed for buf. If the widget is
// editable, user edits update buf and request a render through the cursor's
// requester. A buffer should be bound to one widget at a time.
func Text(c *core.Cursor, buf *Buffer) {
	core.Apply(c, textBinding, bound{buf: buf, req: c.Requester()})
}

// guardTag holds the guard listener attached to an editable widget.
type guardTag struct{}

// guard is the change listener of a bound editable widget.
type guard struct {
	buf *Buffer
	req core.Requester
}

// AfterTextChanged updates the buffer and requests a pass only for text that
// was not already observed. The observed text is recorded before the request
// so a synchronous pass sees it.
func (g *guard) AfterTextChanged(text string) {
	last, ok := observed.get(g.buf)
	observed.set(g.buf, text)
	if ok && last == text {
		return
	}
	g.buf.Set(text)
	g.req.RequestRender()
}

type textBindingAttr struct{ name string }

func (*textBindingAttr) Apply(w widget.Widget, v, prev bound, hasPrev bool) {
	tw, ok := w.(widget.TextWidget)
	if !ok {
		return
	}
	if ed, ok := w.(widget.Editable); ok {
		attachGuard(w, ed, v)
	}
	if v.buf == nil {
		return
	}

	text := v.buf.String()
	last, seen := observed.get(v.buf)
	if hasPrev && prev.buf == v.buf && seen && last == text {
		return
	}
	observed.set(v.buf, text)
	if tw.Text() != text {
		tw.SetText(text)
	}
}

// attachGuard keeps the widget's guard in sync with v, replacing it when the
// buffer or requester changed.
func attachGuard(w widget.Widget, ed widget.Editable, v bound) {
	old, _ := w.Tag(guardTag{}).(*guard)
	if old != nil && old.buf == v.buf && core.Equal(old.req, v.req) {
		return
	}
	if old != nil {
		ed.RemoveTextChangedListener(old)
		w.SetTag(guardTag{}, nil)
	}
	if v.buf == nil {
		return
	}
	g := &guard{buf: v.buf, req: v.req}
	ed.AddTextChangedListener(g)
	w.SetTag(guardTag{}, g)
}
