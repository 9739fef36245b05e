package terminal

import (
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/inplace/pkg/widget"
)

type based interface {
	base() *View
}

func viewOf(w widget.Widget) *View {
	if b, ok := w.(based); ok {
		return b.base()
	}
	return nil
}

// shown reports whether w takes part in layout, drawing and focus.
func shown(w widget.Widget) bool {
	h, ok := w.(widget.Hideable)
	return !ok || h.Visible()
}

// visibleChildren returns the children that are not hidden.
func (l *Layout) visibleChildren() []widget.Widget {
	out := make([]widget.Widget, 0, len(l.children))
	for _, child := range l.children {
		if shown(child) {
			out = append(out, child)
		}
	}
	return out
}

func paramsOf(w widget.Widget) *widget.LayoutParams {
	if lp := w.LayoutParams(); lp != nil {
		return lp
	}
	return widget.NewLayoutParams(widget.ParamsPlain)
}

func paddingOf(w widget.Widget) widget.Insets {
	if p, ok := w.(widget.Padded); ok {
		return p.Padding()
	}
	return widget.Insets{}
}

// resolve turns a layout dimension into cells.
func resolve(dim, content, avail int) int {
	switch {
	case dim == widget.MatchParent:
		return max(avail, 0)
	case dim == widget.WrapContent:
		return clamp(content, 0, avail)
	default:
		return clamp(dim, 0, avail)
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}

// measure returns the size w wants inside the given space, margins excluded.
func measure(w widget.Widget, availW, availH int) (int, int) {
	lp := paramsOf(w)
	pad := paddingOf(w)
	cw, ch := contentSize(w, availW-pad.Horizontal(), availH-pad.Vertical())
	return resolve(lp.Width, cw+pad.Horizontal(), availW), resolve(lp.Height, ch+pad.Vertical(), availH)
}

func contentSize(w widget.Widget, availW, availH int) (int, int) {
	switch v := w.(type) {
	case *Layout:
		return v.contentSize(availW, availH)
	case *EditText:
		return max(runewidth.StringWidth(v.text)+1, 12), 1
	case *TextView:
		return runewidth.StringWidth(v.text), 1
	case *ListView:
		width := 0
		for _, item := range v.items {
			width = max(width, runewidth.StringWidth(item))
		}
		return width + 2, len(v.items)
	}
	return 0, 0
}

func (l *Layout) contentSize(availW, availH int) (int, int) {
	w, h := 0, 0
	for _, child := range l.visibleChildren() {
		m := paramsOf(child).Margin
		cw, ch := measure(child, availW-m.Horizontal(), availH-m.Vertical())
		cw += m.Horizontal()
		ch += m.Vertical()
		switch l.mode {
		case modeColumn:
			w, h = max(w, cw), h+ch
		case modeRow:
			w, h = w+cw, max(h, ch)
		default:
			w, h = max(w, cw), max(h, ch)
		}
	}
	return w, h
}

// arrange assigns r to w and lays out its subtree. Hidden widgets get an
// empty rectangle at r's origin.
func arrange(w widget.Widget, r Rect) {
	if !shown(w) {
		r.W, r.H = 0, 0
	}
	if v := viewOf(w); v != nil {
		v.bounds = r
	}
	l, ok := w.(*Layout)
	if !ok || !shown(w) {
		return
	}
	pad := l.padding
	inner := Rect{
		X: r.X + pad.Left,
		Y: r.Y + pad.Top,
		W: max(r.W-pad.Horizontal(), 0),
		H: max(r.H-pad.Vertical(), 0),
	}
	switch l.mode {
	case modeColumn:
		l.arrangeLinear(inner, true)
	case modeRow:
		l.arrangeLinear(inner, false)
	case modeStack:
		l.arrangeStack(inner)
	case modeRelative:
		l.arrangeRelative(inner)
	}
}

// arrangeLinear stacks children along one axis. Children with a weight share
// the space left after the others are measured.
func (l *Layout) arrangeLinear(inner Rect, vertical bool) {
	mainAvail, crossAvail := inner.W, inner.H
	if vertical {
		mainAvail, crossAvail = inner.H, inner.W
	}
	for _, child := range l.children {
		if !shown(child) {
			arrange(child, Rect{X: inner.X, Y: inner.Y})
		}
	}
	children := l.visibleChildren()

	type slot struct{ main, cross int }
	slots := make([]slot, len(children))
	used, totalWeight := 0, 0.0
	for i, child := range children {
		lp := paramsOf(child)
		mMain, mCross := lp.Margin.Horizontal(), lp.Margin.Vertical()
		if vertical {
			mMain, mCross = mCross, mMain
		}
		used += mMain
		cw, ch := measure(child, inner.W, inner.H)
		if vertical {
			slots[i] = slot{main: ch, cross: min(cw, crossAvail-mCross)}
		} else {
			slots[i] = slot{main: cw, cross: min(ch, crossAvail-mCross)}
		}
		if lp.Weight > 0 {
			totalWeight += lp.Weight
			continue
		}
		used += slots[i].main
	}

	leftover := max(mainAvail-used, 0)
	pos := 0
	for i, child := range children {
		lp := paramsOf(child)
		if lp.Weight > 0 {
			share := int(float64(leftover) * lp.Weight / totalWeight)
			slots[i].main = share
		}
		m := lp.Margin
		var r Rect
		if vertical {
			pos += m.Top
			r = Rect{Y: inner.Y + pos, H: slots[i].main, W: max(slots[i].cross, 0)}
			r.X = inner.X + align(lp.Gravity.Horizontal(), widget.GravityLeft, widget.GravityRight,
				m.Left, m.Right, r.W, inner.W)
			pos += r.H + m.Bottom
		} else {
			pos += m.Left
			r = Rect{X: inner.X + pos, W: slots[i].main, H: max(slots[i].cross, 0)}
			r.Y = inner.Y + align(lp.Gravity.Vertical(), widget.GravityTop, widget.GravityBottom,
				m.Top, m.Bottom, r.H, inner.H)
			pos += r.W + m.Right
		}
		arrange(child, r)
	}
}

// align returns the offset of a span of size within avail for the gravity
// bits of one axis.
func align(g, start, end widget.Gravity, marginStart, marginEnd, size, avail int) int {
	switch {
	case g&end != 0 && g&start == 0:
		return avail - size - marginEnd
	case g == widget.GravityCenterHorizontal || g == widget.GravityCenterVertical:
		return marginStart + (avail-marginStart-marginEnd-size)/2
	default:
		return marginStart
	}
}

func (l *Layout) arrangeStack(inner Rect) {
	for _, child := range l.children {
		if !shown(child) {
			arrange(child, Rect{X: inner.X, Y: inner.Y})
			continue
		}
		lp := paramsOf(child)
		m := lp.Margin
		cw, ch := measure(child, inner.W-m.Horizontal(), inner.H-m.Vertical())
		arrange(child, Rect{
			X: inner.X + align(lp.Gravity.Horizontal(), widget.GravityLeft, widget.GravityRight, m.Left, m.Right, cw, inner.W),
			Y: inner.Y + align(lp.Gravity.Vertical(), widget.GravityTop, widget.GravityBottom, m.Top, m.Bottom, ch, inner.H),
			W: cw,
			H: ch,
		})
	}
}

// arrangeRelative places children in order. Sibling anchors must come before
// the children that refer to them.
func (l *Layout) arrangeRelative(inner Rect) {
	placed := make(map[int]Rect)
	for _, child := range l.children {
		if !shown(child) {
			arrange(child, Rect{X: inner.X, Y: inner.Y})
			continue
		}
		lp := paramsOf(child)
		m := lp.Margin
		cw, ch := measure(child, inner.W-m.Horizontal(), inner.H-m.Vertical())
		r := Rect{X: inner.X + m.Left, Y: inner.Y + m.Top, W: cw, H: ch}
		rules := lp.Rules

		anchor := func(verb widget.Verb) (Rect, bool) {
			id, ok := rules.Get(verb)
			if !ok {
				return Rect{}, false
			}
			if id == widget.True {
				return inner, true
			}
			a, ok := placed[id]
			return a, ok
		}

		if _, ok := anchor(widget.CenterInParent); ok {
			r.X = inner.X + (inner.W-cw)/2
			r.Y = inner.Y + (inner.H-ch)/2
		}
		if _, ok := anchor(widget.CenterHorizontal); ok {
			r.X = inner.X + (inner.W-cw)/2
		}
		if _, ok := anchor(widget.CenterVertical); ok {
			r.Y = inner.Y + (inner.H-ch)/2
		}
		if _, ok := anchor(widget.AlignParentRight); ok {
			r.X = inner.X + inner.W - cw - m.Right
		}
		if _, ok := anchor(widget.AlignParentBottom); ok {
			r.Y = inner.Y + inner.H - ch - m.Bottom
		}
		if _, ok := anchor(widget.AlignParentLeft); ok {
			r.X = inner.X + m.Left
		}
		if _, ok := anchor(widget.AlignParentTop); ok {
			r.Y = inner.Y + m.Top
		}
		if a, ok := anchor(widget.RightOf); ok {
			r.X = a.X + a.W + m.Left
		}
		if a, ok := anchor(widget.LeftOf); ok {
			r.X = a.X - cw - m.Right
		}
		if a, ok := anchor(widget.Below); ok {
			r.Y = a.Y + a.H + m.Top
		}
		if a, ok := anchor(widget.Above); ok {
			r.Y = a.Y - ch - m.Bottom
		}
		if a, ok := anchor(widget.AlignLeft); ok {
			r.X = a.X
		}
		if a, ok := anchor(widget.AlignRight); ok {
			r.X = a.X + a.W - cw
		}
		if a, ok := anchor(widget.AlignTop); ok {
			r.Y = a.Y
		}
		if a, ok := anchor(widget.AlignBottom); ok {
			r.Y = a.Y + a.H - ch
		}

		arrange(child, r)
		if ident, ok := child.(widget.Identified); ok && ident.ID() != 0 {
			placed[ident.ID()] = r
		}
	}
}
