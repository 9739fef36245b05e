package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-drift/inplace/pkg/widget"
)

// Accent is the color highlights fade toward.
var Accent = tcell.NewRGBColor(255, 176, 0)

func draw(s tcell.Screen, w widget.Widget, clip Rect) {
	v := viewOf(w)
	if v == nil || v.hidden {
		return
	}
	r := intersect(v.bounds, clip)
	if r.W <= 0 || r.H <= 0 {
		return
	}
	if v.highlight > 0 {
		fill(s, r, tcell.StyleDefault.Background(blend(v.highlight)))
	}

	switch t := w.(type) {
	case *Layout:
		for _, child := range t.children {
			draw(s, child, r)
		}
	case *EditText:
		st := v.tint(t.style().Underline(true))
		text := t.text
		drawText(s, t.inner(), r, text, st)
		if t.focused {
			x := t.inner().X + runewidth.StringWidth(text)
			if r.Contains(x, t.inner().Y) {
				s.SetContent(x, t.inner().Y, ' ', nil, st.Reverse(true))
			}
		}
	case *TextView:
		drawText(s, t.inner(), r, t.text, v.tint(t.style()))
	case *ListView:
		in := t.inner()
		for i, item := range t.items {
			st := v.tint(tcell.StyleDefault.Foreground(t.fg))
			prefix := "  "
			if i == t.selected {
				prefix = "> "
				if t.focused {
					st = st.Reverse(true)
				}
			}
			drawText(s, Rect{X: in.X, Y: in.Y + i, W: in.W, H: 1}, r, prefix+item, st)
		}
	}
}

func (v *View) tint(st tcell.Style) tcell.Style {
	if v.highlight > 0 {
		return st.Background(blend(v.highlight))
	}
	return st
}

func (v *View) inner() Rect {
	p := v.padding
	return Rect{
		X: v.bounds.X + p.Left,
		Y: v.bounds.Y + p.Top,
		W: max(v.bounds.W-p.Horizontal(), 0),
		H: max(v.bounds.H-p.Vertical(), 0),
	}
}

func drawText(s tcell.Screen, at, clip Rect, text string, st tcell.Style) {
	if at.H <= 0 {
		return
	}
	x := at.X
	for _, ch := range text {
		cw := runewidth.RuneWidth(ch)
		if x+cw > at.X+at.W {
			return
		}
		if clip.Contains(x, at.Y) {
			s.SetContent(x, at.Y, ch, nil, st)
		}
		x += cw
	}
}

func fill(s tcell.Screen, r Rect, st tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			s.SetContent(x, y, ' ', nil, st)
		}
	}
}

func intersect(a, b Rect) Rect {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.W, b.X+b.W), min(a.Y+a.H, b.Y+b.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// blend scales Accent by h.
func blend(h float64) tcell.Color {
	r, g, b := Accent.RGB()
	h = clampUnit(h)
	return tcell.NewRGBColor(int32(float64(r)*h), int32(float64(g)*h), int32(float64(b)*h))
}

func clampUnit(v float64) float64 {
	return max(0, min(v, 1))
}
