package attrs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/inplace/pkg/attrs"
	"github.com/go-drift/inplace/pkg/core"
	"github.com/go-drift/inplace/pkg/widget"
)

func TestAlignShorthandsCompose(t *testing.T) {
	f := newFixture()
	body := func(c *core.Cursor) {
		attrs.Below(c, 1)
		attrs.ToRightOf(c, 2)
		attrs.AlignParentBottom(c)
		attrs.CenterHorizontal(c)
	}

	w := f.child(t, f.tk.Relative, f.tk.View, body)
	want := widget.NewRuleSet(
		widget.Rule{Verb: widget.Below, Anchor: 1},
		widget.Rule{Verb: widget.RightOf, Anchor: 2},
		widget.Rule{Verb: widget.AlignParentBottom, Anchor: widget.True},
		widget.Rule{Verb: widget.CenterHorizontal, Anchor: widget.True},
	)
	assert.Equal(t, want, w.LayoutParams().Rules)

	f.tk.Reset()
	f.child(t, f.tk.Relative, f.tk.View, body)
	assert.Zero(t, f.tk.Counts.LayoutParams)
}

func TestAlignZeroAnchorRemovesRule(t *testing.T) {
	f := newFixture()
	anchorID := 4
	body := func(c *core.Cursor) {
		attrs.Above(c, anchorID)
		attrs.AlignLeft(c, 4)
	}

	w := f.child(t, f.tk.Relative, f.tk.View, body)
	assert.Equal(t, 4, anchor(w.LayoutParams().Rules, widget.Above))

	anchorID = 0
	f.child(t, f.tk.Relative, f.tk.View, body)
	_, ok := w.LayoutParams().Rules.Get(widget.Above)
	assert.False(t, ok)
	assert.Equal(t, 4, anchor(w.LayoutParams().Rules, widget.AlignLeft))
}

func TestAlignIgnoresOtherParents(t *testing.T) {
	f := newFixture()
	w := f.child(t, f.tk.Linear, f.tk.View, func(c *core.Cursor) {
		attrs.CenterInParent(c)
		attrs.Align(c, widget.Verb(widget.NumVerbs), 3)
	})
	assert.Equal(t, widget.RuleSet{}, w.LayoutParams().Rules)
	assert.Nil(t, attrs.AlignAttr(widget.Verb(widget.NumVerbs)))
}

func TestAlignAndRulesOnOneNode(t *testing.T) {
	f := newFixture()
	body := func(c *core.Cursor) {
		attrs.Rules(c, widget.Rule{Verb: widget.Below, Anchor: 1})
		attrs.AlignParentRight(c)
	}

	w := f.child(t, f.tk.Relative, f.tk.View, body)
	for range 2 {
		f.child(t, f.tk.Relative, f.tk.View, body)
	}
	assert.Equal(t, 1, anchor(w.LayoutParams().Rules, widget.Below))
	assert.Equal(t, widget.True, anchor(w.LayoutParams().Rules, widget.AlignParentRight))
}
