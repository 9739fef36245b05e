package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/inplace/pkg/core"
	mounttest "github.com/go-drift/inplace/pkg/testing"
	"github.com/go-drift/inplace/pkg/widget"
)

type applyCall struct {
	value   int
	prev    int
	hasPrev bool
}

// recordingAttr records every Apply call it receives.
type recordingAttr struct {
	calls []applyCall
}

func (a *recordingAttr) Apply(_ widget.Widget, value, prev int, hasPrev bool) {
	a.calls = append(a.calls, applyCall{value: value, prev: prev, hasPrev: hasPrev})
}

func TestApplyIsCalledEveryPass(t *testing.T) {
	tk, _, c := newCursor(t)
	fn := &recordingAttr{}
	value := 5
	describe := func(c *core.Cursor) {
		c.Node(tk.Linear, func() {
			c.Node(tk.View, func() { core.Apply(c, fn, value) })
		})
	}

	for range 2 {
		_, err := c.Render(describe)
		require.NoError(t, err)
	}
	value = 8
	_, err := c.Render(describe)
	require.NoError(t, err)

	assert.Equal(t, []applyCall{
		{value: 5, prev: 0, hasPrev: false},
		{value: 5, prev: 5, hasPrev: true},
		{value: 8, prev: 5, hasPrev: true},
	}, fn.calls)
}

func TestDiffCacheKeysByFunctionIdentity(t *testing.T) {
	tk, _, c := newCursor(t)
	a, b := &recordingAttr{}, &recordingAttr{}

	var w widget.Widget
	_, err := c.Render(func(c *core.Cursor) {
		c.Node(tk.Linear, func() {
			w = c.Node(tk.View, func() {
				core.Apply(c, a, 1)
				core.Apply(c, b, 2)
				core.Apply(c, a, 3)
			})
		})
	})
	require.NoError(t, err)

	got, ok := core.Cached[int](w, a)
	require.True(t, ok)
	assert.Equal(t, 3, got)
	got, ok = core.Cached[int](w, b)
	require.True(t, ok)
	assert.Equal(t, 2, got)

	// Later applications in the same pass see the earlier value.
	require.Len(t, a.calls, 2)
	assert.Equal(t, applyCall{value: 3, prev: 1, hasPrev: true}, a.calls[1])

	// One cache per widget, whatever the number of functions.
	assert.Equal(t, 1, w.(*mounttest.View).TagCount())
}

func TestCachedWithoutCache(t *testing.T) {
	tk := mounttest.NewToolkit()
	_, ok := core.Cached[int](tk.View.New(), &recordingAttr{})
	assert.False(t, ok)
}

func TestCachesArePerWidget(t *testing.T) {
	tk, _, c := newCursor(t)
	fn := &recordingAttr{}

	_, err := c.Render(func(c *core.Cursor) {
		c.Node(tk.Linear, func() {
			c.Node(tk.View, func() { core.Apply(c, fn, 1) })
			c.Node(tk.View, func() { core.Apply(c, fn, 2) })
		})
	})
	require.NoError(t, err)

	assert.False(t, fn.calls[0].hasPrev)
	assert.False(t, fn.calls[1].hasPrev)
}

type keyed struct{ key string }

func (k keyed) Equal(other any) bool {
	o, ok := other.(keyed)
	return ok && o.key == k.key
}

type holder struct{ v any }

func TestEqual(t *testing.T) {
	f := func() {}
	ptr := &recordingAttr{}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"different types", 1, int64(1), false},
		{"both nil", nil, nil, true},
		{"one nil", nil, 1, false},
		{"same pointer", ptr, ptr, true},
		{"different pointers", ptr, &recordingAttr{}, false},
		{"structs", widget.Insets{Left: 1}, widget.Insets{Left: 1}, true},
		{"funcs never equal", f, f, false},
		{"slices never equal", []int{1}, []int{1}, false},
		{"maps never equal", map[int]int{}, map[int]int{}, false},
		{"equaler", keyed{"a"}, keyed{"a"}, true},
		{"equaler mismatch", keyed{"a"}, keyed{"b"}, false},
		{"interface field holding slice", holder{[]int{1}}, holder{[]int{1}}, false},
		{"interface field holding int", holder{1}, holder{1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, core.Equal(tt.a, tt.b))
		})
	}
}
