package terminal_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/inplace/pkg/attrs"
	"github.com/go-drift/inplace/pkg/core"
	"github.com/go-drift/inplace/pkg/terminal"
	"github.com/go-drift/inplace/pkg/widget"
)

func TestItemsFollowSliceEditedInPlace(t *testing.T) {
	colors := []string{"red", "green"}
	var list widget.Widget
	app, screen := startApp(t, func(c *core.Cursor) {
		c.Node(terminal.Column, func() {
			list = c.Node(terminal.List, func() {
				terminal.Items(c, colors...)
			})
		})
	})
	require.Equal(t, []string{"red", "green"}, list.(*terminal.ListView).Items())

	colors[0] = "blue"
	require.NoError(t, app.Scheduler().RenderNow())
	app.Flush()

	assert.Equal(t, []string{"blue", "green"}, list.(*terminal.ListView).Items())
	assert.Equal(t, "> blue", row(screen, 0))
}

func TestSelectedSurvivesAttributeOrder(t *testing.T) {
	tests := []struct {
		name          string
		selectedFirst bool
	}{
		{"selected before items", true},
		{"items before selected", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list widget.Widget
			app, _ := startApp(t, func(c *core.Cursor) {
				c.Node(terminal.Column, func() {
					list = c.Node(terminal.List, func() {
						if tt.selectedFirst {
							terminal.Selected(c, 2)
							terminal.Items(c, "a", "b", "c")
							return
						}
						terminal.Items(c, "a", "b", "c")
						terminal.Selected(c, 2)
					})
				})
			})

			for pass := 0; pass < 3; pass++ {
				assert.Equal(t, 2, list.(*terminal.ListView).Selected(), "pass %d", pass)
				require.NoError(t, app.Scheduler().RenderNow())
			}
		})
	}
}

func TestSelectedWaitsForItems(t *testing.T) {
	items := []string{"a"}
	var list widget.Widget
	app, _ := startApp(t, func(c *core.Cursor) {
		c.Node(terminal.Column, func() {
			list = c.Node(terminal.List, func() {
				terminal.Selected(c, 1)
				terminal.Items(c, items...)
			})
		})
	})
	lv := list.(*terminal.ListView)
	assert.Zero(t, lv.Selected())

	items = append(items, "b")
	require.NoError(t, app.Scheduler().RenderNow())
	assert.Equal(t, 1, lv.Selected())
}

func TestUserPickClearsPendingSelection(t *testing.T) {
	lv := terminal.List.New().(*terminal.ListView)
	lv.SetItems([]string{"a", "b"})
	lv.SetSelected(3)
	lv.SetSelected(1)
	lv.SetItems([]string{"a", "b", "c", "d"})
	assert.Equal(t, 1, lv.Selected())

	lv.SetSelected(-1)
	assert.Equal(t, 1, lv.Selected())
}

func TestHiddenWidgetsTakeNoSpaceOrFocus(t *testing.T) {
	showInput := true
	var label widget.Widget
	app, screen := startApp(t, func(c *core.Cursor) {
		c.Node(terminal.Column, func() {
			c.Node(terminal.Input, func() {
				attrs.Visible(c, showInput)
				attrs.Text(c, "typed")
			})
			label = c.Node(terminal.Label, func() {
				attrs.Text(c, "below")
			})
			c.Node(terminal.List, func() {
				terminal.Items(c, "one")
			})
		})
	})
	require.Equal(t, terminal.Input, app.Focused().Type())
	assert.Equal(t, "below", row(screen, 1))

	showInput = false
	require.NoError(t, app.Scheduler().RenderNow())
	app.Flush()

	assert.Equal(t, terminal.Rect{X: 0, Y: 0, W: 5, H: 1}, label.(*terminal.TextView).Bounds())
	assert.Equal(t, "below", row(screen, 0))
	assert.Equal(t, terminal.List, app.Focused().Type(), "focus leaves the hidden input")

	app.HandleEvent(key(tcell.KeyTab))
	assert.Equal(t, terminal.List, app.Focused().Type(), "hidden widgets are skipped by Tab")
}
