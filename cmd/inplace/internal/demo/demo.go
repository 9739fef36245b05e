// Package demo is the interactive example run by "inplace demo": a name input
// bound two ways to a buffer, a greeting that follows it, and a color list
// that flashes the current choice.
package demo

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/inplace/pkg/animation"
	"github.com/go-drift/inplace/pkg/attrs"
	"github.com/go-drift/inplace/pkg/binding"
	"github.com/go-drift/inplace/pkg/core"
	"github.com/go-drift/inplace/pkg/terminal"
	"github.com/go-drift/inplace/pkg/widget"
)

// FlashDuration is how long the chosen color pulses.
const FlashDuration = 400 * time.Millisecond

// DefaultColors are offered when none are configured.
var DefaultColors = []string{"red", "green", "blue", "yellow"}

// App holds the demo state. Render is its description.
type App struct {
	Title   string
	Padding int
	Name    *binding.Buffer
	Colors  []string

	picked int
	flash  *animation.WidgetAnimation
}

// New returns a demo with an empty name and the default colors.
func New(title string, padding int) *App {
	return &App{
		Title:   title,
		Padding: padding,
		Name:    binding.NewBuffer(""),
		Colors:  DefaultColors,
	}
}

// Picked returns the chosen color.
func (a *App) Picked() string { return a.Colors[a.picked] }

// Render describes the screen.
func (a *App) Render(c *core.Cursor) {
	c.Node(terminal.Column, func() {
		attrs.PaddingAll(c, a.Padding)

		c.Node(terminal.Label, func() {
			attrs.Text(c, a.Title)
			attrs.Bold(c, "", 0)
			attrs.Margin(c, 0, 0, 0, 1)
		})
		c.Node(terminal.Row, func() {
			attrs.FillWidth(c)
			c.Node(terminal.Label, func() {
				attrs.Text(c, "Name: ")
			})
			c.Node(terminal.Input, func() {
				attrs.Weight(c, 1)
				binding.Text(c, a.Name)
			})
		})
		c.Node(terminal.Label, func() {
			attrs.Text(c, a.greeting())
		})
		c.Node(terminal.List, func() {
			attrs.MarginSymmetric(c, 0, 1)
			terminal.Items(c, a.Colors...)
			terminal.Selected(c, a.picked)
			attrs.OnItemSelected(c, attrs.SelectFunc("colors", a.pick))
		})
		c.Node(terminal.Label, func() {
			attrs.Text(c, "Favourite: "+a.Picked())
			terminal.Foreground(c, tcell.GetColor(a.Picked()))

			var anim widget.Animation
			if a.flash != nil {
				anim = a.flash
			}
			attrs.Animate(c, anim, anim != nil)
		})
	})
}

func (a *App) greeting() string {
	name := strings.TrimSpace(a.Name.String())
	if name == "" {
		return "Type your name above."
	}
	return "Hello, " + name + "!"
}

// pick records a choice. Each choice gets a fresh flash so the next pass
// starts it and cancels the previous one if it is still running.
func (a *App) pick(pos int) {
	a.picked = pos
	a.flash = terminal.Flash(FlashDuration)
}
