package terminal

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/inplace/pkg/animation"
	"github.com/go-drift/inplace/pkg/core"
	"github.com/go-drift/inplace/pkg/errors"
	"github.com/go-drift/inplace/pkg/platform"
	"github.com/go-drift/inplace/pkg/widget"
)

// App runs a Renderable on a tcell screen. The root widget is a Column
// filling the screen, so the Renderable's first node must be Column.
//
// Key events go to the focused Input or List; Tab and Shift-Tab move focus,
// Escape and Ctrl-C quit.
type App struct {
	screen    tcell.Screen
	root      *Layout
	loop      *platform.Looper
	scheduler *core.Scheduler
	logger    *slog.Logger
	hooks     core.Hooks
	frame     time.Duration
	frames    *animation.Frames
	focused   focusable
	quit      chan struct{}
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger used by the app and its scheduler.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		a.logger = logger
	}
}

// WithHooks forwards scheduler hooks.
func WithHooks(h core.Hooks) Option {
	return func(a *App) {
		a.hooks = h
	}
}

// WithFrameInterval sets how often animations are stepped. Default 16ms.
func WithFrameInterval(d time.Duration) Option {
	return func(a *App) {
		if d > 0 {
			a.frame = d
		}
	}
}

// WithFrames sets the animation group stepped by the frame loop. By default
// the app steps animation.DefaultFrames.
func WithFrames(f *animation.Frames) Option {
	return func(a *App) {
		a.frames = f
	}
}

// NewApp prepares an app. The screen is initialized by Start.
func NewApp(screen tcell.Screen, r core.Renderable, opts ...Option) *App {
	a := &App{
		screen: screen,
		root:   Column.New().(*Layout),
		loop:   platform.NewLooper(),
		frame:  16 * time.Millisecond,
		quit:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if a.frames == nil {
		a.frames = animation.DefaultFrames()
	}
	a.scheduler = core.NewScheduler(a.root, r,
		core.WithLogger(a.logger),
		core.WithHooks(a.hooks),
		core.WithPoster(func(fn func()) { a.loop.Post(fn) }),
	)
	return a
}

// Root returns the root widget.
func (a *App) Root() *Layout { return a.root }

// Frames returns the animation group the app steps.
func (a *App) Frames() *animation.Frames { return a.frames }

// Scheduler returns the app's render scheduler.
func (a *App) Scheduler() *core.Scheduler { return a.scheduler }

// Start initializes the screen, makes the app's looper the platform
// dispatcher and requests the first pass.
func (a *App) Start() error {
	if err := a.screen.Init(); err != nil {
		return err
	}
	a.loop.Register()
	a.scheduler.RequestRender()
	return nil
}

// Stop releases the screen.
func (a *App) Stop() {
	platform.RegisterDispatch(nil)
	a.loop.Close()
	a.screen.Fini()
}

// Quit asks Run to return. It is safe to call from any goroutine.
func (a *App) Quit() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}

// Run starts the app and processes events until ctx is done, Quit is called
// or the user quits.
func (a *App) Run(ctx context.Context) error {
	if err := a.Start(); err != nil {
		return err
	}
	defer a.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.frame)
	defer ticker.Stop()

	a.logger.Info("terminal app started")
	for {
		a.Flush()
		select {
		case <-ctx.Done():
			return nil
		case <-a.quit:
			return nil
		case ev := <-events:
			if !a.HandleEvent(ev) {
				a.Quit()
				return nil
			}
		case <-a.loop.Wake():
		case <-ticker.C:
			a.StepFrame()
		}
	}
}

// Flush runs posted work, including pending passes, and redraws if anything
// changed.
func (a *App) Flush() {
	a.loop.Drain()
	a.syncFocus()
	if dirty.Swap(false) {
		a.Draw()
	}
}

// StepFrame advances the app's running animations by one frame.
func (a *App) StepFrame() {
	defer errors.RecoverKind(errors.KindAnimation, "terminal.frame")
	if a.frames.Active() {
		a.frames.Step()
	}
}

// Draw lays out the tree and repaints the screen.
func (a *App) Draw() {
	w, h := a.screen.Size()
	arrange(a.root, Rect{W: w, H: h})
	a.screen.Clear()
	draw(a.screen, a.root, Rect{W: w, H: h})
	a.screen.Show()
}

// HandleEvent processes one event and reports whether the app should keep
// running.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		invalidate()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyTab:
			a.moveFocus(1)
		case tcell.KeyBacktab:
			a.moveFocus(-1)
		default:
			a.dispatchKey(ev)
		}
	}
	return true
}

// Focused returns the widget receiving keys, or nil.
func (a *App) Focused() widget.Widget {
	if a.focused == nil {
		return nil
	}
	return a.focused
}

func (a *App) dispatchKey(ev *tcell.EventKey) {
	if a.focused == nil {
		return
	}
	defer errors.RecoverKind(errors.KindListener, "terminal.key")
	a.focused.handleKey(ev)
}

func (a *App) focusables() []focusable {
	var out []focusable
	var walk func(w widget.Widget)
	walk = func(w widget.Widget) {
		if !shown(w) {
			return
		}
		if f, ok := w.(focusable); ok {
			out = append(out, f)
		}
		if c, ok := w.(widget.Container); ok {
			for i := 0; i < c.ChildCount(); i++ {
				walk(c.ChildAt(i))
			}
		}
	}
	walk(a.root)
	return out
}

func (a *App) moveFocus(delta int) {
	all := a.focusables()
	if len(all) == 0 {
		return
	}
	next := 0
	for i, f := range all {
		if f == a.focused {
			next = (i + delta + len(all)) % len(all)
			break
		}
	}
	a.setFocus(all[next])
}

// syncFocus drops focus from destroyed widgets and focuses the first
// focusable widget when nothing has focus.
func (a *App) syncFocus() {
	if a.focused != nil && !viewOf(a.focused).Released() && a.reachable(a.focused) {
		return
	}
	if a.focused != nil {
		a.focused.setFocused(false)
	}
	a.focused = nil
	if all := a.focusables(); len(all) > 0 {
		a.setFocus(all[0])
	}
}

// reachable reports whether f is still one of the focusable widgets.
func (a *App) reachable(f focusable) bool {
	for _, g := range a.focusables() {
		if g == f {
			return true
		}
	}
	return false
}

func (a *App) setFocus(f focusable) {
	if a.focused == f {
		return
	}
	if a.focused != nil {
		a.focused.setFocused(false)
	}
	a.focused = f
	f.setFocused(true)
	a.logger.Debug("focus", "widget", f.Type().Name())
}
