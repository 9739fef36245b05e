package core

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/go-drift/inplace/pkg/errors"
	"github.com/go-drift/inplace/pkg/platform"
	"github.com/go-drift/inplace/pkg/widget"
)

// SchedulerState is the render state of a root.
//
//	         RequestRender          pass starts
//	Idle ─────────────────► Pending ───────────► Running
//	  ▲                        ▲                    │
//	  │   no request arrived   │  request arrived   │
//	  └────────────────────────┼────────────────────┘
//	                           └── during the pass ─┘
type SchedulerState int

const (
	// StateIdle means no pass is pending or running.
	StateIdle SchedulerState = iota
	// StatePending means a pass has been requested but has not started.
	StatePending
	// StateRunning means a pass is executing.
	StateRunning
)

func (s SchedulerState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateRunning:
		return "running"
	default:
		return "idle"
	}
}

// Hooks observe the scheduler. All fields are optional.
type Hooks struct {
	// OnPassStart is called before the root Renderable runs.
	OnPassStart func(pass uint64)
	// OnPassEnd is called after every pass, successful or not.
	OnPassEnd func(pass uint64, stats PassStats, elapsed time.Duration, err error)
	// OnCoalesced is called when a request was merged into a pending or
	// running pass instead of starting one.
	OnCoalesced func(state SchedulerState)
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the structured logger. The default discards.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// WithHooks registers lifecycle hooks.
func WithHooks(h Hooks) Option {
	return func(s *Scheduler) {
		s.hooks = h
	}
}

// WithPoster makes RequestRender defer passes to the next turn of the UI event
// loop: post must arrange for fn to run later on the UI thread. Without a
// poster, passes run synchronously inside RequestRender.
func WithPoster(post func(fn func())) Option {
	return func(s *Scheduler) {
		s.post = post
	}
}

// WithPlatformDispatch posts passes through platform.Dispatch, falling back to
// running synchronously when no dispatcher is registered.
func WithPlatformDispatch() Option {
	return WithPoster(func(fn func()) {
		if !platform.Dispatch(fn) {
			fn()
		}
	})
}

// Scheduler owns a render root and runs passes over it one at a time,
// coalescing bursts of requests into a single pass.
type Scheduler struct {
	cursor *Cursor
	root   Renderable
	post   func(fn func())
	logger *slog.Logger
	hooks  Hooks

	mu    sync.Mutex
	state SchedulerState
	rerun bool
	pass  uint64
}

// NewScheduler returns a scheduler that renders r into root.
func NewScheduler(root widget.Widget, r Renderable, opts ...Option) *Scheduler {
	s := &Scheduler{
		cursor: NewCursor(root),
		root:   r,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s.cursor.requester = s
	return s
}

// Cursor returns the scheduler's mount cursor.
func (s *Scheduler) Cursor() *Cursor {
	return s.cursor
}

// State returns the current scheduler state.
func (s *Scheduler) State() SchedulerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Passes returns the number of passes started so far.
func (s *Scheduler) Passes() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pass
}

// RequestRender asks for a pass. It may be called from anywhere on the UI
// thread, including from widget callbacks running inside a pass. Requests made
// while a pass is pending are merged into it; requests made while a pass is
// running trigger exactly one follow-up pass after it returns.
//
// RequestRender has no caller to return to once the pass is posted, so a
// failed pass is handed to errors.Report, which forwards it to
// errors.DefaultHandler, and to the OnPassEnd hook. Use RenderNow to get the
// error back instead.
func (s *Scheduler) RequestRender() {
	s.mu.Lock()
	switch s.state {
	case StateRunning:
		s.rerun = true
		s.mu.Unlock()
		s.coalesced(StateRunning)
		return
	case StatePending:
		s.mu.Unlock()
		s.coalesced(StatePending)
		return
	}
	s.state = StatePending
	s.mu.Unlock()
	s.schedule()
}

// schedule runs the pending pass now or posts it, depending on the poster.
func (s *Scheduler) schedule() {
	if s.post == nil {
		s.drain()
		return
	}
	s.post(s.drain)
}

// RenderNow runs a pass synchronously and returns its error. Called during a
// pass, it records a follow-up request and returns errors.ErrNestedPass.
// Requests made during the pass it runs are scheduled like RequestRender.
func (s *Scheduler) RenderNow() error {
	s.mu.Lock()
	if s.state == StateRunning {
		s.rerun = true
		s.mu.Unlock()
		return errors.ErrNestedPass
	}
	s.state = StateRunning
	s.rerun = false
	s.mu.Unlock()

	err := s.runPass()
	if s.finishPass() {
		s.schedule()
	}
	return err
}

// Flush runs a pending pass, if any, on the calling goroutine.
func (s *Scheduler) Flush() {
	s.drain()
}

// drain runs passes while the scheduler is pending. With a poster, follow-up
// passes are posted rather than looped so that the UI loop gets a turn between
// them.
func (s *Scheduler) drain() {
	for {
		s.mu.Lock()
		if s.state != StatePending {
			s.mu.Unlock()
			return
		}
		s.state = StateRunning
		s.rerun = false
		s.mu.Unlock()

		if err := s.runPass(); err != nil {
			errors.Report(&errors.RenderError{Pass: s.Passes(), Kind: errors.KindOf(err), Err: err})
		}

		if !s.finishPass() {
			return
		}
		if s.post != nil {
			s.post(s.drain)
			return
		}
	}
}

// finishPass leaves the running state and reports whether a follow-up pass is
// now pending.
func (s *Scheduler) finishPass() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rerun {
		s.rerun = false
		s.state = StatePending
		return true
	}
	s.state = StateIdle
	return false
}

func (s *Scheduler) runPass() error {
	s.mu.Lock()
	s.pass++
	pass := s.pass
	s.mu.Unlock()

	if s.hooks.OnPassStart != nil {
		s.hooks.OnPassStart(pass)
	}
	start := time.Now()
	stats, err := s.cursor.Render(s.root)
	elapsed := time.Since(start)

	if err != nil {
		s.logger.Error("render pass failed", "pass", pass, "kind", errors.KindOf(err), "error", err)
	} else {
		s.logger.Debug("render pass",
			"pass", pass,
			"created", stats.Created,
			"reused", stats.Reused,
			"destroyed", stats.Destroyed,
			"attributes", stats.Attributes,
			"elapsed", elapsed,
		)
	}
	if s.hooks.OnPassEnd != nil {
		s.hooks.OnPassEnd(pass, stats, elapsed, err)
	}
	return err
}

func (s *Scheduler) coalesced(state SchedulerState) {
	s.logger.Debug("render request coalesced", "state", state)
	if s.hooks.OnCoalesced != nil {
		s.hooks.OnCoalesced(state)
	}
}
