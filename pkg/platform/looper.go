// Package platform connects the engine to the UI thread of a host toolkit.
//
// Toolkits own the UI thread. They register a dispatch function with
// [RegisterDispatch] so that engine code (and application goroutines) can post
// work onto it with [Dispatch]. [Looper] is a ready-made queue for toolkits
// that run their own event loop.
package platform

import "sync"

// Looper is a FIFO of callbacks posted from any goroutine and run on the UI
// thread by Drain.
type Looper struct {
	mu     sync.Mutex
	queue  []func()
	wake   chan struct{}
	closed bool
}

// NewLooper returns an empty looper.
func NewLooper() *Looper {
	return &Looper{wake: make(chan struct{}, 1)}
}

// Post enqueues fn. It is safe for concurrent use. Posting to a closed looper
// drops fn and returns false.
func (l *Looper) Post(fn func()) bool {
	if fn == nil {
		return false
	}
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Wake returns a channel that receives after callbacks have been posted.
func (l *Looper) Wake() <-chan struct{} {
	return l.wake
}

// Pending returns the number of queued callbacks.
func (l *Looper) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// Drain runs queued callbacks until the queue is empty, including callbacks
// posted by the callbacks it runs. It returns how many ran.
func (l *Looper) Drain() int {
	ran := 0
	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		l.mu.Unlock()
		if len(batch) == 0 {
			return ran
		}
		for _, fn := range batch {
			fn()
			ran++
		}
	}
}

// Turn runs only the callbacks queued at the time of the call, leaving those
// they post for the next turn. It returns how many ran.
func (l *Looper) Turn() int {
	l.mu.Lock()
	batch := l.queue
	l.queue = nil
	l.mu.Unlock()
	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

// Close stops accepting callbacks. Queued callbacks are discarded.
func (l *Looper) Close() {
	l.mu.Lock()
	l.closed = true
	l.queue = nil
	l.mu.Unlock()
}

// Register makes this looper the target of Dispatch.
func (l *Looper) Register() {
	RegisterDispatch(func(callback func()) {
		l.Post(callback)
	})
}
