package platform

import (
	"sync"
	"testing"
)

func TestLooperRunsInOrder(t *testing.T) {
	l := NewLooper()
	var got []int
	for i := range 3 {
		l.Post(func() { got = append(got, i) })
	}

	if n := l.Drain(); n != 3 {
		t.Fatalf("Drain ran %d callbacks, want 3", n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got %v, want 0 1 2", got)
		}
	}
}

func TestLooperTurnDefersNestedPosts(t *testing.T) {
	l := NewLooper()
	ran := 0
	l.Post(func() {
		ran++
		l.Post(func() { ran++ })
	})

	if n := l.Turn(); n != 1 {
		t.Errorf("Turn ran %d callbacks, want 1", n)
	}
	if l.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", l.Pending())
	}
	l.Drain()
	if ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}
}

func TestLooperDrainRunsNestedPosts(t *testing.T) {
	l := NewLooper()
	depth := 0
	var post func()
	post = func() {
		depth++
		if depth < 5 {
			l.Post(post)
		}
	}
	l.Post(post)

	if n := l.Drain(); n != 5 {
		t.Errorf("Drain ran %d callbacks, want 5", n)
	}
}

func TestLooperClose(t *testing.T) {
	l := NewLooper()
	l.Post(func() { t.Error("queued callback ran after Close") })
	l.Close()

	if l.Post(func() {}) {
		t.Error("Post succeeded on a closed looper")
	}
	if n := l.Drain(); n != 0 {
		t.Errorf("Drain ran %d callbacks after Close", n)
	}
}

func TestLooperPostNil(t *testing.T) {
	l := NewLooper()
	if l.Post(nil) {
		t.Error("Post(nil) should fail")
	}
}

func TestLooperWake(t *testing.T) {
	l := NewLooper()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		l.Post(func() {})
	}()
	<-l.Wake()
	wg.Wait()
	if l.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", l.Pending())
	}
}

func TestDispatchThroughLooper(t *testing.T) {
	t.Cleanup(func() { RegisterDispatch(nil) })

	RegisterDispatch(nil)
	if Dispatch(func() {}) {
		t.Error("Dispatch succeeded with no dispatcher")
	}

	l := NewLooper()
	l.Register()
	ran := false
	if !Dispatch(func() { ran = true }) {
		t.Fatal("Dispatch failed with a registered looper")
	}
	if Dispatch(nil) {
		t.Error("Dispatch(nil) should fail")
	}
	l.Drain()
	if !ran {
		t.Error("dispatched callback did not run")
	}
}
