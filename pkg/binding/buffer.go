// Package binding connects mutable application values to editable widgets in
// both directions.
//
// A bound widget shows the buffer's content, and user edits flow back into the
// buffer and request a new pass. A feedback guard remembers the last text seen
// for each buffer, so text the engine pushes into a widget is not mistaken for
// a user edit and does not loop back into another pass.
package binding

import (
	"runtime"
	"sync"
	"weak"
)

// Buffer is a mutable text value shared between application code and a
// widget. It is safe for concurrent use; after Set from outside the UI thread,
// request a render to push the new content.
type Buffer struct {
	mu   sync.Mutex
	text string
}

// NewBuffer returns a buffer holding text.
func NewBuffer(text string) *Buffer {
	return &Buffer{text: text}
}

// String returns the current content.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

// Set replaces the content.
func (b *Buffer) Set(text string) {
	b.mu.Lock()
	b.text = text
	b.mu.Unlock()
}

// observedTable maps a buffer to the text last seen for it, either pushed by
// a pass or reported by the widget. Buffers are held weakly; an entry is
// removed once its buffer is collected.
type observedTable struct {
	mu      sync.Mutex
	entries map[weak.Pointer[Buffer]]string
}

var observed = &observedTable{entries: make(map[weak.Pointer[Buffer]]string)}

func (t *observedTable) get(b *Buffer) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	text, ok := t.entries[weak.Make(b)]
	return text, ok
}

func (t *observedTable) set(b *Buffer, text string) {
	key := weak.Make(b)
	t.mu.Lock()
	_, known := t.entries[key]
	t.entries[key] = text
	t.mu.Unlock()
	if !known {
		runtime.AddCleanup(b, t.forget, key)
	}
}

func (t *observedTable) forget(key weak.Pointer[Buffer]) {
	t.mu.Lock()
	delete(t.entries, key)
	t.mu.Unlock()
}
