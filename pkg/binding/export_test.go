package binding

import "weak"

// has reports whether key still has an observed entry.
func (t *observedTable) has(key weak.Pointer[Buffer]) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.entries[key]
	return ok
}
