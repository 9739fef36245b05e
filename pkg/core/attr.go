package core

import (
	"reflect"

	"github.com/go-drift/inplace/pkg/widget"
)

// AttrFunc applies one semantic property to a widget.
//
// Implementations are stateless singletons: the function value itself is the
// key of the widget's diff cache, so every call site of the same attribute must
// resolve to the same instance. Declare them as package-level pointers.
//
// Apply is called on every pass, whether or not value changed. hasPrev is false
// on the first application to a widget. Skipping redundant toolkit mutations is
// the implementation's responsibility.
type AttrFunc[V any] interface {
	Apply(w widget.Widget, value, prev V, hasPrev bool)
}

// Apply runs fn against the widget of the innermost open node and records value
// as the last applied value for fn on that widget.
func Apply[V any](c *Cursor, fn AttrFunc[V], value V) {
	w := c.attrTarget()
	cache := cacheOf(w)
	old, ok := cache.lookup(fn)
	// A nil interface value is cached as nil; the zero V stands for it.
	prev, _ := old.(V)
	fn.Apply(w, value, prev, ok)
	cache.store(fn, value)
	c.stats.Attributes++
}

// Equaler is implemented by values whose equality is not plain ==, such as
// handler wrappers holding a func.
type Equaler interface {
	Equal(other any) bool
}

// Equal reports whether two attribute values are the same. Values implementing
// Equaler decide for themselves; comparable values use ==; anything else (funcs,
// maps, slices) is never equal.
func Equal(a, b any) bool {
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return safeEqual(a, b)
}

// safeEqual compares with ==, treating the runtime panic raised by an
// interface field holding an uncomparable value as inequality.
func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
