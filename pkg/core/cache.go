package core

import "github.com/go-drift/inplace/pkg/widget"

// cacheTag is the tag key under which a widget's diff cache is stored.
type cacheTag struct{}

// diffCache maps an attribute function to the last value applied with it.
type diffCache struct {
	values map[any]any
}

// cacheOf returns w's diff cache, creating it on first use.
func cacheOf(w widget.Widget) *diffCache {
	if c, ok := w.Tag(cacheTag{}).(*diffCache); ok {
		return c
	}
	c := &diffCache{values: make(map[any]any, 4)}
	w.SetTag(cacheTag{}, c)
	return c
}

func (c *diffCache) lookup(fn any) (any, bool) {
	v, ok := c.values[fn]
	return v, ok
}

func (c *diffCache) store(fn any, value any) {
	c.values[fn] = value
}

func dropCache(w widget.Widget) {
	w.SetTag(cacheTag{}, nil)
}

// Cached returns the value last applied to w with fn, if any.
func Cached[V any](w widget.Widget, fn AttrFunc[V]) (V, bool) {
	var zero V
	c, ok := w.Tag(cacheTag{}).(*diffCache)
	if !ok {
		return zero, false
	}
	v, ok := c.lookup(fn)
	if !ok {
		return zero, false
	}
	typed, _ := v.(V)
	return typed, true
}
