package platform

import "sync/atomic"

type dispatcher struct {
	post func(callback func())
}

var current atomic.Pointer[dispatcher]

// RegisterDispatch installs the function that runs callbacks on the UI thread.
// Toolkits call it when their event loop starts; nil unregisters.
func RegisterDispatch(fn func(callback func())) {
	if fn == nil {
		current.Store(nil)
		return
	}
	current.Store(&dispatcher{post: fn})
}

// Dispatch posts callback to the UI thread. It reports false, without running
// callback, when nothing is registered or callback is nil.
func Dispatch(callback func()) bool {
	d := current.Load()
	if d == nil || callback == nil {
		return false
	}
	d.post(callback)
	return true
}
