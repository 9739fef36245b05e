package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every report. It starts as a LogHandler on
	// slog's default logger.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler replaces the global error handler. Nil restores a LogHandler.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	DefaultHandler = h
	handlerMu.Unlock()
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

func stamp(t *time.Time) {
	if t.IsZero() {
		*t = time.Now()
	}
}

// Report hands a failed pass to the global handler, stamping it if needed.
func Report(err *RenderError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	if err.Kind == KindUnknown {
		err.Kind = KindOf(err.Err)
	}
	getHandler().HandleRenderError(err)
}

// ReportPanic hands a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	stamp(&err.Timestamp)
	if err.Kind == KindUnknown {
		err.Kind = KindPanic
	}
	getHandler().HandlePanic(err)
}

// Recover reports a panic in progress under op as KindPanic. It must be
// deferred directly:
//
//	defer errors.Recover("worker")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{Op: op, Kind: KindPanic, Value: r, StackTrace: CaptureStack()})
	}
}

// RecoverKind is Recover with the panic classified as kind:
//
//	defer errors.RecoverKind(errors.KindListener, "terminal.key")
func RecoverKind(kind ErrorKind, op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{Op: op, Kind: kind, Value: r, StackTrace: CaptureStack()})
	}
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line" entry
// per frame, starting at the function that called CaptureStack's caller.
func CaptureStack() string {
	var pcs [32]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var f runtime.Frame
		f, more = frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
	}
	return sb.String()
}
