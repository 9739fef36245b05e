// Package errors provides structured error handling for the reconciliation engine.
package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindStructure indicates unbalanced enter/leave calls or other misuse of
	// the mount cursor. These are programming errors.
	KindStructure
	// KindRender indicates a failure raised by a Renderable during a pass.
	KindRender
	// KindPanic indicates a recovered panic from an unclassified source.
	KindPanic
	// KindListener indicates a failure while replacing a platform listener.
	KindListener
	// KindAnimation indicates an animation lifecycle failure.
	KindAnimation
)

func (k ErrorKind) String() string {
	switch k {
	case KindStructure:
		return "structure"
	case KindRender:
		return "render"
	case KindPanic:
		return "panic"
	case KindListener:
		return "listener"
	case KindAnimation:
		return "animation"
	default:
		return "unknown"
	}
}

// Sentinel causes for structural mismatches. MountError wraps one of these.
var (
	ErrUnbalancedLeave = stderrors.New("leave without matching enter")
	ErrUnclosedNodes   = stderrors.New("nodes left open at end of pass")
	ErrNotInPass       = stderrors.New("cursor used outside a render pass")
	ErrNoOpenNode      = stderrors.New("attribute applied with no open node")
	ErrNotContainer    = stderrors.New("widget cannot hold children")
	ErrRootMismatch    = stderrors.New("root widget type does not match description")
	ErrSecondRoot      = stderrors.New("description entered more than one root")
	ErrNestedPass      = stderrors.New("render pass started inside another pass")
)

// MountError reports a structural mismatch detected by the mount cursor.
type MountError struct {
	// Op is the cursor operation that failed (e.g., "cursor.Leave").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Depth is the cursor depth at the point of failure.
	Depth int
	// Widget is the type name of the widget involved, if any.
	Widget string
	// Err is the underlying cause.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *MountError) Error() string {
	if e.Widget != "" {
		return fmt.Sprintf("%s [%s] depth=%d widget=%s: %v", e.Op, e.Kind, e.Depth, e.Widget, e.Err)
	}
	return fmt.Sprintf("%s [%s] depth=%d: %v", e.Op, e.Kind, e.Depth, e.Err)
}

func (e *MountError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Render").
	Op string
	// Kind says where the panic came from: KindRender for a Renderable,
	// KindListener for an event callback, KindAnimation for a frame callback,
	// KindPanic when unknown.
	Kind ErrorKind
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// RenderError wraps any error that ended a render pass early.
type RenderError struct {
	// Pass is the sequence number of the failed pass.
	Pass uint64
	// Kind is KindOf(Err). Report fills it in when left zero.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Timestamp is when the pass failed.
	Timestamp time.Time
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render pass %d failed: %v", e.Pass, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// KindOf classifies err: the Kind of the first MountError or PanicError in its
// chain, KindRender for any other error and KindUnknown for nil.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var mount *MountError
	if As(err, &mount) {
		return mount.Kind
	}
	var p *PanicError
	if As(err, &p) {
		if p.Kind == KindUnknown {
			return KindPanic
		}
		return p.Kind
	}
	return KindRender
}

// ErrorHandler receives errors reported by the engine.
type ErrorHandler interface {
	// HandleRenderError is called when a scheduled render pass fails.
	HandleRenderError(err *RenderError)
	// HandlePanic is called when a panic is recovered outside a pass.
	HandlePanic(err *PanicError)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}
