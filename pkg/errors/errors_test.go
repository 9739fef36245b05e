package errors

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestMountErrorString(t *testing.T) {
	err := &MountError{
		Op:    "cursor.Leave",
		Kind:  KindStructure,
		Depth: 0,
		Err:   ErrUnbalancedLeave,
	}
	want := "cursor.Leave [structure] depth=0: leave without matching enter"
	if got := err.Error(); got != want {
		t.Errorf("MountError.Error() = %q, want %q", got, want)
	}
}

func TestMountErrorWithWidget(t *testing.T) {
	err := &MountError{
		Op:     "cursor.Enter",
		Kind:   KindStructure,
		Depth:  3,
		Widget: "label",
		Err:    ErrNotContainer,
	}
	got := err.Error()
	if !strings.Contains(got, "widget=label") {
		t.Errorf("error string %q should contain widget name", got)
	}
	if !strings.Contains(got, "depth=3") {
		t.Errorf("error string %q should contain depth", got)
	}
	if !Is(err, ErrNotContainer) {
		t.Error("MountError should unwrap to its cause")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindStructure, "structure"},
		{KindRender, "render"},
		{KindPanic, "panic"},
		{KindListener, "listener"},
		{KindAnimation, "animation"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	want := "panic: test panic"
	if got := err.Error(); got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "core.Render",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	want := "panic in core.Render: test panic"
	if got := err.Error(); got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorUnwrapsErrorValue(t *testing.T) {
	cause := fmt.Errorf("boom")
	err := &PanicError{Value: cause}
	if !Is(err, cause) {
		t.Error("PanicError should unwrap an error panic value")
	}
	if (&PanicError{Value: "text"}).Unwrap() != nil {
		t.Error("non-error panic values should not unwrap")
	}
}

func TestRenderErrorChain(t *testing.T) {
	mount := &MountError{Op: "cursor.Leave", Kind: KindStructure, Err: ErrUnbalancedLeave}
	err := &RenderError{Pass: 7, Err: mount}
	if !Is(err, ErrUnbalancedLeave) {
		t.Error("RenderError should unwrap through MountError")
	}
	var got *MountError
	if !As(err, &got) || got != mount {
		t.Error("errors.As should find the MountError")
	}
	if !strings.HasPrefix(err.Error(), "render pass 7 failed") {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestReport(t *testing.T) {
	var captured *RenderError
	handler := &testHandler{
		onRender: func(err *RenderError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&RenderError{Pass: 1, Err: ErrUnclosedNodes})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Pass != 1 {
		t.Errorf("Pass = %d, want 1", captured.Pass)
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	called := false
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onRender: func(*RenderError) { called = true }})
	defer SetHandler(oldHandler)

	Report(nil)
	if called {
		t.Error("Report(nil) should not reach the handler")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
}

func TestRecoverKind(t *testing.T) {
	var captured *PanicError
	oldHandler := DefaultHandler
	SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(oldHandler)

	func() {
		defer RecoverKind(KindListener, "test.listener")
		panic("listener failed")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Kind != KindListener {
		t.Errorf("Kind = %v, want listener", captured.Kind)
	}

	captured = nil
	func() {
		defer Recover("test.plain")
		panic("plain")
	}()
	if captured == nil || captured.Kind != KindPanic {
		t.Errorf("Recover should classify as panic, got %+v", captured)
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindUnknown},
		{"plain", ErrNestedPass, KindRender},
		{"mount", &MountError{Kind: KindStructure, Err: ErrUnbalancedLeave}, KindStructure},
		{"wrapped mount", fmt.Errorf("pass: %w", &MountError{Kind: KindStructure}), KindStructure},
		{"render panic", &PanicError{Kind: KindRender, Value: "x"}, KindRender},
		{"unclassified panic", &PanicError{Value: "x"}, KindPanic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReportFillsKind(t *testing.T) {
	var rendered *RenderError
	var panicked *PanicError
	oldHandler := DefaultHandler
	SetHandler(&testHandler{
		onRender: func(err *RenderError) { rendered = err },
		onPanic:  func(err *PanicError) { panicked = err },
	})
	defer SetHandler(oldHandler)

	Report(&RenderError{Pass: 2, Err: &MountError{Kind: KindStructure, Err: ErrUnclosedNodes}})
	if rendered == nil || rendered.Kind != KindStructure {
		t.Errorf("Report should classify the pass error, got %+v", rendered)
	}

	Report(&RenderError{Pass: 3, Kind: KindAnimation, Err: ErrNestedPass})
	if rendered.Kind != KindAnimation {
		t.Errorf("Report overwrote an explicit kind: %v", rendered.Kind)
	}

	ReportPanic(&PanicError{Op: "x", Value: 1})
	if panicked == nil || panicked.Kind != KindPanic {
		t.Errorf("ReportPanic should default to KindPanic, got %+v", panicked)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if DefaultHandler == nil {
		t.Error("SetHandler(nil) should set default LogHandler, not nil")
	}
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandlerWritesStructuredRecord(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: slog.New(slog.NewTextHandler(&buf, nil)), Verbose: true}

	h.HandleRenderError(&RenderError{
		Pass: 3,
		Kind: KindStructure,
		Err:  &MountError{Op: "cursor.Leave", Kind: KindStructure, Err: ErrUnbalancedLeave, StackTrace: "frame"},
	})
	out := buf.String()
	for _, want := range []string{"render pass failed", "pass=3", "stack=frame"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q should contain %q", out, want)
		}
	}

	if !strings.Contains(out, "kind=structure") {
		t.Errorf("log output %q should contain the kind", out)
	}

	buf.Reset()
	h.HandlePanic(&PanicError{Op: "listener", Kind: KindListener, Value: "oops"})
	for _, want := range []string{"op=listener", "kind=listener"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log output %q should contain %q", buf.String(), want)
		}
	}
}

type testHandler struct {
	onRender func(*RenderError)
	onPanic  func(*PanicError)
}

func (h *testHandler) HandleRenderError(err *RenderError) {
	if h.onRender != nil {
		h.onRender(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
