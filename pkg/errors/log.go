package errors

import (
	"log/slog"
)

// LogHandler is an ErrorHandler that writes reports to a structured logger.
type LogHandler struct {
	// Logger receives the reports. Nil means slog.Default().
	Logger *slog.Logger
	// Verbose adds stack traces to the log records.
	Verbose bool
}

func (h *LogHandler) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// HandleRenderError logs a RenderError.
func (h *LogHandler) HandleRenderError(err *RenderError) {
	if err == nil {
		return
	}
	attrs := []any{"pass", err.Pass, "kind", err.Kind, "error", err.Err}
	if h.Verbose {
		var mount *MountError
		var p *PanicError
		switch {
		case As(err, &mount) && mount.StackTrace != "":
			attrs = append(attrs, "stack", mount.StackTrace)
		case As(err, &p) && p.StackTrace != "":
			attrs = append(attrs, "stack", p.StackTrace)
		}
	}
	h.logger().Error("render pass failed", attrs...)
}

// HandlePanic logs a PanicError.
func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	attrs := []any{"op", err.Op, "kind", err.Kind, "value", err.Value}
	if h.Verbose && err.StackTrace != "" {
		attrs = append(attrs, "stack", err.StackTrace)
	}
	h.logger().Error("recovered panic", attrs...)
}
