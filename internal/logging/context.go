package logging

import (
	"context"
	"log/slog"
	"strings"
)

// Structured field keys shared by every component.
const (
	FieldComponent = "component"
	FieldRunID     = "run_id"
	// FieldEventType classifies warnings and errors for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint carries the next step an operator should take.
	FieldErrorHint = "error_hint"
)

type runIDKey struct{}

// WithRunID stores the per-invocation identifier. Blank ids are ignored.
func WithRunID(ctx context.Context, id string) context.Context {
	id = strings.TrimSpace(id)
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunIDFromContext returns the identifier stored by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}

// ContextFields lists the attributes WithContext adds for ctx.
func ContextFields(ctx context.Context) []slog.Attr {
	id, ok := RunIDFromContext(ctx)
	if !ok {
		return nil
	}
	return []slog.Attr{slog.String(FieldRunID, id)}
}

// WithContext returns logger tagged with the fields carried by ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	if fields := ContextFields(ctx); len(fields) > 0 {
		return logger.With(Args(fields...)...)
	}
	return logger
}
