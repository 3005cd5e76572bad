// Package attr builds slog attributes shared by every log line the service writes.
package attr

import (
	"context"
	"log/slog"
)

type correlationIDKey struct{}

// WithCorrelationID stores id on ctx for later log lines.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// CorrelationID returns the id stored on ctx, or "" when there is none.
func CorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// ExtractCorrelationID returns the correlation_id attribute for ctx.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	return slog.String("correlation_id", CorrelationID(ctx))
}

func String(key, value string) slog.Attr {
	return slog.String(key, value)
}

func Any(key string, value any) slog.Attr {
	return slog.Any(key, value)
}

// Error renders err under the "error" key; nil renders as an empty string.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}
