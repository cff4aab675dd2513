package pkglog

import (
	"context"
	"log/slog"
)

type requestIDContextKey struct{}

type scopeContextKey struct{}

// GetRequestID returns the request id stored in the context, or "" when none is set.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

// SetRequestID stores a request id into the context.
//
// An id already present in ctx is kept; a request is identified once.
func SetRequestID(ctx context.Context, id string) context.Context {
	if GetRequestID(ctx) != "" || id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

// WithScope returns a context whose log records carry attrs in addition to
// any scope attributes already present.
func WithScope(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	parent := scopeAttrs(ctx)
	merged := make([]slog.Attr, 0, len(parent)+len(attrs))
	merged = append(merged, parent...)
	merged = append(merged, attrs...)
	return context.WithValue(ctx, scopeContextKey{}, merged)
}

func scopeAttrs(ctx context.Context) []slog.Attr {
	attrs, _ := ctx.Value(scopeContextKey{}).([]slog.Attr)
	return attrs
}
