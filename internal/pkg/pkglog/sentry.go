package pkglog

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
)

// sentryHandler mirrors error records to Sentry before passing them on.
type sentryHandler struct {
	slog.Handler
	capture func(*sentry.Event)
	attrs   []slog.Attr
}

func (h *sentryHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		h.capture(h.event(r))
	}
	return h.Handler.Handle(ctx, r)
}

func (h *sentryHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &sentryHandler{Handler: h.Handler.WithAttrs(attrs), capture: h.capture, attrs: merged}
}

func (h *sentryHandler) WithGroup(name string) slog.Handler {
	return &sentryHandler{Handler: h.Handler.WithGroup(name), capture: h.capture, attrs: h.attrs}
}

func (h *sentryHandler) event(r slog.Record) *sentry.Event {
	event := sentry.NewEvent()
	event.Level = sentry.LevelError
	event.Message = r.Message
	event.Timestamp = r.Time

	add := func(a slog.Attr) {
		value := a.Value.Resolve().Any()
		if err, ok := value.(error); ok {
			value = err.Error()
		}
		switch a.Key {
		case "request_id", "error_id":
			if s, ok := value.(string); ok {
				event.Tags[a.Key] = s
				return
			}
		}
		event.Extra[a.Key] = value
	}

	for _, a := range h.attrs {
		add(a)
	}
	r.Attrs(func(a slog.Attr) bool {
		add(a)
		return true
	})

	return event
}
