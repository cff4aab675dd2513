package pkglog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/getsentry/sentry-go"
)

// Options configures InitLogging.
type Options struct {
	Service string
	Version string
	Level   slog.Level
	// Sentry forwards error records to the current Sentry hub. sentry.Init
	// must have been called beforehand.
	Sentry bool
	// Writer defaults to stdout.
	Writer io.Writer
}

// InitLogging configures the default slog logger for the application.
//
// The logger writes JSON and normalizes a few common fields to make logs
// easier to query (for example, "ts" and "severity"). It is meant to be
// called once, at process start.
func InitLogging(opts Options) {
	slog.SetDefault(slog.New(NewHandler(opts)))
}

// NewHandler builds the handler installed by InitLogging.
func NewHandler(opts Options) slog.Handler {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	var handler slog.Handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       opts.Level,
		AddSource:   true,
		ReplaceAttr: replaceAttr,
	})

	if opts.Sentry {
		handler = &sentryHandler{Handler: handler, capture: captureToHub}
	}

	return &contextHandler{Handler: handler, service: opts.Service, version: opts.Version}
}

// ParseLevel maps a textual level ("debug", "info", "warn", "error") to a
// slog.Level, falling back to info.
func ParseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		a.Key = "severity"
	case slog.SourceKey:
		if src, ok := a.Value.Any().(*slog.Source); ok {
			if strings.Contains(src.File, "/internal/") {
				relPath := filepath.Join("internal", strings.SplitAfter(src.File, "/internal/")[1])
				return slog.Attr{
					Key:   "file",
					Value: slog.StringValue(fmt.Sprintf("%s:%d", relPath, src.Line)),
				}
			}
			return slog.Attr{}
		}
	}
	return a
}

type contextHandler struct {
	slog.Handler
	service string
	version string
}

func (h *contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if id := GetRequestID(ctx); id != "" {
		r.AddAttrs(slog.String("request_id", id))
	}
	r.AddAttrs(scopeAttrs(ctx)...)
	if h.service != "" {
		r.AddAttrs(slog.String("service", h.service))
	}
	if h.version != "" {
		r.AddAttrs(slog.String("version", h.version))
	}

	return h.Handler.Handle(ctx, r)
}

func (h *contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithAttrs(attrs), service: h.service, version: h.version}
}

func (h *contextHandler) WithGroup(name string) slog.Handler {
	return &contextHandler{Handler: h.Handler.WithGroup(name), service: h.service, version: h.version}
}

func captureToHub(event *sentry.Event) {
	sentry.CurrentHub().CaptureEvent(event)
}
