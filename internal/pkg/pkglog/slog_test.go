package pkglog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
)

type captureHandler struct {
	attrs map[string]slog.Value
}

func (h *captureHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (h *captureHandler) Handle(_ context.Context, r slog.Record) error {
	if h.attrs == nil {
		h.attrs = make(map[string]slog.Value)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.attrs[a.Key] = a.Value
		return true
	})
	return nil
}

func (h *captureHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *captureHandler) WithGroup(_ string) slog.Handler {
	return h
}

func TestContextHandlerAddsServiceRequestIDAndScope(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture, service: "goscaffold"}

	ctx := SetRequestID(context.Background(), "rid-abc")
	ctx = WithScope(ctx, slog.String("method", "GET"), slog.String("path", "/meta/health"))
	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)

	if err := handler.Handle(ctx, rec); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if got := capture.attrs["service"].String(); got != "goscaffold" {
		t.Fatalf("expected service=goscaffold, got %q", got)
	}
	if got := capture.attrs["request_id"].String(); got != "rid-abc" {
		t.Fatalf("expected request_id=rid-abc, got %q", got)
	}
	if got := capture.attrs["method"].String(); got != "GET" {
		t.Fatalf("expected method=GET, got %q", got)
	}
	if got := capture.attrs["path"].String(); got != "/meta/health" {
		t.Fatalf("expected path=/meta/health, got %q", got)
	}
}

func TestContextHandlerSkipsMissingRequestID(t *testing.T) {
	capture := &captureHandler{}
	handler := &contextHandler{Handler: capture, service: "goscaffold"}

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	if err := handler.Handle(context.Background(), rec); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if _, ok := capture.attrs["request_id"]; ok {
		t.Fatalf("did not expect request_id to be set")
	}
}

func TestNewHandlerWritesNormalizedJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(Options{Service: "goscaffold", Version: "1.2.3", Writer: &buf}))

	logger.InfoContext(SetRequestID(context.Background(), "rid-1"), "started", "port", 3000)

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v (%s)", err, buf.String())
	}
	for _, key := range []string{"ts", "severity", "msg", "request_id", "service", "port"} {
		if _, ok := line[key]; !ok {
			t.Fatalf("expected key %q in %v", key, line)
		}
	}
	if line["severity"] != "INFO" {
		t.Fatalf("unexpected severity: %v", line["severity"])
	}
	if line["version"] != "1.2.3" {
		t.Fatalf("unexpected version: %v", line["version"])
	}
}

func TestContextHandlerKeepsVersionAcrossWithAttrs(t *testing.T) {
	capture := &captureHandler{}
	var handler slog.Handler = &contextHandler{Handler: capture, service: "goscaffold", version: "0.1.0"}
	handler = handler.WithAttrs([]slog.Attr{slog.String("component", "db")}).WithGroup("g")

	rec := slog.NewRecord(time.Now(), slog.LevelInfo, "hello", 0)
	if err := handler.Handle(context.Background(), rec); err != nil {
		t.Fatalf("handle: %v", err)
	}

	if got := capture.attrs["version"].String(); got != "0.1.0" {
		t.Fatalf("expected version=0.1.0, got %q", got)
	}
	if got := capture.attrs["service"].String(); got != "goscaffold" {
		t.Fatalf("expected service=goscaffold, got %q", got)
	}
}

func TestNewHandlerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(Options{Writer: &buf, Level: slog.LevelWarn}))

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Fatalf("expected info record to be filtered, got %s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestSentryHandlerForwardsErrorsOnly(t *testing.T) {
	var events []*sentry.Event
	handler := &contextHandler{Handler: &sentryHandler{
		Handler: &captureHandler{},
		capture: func(e *sentry.Event) { events = append(events, e) },
	}}
	logger := slog.New(handler).With("component", "health")
	ctx := SetRequestID(context.Background(), "rid-9")

	logger.WarnContext(ctx, "client error")
	logger.ErrorContext(ctx, "server error", "error_id", "eid-1", "description", errors.New("boom"))

	if len(events) != 1 {
		t.Fatalf("expected one forwarded event, got %d", len(events))
	}
	ev := events[0]
	if ev.Message != "server error" {
		t.Fatalf("unexpected message: %q", ev.Message)
	}
	if ev.Tags["request_id"] != "rid-9" || ev.Tags["error_id"] != "eid-1" {
		t.Fatalf("unexpected tags: %v", ev.Tags)
	}
	if ev.Extra["description"] != "boom" {
		t.Fatalf("expected error rendered as string, got %v", ev.Extra["description"])
	}
	if ev.Extra["component"] != "health" {
		t.Fatalf("expected logger attrs to be forwarded, got %v", ev.Extra)
	}
}
