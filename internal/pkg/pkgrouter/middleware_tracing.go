package pkgrouter

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/shandysiswandi/goscaffold/internal/pkg/pkglog"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgversion"
)

// RedactedValue replaces the value of sensitive headers in logs.
const RedactedValue = "[REDACTED]"

//nolint:gochecknoglobals // global for fast reuse
var sensitiveHeaders = []string{
	"Authorization",
	"Proxy-Authorization",
	"Cookie",
	"Set-Cookie",
}

func redactHeaders(headers http.Header) http.Header {
	result := headers.Clone()
	if result == nil {
		return http.Header{}
	}
	for _, key := range sensitiveHeaders {
		if _, found := result[key]; found {
			result[key] = []string{RedactedValue}
		}
	}
	return result
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRecorder) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(p)
	w.bytes += n
	return n, err
}

func (w *statusRecorder) statusCode() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

func (w *statusRecorder) Flush() {
	if f, ok := w.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

//nolint:err113 // it use dynamic error
func (w *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("hijack not supported")
	}
	return h.Hijack()
}

func (w *statusRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// middlewareTracing opens the request log scope and logs the request and
// its response. Errors are data here: an error status is logged like any
// other response.
func middlewareTracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := pkglog.WithScope(r.Context(),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("http_version", r.Proto),
			slog.String("api_version", pkgversion.Version),
		)
		r = r.WithContext(ctx)

		slog.InfoContext(ctx, "request received", "headers", redactHeaders(r.Header))

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}

		defer func() {
			// Only panics the recoverer lets through get here; the server
			// owns the failure response for those.
			if rvr := recover(); rvr != nil {
				slog.ErrorContext(ctx, "request failed",
					"because", rvr,
					"duration", time.Since(start).Milliseconds(),
				)
				panic(rvr)
			}
		}()

		next.ServeHTTP(rec, r)

		duration := time.Since(start).Milliseconds()
		if rec.status == 0 && ctx.Err() != nil {
			slog.WarnContext(ctx, "request canceled", "duration", duration, "because", ctx.Err())
			return
		}

		slog.InfoContext(ctx, "response sent",
			"status", rec.statusCode(),
			"duration", duration,
			"bytes", rec.bytes,
			"headers", redactHeaders(rec.Header()),
		)
	})
}
