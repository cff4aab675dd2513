package pkgrouter

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shandysiswandi/goscaffold/internal/pkg/pkglog"
)

type staticGenerator struct {
	value string
	calls int
}

func (g *staticGenerator) Generate() string {
	g.calls++
	return g.value
}

// captureLogs routes the default logger into a buffer using the production
// handler and returns the buffer.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(pkglog.NewHandler(pkglog.Options{Service: "test", Writer: buf})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var lines []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var line map[string]any
		if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
			t.Fatalf("decode log line: %v (%s)", err, sc.Text())
		}
		lines = append(lines, line)
	}
	return lines
}

func findLog(lines []map[string]any, msg string) map[string]any {
	for _, line := range lines {
		if line["msg"] == msg {
			return line
		}
	}
	return nil
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v (%s)", err, rec.Body.String())
	}
	return body
}

func TestRedactHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer secret")
	headers.Set("Proxy-Authorization", "Basic secret")
	headers.Add("Cookie", "a=1")
	headers.Add("Cookie", "b=2")
	headers.Set("Set-Cookie", "session=secret")
	headers.Set("X-Trace", "ok")

	redacted := redactHeaders(headers)
	for _, key := range []string{"Authorization", "Proxy-Authorization", "Cookie", "Set-Cookie"} {
		if got := redacted.Values(key); len(got) != 1 || got[0] != RedactedValue {
			t.Fatalf("expected %s to be redacted, got %v", key, got)
		}
	}
	if got := redacted.Get("X-Trace"); got != "ok" {
		t.Fatalf("expected X-Trace to stay, got %q", got)
	}
	if got := headers.Get("Authorization"); got != "Bearer secret" {
		t.Fatalf("expected original headers unchanged, got %q", got)
	}
	if got := redactHeaders(nil); got == nil {
		t.Fatalf("expected empty header map for nil input")
	}
}

func TestInternalFrames(t *testing.T) {
	stack := []byte("goroutine 1 [running]:\n" +
		"main.main()\n" +
		"\t/home/dev/goscaffold/internal/meta/inbound/http.go:42 +0x1d\n" +
		"\t/usr/local/go/src/net/http/server.go:2166 +0x29\n")

	frames := internalFrames(stack)
	if len(frames) != 1 || frames[0] != "internal/meta/inbound/http.go:42" {
		t.Fatalf("unexpected frames: %v", frames)
	}
}
