package pkgrouter

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgerror"
)

//nolint:contextcheck // request context is used
func middlewareRecoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rvr := recover(); rvr != nil {
				//nolint:err113,errorlint // this must compare directly
				if rvr == http.ErrAbortHandler {
					panic(rvr)
				}

				slog.ErrorContext(r.Context(), "panic on the server",
					"because", rvr,
					"stack", internalFrames(debug.Stack()),
				)

				if r.Header.Get("Connection") == "Upgrade" {
					return
				}

				pkgerror.NewServer(fmt.Errorf("panic: %v", rvr)).Write(r.Context(), w)
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// internalFrames keeps the "internal/...go:line" locations of a stack dump.
func internalFrames(stack []byte) []string {
	var frames []string
	for _, line := range strings.Split(string(stack), "\n") {
		line = strings.TrimSpace(line)
		idx := strings.Index(line, "/internal/")
		if idx == -1 || !strings.Contains(line, ".go:") {
			continue
		}
		frame := line[idx+1:]
		if end := strings.Index(frame, " "); end != -1 {
			frame = frame[:end]
		}
		frames = append(frames, frame)
	}
	return frames
}
