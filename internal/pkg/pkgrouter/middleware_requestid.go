package pkgrouter

import (
	"net/http"

	"github.com/shandysiswandi/goscaffold/internal/pkg/pkglog"
)

// Generator generates a unique string (used for request IDs).
type Generator interface {
	Generate() string
}

// HeaderRequestID is the response header carrying the request id.
const HeaderRequestID = "X-Request-ID"

// middlewareRequestID assigns the request id. It runs first so every later
// stage, including logging, sees the same id. Client supplied ids are not
// trusted.
func middlewareRequestID(uid Generator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := pkglog.GetRequestID(r.Context())
			if id == "" {
				id = uid.Generate()
				r = r.WithContext(pkglog.SetRequestID(r.Context(), id))
			}

			w.Header().Set(HeaderRequestID, id)

			next.ServeHTTP(w, r)
		})
	}
}
