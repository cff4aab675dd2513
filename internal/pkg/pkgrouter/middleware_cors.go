package pkgrouter

import (
	"net/http"

	"github.com/rs/cors"
)

// MiddlewareCORS answers preflight requests and sets CORS headers. Install
// it with Router.Use so preflights still get a request id and are logged.
func MiddlewareCORS(opts cors.Options) Middleware {
	return cors.New(opts).Handler
}

// DefaultCORSOptions allows any origin for the usual REST methods and lets
// browsers read the request id header.
func DefaultCORSOptions() cors.Options {
	return cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{HeaderRequestID},
	}
}
