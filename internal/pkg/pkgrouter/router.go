package pkgrouter

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkgerror"
	"github.com/shandysiswandi/goscaffold/internal/pkg/pkguid"
)

// MsgEndpointNotFound is the message of the catch-all 404 error.
const MsgEndpointNotFound = "requested endpoint not found"

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Router is an http.Handler that wraps httprouter and a middleware chain.
//
// The global middleware wraps the whole dispatcher, so unmatched requests go
// through the same pipeline as registered routes.
type Router struct {
	hr       *httprouter.Router
	registry *prometheus.Registry
	mws      []Middleware
	root     http.Handler
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(uid Generator) *Router {
	if uid == nil {
		uid = pkguid.NewUUID()
	}

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pkgerror.NewNotFound(MsgEndpointNotFound).Write(r.Context(), w)
	})

	// Every miss, including a known path with another method, falls through
	// to the catch-all.
	hr := &httprouter.Router{
		RedirectTrailingSlash:  false,
		RedirectFixedPath:      false,
		HandleMethodNotAllowed: false,
		HandleOPTIONS:          false,
		NotFound:               notFound,
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := newMetrics(registry)

	ro := &Router{
		hr:       hr,
		registry: registry,
		mws: []Middleware{
			middlewareRequestID(uid),
			middlewareTracing,
			m.middleware,
			middlewareRecoverer,
		},
	}
	ro.root = Chain(hr, ro.mws...)

	ro.Handle(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return ro
}

// Use appends middleware to the global stack, inside the existing ones.
func (r *Router) Use(mws ...Middleware) {
	r.mws = joinMiddleware(r.mws, mws)
	r.root = Chain(r.hr, r.mws...)
}

// Registry returns the prometheus registry served on /metrics.
func (r *Router) Registry() *prometheus.Registry {
	return r.registry
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

// PUT registers a PUT endpoint using the application Handler signature.
func (r *Router) PUT(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPut, path, h, mws...)
}

// PATCH registers a PATCH endpoint using the application Handler signature.
func (r *Router) PATCH(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPatch, path, h, mws...)
}

// DELETE registers a DELETE endpoint using the application Handler signature.
func (r *Router) DELETE(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodDelete, path, h, mws...)
}

// Handle registers a raw http.Handler with the router.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(h, joinMiddleware([]Middleware{tagRoute(path)}, mws)...))
}

// Group returns a sub-router whose routes are mounted under prefix.
func (r *Router) Group(prefix string, mws ...Middleware) *Group {
	return &Group{router: r, prefix: prefix, mws: mws}
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.Handle(method, path, http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(re.Context(), re)
		if err != nil {
			pkgerror.FromError(err).Write(re.Context(), w)
			return
		}
		writeResponse(w, resp)
	}), mws...)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.root.ServeHTTP(w, req)
}

// Group registers routes under a common path prefix and middleware.
type Group struct {
	router *Router
	prefix string
	mws    []Middleware
}

// GET registers a GET endpoint at prefix+path.
func (g *Group) GET(path string, h Handler, mws ...Middleware) {
	g.router.endpoint(http.MethodGet, g.prefix+path, h, joinMiddleware(g.mws, mws)...)
}

// POST registers a POST endpoint at prefix+path.
func (g *Group) POST(path string, h Handler, mws ...Middleware) {
	g.router.endpoint(http.MethodPost, g.prefix+path, h, joinMiddleware(g.mws, mws)...)
}

// Handle registers a raw http.Handler at prefix+path.
func (g *Group) Handle(method, path string, h http.Handler, mws ...Middleware) {
	g.router.Handle(method, g.prefix+path, h, joinMiddleware(g.mws, mws)...)
}

// Group nests another prefix under g.
func (g *Group) Group(prefix string, mws ...Middleware) *Group {
	return &Group{router: g.router, prefix: g.prefix + prefix, mws: joinMiddleware(g.mws, mws)}
}

func writeResponse(w http.ResponseWriter, resp any) {
	code := http.StatusOK
	if sc, ok := resp.(interface {
		StatusCode() int
	}); ok {
		code = sc.StatusCode()
	}

	if code == http.StatusNoContent || resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, resp, code)
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
	}
}
