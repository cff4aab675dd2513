package pkgrouter

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	routeUnmatched = "unmatched"
	methodOther    = "other"
)

type routeContextKey struct{}

// routeHolder is filled in by the matched route so metrics are labeled by
// pattern instead of raw path.
type routeHolder struct {
	pattern string
}

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	reg.MustRegister(m.requests, m.duration)
	return m
}

func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		holder := &routeHolder{pattern: routeUnmatched}
		r = r.WithContext(context.WithValue(r.Context(), routeContextKey{}, holder))

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		method := metricMethod(r.Method)
		m.requests.WithLabelValues(method, holder.pattern, strconv.Itoa(rec.statusCode())).Inc()
		m.duration.WithLabelValues(method, holder.pattern).Observe(time.Since(start).Seconds())
	})
}

// metricMethod folds methods outside the standard set into one label value,
// since clients choose the method freely.
func metricMethod(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodConnect,
		http.MethodOptions, http.MethodTrace:
		return method
	default:
		return methodOther
	}
}

func tagRoute(pattern string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if holder, ok := r.Context().Value(routeContextKey{}).(*routeHolder); ok {
				holder.pattern = pattern
			}
			next.ServeHTTP(w, r)
		})
	}
}
