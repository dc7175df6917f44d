package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Middleware records request counts, latency and in-flight requests per
// route pattern.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HTTPRequestsInFlight.Inc()
		defer HTTPRequestsInFlight.Dec()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		route := routePattern(r)
		HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(StatusOf(ww))).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(elapsed.Seconds())
	})
}

// StatusOf is the status a wrapped writer sent; handlers that never write
// one answered 200.
func StatusOf(ww middleware.WrapResponseWriter) int {
	if code := ww.Status(); code != 0 {
		return code
	}
	return http.StatusOK
}

// unmatched requests share one label so 404 scans cannot grow the series
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.RoutePattern() == "" {
		return UnmatchedRoute
	}
	return rctx.RoutePattern()
}
