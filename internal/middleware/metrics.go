package middleware

import (
	"net/http"
	"time"

	"github.com/avc-dev/referral-service/internal/metrics"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute is the route label for requests that matched no pattern.
const unmatchedRoute = "unmatched"

// Metrics records request count and duration labelled by chi route pattern,
// so that path parameters do not blow up label cardinality.
func Metrics(m *metrics.Metrics) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			done := m.RequestStarted()
			defer done()

			start := time.Now()
			wrapped := newResponseWriter(w)

			next.ServeHTTP(wrapped, r)

			route := unmatchedRoute
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			m.ObserveRequest(r.Method, route, wrapped.statusCode, time.Since(start))
		})
	}
}
