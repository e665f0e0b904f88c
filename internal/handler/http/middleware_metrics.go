package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// withMetrics instruments every request on the shared collector.
//
// The in-progress gauge is incremented before the chain runs and the
// completion observation happens in a defer, so the gauge decrement and the
// duration/error recording occur exactly once per request on every exit
// path, including a panic recovered further down the chain.
//
// The route label prefers the chi route pattern (e.g. "/api/v1/movie/{id}/details")
// over the raw path to keep metric cardinality bounded; requests that never
// matched a route fall back to the raw path.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.collector.RequestStarted()
		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		defer func() {
			route := r.URL.Path
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				if pattern := routeCtx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}

			status := lw.status
			if status == 0 {
				status = http.StatusOK
			}

			h.collector.RequestFinished(r.Method, route, status, time.Since(start))
		}()

		next.ServeHTTP(lw, r)
	})
}
