package middleware

import (
	"context"
	"net/http"
	"time"
)

type requestObserver interface {
	ObserveRequest(method, route string, status int, d time.Duration)
	InFlight(delta float64)
}

type routeKey struct{}

type routeHolder struct {
	pattern string
}

// Metrics records request count, latency and in-flight requests labelled by
// the matched route pattern. Handlers must be wrapped with Route so the
// pattern chosen by the mux is visible here.
func Metrics(obs requestObserver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			obs.InFlight(1)
			defer obs.InFlight(-1)

			holder := &routeHolder{}
			ctx := context.WithValue(r.Context(), routeKey{}, holder)
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r.WithContext(ctx))

			route := holder.pattern
			if route == "" {
				route = "unmatched"
			}
			obs.ObserveRequest(r.Method, route, sw.status, time.Since(start))
		})
	}
}

// Route publishes the mux pattern of the handling route to Metrics.
func Route(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h, ok := r.Context().Value(routeKey{}).(*routeHolder); ok {
			h.pattern = r.Pattern
		}
		next.ServeHTTP(w, r)
	})
}
