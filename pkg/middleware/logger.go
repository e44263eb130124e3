package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/docker/go-units"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request identifier in both directions.
const RequestIDHeader = "X-Request-ID"

// Logger returns middleware that logs one record per request after the
// wrapped handler returns. A request ID is taken from the X-Request-ID header
// or generated, and echoed on the response.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			id := r.Header.Get(RequestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, id)

			rw := newResponseWriter(w)
			next.ServeHTTP(rw, r)

			logger.Info(
				"request",
				"method", r.Method,
				"uri", r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"status", rw.Status(),
				"size", units.HumanSize(float64(rw.Size())),
				"duration", time.Since(start),
				"request_id", id,
			)
		})
	}
}
