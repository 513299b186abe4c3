package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ftfltech/careers-api/internal/api/shared"
	"github.com/ftfltech/careers-api/internal/platform/logger"
)

// Trace assigns a trace ID to every request and stores a logger carrying it in
// the request context. Handlers and services pick it up through
// logger.FromContextOrDefault, so all log lines of a request correlate.
func Trace(base *slog.Logger) func(http.Handler) http.Handler {
	if base == nil {
		base = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := shared.SetTraceID(r.Context())
			log := base.With(slog.String("trace_id", shared.GetTraceID(ctx)))
			ctx = logger.WithLogger(ctx, log)

			log.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
