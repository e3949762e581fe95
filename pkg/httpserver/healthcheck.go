package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/numcheck/pkg/logger"
)

// HealthCheckHandler serves liveness and readiness probes.
//
//   - Liveness: with no dependency functions it always returns 200 "ALIVE".
//   - Readiness: every function runs with the request context; 200 "READY"
//     when all succeed, 503 "NOT_READY" otherwise.
func HealthCheckHandler(log *slog.Logger, funcs ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = logger.Discard()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if len(funcs) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, f := range funcs {
			if err := f(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
