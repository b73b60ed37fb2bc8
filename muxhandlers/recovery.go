package muxhandlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gorilla/mux"
)

// RecoveryConfig configures the Recovery middleware.
type RecoveryConfig struct {
	// Logger receives one error record per recovered panic.
	// Defaults to slog.Default().
	Logger *slog.Logger

	// PrintStack adds the goroutine stack to the log record.
	PrintStack bool
}

// RecoveryMiddleware returns a middleware that turns a panic in a downstream
// handler into a 500 Internal Server Error response and an error log record.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func RecoveryMiddleware(cfg RecoveryConfig) mux.MiddlewareFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rv := recover()
				if rv == nil {
					return
				}
				if rv == http.ErrAbortHandler {
					panic(rv)
				}

				attrs := []any{
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("panic", fmt.Sprint(rv)),
				}
				if id := RequestIDFromContext(r.Context()); id != "" {
					attrs = append(attrs, slog.String("request_id", id))
				}
				if cfg.PrintStack {
					attrs = append(attrs, slog.String("stack", string(debug.Stack())))
				}
				logger.ErrorContext(r.Context(), "panic recovered", attrs...)

				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
