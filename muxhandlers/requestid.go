package muxhandlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// maxIncomingIDLength bounds request IDs accepted from clients.
const maxIncomingIDLength = 128

type requestIDKey struct{}

// RequestIDFromContext returns the request ID stored by RequestIDMiddleware,
// or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}

	return ""
}

// RequestIDConfig configures the Request ID middleware.
type RequestIDConfig struct {
	// HeaderName is the header carrying the request ID.
	// Defaults to "X-Request-ID".
	HeaderName string

	// Generate returns a new ID. Defaults to GenerateUUIDv4.
	Generate func(r *http.Request) string

	// TrustIncoming reuses a well-formed ID sent by the client instead of
	// generating a new one.
	TrustIncoming bool
}

// RequestIDMiddleware returns a middleware that assigns every request an ID.
// The ID is stored in the request context, set on the request header for
// downstream handlers and echoed in the response header.
func RequestIDMiddleware(cfg RequestIDConfig) mux.MiddlewareFunc {
	headerName := cfg.HeaderName
	if headerName == "" {
		headerName = "X-Request-ID"
	}

	generate := cfg.Generate
	if generate == nil {
		generate = GenerateUUIDv4
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string
			if cfg.TrustIncoming {
				if incoming := r.Header.Get(headerName); validRequestID(incoming) {
					id = incoming
				}
			}

			if id == "" {
				id = generate(r)
			}

			if id != "" {
				r.Header.Set(headerName, id)
				w.Header().Set(headerName, id)
				r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// validRequestID reports whether a client-supplied ID is short and made of
// visible ASCII only, so it is safe to log and echo back.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxIncomingIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}

// GenerateUUIDv4 returns a new random UUID.
//
// See: https://www.rfc-editor.org/rfc/rfc9562#section-5.4
func GenerateUUIDv4(_ *http.Request) string {
	return uuid.New().String()
}

// GenerateUUIDv7 returns a new time-ordered UUID.
//
// See: https://www.rfc-editor.org/rfc/rfc9562#section-5.7
func GenerateUUIDv7(_ *http.Request) string {
	return uuid.Must(uuid.NewV7()).String()
}
