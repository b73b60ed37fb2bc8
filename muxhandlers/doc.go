// Package muxhandlers provides HTTP middleware for gorilla/mux routers.
//
// # Request ID Middleware
//
// RequestIDMiddleware assigns every request an ID, stores it in the request
// context and echoes it in the X-Request-ID response header. The other
// middlewares in this package add it to their log records.
//
//	r.Use(muxhandlers.RequestIDMiddleware(muxhandlers.RequestIDConfig{
//	    TrustIncoming: true,
//	}))
//
// # Recovery Middleware
//
// RecoveryMiddleware recovers from panics in downstream handlers, answers
// with 500 Internal Server Error and logs the panic through log/slog.
//
//	r.Use(muxhandlers.RecoveryMiddleware(muxhandlers.RecoveryConfig{
//	    Logger:     logger,
//	    PrintStack: true,
//	}))
//
// # Access Log Middleware
//
// AccessLogMiddleware writes one structured record per request:
//
//	r.Use(muxhandlers.AccessLogMiddleware(muxhandlers.AccessLogConfig{
//	    Logger:    logger,
//	    SkipPaths: []string{"/healthz"},
//	}))
//
// Register RequestIDMiddleware first so the ID is available to the others.
package muxhandlers
