package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/contact-form/internal/platform/telemetry"
)

// Chain composes multiple middleware into a single middleware. The first
// argument becomes the outermost middleware (executed first on request,
// last on response). This matches the intuitive reading order:
//
//	Chain(RequestID(), Session(name), Logging(logger))(handler)
//
// is equivalent to:
//
//	RequestID()(Session(name)(Logging(logger)(handler)))
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			handler = middlewares[i](handler)
		}
		return handler
	}
}

// Pipeline returns the service's request pipeline:
//
//	RequestID → Session → CorrelationID → OpenTelemetry → Logging → Recovery
//
// Session resolves the form session cookie before CorrelationID and Logging
// read it. metrics may be nil.
func Pipeline(logger *slog.Logger, metrics *telemetry.Metrics, sessionCookie string) func(http.Handler) http.Handler {
	return Chain(
		RequestID(),
		Session(sessionCookie),
		CorrelationID(),
		OpenTelemetry(metrics),
		Logging(logger),
		Recovery(logger),
	)
}
