package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/contact-form/internal/adapters/http/dto"
)

// errInternalServer is the generic error returned to clients when a panic is
// recovered. The actual panic value and stack trace are logged but never
// exposed in the HTTP response.
var errInternalServer = errors.New("internal server error")

// Recovery returns middleware that recovers from panics in handlers. When a
// panic occurs the middleware logs the panic value, the stack trace and the
// request's identifiers, and returns an RFC 9457 500 response. If the
// response headers have already been written, only the log entry is
// emitted.
//
// Recovery sits innermost in the chain, inside Logging and OpenTelemetry,
// so the recovered 500 appears in the completion log and request metrics.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				if v := recover(); v != nil {
					ctx := r.Context()
					attrs := []any{
						slog.String("panic", fmt.Sprint(v)),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", RequestIDFromContext(ctx)),
						slog.String("correlation_id", CorrelationIDFromContext(ctx)),
					}
					if sessionID := SessionIDFromContext(ctx); sessionID != "" {
						attrs = append(attrs, slog.String("session_id", sessionID))
					}
					logger.ErrorContext(ctx, "panic recovered", attrs...)

					if !rw.headerWritten {
						dto.WriteErrorResponse(rw, r, errInternalServer)
					}
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}
