package middleware

import (
	"context"
	"net/http"
)

// sessionIDKey is the context key for storing the component session ID.
type sessionIDKey struct{}

// WithSessionID returns a new context with the given session ID stored in it.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext extracts the session ID from the context.
// Returns an empty string if the request carried no session cookie.
func SessionIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionIDKey{}).(string); ok {
		return id
	}
	return ""
}

// Session returns middleware that reads the component session cookie and
// stores its value in the request context. It never creates sessions:
// handlers mount a new component when the ID is missing or has expired.
func Session(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(cookieName)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), c.Value)))
		})
	}
}
