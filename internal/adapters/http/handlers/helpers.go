package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/contact-form/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contact-form/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/contact-form/internal/domain"
	"github.com/jsamuelsen11/contact-form/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form/internal/ports"
)

// SessionCookie describes the cookie that carries the component session ID.
type SessionCookie struct {
	Name   string
	Secure bool
}

// For returns the cookie that binds a browser to sessionID.
func (c SessionCookie) For(sessionID string) *http.Cookie {
	return &http.Cookie{
		Name:     c.Name,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c SessionCookie) set(w http.ResponseWriter, id string) {
	http.SetCookie(w, c.For(id))
}

func (c SessionCookie) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionOp is one component operation against a known session.
type sessionOp func(ctx context.Context, sessionID string) (contact.Snapshot, error)

// withSession runs op against the request's session. When the request has
// no session, or its session expired, a fresh component is mounted, the
// cookie is (re)issued and op runs against the new session.
func withSession(ctx context.Context, w http.ResponseWriter, r *http.Request, svc ports.ContactService, cookie SessionCookie, op sessionOp) (contact.Snapshot, error) {
	if id := sessionID(r); id != "" {
		snap, err := op(ctx, id)
		if !errors.Is(err, domain.ErrNotFound) {
			return snap, err
		}
	}

	id, _, err := svc.Open(ctx)
	if err != nil {
		return contact.Snapshot{}, err
	}
	cookie.set(w, id)
	return op(ctx, id)
}

// sessionID returns the session ID carried by the request cookie, or "".
func sessionID(r *http.Request) string {
	return middleware.SessionIDFromContext(r.Context())
}

// parseField extracts and validates the {field} path parameter.
func parseField(r *http.Request) (contact.Field, error) {
	return contact.ParseField(chi.URLParam(r, "field"))
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// maxJSONBodyBytes is the maximum allowed size for a JSON request body (1 MB).
const maxJSONBodyBytes = 1 << 20

// decodeJSONBody decodes the request body as JSON into dst. The body is
// limited to maxJSONBodyBytes to prevent resource exhaustion. On failure,
// it writes a 400 error response and returns false.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	return true
}

// validatable is implemented by request DTOs that support validation.
type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the JSON request body into dst and validates it.
// On decode or validation failure it writes an error response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if !decodeJSONBody(w, r, dst) {
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
