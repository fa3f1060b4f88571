package ports

import (
	"context"

	"github.com/jsamuelsen11/contact-form/internal/domain/contact"
)

// SessionStore holds mounted form components keyed by session ID.
// Implemented by the sessions adapter; called by the application layer.
// Implementations serialize access per session so a Form is never touched by
// two goroutines at once.
type SessionStore interface {
	// Create mounts a new form and returns its session ID.
	Create(ctx context.Context) (string, error)

	// View returns a snapshot of the session's form without counting as an
	// event. Returns domain.ErrNotFound for unknown or expired sessions.
	View(ctx context.Context, sessionID string) (contact.Snapshot, error)

	// Update runs fn against the session's form while holding the session
	// lock and returns the resulting snapshot. The snapshot is returned even
	// when fn fails so callers can re-render. Returns domain.ErrNotFound for
	// unknown sessions and domain.ErrRateLimited when the session exceeded
	// its event budget (fn is not called in either case).
	Update(ctx context.Context, sessionID string, fn func(*contact.Form) error) (contact.Snapshot, error)

	// Delete discards a session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, sessionID string) error

	// Len returns the number of live sessions.
	Len() int
}
