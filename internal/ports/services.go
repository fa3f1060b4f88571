package ports

import (
	"context"

	"github.com/jsamuelsen11/contact-form/internal/domain/contact"
)

// ContactService defines the service port for the contact form component.
// Implemented by the application layer; called by inbound adapters (HTML
// handlers, the JSON API and the live websocket transport).
//
// Every method that takes a session ID returns domain.ErrNotFound when the
// session was never opened, was closed, or expired.
type ContactService interface {
	// Open mounts a new form component and returns its session ID together
	// with the initial (empty) state.
	Open(ctx context.Context) (string, contact.Snapshot, error)

	// Get returns the current state of a mounted component.
	Get(ctx context.Context, sessionID string) (contact.Snapshot, error)

	// Change applies a keystroke: the field value is replaced and only that
	// field is re-validated.
	// Returns domain.ErrValidation for unknown fields, contact.ErrSubmitted
	// once the form has been submitted, and domain.ErrRateLimited when the
	// session sends events faster than allowed.
	Change(ctx context.Context, sessionID string, field contact.Field, value string) (contact.Snapshot, error)

	// Submit validates all fields. A failed validation is not an error: the
	// returned snapshot carries the field errors and Submitted stays false.
	Submit(ctx context.Context, sessionID string) (contact.Snapshot, error)

	// Reset returns the component to its mount state.
	Reset(ctx context.Context, sessionID string) (contact.Snapshot, error)

	// Close unmounts the component and discards its state.
	Close(ctx context.Context, sessionID string) error
}
