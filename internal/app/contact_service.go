// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/contact-form/internal/domain"
	"github.com/jsamuelsen11/contact-form/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form/internal/platform/telemetry"
	"github.com/jsamuelsen11/contact-form/internal/ports"
)

// Compile-time check that ContactService implements ports.ContactService.
var _ ports.ContactService = (*ContactService)(nil)

// Event names recorded on metrics and logs.
const (
	EventChange = "change"
	EventSubmit = "submit"
	EventReset  = "reset"
)

// Event results.
const (
	resultOK       = "ok"
	resultInvalid  = "invalid"
	resultRejected = "rejected"
)

// ContactService implements ports.ContactService by dispatching component
// events to forms held in the SessionStore. The form owns every validation
// rule; the service adds structured logging and metrics but no business logic.
type ContactService struct {
	store   ports.SessionStore
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewContactService creates a ContactService. metrics may be nil to disable
// event counters. A nil logger is replaced with a no-op logger.
func NewContactService(store ports.SessionStore, metrics *telemetry.Metrics, logger *slog.Logger) *ContactService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ContactService{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Open mounts a new form component.
func (s *ContactService) Open(ctx context.Context) (string, contact.Snapshot, error) {
	id, err := s.store.Create(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to mount contact form",
			slog.String("operation", "Open"),
			slog.Any("error", err),
		)
		return "", contact.Snapshot{}, err
	}

	snap, err := s.store.View(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to read mounted contact form",
			slog.String("operation", "Open"),
			slog.String("session_id", id),
			slog.Any("error", err),
		)
		return "", contact.Snapshot{}, err
	}

	s.logger.InfoContext(ctx, "contact form mounted", slog.String("session_id", id))
	return id, snap, nil
}

// Get returns the current state of a mounted form.
func (s *ContactService) Get(ctx context.Context, sessionID string) (contact.Snapshot, error) {
	return s.store.View(ctx, sessionID)
}

// Change replaces one field value and re-validates that field.
func (s *ContactService) Change(ctx context.Context, sessionID string, field contact.Field, value string) (contact.Snapshot, error) {
	s.logger.DebugContext(ctx, "field changed",
		slog.String("session_id", sessionID),
		slog.String("field", field.String()),
		slog.Int("length", len(value)),
	)

	snap, err := s.store.Update(ctx, sessionID, func(f *contact.Form) error {
		return f.Change(field, value)
	})
	if err != nil {
		s.recordEvent(ctx, EventChange, resultRejected)
		s.logEventError(ctx, "Change", sessionID, err)
		return snap, err
	}

	if msg, invalid := snap.Errors[field]; invalid {
		s.recordEvent(ctx, EventChange, resultInvalid)
		s.recordFieldErrors(ctx, []contact.FieldError{{Field: field, Message: msg}})
	} else {
		s.recordEvent(ctx, EventChange, resultOK)
	}
	return snap, nil
}

// Submit validates every field. Validation failures are reported through the
// returned snapshot, not as an error.
func (s *ContactService) Submit(ctx context.Context, sessionID string) (contact.Snapshot, error) {
	var accepted bool
	snap, err := s.store.Update(ctx, sessionID, func(f *contact.Form) error {
		accepted = f.Submit()
		return nil
	})
	if err != nil {
		s.recordEvent(ctx, EventSubmit, resultRejected)
		s.logEventError(ctx, "Submit", sessionID, err)
		return snap, err
	}

	if !accepted {
		errs := snap.ErrorList()
		s.recordEvent(ctx, EventSubmit, resultInvalid)
		s.recordFieldErrors(ctx, errs)
		s.logger.InfoContext(ctx, "contact form submission rejected",
			slog.String("session_id", sessionID),
			slog.Int("error_count", len(errs)),
		)
		return snap, nil
	}

	s.recordEvent(ctx, EventSubmit, resultOK)
	s.logger.InfoContext(ctx, "contact form submitted",
		slog.String("session_id", sessionID),
		slog.Bool("has_message", snap.Summary != nil && snap.Summary.HasMessage()),
	)
	return snap, nil
}

// Reset returns the form to its mount state.
func (s *ContactService) Reset(ctx context.Context, sessionID string) (contact.Snapshot, error) {
	snap, err := s.store.Update(ctx, sessionID, func(f *contact.Form) error {
		f.Reset()
		return nil
	})
	if err != nil {
		s.recordEvent(ctx, EventReset, resultRejected)
		s.logEventError(ctx, "Reset", sessionID, err)
		return snap, err
	}

	s.recordEvent(ctx, EventReset, resultOK)
	s.logger.InfoContext(ctx, "contact form reset", slog.String("session_id", sessionID))
	return snap, nil
}

// Close unmounts the form.
func (s *ContactService) Close(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to unmount contact form",
			slog.String("operation", "Close"),
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
		return err
	}

	s.logger.InfoContext(ctx, "contact form unmounted", slog.String("session_id", sessionID))
	return nil
}

// logEventError logs at warn for expected client-side failures and at error
// for everything else.
func (s *ContactService) logEventError(ctx context.Context, op, sessionID string, err error) {
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrValidation) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, domain.ErrRateLimited) {
		level = slog.LevelWarn
	}
	s.logger.Log(ctx, level, "contact form event failed",
		slog.String("operation", op),
		slog.String("session_id", sessionID),
		slog.Any("error", err),
	)
}

func (s *ContactService) recordEvent(ctx context.Context, event, result string) {
	if s.metrics == nil {
		return
	}
	s.metrics.FormEventTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEvent.String(event),
		telemetry.AttrResult.String(result),
		telemetry.AttrTransport.String(TransportFromContext(ctx)),
	))
}

func (s *ContactService) recordFieldErrors(ctx context.Context, errs []contact.FieldError) {
	if s.metrics == nil {
		return
	}
	for _, fe := range errs {
		s.metrics.FormValidationErrorTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrField.String(fe.Field.String()),
		))
	}
}
