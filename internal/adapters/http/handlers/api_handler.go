package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jsamuelsen11/contact-form/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contact-form/internal/app"
	"github.com/jsamuelsen11/contact-form/internal/domain"
	"github.com/jsamuelsen11/contact-form/internal/ports"
)

// ContactAPIHandler exposes the contact form component as JSON. Reading the
// state mounts a component when needed; events require a live session.
type ContactAPIHandler struct {
	svc    ports.ContactService
	cookie SessionCookie
}

// NewContactAPIHandler creates a ContactAPIHandler with the given service port.
func NewContactAPIHandler(svc ports.ContactService, cookie SessionCookie) *ContactAPIHandler {
	return &ContactAPIHandler{svc: svc, cookie: cookie}
}

// GetState handles GET /api/v1/contact.
func (h *ContactAPIHandler) GetState(w http.ResponseWriter, r *http.Request) {
	snap, err := withSession(h.ctx(r), w, r, h.svc, h.cookie, h.svc.Get)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToContactStateResponse(snap))
}

// ChangeField handles PUT /api/v1/contact/fields/{field}.
func (h *ContactAPIHandler) ChangeField(w http.ResponseWriter, r *http.Request) {
	id, err := requireSession(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	field, err := parseField(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.FieldChangeRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	snap, err := h.svc.Change(h.ctx(r), id, field, *req.Value)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToContactStateResponse(snap))
}

// Submit handles POST /api/v1/contact/submit. A submission with invalid
// fields is answered with 422 and the per-field errors.
func (h *ContactAPIHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := requireSession(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	snap, err := h.svc.Submit(h.ctx(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var verr *domain.ValidationError
	if errors.As(snap.Err(), &verr) && !snap.Submitted {
		dto.WriteSubmissionErrors(w, r, verr)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToContactStateResponse(snap))
}

// Reset handles POST /api/v1/contact/reset.
func (h *ContactAPIHandler) Reset(w http.ResponseWriter, r *http.Request) {
	id, err := requireSession(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	snap, err := h.svc.Reset(h.ctx(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToContactStateResponse(snap))
}

// Close handles DELETE /api/v1/contact.
func (h *ContactAPIHandler) Close(w http.ResponseWriter, r *http.Request) {
	if id := sessionID(r); id != "" {
		if err := h.svc.Close(h.ctx(r), id); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}
	h.cookie.clear(w)
	w.WriteHeader(http.StatusNoContent)
}

func (h *ContactAPIHandler) ctx(r *http.Request) context.Context {
	return app.WithTransport(r.Context(), app.TransportAPI)
}

// requireSession returns the request's session ID, or a wrapped
// domain.ErrNotFound when the request carried no session cookie.
func requireSession(r *http.Request) (string, error) {
	id := sessionID(r)
	if id == "" {
		return "", fmt.Errorf("no contact session: %w", domain.ErrNotFound)
	}
	return id, nil
}
