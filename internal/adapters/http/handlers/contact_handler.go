// Package handlers provides HTTP request handlers for the service's pages and
// API endpoints.
package handlers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/contact-form/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contact-form/internal/adapters/http/view"
	"github.com/jsamuelsen11/contact-form/internal/app"
	"github.com/jsamuelsen11/contact-form/internal/domain"
	"github.com/jsamuelsen11/contact-form/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form/internal/platform/logging"
	"github.com/jsamuelsen11/contact-form/internal/ports"
)

// ContactHandler serves the server-rendered contact form. Field changes,
// submissions and resets each return freshly rendered markup.
type ContactHandler struct {
	svc    ports.ContactService
	view   *view.Renderer
	cookie SessionCookie
	live   bool
}

// NewContactHandler creates a ContactHandler. live controls whether the page
// script opens the websocket transport.
func NewContactHandler(svc ports.ContactService, renderer *view.Renderer, cookie SessionCookie, live bool) *ContactHandler {
	return &ContactHandler{
		svc:    svc,
		view:   renderer,
		cookie: cookie,
		live:   live,
	}
}

// Page handles GET /. Mounts a component when the session is missing or
// expired.
func (h *ContactHandler) Page(w http.ResponseWriter, r *http.Request) {
	snap, err := withSession(h.ctx(r), w, r, h.svc, h.cookie, h.svc.Get)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.writePage(w, r, http.StatusOK, snap)
}

// ChangeField handles POST /contact/fields/{field}. The new value is read
// from the "value" form parameter.
func (h *ContactHandler) ChangeField(w http.ResponseWriter, r *http.Request) {
	field, err := parseField(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	value := r.PostFormValue("value")

	snap, err := withSession(h.ctx(r), w, r, h.svc, h.cookie,
		func(ctx context.Context, id string) (contact.Snapshot, error) {
			return h.svc.Change(ctx, id, field, value)
		})
	if err != nil && !errors.Is(err, contact.ErrSubmitted) {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status := http.StatusOK
	if err != nil {
		status = dto.StatusCode(err)
	}
	h.respond(w, r, status, snap)
}

// Submit handles POST /contact/submit. Field values posted with the form are
// applied first so the page works without scripting.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid form encoding"},
		})
		return
	}

	snap, err := withSession(h.ctx(r), w, r, h.svc, h.cookie,
		func(ctx context.Context, id string) (contact.Snapshot, error) {
			for _, field := range contact.Fields() {
				if _, posted := r.PostForm[field.String()]; !posted {
					continue
				}
				_, err := h.svc.Change(ctx, id, field, r.PostForm.Get(field.String()))
				if errors.Is(err, contact.ErrSubmitted) {
					break
				}
				if err != nil {
					return contact.Snapshot{}, err
				}
			}
			return h.svc.Submit(ctx, id)
		})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, snap)
}

// Reset handles POST /contact/reset.
func (h *ContactHandler) Reset(w http.ResponseWriter, r *http.Request) {
	snap, err := withSession(h.ctx(r), w, r, h.svc, h.cookie, h.svc.Reset)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.respond(w, r, http.StatusOK, snap)
}

// Close handles POST /contact/close. The component is unmounted and the
// session cookie cleared.
func (h *ContactHandler) Close(w http.ResponseWriter, r *http.Request) {
	if id := sessionID(r); id != "" {
		if err := h.svc.Close(h.ctx(r), id); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}
	h.cookie.clear(w)

	if wantsFragment(r) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *ContactHandler) ctx(r *http.Request) context.Context {
	return app.WithTransport(r.Context(), app.TransportHTML)
}

// respond renders the component fragment for scripted requests and redirects
// plain form posts back to the page.
func (h *ContactHandler) respond(w http.ResponseWriter, r *http.Request, status int, snap contact.Snapshot) {
	if !wantsFragment(r) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	var buf bytes.Buffer
	if err := h.view.Component(&buf, snap); err != nil {
		h.renderFailed(w, r, err)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

func (h *ContactHandler) writePage(w http.ResponseWriter, r *http.Request, status int, snap contact.Snapshot) {
	var buf bytes.Buffer
	if err := h.view.Page(&buf, snap, view.PageOptions{Live: h.live}); err != nil {
		h.renderFailed(w, r, err)
		return
	}
	writeHTML(w, status, buf.Bytes())
}

func (h *ContactHandler) renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to render contact form",
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	dto.WriteErrorResponse(w, r, err)
}

// wantsFragment reports whether the caller swaps the component in place
// instead of loading a full page.
func wantsFragment(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true" || r.URL.Query().Get("fragment") == "1"
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
