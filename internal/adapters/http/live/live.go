// Package live serves the contact form over a websocket. The browser sends
// one JSON frame per user event and receives the re-rendered component after
// each one, so validation feedback appears while the user types.
package live

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/jsamuelsen11/contact-form/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contact-form/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/contact-form/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/contact-form/internal/adapters/http/view"
	"github.com/jsamuelsen11/contact-form/internal/app"
	"github.com/jsamuelsen11/contact-form/internal/domain"
	"github.com/jsamuelsen11/contact-form/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form/internal/platform/telemetry"
	"github.com/jsamuelsen11/contact-form/internal/ports"
)

// Frame types.
const (
	FrameChange = "change"
	FrameSubmit = "submit"
	FrameReset  = "reset"
	FrameRender = "render"
	FrameError  = "error"
)

// ClientFrame is an event sent by the browser.
type ClientFrame struct {
	Type  string `json:"type"`
	Field string `json:"field,omitempty"`
	Value string `json:"value,omitempty"`
}

// ServerFrame is sent after every event: either the re-rendered component
// or an error message.
type ServerFrame struct {
	Type      string            `json:"type"`
	HTML      string            `json:"html,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Submitted bool              `json:"submitted,omitempty"`
	Message   string            `json:"message,omitempty"`
}

// Config holds connection limits for the live transport.
type Config struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	MaxMessageBytes int64
	// AllowedOrigins lists extra origins permitted to connect. Same-origin
	// requests are always allowed.
	AllowedOrigins []string
	// Cookie is issued when the handshake mounts a new component.
	Cookie handlers.SessionCookie
}

// Handler upgrades requests to websocket connections bound to the caller's
// form component.
type Handler struct {
	svc      ports.ContactService
	view     *view.Renderer
	cfg      Config
	upgrader websocket.Upgrader
	metrics  *telemetry.Metrics
	logger   *slog.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewHandler creates a live Handler. metrics may be nil.
func NewHandler(svc ports.ContactService, renderer *view.Renderer, cfg Config, metrics *telemetry.Metrics, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:     svc,
		view:    renderer,
		cfg:     cfg,
		metrics: metrics,
		logger:  logger,
		conns:   make(map[*websocket.Conn]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin:     h.checkOrigin,
	}
	return h
}

// ServeHTTP handles GET /contact/live.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := app.WithTransport(r.Context(), app.TransportLive)

	id, snap, header, err := h.attach(ctx, r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, header)
	if err != nil {
		// Upgrade already wrote an HTTP error response.
		h.logger.WarnContext(ctx, "websocket upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.Close()

	h.track(conn)
	defer h.untrack(conn)

	if h.metrics != nil {
		h.metrics.LiveConnectionActive.Add(ctx, 1)
		defer h.metrics.LiveConnectionActive.Add(context.WithoutCancel(ctx), -1)
	}
	h.logger.DebugContext(ctx, "live connection opened", slog.String("session_id", id))

	if h.cfg.MaxMessageBytes > 0 {
		conn.SetReadLimit(h.cfg.MaxMessageBytes)
	}

	if err := h.render(conn, snap); err != nil {
		return
	}
	h.readLoop(ctx, conn, id)
}

// Shutdown sends a going-away close frame to every open connection and
// closes it. Read loops return once their connection is closed.
func (h *Handler) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.conns {
		h.close(conn, websocket.CloseGoingAway, "server shutting down")
		_ = conn.Close()
	}
	if len(h.conns) > 0 {
		h.logger.Info("closed live connections", slog.Int("count", len(h.conns)))
	}
}

func (h *Handler) track(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Handler) untrack(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// attach resolves the caller's session, mounting a new component when the
// cookie is missing or stale. The returned header carries the new cookie.
func (h *Handler) attach(ctx context.Context, r *http.Request) (string, contact.Snapshot, http.Header, error) {
	if id := middleware.SessionIDFromContext(r.Context()); id != "" {
		snap, err := h.svc.Get(ctx, id)
		if err == nil {
			return id, snap, nil, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return "", contact.Snapshot{}, nil, err
		}
	}

	id, snap, err := h.svc.Open(ctx)
	if err != nil {
		return "", contact.Snapshot{}, nil, err
	}
	header := http.Header{}
	header.Add("Set-Cookie", h.cfg.Cookie.For(id).String())
	return id, snap, header, nil
}

func (h *Handler) readLoop(ctx context.Context, conn *websocket.Conn, sessionID string) {
	for {
		if h.cfg.ReadTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
		}

		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure) {
				h.logger.WarnContext(ctx, "live read error",
					slog.String("session_id", sessionID),
					slog.Any("error", err),
				)
			}
			return
		}

		var frame ClientFrame
		if err := json.Unmarshal(msg, &frame); err != nil {
			if h.sendError(conn, "malformed frame") != nil {
				return
			}
			continue
		}

		snap, err := h.dispatch(ctx, sessionID, frame)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			_ = h.sendError(conn, "session expired")
			h.close(conn, websocket.CloseNormalClosure, "session expired")
			return
		case err != nil:
			if h.sendError(conn, err.Error()) != nil {
				return
			}
			continue
		}

		if h.render(conn, snap) != nil {
			return
		}
	}
}

func (h *Handler) dispatch(ctx context.Context, sessionID string, frame ClientFrame) (contact.Snapshot, error) {
	switch frame.Type {
	case FrameChange:
		field, err := contact.ParseField(frame.Field)
		if err != nil {
			return contact.Snapshot{}, err
		}
		return h.svc.Change(ctx, sessionID, field, frame.Value)
	case FrameSubmit:
		return h.svc.Submit(ctx, sessionID)
	case FrameReset:
		return h.svc.Reset(ctx, sessionID)
	default:
		return contact.Snapshot{}, &domain.ValidationError{
			Fields: map[string]string{"type": "unknown frame type " + frame.Type},
		}
	}
}

func (h *Handler) render(conn *websocket.Conn, snap contact.Snapshot) error {
	html, err := h.view.ComponentHTML(snap)
	if err != nil {
		h.logger.Error("failed to render live frame", slog.Any("error", err))
		return h.sendError(conn, "render failed")
	}
	return h.write(conn, ServerFrame{
		Type:      FrameRender,
		HTML:      html,
		Errors:    dto.ErrorMap(snap),
		Submitted: snap.Submitted,
	})
}

func (h *Handler) sendError(conn *websocket.Conn, message string) error {
	return h.write(conn, ServerFrame{Type: FrameError, Message: message})
}

func (h *Handler) write(conn *websocket.Conn, frame ServerFrame) error {
	if h.cfg.WriteTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(h.cfg.WriteTimeout))
	}
	return conn.WriteJSON(frame)
}

func (h *Handler) close(conn *websocket.Conn, code int, reason string) {
	deadline := time.Now().Add(time.Second)
	if h.cfg.WriteTimeout > 0 {
		deadline = time.Now().Add(h.cfg.WriteTimeout)
	}
	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), deadline)
}

// checkOrigin accepts same-origin handshakes, requests without an Origin
// header, and any configured extra origin.
func (h *Handler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if u.Host == r.Host {
		return true
	}
	return slices.Contains(h.cfg.AllowedOrigins, origin)
}
