// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/contact-form/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/contact-form/internal/adapters/http/middleware"
)

// Routes holds the handlers mounted by NewRouter.
type Routes struct {
	Contact *handlers.ContactHandler
	API     *handlers.ContactAPIHandler
	Health  *handlers.HealthHandler
	// Live serves the websocket transport. Nil leaves the route unregistered.
	Live http.Handler
	// RequestTimeout bounds every request except websocket upgrades. Zero
	// disables the deadline.
	RequestTimeout time.Duration
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Routes are registered flat on the group so chi resolves the route
	// pattern before Timeout hands the request to its own goroutine.
	r.Group(func(r chi.Router) {
		if routes.RequestTimeout > 0 {
			r.Use(middleware.Timeout(routes.RequestTimeout))
		}

		// Health endpoints (outside /api/v1 prefix).
		r.Get("/health/live", routes.Health.Liveness)
		r.Get("/health/ready", routes.Health.Readiness)

		// Server-rendered component.
		r.Get("/", routes.Contact.Page)
		r.Post("/contact/fields/{field}", routes.Contact.ChangeField)
		r.Post("/contact/submit", routes.Contact.Submit)
		r.Post("/contact/reset", routes.Contact.Reset)
		r.Post("/contact/close", routes.Contact.Close)
		if routes.Live != nil {
			r.Method(http.MethodGet, "/contact/live", routes.Live)
		}

		// API v1 routes.
		r.Get("/api/v1/contact", routes.API.GetState)
		r.Delete("/api/v1/contact", routes.API.Close)
		r.Put("/api/v1/contact/fields/{field}", routes.API.ChangeField)
		r.Post("/api/v1/contact/submit", routes.API.Submit)
		r.Post("/api/v1/contact/reset", routes.API.Reset)
	})

	return r
}
