package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/contact-form/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/contact-form/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/contact-form/internal/adapters/http/view"
	"github.com/jsamuelsen11/contact-form/internal/domain/contact"
)

const (
	testSessionID = "0f8c7a52-5b1e-4d5e-9a55-3f2d8f0c1b11"
	newSessionID  = "6b0b3f4e-2c1d-4a7e-8f90-1e2d3c4b5a69"
	cookieName    = "contact_session"
)

var testCookie = handlers.SessionCookie{Name: cookieName}

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withSession(r *http.Request, id string) *http.Request {
	return r.WithContext(middleware.WithSessionID(r.Context(), id))
}

func formRequest(method, target string, values url.Values) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func fragment(r *http.Request) *http.Request {
	r.Header.Set("HX-Request", "true")
	return r
}

func newRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	r, err := view.New()
	if err != nil {
		t.Fatalf("view.New() error = %v", err)
	}
	return r
}

func snapshotWith(t *testing.T, mutate func(f *contact.Form)) contact.Snapshot {
	t.Helper()
	f := contact.NewForm()
	if mutate != nil {
		mutate(f)
	}
	return f.Snapshot()
}

func submittedSnapshot(t *testing.T) contact.Snapshot {
	t.Helper()
	return snapshotWith(t, func(f *contact.Form) {
		_ = f.Change(contact.FieldFirstName, "George")
		_ = f.Change(contact.FieldLastName, "Lopez")
		_ = f.Change(contact.FieldEmail, "george@example.com")
		if !f.Submit() {
			t.Fatalf("Submit() = false, errors = %v", f.Errors())
		}
	})
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			return c
		}
	}
	return nil
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
