package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/contact-form/internal/adapters/http/dto"
	"github.com/jsamuelsen11/contact-form/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/contact-form/internal/domain"
	"github.com/jsamuelsen11/contact-form/internal/domain/contact"
	"github.com/jsamuelsen11/contact-form/mocks"
)

// --- GetState ---

func TestAPIGetState_Mounts(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockContactService(t)
	svc.EXPECT().Open(mock.Anything).Return(newSessionID, contact.Snapshot{}, nil)
	svc.EXPECT().Get(mock.Anything, newSessionID).Return(snapshotWith(t, nil), nil)

	h := handlers.NewContactAPIHandler(svc, testCookie)
	rec := httptest.NewRecorder()
	h.GetState(rec, httptest.NewRequest(http.MethodGet, "/api/v1/contact", nil))

	requireStatus(t, rec, http.StatusOK)
	if c := sessionCookieFrom(rec); c == nil || c.Value != newSessionID {
		t.Errorf("session cookie = %v, want %q", c, newSessionID)
	}
	resp := decodeJSON[dto.ContactStateResponse](t, rec)
	if resp.Submitted || len(resp.Errors) != 0 {
		t.Errorf("resp = %+v, want empty state", resp)
	}
}

// --- ChangeField ---

func TestAPIChangeField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		session    string
		field      string
		body       string
		setup      func(svc *mocks.MockContactService)
		wantStatus int
	}{
		{
			name:    "short first name reports one error",
			session: testSessionID,
			field:   "firstName",
			body:    `{"value":"1234"}`,
			setup: func(svc *mocks.MockContactService) {
				svc.EXPECT().Change(mock.Anything, testSessionID, contact.FieldFirstName, "1234").
					Return(snapshotWith(t, func(f *contact.Form) { _ = f.Change(contact.FieldFirstName, "1234") }), nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "no session",
			field:      "firstName",
			body:       `{"value":"1234"}`,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unknown field",
			session:    testSessionID,
			field:      "phone",
			body:       `{"value":"1234"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing value",
			session:    testSessionID,
			field:      "email",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			session:    testSessionID,
			field:      "email",
			body:       `{"value":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:    "already submitted",
			session: testSessionID,
			field:   "email",
			body:    `{"value":"x@y.z"}`,
			setup: func(svc *mocks.MockContactService) {
				svc.EXPECT().Change(mock.Anything, testSessionID, contact.FieldEmail, "x@y.z").
					Return(submittedSnapshot(t), contact.ErrSubmitted)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:    "expired session",
			session: testSessionID,
			field:   "email",
			body:    `{"value":"x@y.z"}`,
			setup: func(svc *mocks.MockContactService) {
				svc.EXPECT().Change(mock.Anything, testSessionID, contact.FieldEmail, "x@y.z").
					Return(contact.Snapshot{}, domain.ErrNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockContactService(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			req := httptest.NewRequest(http.MethodPut, "/api/v1/contact/fields/"+tt.field, strings.NewReader(tt.body))
			req = withChiParams(req, map[string]string{"field": tt.field})
			if tt.session != "" {
				req = withSession(req, tt.session)
			}

			rec := httptest.NewRecorder()
			handlers.NewContactAPIHandler(svc, testCookie).ChangeField(rec, req)

			requireStatus(t, rec, tt.wantStatus)
		})
	}
}

func TestAPIChangeField_ResponseBody(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockContactService(t)
	svc.EXPECT().Change(mock.Anything, testSessionID, contact.FieldFirstName, "1234").
		Return(snapshotWith(t, func(f *contact.Form) { _ = f.Change(contact.FieldFirstName, "1234") }), nil)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/contact/fields/firstName",
		jsonBody(t, map[string]string{"value": "1234"}))
	req = withSession(withChiParams(req, map[string]string{"field": "firstName"}), testSessionID)

	rec := httptest.NewRecorder()
	handlers.NewContactAPIHandler(svc, testCookie).ChangeField(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ContactStateResponse](t, rec)
	if len(resp.Errors) != 1 {
		t.Fatalf("len(Errors) = %d, want 1", len(resp.Errors))
	}
	if resp.Errors[0].Message != "firstName must have at least 5 characters." {
		t.Errorf("Errors[0].Message = %q", resp.Errors[0].Message)
	}
}

// --- Submit ---

func TestAPISubmit_Invalid(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockContactService(t)
	svc.EXPECT().Submit(mock.Anything, testSessionID).Return(snapshotWith(t, func(f *contact.Form) {
		f.Submit()
	}), nil)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/contact/submit", nil), testSessionID)
	rec := httptest.NewRecorder()
	handlers.NewContactAPIHandler(svc, testCookie).Submit(rec, req)

	requireStatus(t, rec, http.StatusUnprocessableEntity)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if len(resp.Errors) != 3 {
		t.Fatalf("len(Errors) = %d, want 3", len(resp.Errors))
	}
	found := false
	for _, e := range resp.Errors {
		if e.Location == "body.lastName" && e.Message == "lastName is a required field." {
			found = true
		}
	}
	if !found {
		t.Errorf("Errors = %+v, want lastName required", resp.Errors)
	}
}

func TestAPISubmit_Valid(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockContactService(t)
	svc.EXPECT().Submit(mock.Anything, testSessionID).Return(submittedSnapshot(t), nil)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/contact/submit", nil), testSessionID)
	rec := httptest.NewRecorder()
	handlers.NewContactAPIHandler(svc, testCookie).Submit(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.ContactStateResponse](t, rec)
	if !resp.Submitted || resp.Summary == nil {
		t.Fatalf("resp = %+v, want submitted with summary", resp)
	}
	if resp.Summary.FirstName != "George" || resp.Summary.Message != "" {
		t.Errorf("Summary = %+v", resp.Summary)
	}
}

// --- Reset ---

func TestAPIReset(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockContactService(t)
	svc.EXPECT().Reset(mock.Anything, testSessionID).Return(snapshotWith(t, nil), nil)

	req := withSession(httptest.NewRequest(http.MethodPost, "/api/v1/contact/reset", nil), testSessionID)
	rec := httptest.NewRecorder()
	handlers.NewContactAPIHandler(svc, testCookie).Reset(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

// --- Close ---

func TestAPIClose(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockContactService(t)
	svc.EXPECT().Close(mock.Anything, testSessionID).Return(nil)

	req := withSession(httptest.NewRequest(http.MethodDelete, "/api/v1/contact", nil), testSessionID)
	rec := httptest.NewRecorder()
	handlers.NewContactAPIHandler(svc, testCookie).Close(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
	if c := sessionCookieFrom(rec); c == nil || c.MaxAge >= 0 {
		t.Errorf("session cookie = %v, want cleared", c)
	}
}
