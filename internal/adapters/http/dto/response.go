// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/contact-form/internal/domain/contact"
)

// ContactStateResponse represents the state of a mounted contact form.
type ContactStateResponse struct {
	Values    ContactValues        `json:"values"`
	Errors    []FieldErrorResponse `json:"errors"`
	Submitted bool                 `json:"submitted"`
	Summary   *ContactValues       `json:"summary,omitempty"`
}

// ContactValues holds the four form fields. Message is omitted from a
// summary when it was left empty.
type ContactValues struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Message   string `json:"message,omitempty"`
}

// FieldErrorResponse is one displayed field error.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ToContactStateResponse converts a form snapshot to an HTTP response DTO.
// Errors are listed in field display order and are never null.
func ToContactStateResponse(snap contact.Snapshot) ContactStateResponse {
	errs := snap.ErrorList()
	resp := ContactStateResponse{
		Values: ContactValues{
			FirstName: snap.Values.FirstName,
			LastName:  snap.Values.LastName,
			Email:     snap.Values.Email,
			Message:   snap.Values.Message,
		},
		Errors:    make([]FieldErrorResponse, 0, len(errs)),
		Submitted: snap.Submitted,
	}

	for _, fe := range errs {
		resp.Errors = append(resp.Errors, FieldErrorResponse{
			Field:   fe.Field.String(),
			Message: fe.Message,
		})
	}

	if snap.Summary != nil {
		resp.Summary = &ContactValues{
			FirstName: snap.Summary.FirstName,
			LastName:  snap.Summary.LastName,
			Email:     snap.Summary.Email,
			Message:   snap.Summary.Message,
		}
	}

	return resp
}

// ErrorMap returns the snapshot's errors keyed by field name. Used by the
// live transport's render frames.
func ErrorMap(snap contact.Snapshot) map[string]string {
	out := make(map[string]string, len(snap.Errors))
	for field, msg := range snap.Errors {
		out[field.String()] = msg
	}
	return out
}
