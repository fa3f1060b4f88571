package dto

import (
	"github.com/jsamuelsen11/contact-form/internal/domain"
)

const msgRequired = "is required"

// FieldChangeRequest represents the JSON body of a field change event.
// Value is a pointer so an explicit empty string (clearing the field) can be
// told apart from a missing value.
type FieldChangeRequest struct {
	Value *string `json:"value"`
}

// Validate checks that a value was supplied.
// Returns a *domain.ValidationError if it was not.
func (r *FieldChangeRequest) Validate() error {
	if r.Value == nil {
		return &domain.ValidationError{Fields: map[string]string{"value": msgRequired}}
	}
	return nil
}
