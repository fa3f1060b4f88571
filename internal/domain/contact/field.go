// Package contact holds the contact form component: its fields, the
// validation rules bound to them, and the Form state machine that switches
// between the edit view and the submitted summary.
package contact

import (
	"fmt"

	"github.com/jsamuelsen11/contact-form/internal/domain"
)

// Field identifies one input of the contact form.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldMessage   Field = "message"
)

// fields lists every field in display order.
var fields = [...]Field{FieldFirstName, FieldLastName, FieldEmail, FieldMessage}

// Fields returns all fields in display order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields[:])
	return out
}

// ParseField converts a raw field name into a Field. Unknown names return a
// *domain.ValidationError.
func ParseField(name string) (Field, error) {
	f := Field(name)
	if !f.IsValid() {
		return "", &domain.ValidationError{
			Fields: map[string]string{"field": fmt.Sprintf("unknown field %q", name)},
		}
	}
	return f, nil
}

// IsValid returns true if the field is one of the defined constants.
func (f Field) IsValid() bool {
	switch f {
	case FieldFirstName, FieldLastName, FieldEmail, FieldMessage:
		return true
	default:
		return false
	}
}

// Label returns the visible label text. Required fields carry a trailing "*".
func (f Field) Label() string {
	switch f {
	case FieldFirstName:
		return "First Name*"
	case FieldLastName:
		return "Last Name*"
	case FieldEmail:
		return "Email*"
	case FieldMessage:
		return "Message"
	default:
		return string(f)
	}
}

// String implements fmt.Stringer.
func (f Field) String() string {
	return string(f)
}
