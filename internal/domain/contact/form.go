package contact

import (
	"fmt"
	"maps"

	"github.com/jsamuelsen11/contact-form/internal/domain"
)

// ErrSubmitted is returned when a field is changed after a successful
// submission froze the displayed values.
var ErrSubmitted = fmt.Errorf("form already submitted: %w", domain.ErrConflict)

// Values holds the raw text of each field.
type Values struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
}

// Get returns the value of field.
func (v Values) Get(field Field) string {
	switch field {
	case FieldFirstName:
		return v.FirstName
	case FieldLastName:
		return v.LastName
	case FieldEmail:
		return v.Email
	case FieldMessage:
		return v.Message
	default:
		return ""
	}
}

func (v *Values) set(field Field, value string) {
	switch field {
	case FieldFirstName:
		v.FirstName = value
	case FieldLastName:
		v.LastName = value
	case FieldEmail:
		v.Email = value
	case FieldMessage:
		v.Message = value
	}
}

// Summary is the frozen copy of the values captured by a successful submission.
type Summary struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
}

// HasMessage reports whether the optional message was filled in.
func (s Summary) HasMessage() bool {
	return s.Message != ""
}

// Form is the contact form state machine. The zero value is not usable;
// create one with NewForm.
//
// Errors holds an entry for a field if and only if that field currently
// fails its rules, counting only fields that were changed or validated by a
// submit attempt. A Form is not safe for concurrent use.
type Form struct {
	rules     RuleSet
	values    Values
	errors    map[Field]string
	submitted bool
	summary   Summary
}

// Option configures a Form.
type Option func(*Form)

// WithRules replaces the default rule set.
func WithRules(rules RuleSet) Option {
	return func(f *Form) {
		f.rules = rules
	}
}

// NewForm mounts a form with empty values and no errors.
func NewForm(opts ...Option) *Form {
	f := &Form{
		rules:  DefaultRules(),
		errors: make(map[Field]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Change stores value for field and re-runs that field's rules only.
func (f *Form) Change(field Field, value string) error {
	if !field.IsValid() {
		return &domain.ValidationError{
			Fields: map[string]string{"field": fmt.Sprintf("unknown field %q", field)},
		}
	}
	if f.submitted {
		return ErrSubmitted
	}

	f.values.set(field, value)
	f.revalidate(field)
	return nil
}

// Submit validates every field. When any rule fails the errors are populated
// and Submit returns false. Otherwise the values are frozen into the summary
// and Submit returns true. Submitting an already submitted form is a no-op.
func (f *Form) Submit() bool {
	if f.submitted {
		return true
	}

	for _, field := range fields {
		f.revalidate(field)
	}
	if len(f.errors) > 0 {
		return false
	}

	f.submitted = true
	f.summary = Summary(f.values)
	return true
}

// Reset returns the form to its freshly mounted state.
func (f *Form) Reset() {
	f.values = Values{}
	f.errors = make(map[Field]string)
	f.submitted = false
	f.summary = Summary{}
}

// Errors returns a copy of the displayed errors keyed by field.
func (f *Form) Errors() map[Field]string {
	return maps.Clone(f.errors)
}

// Snapshot returns an immutable copy of the form state for rendering.
func (f *Form) Snapshot() Snapshot {
	s := Snapshot{
		Values:    f.values,
		Errors:    f.Errors(),
		Submitted: f.submitted,
	}
	if f.submitted {
		summary := f.summary
		s.Summary = &summary
	}
	return s
}

func (f *Form) revalidate(field Field) {
	if msg, ok := f.rules.Check(field, f.values.Get(field)); !ok {
		f.errors[field] = msg
		return
	}
	delete(f.errors, field)
}

// Snapshot is a point-in-time copy of a Form. It can be read after the
// owning session's lock is released.
type Snapshot struct {
	Values    Values
	Errors    map[Field]string
	Submitted bool
	Summary   *Summary
}

// FieldError is one displayed error, tagged with its field.
type FieldError struct {
	Field   Field
	Message string
}

// ErrorList returns the displayed errors in field display order.
func (s Snapshot) ErrorList() []FieldError {
	out := make([]FieldError, 0, len(s.Errors))
	for _, field := range fields {
		if msg, ok := s.Errors[field]; ok {
			out = append(out, FieldError{Field: field, Message: msg})
		}
	}
	return out
}

// Err returns the displayed errors as a *domain.ValidationError, or nil when
// there are none.
func (s Snapshot) Err() error {
	if len(s.Errors) == 0 {
		return nil
	}
	out := make(map[string]string, len(s.Errors))
	for field, msg := range s.Errors {
		out[field.String()] = msg
	}
	return &domain.ValidationError{Fields: out}
}
