package contact

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule is a validation predicate paired with the error text shown when the
// predicate fails.
type Rule interface {
	// Check reports whether value satisfies the rule.
	Check(value string) bool

	// Message returns the error text for field when Check fails.
	Message(field Field) string
}

// Required fails on empty or whitespace-only values.
type Required struct{}

func (Required) Check(value string) bool {
	return strings.TrimSpace(value) != ""
}

func (Required) Message(field Field) string {
	return fmt.Sprintf("%s is a required field.", field)
}

// MinLength fails when the value has fewer than N characters.
// Characters are counted as runes, not bytes.
type MinLength struct {
	N int
}

func (r MinLength) Check(value string) bool {
	return utf8.RuneCountInString(value) >= r.N
}

func (r MinLength) Message(field Field) string {
	return fmt.Sprintf("%s must have at least %d characters.", field, r.N)
}

// Pattern fails when the value does not match Regexp. Format is a
// fmt template receiving the field name.
type Pattern struct {
	Regexp *regexp.Regexp
	Format string
}

func (r Pattern) Check(value string) bool {
	return r.Regexp.MatchString(value)
}

func (r Pattern) Message(field Field) string {
	return fmt.Sprintf(r.Format, field)
}

// emailPattern accepts a dotted local part or a quoted local part, and either
// a bracketed IPv4 literal or a hostname ending in a TLD of two or more letters.
var emailPattern = regexp.MustCompile(
	`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))` +
		`@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`,
)

// Email returns the rule used for the email field.
func Email() Pattern {
	return Pattern{Regexp: emailPattern, Format: "%s must be a valid email address."}
}

// RuleSet maps each field to its ordered rules. Rules run in order and the
// first failure supplies the message. A field with no rules always passes.
type RuleSet map[Field][]Rule

// DefaultRules returns the contact form's static rules.
func DefaultRules() RuleSet {
	return RuleSet{
		FieldFirstName: {Required{}, MinLength{N: 5}},
		FieldLastName:  {Required{}, MinLength{N: 5}},
		FieldEmail:     {Required{}, Email()},
		FieldMessage:   nil,
	}
}

// Check runs the rules for field against value. It returns the message of
// the first failing rule and false, or "" and true when every rule passes.
func (rs RuleSet) Check(field Field, value string) (string, bool) {
	for _, rule := range rs[field] {
		if !rule.Check(value) {
			return rule.Message(field), false
		}
	}
	return "", true
}
