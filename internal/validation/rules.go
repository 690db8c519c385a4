package validation

import (
	"fmt"
	"strings"

	"emaxplatform/internal/domain"
)

const (
	CodeInvalidID   = "INVALID_ID"
	CodeInvalidJSON = "INVALID_JSON"

	MsgInvalidID   = "Valid ID is required"
	MsgInvalidJSON = "Invalid JSON body"
)

// Rule binds a payload field to the code and message reported when it fails.
type Rule struct {
	Field   string
	Code    string
	Message string
}

func (r Rule) fail() error {
	return domain.Invalid(r.Code, r.Message)
}

// Required declares the usual "X is required and must be a non-empty string" rule.
func Required(field, code, label string) Rule {
	return Rule{Field: field, Code: code, Message: label + " is required and must be a non-empty string"}
}

// Present declares the update-time "X must be a non-empty string" rule.
func Present(field, code, label string) Rule {
	return Rule{Field: field, Code: code, Message: label + " must be a non-empty string"}
}

// RequireString returns the trimmed value or the rule's error.
func RequireString(p Payload, r Rule) (string, error) {
	s, ok := p.NonEmptyString(r.Field)
	if !ok {
		return "", r.fail()
	}
	return s, nil
}

// RequireNumber accepts JSON numbers only.
func RequireNumber(p Payload, r Rule) (float64, error) {
	f, ok := p.Number(r.Field)
	if !ok {
		return 0, r.fail()
	}
	return f, nil
}

// RequireStrings accepts an array whose elements are all strings. A non-array
// fails with r; an array holding anything else fails with elem.
func RequireStrings(p Payload, r, elem Rule) ([]string, error) {
	values, isArray, allStrings := p.Strings(r.Field)
	if !isArray {
		return nil, r.fail()
	}
	if !allStrings {
		return nil, elem.fail()
	}
	for i := range values {
		values[i] = strings.TrimSpace(values[i])
	}
	return values, nil
}

// OptionalString validates a field only when the key was sent.
func OptionalString(p Payload, r Rule) (*string, error) {
	if !p.Has(r.Field) {
		return nil, nil
	}
	s, err := RequireString(p, r)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func OptionalNumber(p Payload, r Rule) (*float64, error) {
	if !p.Has(r.Field) {
		return nil, nil
	}
	f, err := RequireNumber(p, r)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// CheckEnum is the enum guard: exact, case-sensitive membership in allowed.
func CheckEnum(value string, allowed []string, code, label string) error {
	for _, v := range allowed {
		if v == value {
			return nil
		}
	}
	return domain.Invalid(code, fmt.Sprintf("%s must be one of: %s", label, strings.Join(allowed, ", ")))
}

// ParseCategory validates a category taken from the URL path.
func ParseCategory(raw string) (domain.Category, error) {
	c := domain.Category(raw)
	if !c.IsValid() {
		return "", domain.Invalid("INVALID_CATEGORY",
			"Invalid category. Valid categories are: "+strings.Join(domain.CategoryValues, ", "))
	}
	return c, nil
}

// RequireID validates an identity from the path or query string.
func RequireID(raw string) (int64, error) {
	id, ok := ParseID(raw)
	if !ok {
		return 0, domain.Invalid(CodeInvalidID, MsgInvalidID)
	}
	return id, nil
}
