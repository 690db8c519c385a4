package validation

import "strings"

// Email trims and lowercases an address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// OptionalText returns the trimmed string under key, or nil when the key is
// absent, not a string, or blank.
func OptionalText(p Payload, key string) *string {
	s, ok := p.NonEmptyString(key)
	if !ok {
		return nil
	}
	return &s
}
