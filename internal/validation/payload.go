package validation

import (
	"math"
	"strconv"
	"strings"
)

// Payload is a decoded JSON object. Numbers arrive as float64.
type Payload map[string]any

// Has reports whether the key was sent, even with a null value.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// String returns the raw string under key and whether it was a string at all.
func (p Payload) String(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// NonEmptyString returns the trimmed string under key when it is a string
// with at least one non-whitespace character.
func (p Payload) NonEmptyString(key string) (string, bool) {
	s, ok := p.String(key)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// Number returns the value under key when it is a JSON number.
// Numeric strings are not numbers.
func (p Payload) Number(key string) (float64, bool) {
	switch v := p[key].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// Integer returns the value under key when it is a JSON number with no
// fractional part that fits in int64. float64(math.MaxInt64) is 2^63, which
// is already out of range.
func (p Payload) Integer(key string) (int64, bool) {
	f, ok := p.Number(key)
	if !ok || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// Strings returns the array under key when every element is a string.
// The first result is false when the value is not an array at all.
func (p Payload) Strings(key string) (values []string, isArray bool, allStrings bool) {
	arr, ok := p[key].([]any)
	if !ok {
		return nil, false, false
	}
	values = make([]string, 0, len(arr))
	for _, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, true, false
		}
		values = append(values, s)
	}
	return values, true, true
}

// ParseID parses a path or query identifier. Surrounding whitespace is
// tolerated, anything else that is not a positive base-10 integer is rejected.
func ParseID(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
