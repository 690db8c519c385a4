package query

import (
	"strconv"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Page bounds a listing. Results are always ordered newest first.
type Page struct {
	Limit  int
	Offset int
}

// ParsePage reads raw limit and offset query values. Missing, non-numeric or
// non-positive limits fall back to DefaultLimit and anything larger than
// MaxLimit is clamped. Missing, non-numeric or negative offsets become 0.
func ParsePage(limit, offset string) Page {
	p := Page{Limit: DefaultLimit}

	if n, err := strconv.Atoi(strings.TrimSpace(limit)); err == nil && n > 0 {
		p.Limit = min(n, MaxLimit)
	}
	if n, err := strconv.Atoi(strings.TrimSpace(offset)); err == nil && n > 0 {
		p.Offset = n
	}
	return p
}
