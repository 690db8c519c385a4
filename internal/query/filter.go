package query

import "strings"

// Clause is one predicate of a Filter. Clauses are AND-ed together.
type Clause interface {
	isClause()
}

// AnyContains matches when at least one of Fields contains Term,
// ignoring case. Term is matched literally.
type AnyContains struct {
	Fields []string
	Term   string
}

// Equals matches when Field equals Value exactly.
type Equals struct {
	Field string
	Value any
}

func (AnyContains) isClause() {}
func (Equals) isClause()      {}

// Filter is an ordered list of clauses. The zero value matches everything.
type Filter struct {
	Clauses []Clause
}

// Search adds a case-insensitive substring group over fields. A blank term adds nothing.
func (f Filter) Search(term string, fields ...string) Filter {
	term = strings.TrimSpace(term)
	if term == "" || len(fields) == 0 {
		return f
	}
	return f.with(AnyContains{Fields: fields, Term: term})
}

// Equal adds an exact-match clause.
func (f Filter) Equal(field string, value any) Filter {
	return f.with(Equals{Field: field, Value: value})
}

// EqualIf adds an exact-match clause only for a non-blank value.
func (f Filter) EqualIf(field, value string) Filter {
	if strings.TrimSpace(value) == "" {
		return f
	}
	return f.Equal(field, value)
}

func (f Filter) with(c Clause) Filter {
	clauses := make([]Clause, 0, len(f.Clauses)+1)
	clauses = append(clauses, f.Clauses...)
	return Filter{Clauses: append(clauses, c)}
}

// LikePattern turns term into a %term% pattern with LIKE wildcards escaped
// by a backslash. Case folding is left to the store so both sides of the
// comparison are lowered by the same function.
func LikePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(term) + "%"
}
