// Package validate checks every link of a list against a fixed rule table.
package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/idilsaglam/linkform/internal/model"
)

// Field names a validated field of a link.
type Field string

const (
	FieldTitle Field = "title"
	FieldURL   Field = "url"
)

// Kind classifies a field error.
type Kind int

const (
	RequiredField Kind = iota + 1
	InvalidFormat
)

func (k Kind) String() string {
	switch k {
	case RequiredField:
		return "required"
	case InvalidFormat:
		return "invalid_format"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// FieldError is one failed rule.
type FieldError struct {
	Field   Field  `json:"field"`
	Kind    Kind   `json:"-"`
	Message string `json:"message"`
}

// Check is one step of a field's rule. Fails returns true when the value
// does not satisfy it.
type Check struct {
	Kind    Kind
	Message string
	Fails   func(value string) bool
}

// Rule applies its checks, in order, to one field of a link. Only the
// first failing check is reported.
type Rule struct {
	Field  Field
	Value  func(model.Link) string
	Checks []Check
}

// Rules returns the link schema, using isValidURL for the URL format check.
func Rules(isValidURL func(string) bool) []Rule {
	return []Rule{
		{
			Field: FieldTitle,
			Value: func(l model.Link) string { return l.Title },
			Checks: []Check{
				{Kind: RequiredField, Message: "Title is required", Fails: func(v string) bool { return strings.TrimSpace(v) == "" }},
			},
		},
		{
			Field: FieldURL,
			Value: func(l model.Link) string { return l.URL },
			Checks: []Check{
				{Kind: RequiredField, Message: "URL is required", Fails: func(v string) bool { return v == "" }},
				{Kind: InvalidFormat, Message: "Invalid URL", Fails: func(v string) bool { return !isValidURL(v) }},
			},
		},
	}
}

// Gate recomputes the validation state of a whole list.
type Gate struct {
	rules []Rule
}

// NewGate builds a Gate with the link schema.
func NewGate(isValidURL func(string) bool) *Gate {
	return &Gate{rules: Rules(isValidURL)}
}

// Validate runs every rule against every item. It never mutates items.
func (g *Gate) Validate(items []model.Item) State {
	st := State{Rows: map[int]Row{}}
	for pos, it := range items {
		errs := g.check(it.Link)
		if len(errs) == 0 {
			continue
		}
		st.Rows[pos] = Row{ID: it.ID, Errors: errs}
	}
	return st
}

func (g *Gate) check(l model.Link) []FieldError {
	var errs []FieldError
	for _, r := range g.rules {
		v := r.Value(l)
		for _, c := range r.Checks {
			if c.Fails(v) {
				errs = append(errs, FieldError{Field: r.Field, Kind: c.Kind, Message: c.Message})
				break
			}
		}
	}
	return errs
}

// Row holds the errors of one list position.
type Row struct {
	ID     string       `json:"id"`
	Errors []FieldError `json:"errors"`
}

// Field returns the error on f, if any.
func (r Row) Field(f Field) (FieldError, bool) {
	for _, e := range r.Errors {
		if e.Field == f {
			return e, true
		}
	}
	return FieldError{}, false
}

// State is the result of one validation pass. Rows only contains positions
// with at least one error.
type State struct {
	Rows map[int]Row `json:"rows"`
}

// Valid reports whether no row has errors.
func (s State) Valid() bool { return len(s.Rows) == 0 }

// At returns the error of field f at position pos.
func (s State) At(pos int, f Field) (FieldError, bool) {
	r, ok := s.Rows[pos]
	if !ok {
		return FieldError{}, false
	}
	return r.Field(f)
}

// Positions returns the failing positions in ascending order.
func (s State) Positions() []int {
	out := make([]int, 0, len(s.Rows))
	for p := range s.Rows {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}

// Count returns the total number of field errors.
func (s State) Count() int {
	n := 0
	for _, r := range s.Rows {
		n += len(r.Errors)
	}
	return n
}

// Error is returned by a blocked submit. It carries the state that blocked it.
type Error struct {
	State State
}

func (e *Error) Error() string {
	n := e.State.Count()
	if n == 1 {
		return "validation failed: 1 field error"
	}
	return fmt.Sprintf("validation failed: %d field errors", n)
}
