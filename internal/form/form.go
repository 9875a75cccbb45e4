// Package form ties the link list to its validation state.
//
// Every mutation or field edit goes through Form, which recomputes the
// whole validation state afterwards. The timing mode only decides which
// errors are shown; Valid and Submit always look at the full state.
package form

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/linkform/internal/linklist"
	"github.com/idilsaglam/linkform/internal/model"
	"github.com/idilsaglam/linkform/internal/urlcheck"
	"github.com/idilsaglam/linkform/internal/validate"
)

// Mode is the validation timing policy.
type Mode int

const (
	// OnChange shows every error as soon as it exists.
	OnChange Mode = iota
	// OnTouched shows a field's error once the user edited or left it.
	OnTouched
	// OnSubmit hides errors until the first submit attempt.
	OnSubmit
)

func (m Mode) String() string {
	switch m {
	case OnChange:
		return "onChange"
	case OnTouched:
		return "onTouched"
	case OnSubmit:
		return "onSubmit"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// ParseMode accepts the names printed by Mode.String, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "onchange", "change":
		return OnChange, nil
	case "ontouched", "touched", "blur":
		return OnTouched, nil
	case "onsubmit", "submit":
		return OnSubmit, nil
	}
	return 0, fmt.Errorf("unknown validation mode %q", s)
}

// Form is the single-owner state of one editing session.
type Form struct {
	list     *linklist.List
	listOpts []linklist.Option
	gate     *validate.Gate
	mode     Mode
	log      *zap.Logger
	state    validate.State
	touched  map[string]map[validate.Field]bool
	// set by the first submit attempt; from then on every error is visible
	submitted bool
}

// Option configures a Form.
type Option func(*Form)

func WithMode(m Mode) Option { return func(f *Form) { f.mode = m } }

func WithLogger(l *zap.Logger) Option {
	return func(f *Form) {
		if l != nil {
			f.log = l
		}
	}
}

// WithURLCheck replaces the URL predicate.
func WithURLCheck(isValid func(string) bool) Option {
	return func(f *Form) {
		if isValid != nil {
			f.gate = validate.NewGate(isValid)
		}
	}
}

// WithListOptions forwards options to the underlying list.
func WithListOptions(opts ...linklist.Option) Option {
	return func(f *Form) { f.listOpts = append(f.listOpts, opts...) }
}

// New starts a session seeded with links.
func New(links []model.Link, opts ...Option) *Form {
	f := &Form{
		gate:    validate.NewGate(urlcheck.IsValid),
		log:     zap.NewNop(),
		touched: map[string]map[validate.Field]bool{},
	}
	for _, o := range opts {
		o(f)
	}
	f.list = linklist.New(links, f.listOpts...)
	f.listOpts = nil
	f.revalidate()
	return f
}

func (f *Form) Mode() Mode { return f.mode }

// List returns a snapshot of the items.
func (f *Form) List() []model.Item { return f.list.List() }

func (f *Form) Len() int { return f.list.Len() }

// State returns the full validation state, visible or not.
func (f *Form) State() validate.State { return f.state }

// Valid reports whether the whole list passes validation.
func (f *Form) Valid() bool { return f.state.Valid() }

// Submitted reports whether a submit was attempted.
func (f *Form) Submitted() bool { return f.submitted }

func (f *Form) revalidate() {
	f.state = f.gate.Validate(f.list.List())
	// forget touch marks of items that no longer exist
	for id := range f.touched {
		if f.list.Index(id) < 0 {
			delete(f.touched, id)
		}
	}
}

func (f *Form) after(op string, applied bool, fields ...zap.Field) bool {
	f.revalidate()
	f.log.Debug("form op",
		append(fields,
			zap.String("op", op),
			zap.Bool("applied", applied),
			zap.Int("len", f.list.Len()),
			zap.Bool("valid", f.state.Valid()),
		)...)
	return applied
}

func (f *Form) Append(l model.Link) string {
	id := f.list.Append(l)
	f.after("append", true, zap.String("id", id))
	return id
}

func (f *Form) Prepend(l model.Link) string {
	id := f.list.Prepend(l)
	f.after("prepend", true, zap.String("id", id))
	return id
}

// Insert clamps pos into [0, Len()].
func (f *Form) Insert(pos int, l model.Link) string {
	id := f.list.Insert(pos, l)
	f.after("insert", true, zap.String("id", id), zap.Int("pos", pos))
	return id
}

func (f *Form) Remove(pos int) bool {
	return f.after("remove", f.list.Remove(pos), zap.Int("pos", pos))
}

func (f *Form) Swap(i, j int) bool {
	return f.after("swap", f.list.Swap(i, j), zap.Int("i", i), zap.Int("j", j))
}

func (f *Form) Move(from, to int) bool {
	return f.after("move", f.list.Move(from, to), zap.Int("from", from), zap.Int("to", to))
}

func (f *Form) Update(pos int, l model.Link) bool {
	return f.after("update", f.list.Update(pos, l), zap.Int("pos", pos))
}

func (f *Form) Replace(links []model.Link) []string {
	ids := f.list.Replace(links)
	f.after("replace", true, zap.Int("count", len(ids)))
	return ids
}

// SetTitle edits the title at pos and marks the field touched.
func (f *Form) SetTitle(pos int, title string) bool {
	return f.setField(pos, validate.FieldTitle, func(l *model.Link) { l.Title = title })
}

// SetURL edits the URL at pos and marks the field touched.
func (f *Form) SetURL(pos int, url string) bool {
	return f.setField(pos, validate.FieldURL, func(l *model.Link) { l.URL = url })
}

func (f *Form) setField(pos int, field validate.Field, set func(*model.Link)) bool {
	items := f.list.List()
	if pos < 0 || pos >= len(items) {
		return false
	}
	l := items[pos].Link
	set(&l)
	f.markTouched(items[pos].ID, field)
	return f.Update(pos, l)
}

// Touch marks a field as left by the user (blur).
func (f *Form) Touch(pos int, field validate.Field) {
	items := f.list.List()
	if pos < 0 || pos >= len(items) {
		return
	}
	f.markTouched(items[pos].ID, field)
}

func (f *Form) markTouched(id string, field validate.Field) {
	m, ok := f.touched[id]
	if !ok {
		m = map[validate.Field]bool{}
		f.touched[id] = m
	}
	m[field] = true
}

// Visible returns the errors the presentation layer should show now.
func (f *Form) Visible() validate.State {
	if f.submitted || f.mode == OnChange {
		return f.state
	}
	out := validate.State{Rows: map[int]validate.Row{}}
	if f.mode == OnSubmit {
		return out
	}
	for pos, row := range f.state.Rows {
		var errs []validate.FieldError
		for _, e := range row.Errors {
			if f.touched[row.ID][e.Field] {
				errs = append(errs, e)
			}
		}
		if len(errs) > 0 {
			out.Rows[pos] = validate.Row{ID: row.ID, Errors: errs}
		}
	}
	return out
}

// Submit revalidates the whole list and returns its links when valid.
// Otherwise it returns a *validate.Error and makes every error visible.
func (f *Form) Submit() ([]model.Link, error) {
	f.submitted = true
	f.revalidate()
	if !f.state.Valid() {
		f.log.Info("submit blocked", zap.Int("errors", f.state.Count()), zap.Ints("rows", f.state.Positions()))
		return nil, &validate.Error{State: f.state}
	}
	links := f.list.Links()
	f.log.Info("submitted", zap.Int("count", len(links)), zap.Any("links", links))
	return links, nil
}
