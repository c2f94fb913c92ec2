// Package admin maps every entity type onto a generic CRUD screen. The
// registry is built once at process start; handlers only ever see the
// Resource contract, never a concrete entity.
package admin

import (
	"errors"
	"fmt"

	"solemart/internal/repos"
)

// Option is one choice in a select field (FK targets, enums).
type Option struct {
	Value string
	Label string
}

// Field describes one form input on the create/edit screen.
type Field struct {
	Name     string
	Label    string
	Kind     string // text | number | select
	Required bool
	Options  func() ([]Option, error) // select fields only
}

// Row is one line of a list screen.
type Row struct {
	ID    string
	Cells []string
}

// Resource is the full CRUD contract for one entity type. Every entity is
// independently browsable and editable; there is no per-entity screen
// customization beyond columns and fields.
type Resource struct {
	Slug    string
	Title   string
	Columns []string
	Fields  []Field

	List   func() ([]Row, error)
	Get    func(id string) (map[string]string, error)
	Create func(vals map[string]string) error
	Update func(id string, vals map[string]string) error
	Delete func(id string) error
}

// Registry holds the resources in display order with slug lookup.
type Registry struct {
	ordered []*Resource
	bySlug  map[string]*Resource
}

func NewRegistry(resources ...*Resource) *Registry {
	r := &Registry{bySlug: make(map[string]*Resource, len(resources))}
	for _, res := range resources {
		if _, dup := r.bySlug[res.Slug]; dup {
			panic("admin: duplicate resource slug " + res.Slug)
		}
		r.ordered = append(r.ordered, res)
		r.bySlug[res.Slug] = res
	}
	return r
}

func (r *Registry) All() []*Resource { return r.ordered }

func (r *Registry) Lookup(slug string) (*Resource, bool) {
	res, ok := r.bySlug[slug]
	return res, ok
}

// ValidationError is a write the caller can fix: bad field value, missing
// required FK, duplicate unique value. The form re-renders with Msg.
type ValidationError struct{ Msg string }

func (e ValidationError) Error() string { return e.Msg }

func invalid(format string, args ...any) error {
	return ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err should be shown on the form rather than
// surfaced as a server error. Schema-level constraint failures count.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve) || errors.Is(err, repos.ErrConstraint)
}
