package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnrecognizedFormat is returned when no registered schema matches a header.
var ErrUnrecognizedFormat = errors.New("unrecognized format")

// Registry is an ordered, read-only table of schemas.
type Registry struct {
	schemas []ColumnSchema
}

// NewRegistry validates the schemas and keeps them in registration order.
func NewRegistry(schemas ...ColumnSchema) (*Registry, error) {
	out := make([]ColumnSchema, 0, len(schemas))
	for _, s := range schemas {
		if err := s.validate(); err != nil {
			return nil, err
		}
		cols := make([]Column, len(s.Columns))
		copy(cols, s.Columns)
		s.Columns = cols
		out = append(out, s)
	}
	return &Registry{schemas: out}, nil
}

// MustRegistry is like NewRegistry but panics on an invalid schema.
func MustRegistry(schemas ...ColumnSchema) *Registry {
	r, err := NewRegistry(schemas...)
	if err != nil {
		panic(err)
	}
	return r
}

// Match returns the first schema whose columns match header.
func (r *Registry) Match(header []string) (ColumnSchema, error) {
	if r != nil {
		for _, s := range r.schemas {
			if s.Matches(header) {
				return s, nil
			}
		}
	}
	return ColumnSchema{}, fmt.Errorf("%w: %s", ErrUnrecognizedFormat, strings.Join(header, ","))
}

// Schemas returns a copy of the registered schemas in order.
func (r *Registry) Schemas() []ColumnSchema {
	if r == nil {
		return nil
	}
	out := make([]ColumnSchema, len(r.schemas))
	copy(out, r.schemas)
	return out
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.schemas)
}
