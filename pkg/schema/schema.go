// Package schema publishes JSON Schema documents for Go types so clients can
// validate their payloads before sending them.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

var ErrGenerateSchema = errors.New("failed to generate schema")

type config struct {
	reflector   jsonschema.Reflector
	title       string
	description string
}

// Option adjusts schema generation.
type Option func(*config)

// WithTypeSchema replaces the reflected schema of values of type t with s.
func WithTypeSchema(t reflect.Type, s *jsonschema.Schema) Option {
	return func(c *config) {
		prev := c.reflector.Mapper
		c.reflector.Mapper = func(rt reflect.Type) *jsonschema.Schema {
			if rt == t {
				return s
			}
			if prev != nil {
				return prev(rt)
			}
			return nil
		}
	}
}

// WithTitle sets the root schema title and description.
func WithTitle(title, description string) Option {
	return func(c *config) {
		c.title = title
		c.description = description
	}
}

// Generate reflects v into an indented JSON Schema (draft 2020-12) with nested
// structs expanded inline.
func Generate(v any, opts ...Option) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrGenerateSchema)
	}

	c := &config{reflector: jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}}
	for _, opt := range opts {
		opt(c)
	}

	s := c.reflector.Reflect(v)
	if c.title != "" {
		s.Title = c.title
	}
	if c.description != "" {
		s.Description = c.description
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Join(ErrGenerateSchema, err)
	}
	return out, nil
}
