package goform

import (
	"context"
	"errors"
	"fmt"

	js "github.com/reoring/goform/jsonschema"
)

// ErrUnknownField is returned when a field name is not part of a schema.
var ErrUnknownField = errors.New("goform: unknown field")

// Schema is an ordered set of FieldSpecs, unique by name. Fields are
// evaluated in declaration order and independently of one another.
type Schema struct {
	name   string
	fields []FieldSpec
	index  map[string]int
}

// NewSchema validates the field list and builds a Schema.
func NewSchema(name string, fields ...FieldSpec) (*Schema, error) {
	s := &Schema{name: name, fields: make([]FieldSpec, 0, len(fields)), index: make(map[string]int, len(fields))}
	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("goform: schema %q: field with empty name", name)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("goform: schema %q: duplicate field %q", name, f.Name)
		}
		if f.Kind == KindEnum && len(f.Options) == 0 {
			return nil, fmt.Errorf("goform: schema %q: enum field %q has no options", name, f.Name)
		}
		f.Rules = append([]Rule(nil), f.Rules...)
		f.Options = append([]Option(nil), f.Options...)
		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// MustSchema is NewSchema that panics on error. Use it for package-level
// schema definitions.
func MustSchema(name string, fields ...FieldSpec) *Schema {
	s, err := NewSchema(name, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Fields returns a copy of the field list in declaration order.
func (s *Schema) Fields() []FieldSpec { return append([]FieldSpec(nil), s.fields...) }

// Field looks up a field by name.
func (s *Schema) Field(name string) (FieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return FieldSpec{}, false
	}
	return s.fields[i], true
}

// Parse validates raw. It returns the Record when every field passes, and
// Issues (one per failing field, in declaration order) otherwise. Keys of raw
// that are not schema fields are ignored.
func (s *Schema) Parse(ctx context.Context, raw RawInput) (Record, error) {
	failFast := IsFailFast(ctx)
	values := make(map[string]any, len(s.fields))
	var iss Issues
	for _, f := range s.fields {
		v, is, skip := f.evaluate(raw[f.Name])
		if is != nil {
			iss = AppendIssues(iss, *is)
			if failFast {
				break
			}
			continue
		}
		if !skip {
			values[f.Name] = v
		}
	}
	if len(iss) > 0 {
		return Record{}, iss
	}
	return newRecord(values), nil
}

// Validate is Parse returning FieldErrors instead of an error.
func (s *Schema) Validate(ctx context.Context, raw RawInput) (Record, FieldErrors) {
	rec, err := s.Parse(ctx, raw)
	if err != nil {
		return Record{}, FieldErrorsOf(err)
	}
	return rec, nil
}

// ValidateField evaluates a single field against raw. It returns the
// failure message and false when the field is invalid.
func (s *Schema) ValidateField(ctx context.Context, name string, raw RawInput) (string, bool, error) {
	f, ok := s.Field(name)
	if !ok {
		return "", false, fmt.Errorf("%w: %q in schema %q", ErrUnknownField, name, s.name)
	}
	_, is, _ := f.evaluate(raw[name])
	if is != nil {
		return is.Message, false, nil
	}
	return "", true, nil
}

// JSONSchema projects the schema into a JSON Schema object.
func (s *Schema) JSONSchema() (*js.Schema, error) {
	out := &js.Schema{
		SchemaURI:  js.Draft,
		Title:      s.name,
		Type:       "object",
		Properties: make(map[string]*js.Schema, len(s.fields)),
	}
	for _, f := range s.fields {
		out.Properties[f.Name] = f.JSONSchema()
		if f.Required {
			out.Required = append(out.Required, f.Name)
		}
	}
	return out, nil
}
