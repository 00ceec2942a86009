package goform

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
)

// Parser is implemented by *Schema. Sessions and renderers depend on this
// interface so tests can substitute their own.
type Parser interface {
	Name() string
	Fields() []FieldSpec
	Parse(ctx context.Context, raw RawInput) (Record, error)
	ValidateField(ctx context.Context, name string, raw RawInput) (string, bool, error)
}

// Codec performs bidirectional transformation between the wire
// representation A and the domain representation B.
type Codec[A, B any] interface {
	Decode(ctx context.Context, a A) (B, error)
	Encode(ctx context.Context, b B) (A, error)
}

// SafeParse parses raw, returning (zero, false) on validation error.
func SafeParse(ctx context.Context, p Parser, raw RawInput) (Record, bool) {
	rec, err := p.Parse(ctx, raw)
	if err != nil {
		return Record{}, false
	}
	return rec, true
}

// Is returns true if raw conforms to the schema.
func Is(ctx context.Context, p Parser, raw RawInput) bool {
	_, err := p.Parse(ctx, raw)
	return err == nil
}

// Bind decodes a validated record into T using the record keys as JSON
// object keys (struct tags apply).
func Bind[T any](rec Record) (T, error) {
	var out T
	b, err := json.Marshal(rec.values)
	if err != nil {
		return out, fmt.Errorf("goform: bind: %w", err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("goform: bind: %w", err)
	}
	return out, nil
}

// MarshalJSON renders the record as a JSON object.
func (r Record) MarshalJSON() ([]byte, error) {
	if r.values == nil {
		return []byte("null"), nil
	}
	return json.Marshal(r.values)
}

// ---- Parse-time context options ----

type contextKey int

const (
	_ctxKeyFailFast contextKey = iota
)

// WithFailFast returns a child context that stops evaluation after the first
// failing field. By default every field is evaluated.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
