package goform

import (
	"sort"
	"strings"
)

// Kind is the primitive kind of a field.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBoolean
	KindEnum
	KindDate
	KindTime
)

var kindNames = [...]string{
	KindString:  "string",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindEnum:    "enum",
	KindDate:    "date",
	KindTime:    "time",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a kind by its name (case-insensitive).
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n == s {
			return Kind(i), true
		}
	}
	return 0, false
}

// RawInput maps a field name to the unvalidated value produced by a UI
// control: a string, a bool, a number, an Option for selects, or nil.
type RawInput map[string]any

// Clone returns a shallow copy.
func (r RawInput) Clone() RawInput {
	out := make(RawInput, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Option is a select choice. Selects may report the whole pair instead of
// the bare value.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Record is the coerced, typed result of a successful validation. It is
// immutable: accessors never expose the underlying map.
type Record struct {
	values map[string]any
}

func newRecord(values map[string]any) Record { return Record{values: values} }

// Get returns the coerced value of a field.
func (r Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// String returns a string-valued field (string, enum, date and time kinds).
func (r Record) String(name string) string {
	s, _ := r.values[name].(string)
	return s
}

// Float returns a number field.
func (r Record) Float(name string) float64 {
	f, _ := r.values[name].(float64)
	return f
}

// Bool returns a boolean field.
func (r Record) Bool(name string) bool {
	b, _ := r.values[name].(bool)
	return b
}

// Len reports the number of fields present in the record.
func (r Record) Len() int { return len(r.values) }

// IsZero reports whether r was never produced by a validation.
func (r Record) IsZero() bool { return r.values == nil }

// Keys returns the present field names in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a copy of the record values.
func (r Record) Map() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}
