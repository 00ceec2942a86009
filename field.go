package goform

import (
	"strings"

	"github.com/reoring/goform/i18n"
	js "github.com/reoring/goform/jsonschema"
)

// FieldSpec is one field's contract: coercion first, then ordered rules.
type FieldSpec struct {
	Name     string
	Kind     Kind
	Label    string
	Required bool
	// Coerce overrides the kind's default coercion.
	Coerce Coercion
	Rules  []Rule
	// Options lists the allowed values of an enum field in display order.
	Options []Option
	// RequiredMessage is reported when a required value is absent.
	RequiredMessage string
	// TypeMessage is reported when the raw value cannot be coerced.
	TypeMessage string
	// EnumMessage is reported for a value outside Options.
	EnumMessage string
	// Secret hints renderers to mask the input (passwords).
	Secret bool
}

// OptionValues returns the enum values in declaration order.
func (f FieldSpec) OptionValues() []string {
	out := make([]string, len(f.Options))
	for i, o := range f.Options {
		out[i] = o.Value
	}
	return out
}

// Path returns the JSON Pointer of the field (RFC 6901 escaped).
func (f FieldSpec) Path() string {
	return "/" + strings.ReplaceAll(strings.ReplaceAll(f.Name, "~", "~0"), "/", "~1")
}

func (f FieldSpec) coercion() Coercion {
	if f.Coerce != nil {
		return f.Coerce
	}
	return DefaultCoercion(f.Kind)
}

// rules returns the effective rule list: enum membership precedes the
// declared rules.
func (f FieldSpec) rules() []Rule {
	if f.Kind != KindEnum || len(f.Options) == 0 {
		return f.Rules
	}
	out := make([]Rule, 0, len(f.Rules)+1)
	out = append(out, OneOf(f.OptionValues(), f.EnumMessage))
	return append(out, f.Rules...)
}

// evaluate runs the two-stage pipeline on one raw value. skip is true when an
// optional field is absent and must be left out of the record.
func (f FieldSpec) evaluate(raw any) (value any, iss *Issue, skip bool) {
	c := f.coercion()(raw)
	switch c.Presence {
	case Absent:
		if !f.Required {
			return nil, nil, true
		}
		msg := f.RequiredMessage
		if msg == "" {
			msg = i18n.T(CodeRequired, nil)
		}
		return nil, f.issue(CodeRequired, "required", msg, nil), false
	case InvalidType:
		msg := f.TypeMessage
		if msg == "" {
			msg = i18n.T(CodeInvalidType, map[string]string{"expected": f.Kind.String()})
		}
		return nil, f.issue(CodeInvalidType, "type", msg, map[string]any{"expected": f.Kind.String()}), false
	}
	for _, r := range f.rules() {
		if r.Check == nil || r.Check(c.Value) {
			continue
		}
		return nil, f.issue(r.Code, r.Name, r.message(), r.Params), false
	}
	return c.Value, nil, false
}

func (f FieldSpec) issue(code, rule, msg string, params map[string]any) *Issue {
	return &Issue{Field: f.Name, Path: f.Path(), Code: code, Message: msg, Params: params, Rule: rule}
}

// JSONSchema projects the field's kind and rules.
func (f FieldSpec) JSONSchema() *js.Schema {
	s := &js.Schema{Title: f.Label, WriteOnly: f.Secret}
	switch f.Kind {
	case KindNumber:
		s.Type = "number"
	case KindBoolean:
		s.Type = "boolean"
	case KindDate:
		s.Type, s.Format = "string", "date"
	case KindTime:
		s.Type, s.Format = "string", "time"
	default:
		s.Type = "string"
	}
	for _, r := range f.rules() {
		if r.project != nil {
			r.project(s)
		}
	}
	return s
}
