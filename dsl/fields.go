package dsl

import (
	"regexp"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/codec"
)

// FieldAdapter yields the FieldSpec registered by Form().Field.
type FieldAdapter interface {
	Spec() goform.FieldSpec
}

// common holds the options shared by every field builder. B is the concrete
// builder so chained calls keep their type.
type common[B any] struct {
	spec goform.FieldSpec
	self B
}

func (c *common[B]) init(name string, kind goform.Kind, self B) {
	c.spec = goform.FieldSpec{Name: name, Kind: kind, Required: true}
	c.self = self
}

// Spec returns a copy of the built FieldSpec.
func (c *common[B]) Spec() goform.FieldSpec {
	out := c.spec
	out.Rules = append([]goform.Rule(nil), c.spec.Rules...)
	out.Options = append([]goform.Option(nil), c.spec.Options...)
	return out
}

// Label sets the display label.
func (c *common[B]) Label(label string) B {
	c.spec.Label = label
	return c.self
}

// Required marks the field required and sets the message reported when the
// value is absent.
func (c *common[B]) Required(msg string) B {
	c.spec.Required = true
	c.spec.RequiredMessage = msg
	return c.self
}

// Optional lets the value be absent.
func (c *common[B]) Optional() B {
	c.spec.Required = false
	return c.self
}

// Invalid sets the message reported when the raw value cannot be coerced.
func (c *common[B]) Invalid(msg string) B {
	c.spec.TypeMessage = msg
	return c.self
}

// Coerce replaces the default coercion stage of the kind.
func (c *common[B]) Coerce(fn goform.Coercion) B {
	c.spec.Coerce = fn
	return c.self
}

// Rule appends a prebuilt rule.
func (c *common[B]) Rule(r goform.Rule) B {
	c.spec.Rules = append(c.spec.Rules, r)
	return c.self
}

// Refine appends a custom predicate over the coerced value.
func (c *common[B]) Refine(name string, check func(v any) bool, msg string) B {
	return c.Rule(goform.Custom(name, check, msg))
}

// ---------------- String ----------------

// StringBuilder builds a string field.
type StringBuilder struct {
	common[*StringBuilder]
}

// String starts a required string field.
func String(name string) *StringBuilder {
	b := &StringBuilder{}
	b.init(name, goform.KindString, b)
	return b
}

// NonEmpty rejects "". Call it before Min/Max.
func (b *StringBuilder) NonEmpty(msg string) *StringBuilder { return b.Rule(goform.NonEmpty(msg)) }

// Min requires at least n characters (inclusive).
func (b *StringBuilder) Min(n int, msg string) *StringBuilder { return b.Rule(goform.MinLen(n, msg)) }

// Max allows at most n characters (inclusive).
func (b *StringBuilder) Max(n int, msg string) *StringBuilder { return b.Rule(goform.MaxLen(n, msg)) }

// Email requires an email address.
func (b *StringBuilder) Email(msg string) *StringBuilder { return b.Rule(goform.Email(msg)) }

// Regex requires a match of expr. It panics when expr does not compile.
func (b *StringBuilder) Regex(expr, msg string) *StringBuilder {
	return b.Rule(goform.Pattern(regexp.MustCompile(expr), msg))
}

// Secret marks the field as a masked input.
func (b *StringBuilder) Secret() *StringBuilder {
	b.spec.Secret = true
	return b
}

// ---------------- Number ----------------

// NumberBuilder builds a number field. Raw numeric strings are parsed.
type NumberBuilder struct {
	common[*NumberBuilder]
}

// Number starts a required number field.
func Number(name string) *NumberBuilder {
	b := &NumberBuilder{}
	b.init(name, goform.KindNumber, b)
	return b
}

// Gt requires value > min.
func (b *NumberBuilder) Gt(min float64, msg string) *NumberBuilder { return b.Rule(goform.Gt(min, msg)) }

// Lt requires value < max.
func (b *NumberBuilder) Lt(max float64, msg string) *NumberBuilder { return b.Rule(goform.Lt(max, msg)) }

// Gte requires value >= min.
func (b *NumberBuilder) Gte(min float64, msg string) *NumberBuilder {
	return b.Rule(goform.Gte(min, msg))
}

// Lte requires value <= max.
func (b *NumberBuilder) Lte(max float64, msg string) *NumberBuilder {
	return b.Rule(goform.Lte(max, msg))
}

// Int requires a whole number.
func (b *NumberBuilder) Int(msg string) *NumberBuilder {
	return b.Refine("int", func(v any) bool {
		f, ok := v.(float64)
		return ok && f == float64(int64(f))
	}, msg)
}

// ---------------- Bool ----------------

// BoolBuilder builds a checkbox field.
type BoolBuilder struct {
	common[*BoolBuilder]
}

// Bool starts a required boolean field.
func Bool(name string) *BoolBuilder {
	b := &BoolBuilder{}
	b.init(name, goform.KindBoolean, b)
	return b
}

// ---------------- Enum ----------------

// EnumBuilder builds a select field.
type EnumBuilder struct {
	common[*EnumBuilder]
}

// Enum starts a required select field with the given values (labels default
// to the values).
func Enum(name string, values ...string) *EnumBuilder {
	b := &EnumBuilder{}
	b.init(name, goform.KindEnum, b)
	for _, v := range values {
		b.Option(v, v)
	}
	return b
}

// Option appends a choice.
func (b *EnumBuilder) Option(value, label string) *EnumBuilder {
	b.spec.Options = append(b.spec.Options, goform.Option{Value: value, Label: label})
	return b
}

// NotOneOf sets the message reported for a value outside the options.
func (b *EnumBuilder) NotOneOf(msg string) *EnumBuilder {
	b.spec.EnumMessage = msg
	return b
}

// ---------------- Date / Time ----------------

// TemporalBuilder builds date and time fields. Values stay strings in the
// Record; Valid adds a format check through the codec package.
type TemporalBuilder struct {
	common[*TemporalBuilder]
}

// Date starts a required date field ("YYYY-MM-DD").
func Date(name string) *TemporalBuilder {
	b := &TemporalBuilder{}
	b.init(name, goform.KindDate, b)
	return b
}

// Time starts a required time field ("HH:MM").
func Time(name string) *TemporalBuilder {
	b := &TemporalBuilder{}
	b.init(name, goform.KindTime, b)
	return b
}

// NonEmpty rejects "".
func (b *TemporalBuilder) NonEmpty(msg string) *TemporalBuilder { return b.Rule(goform.NonEmpty(msg)) }

// Valid requires the value to decode with the kind's codec.
func (b *TemporalBuilder) Valid(msg string) *TemporalBuilder {
	c := codec.Date()
	if b.spec.Kind == goform.KindTime {
		c = codec.Clock()
	}
	return b.Rule(goform.Format(codec.FormatName(c), codec.Check(c), msg))
}

// ---------------- adapters ----------------

type specAdapter struct{ spec goform.FieldSpec }

func (a specAdapter) Spec() goform.FieldSpec { return a.spec }

// FieldOf adapts a hand-written FieldSpec.
func FieldOf(spec goform.FieldSpec) FieldAdapter { return specAdapter{spec: spec} }
