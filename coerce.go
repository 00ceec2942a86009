package goform

import (
	"math"
	"strconv"
	"strings"
)

// Presence is the outcome of the coercion stage for one raw value.
type Presence uint8

const (
	// Present means the value was coerced to the field's kind.
	Present Presence = iota
	// Absent means there is no value; required fields report CodeRequired.
	Absent
	// InvalidType means the raw value cannot be read as the field's kind.
	InvalidType
)

// Coerced carries the coerced value together with its presence.
type Coerced struct {
	Value    any
	Presence Presence
}

func present(v any) Coerced { return Coerced{Value: v, Presence: Present} }

var (
	absent  = Coerced{Presence: Absent}
	invalid = Coerced{Presence: InvalidType}
)

// Coercion converts a raw UI value into the typed value consumed by rules.
type Coercion func(raw any) Coerced

// Preprocess runs fn on the raw value before the next coercion stage.
func Preprocess(fn func(any) any, next Coercion) Coercion {
	return func(raw any) Coerced { return next(fn(raw)) }
}

// Chain runs stages left to right. A stage that does not report Present
// stops the chain.
func Chain(stages ...Coercion) Coercion {
	return func(raw any) Coerced {
		c := present(raw)
		for _, st := range stages {
			if st == nil {
				continue
			}
			c = st(c.Value)
			if c.Presence != Present {
				return c
			}
		}
		return c
	}
}

// EmptyAsAbsent maps the empty string to nil so an absent select reports its
// required message instead of a type or membership failure.
func EmptyAsAbsent(raw any) any {
	if s, ok := raw.(string); ok && s == "" {
		return nil
	}
	return raw
}

// OptionValue unwraps {value,label} pairs produced by select widgets.
func OptionValue(raw any) any {
	switch t := raw.(type) {
	case Option:
		return t.Value
	case *Option:
		if t == nil {
			return nil
		}
		return t.Value
	case map[string]any:
		if v, ok := t["value"]; ok {
			return v
		}
	}
	return raw
}

// CoerceString accepts strings only.
func CoerceString(raw any) Coerced {
	switch t := raw.(type) {
	case nil:
		return absent
	case string:
		return present(t)
	default:
		return invalid
	}
}

type float64er interface{ Float64() (float64, error) }

// CoerceNumber accepts Go numbers, json.Number-like values and numeric
// strings. Empty or non-numeric strings, NaN and infinities are invalid.
func CoerceNumber(raw any) Coerced {
	var f float64
	switch t := raw.(type) {
	case nil:
		return absent
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int8:
		f = float64(t)
	case int16:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint:
		f = float64(t)
	case uint8:
		f = float64(t)
	case uint16:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return invalid
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return invalid
		}
		f = v
	case float64er:
		v, err := t.Float64()
		if err != nil {
			return invalid
		}
		f = v
	default:
		return invalid
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return invalid
	}
	return present(f)
}

// CoerceBool accepts booleans and checkbox strings ("on", "off", and anything
// strconv.ParseBool understands).
func CoerceBool(raw any) Coerced {
	switch t := raw.(type) {
	case nil:
		return absent
	case bool:
		return present(t)
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "on":
			return present(true)
		case "off":
			return present(false)
		}
		b, err := strconv.ParseBool(strings.TrimSpace(t))
		if err != nil {
			return invalid
		}
		return present(b)
	default:
		return invalid
	}
}

// CoerceEnum is the select pipeline: unwrap options, treat "" as absent, then
// read a string.
func CoerceEnum(raw any) Coerced {
	return Preprocess(func(v any) any { return EmptyAsAbsent(OptionValue(v)) }, CoerceString)(raw)
}

// DefaultCoercion returns the built-in coercion for a kind.
func DefaultCoercion(k Kind) Coercion {
	switch k {
	case KindNumber:
		return CoerceNumber
	case KindBoolean:
		return CoerceBool
	case KindEnum:
		return CoerceEnum
	default:
		return CoerceString
	}
}
