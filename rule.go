package goform

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/reoring/goform/i18n"
	js "github.com/reoring/goform/jsonschema"
)

// Rule is one ordered constraint over a coerced value. Check returns false
// when the value violates the rule; Message is reported for the field in that
// case. An empty Message falls back to the translator default for Code.
type Rule struct {
	Name    string
	Code    string
	Message string
	Params  map[string]any
	Check   func(v any) bool

	project func(*js.Schema)
}

// message resolves the text reported when the rule fails.
func (r Rule) message() string {
	if r.Message != "" {
		return r.Message
	}
	return i18n.T(r.Code, stringParams(r.Params))
}

func stringParams(p map[string]any) map[string]string {
	if len(p) == 0 {
		return nil
	}
	out := make(map[string]string, len(p))
	for k, v := range p {
		switch t := v.(type) {
		case float64:
			out[k] = strconv.FormatFloat(t, 'f', -1, 64)
		case []string:
			out[k] = strings.Join(t, ", ")
		default:
			out[k] = fmt.Sprint(v)
		}
	}
	return out
}

// NonEmpty rejects the empty string. Declare it before length rules.
func NonEmpty(msg string) Rule {
	return Rule{
		Name: "nonempty", Code: CodeTooShort, Message: msg,
		Params: map[string]any{"min": 1},
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && s != ""
		},
		project: func(s *js.Schema) {
			if s.MinLength == nil || *s.MinLength < 1 {
				s.MinLength = js.Int(1)
			}
		},
	}
}

// MinLen requires at least n code points (inclusive).
func MinLen(n int, msg string) Rule {
	return Rule{
		Name: "min", Code: CodeTooShort, Message: msg,
		Params: map[string]any{"min": n},
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && utf8.RuneCountInString(s) >= n
		},
		project: func(s *js.Schema) {
			if s.MinLength == nil || *s.MinLength < n {
				s.MinLength = js.Int(n)
			}
		},
	}
}

// MaxLen allows at most n code points (inclusive).
func MaxLen(n int, msg string) Rule {
	return Rule{
		Name: "max", Code: CodeTooLong, Message: msg,
		Params: map[string]any{"max": n},
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && utf8.RuneCountInString(s) <= n
		},
		project: func(s *js.Schema) { s.MaxLength = js.Int(n) },
	}
}

// Gt requires a number strictly greater than min. min itself is invalid.
func Gt(min float64, msg string) Rule {
	return Rule{
		Name: "gt", Code: CodeTooSmall, Message: msg,
		Params: map[string]any{"min": min},
		Check: func(v any) bool {
			f, ok := v.(float64)
			return ok && f > min
		},
		project: func(s *js.Schema) { s.ExclusiveMinimum = js.Float(min) },
	}
}

// Lt requires a number strictly less than max. max itself is invalid.
func Lt(max float64, msg string) Rule {
	return Rule{
		Name: "lt", Code: CodeTooBig, Message: msg,
		Params: map[string]any{"max": max},
		Check: func(v any) bool {
			f, ok := v.(float64)
			return ok && f < max
		},
		project: func(s *js.Schema) { s.ExclusiveMaximum = js.Float(max) },
	}
}

// Gte requires a number greater than or equal to min.
func Gte(min float64, msg string) Rule {
	return Rule{
		Name: "gte", Code: CodeTooSmall, Message: msg,
		Params: map[string]any{"min": min},
		Check: func(v any) bool {
			f, ok := v.(float64)
			return ok && f >= min
		},
		project: func(s *js.Schema) { s.Minimum = js.Float(min) },
	}
}

// Lte requires a number less than or equal to max.
func Lte(max float64, msg string) Rule {
	return Rule{
		Name: "lte", Code: CodeTooBig, Message: msg,
		Params: map[string]any{"max": max},
		Check: func(v any) bool {
			f, ok := v.(float64)
			return ok && f <= max
		},
		project: func(s *js.Schema) { s.Maximum = js.Float(max) },
	}
}

// emailRe mirrors the common client-side email check. Leading dots and
// consecutive dots are rejected separately because RE2 has no lookahead.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9_'+\-.]*[A-Za-z0-9_+\-]@([A-Za-z0-9][A-Za-z0-9\-]*\.)+[A-Za-z]{2,}$`)

// IsEmail reports whether s looks like an email address.
func IsEmail(s string) bool {
	if strings.HasPrefix(s, ".") || strings.Contains(s, "..") {
		return false
	}
	return emailRe.MatchString(s)
}

// Email requires a well-formed email address.
func Email(msg string) Rule {
	return Rule{
		Name: "email", Code: CodeInvalidFormat, Message: msg,
		Params: map[string]any{"format": "email"},
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && IsEmail(s)
		},
		project: func(s *js.Schema) { s.Format = "email" },
	}
}

// Pattern requires the string to match re.
func Pattern(re *regexp.Regexp, msg string) Rule {
	return Rule{
		Name: "pattern", Code: CodePattern, Message: msg,
		Params: map[string]any{"pattern": re.String()},
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && re.MatchString(s)
		},
		project: func(s *js.Schema) { s.Pattern = re.String() },
	}
}

// OneOf requires membership in values.
func OneOf(values []string, msg string) Rule {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	vals := append([]string(nil), values...)
	return Rule{
		Name: "enum", Code: CodeInvalidEnum, Message: msg,
		Params: map[string]any{"values": vals},
		Check: func(v any) bool {
			s, ok := v.(string)
			if !ok {
				return false
			}
			_, in := set[s]
			return in
		},
		project: func(s *js.Schema) {
			s.Enum = make([]any, len(vals))
			for i, v := range vals {
				s.Enum[i] = v
			}
		},
	}
}

// Format checks the value with parse (for example a date codec) and reports
// CodeInvalidFormat on failure.
func Format(format string, parse func(string) error, msg string) Rule {
	return Rule{
		Name: "format", Code: CodeInvalidFormat, Message: msg,
		Params: map[string]any{"format": format},
		Check: func(v any) bool {
			s, ok := v.(string)
			return ok && parse(s) == nil
		},
		project: func(s *js.Schema) { s.Format = format },
	}
}

// Custom wraps an arbitrary predicate.
func Custom(name string, check func(v any) bool, msg string) Rule {
	return Rule{Name: name, Code: CodeCustom, Message: msg, Check: check}
}
