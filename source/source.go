// Package source decodes RawInput from the wire formats a UI layer produces.
package source

import (
	"bytes"
	"fmt"
	"io"
	"net/url"

	json "github.com/goccy/go-json"

	goform "github.com/reoring/goform"
)

// JSON decodes a JSON object into RawInput. Numbers are kept as json.Number
// so the number coercion sees the literal the user typed.
func JSON(b []byte) (goform.RawInput, error) {
	return JSONReader(bytes.NewReader(b))
}

// JSONReader decodes a single JSON object from r.
func JSONReader(r io.Reader) (goform.RawInput, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("source: decode json: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("source: decode json: expected object, got null")
	}
	return goform.RawInput(raw), nil
}

// Values converts HTML form values. Single values become strings, repeated
// keys keep their last value. Unchecked checkboxes are not posted by browsers,
// so the fields listed in checkboxes default to false.
func Values(v url.Values, checkboxes ...string) goform.RawInput {
	out := make(goform.RawInput, len(v)+len(checkboxes))
	for _, name := range checkboxes {
		out[name] = false
	}
	for k, vals := range v {
		if len(vals) == 0 {
			continue
		}
		out[k] = vals[len(vals)-1]
	}
	return out
}

// Checkboxes lists the boolean fields of a schema, for use with Values.
func Checkboxes(p goform.Parser) []string {
	var out []string
	for _, f := range p.Fields() {
		if f.Kind == goform.KindBoolean {
			out = append(out, f.Name)
		}
	}
	return out
}
