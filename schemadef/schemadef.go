// Package schemadef loads declarative form definitions from YAML.
//
// A document lists forms; each field names its kind and ordered rules:
//
//	forms:
//	  - name: signup
//	    fields:
//	      - name: username
//	        kind: string
//	        rules:
//	          - {rule: nonempty, message: Username is required}
//	          - {rule: min, value: 3, message: must be at least 3 characters}
//	      - name: gender
//	        kind: enum
//	        required_message: Please select gender
//	        options:
//	          - {value: male, label: Male}
//
// Multiple YAML documents in one stream are merged; form names must be unique.
package schemadef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/codec"
)

// Document is the top-level YAML shape.
type Document struct {
	Forms []FormDef `yaml:"forms"`
}

// FormDef declares one form.
type FormDef struct {
	Name   string     `yaml:"name"`
	Fields []FieldDef `yaml:"fields"`
}

// FieldDef declares one field.
type FieldDef struct {
	Name            string          `yaml:"name"`
	Kind            string          `yaml:"kind"`
	Label           string          `yaml:"label"`
	Optional        bool            `yaml:"optional"`
	Secret          bool            `yaml:"secret"`
	RequiredMessage string          `yaml:"required_message"`
	TypeMessage     string          `yaml:"type_message"`
	EnumMessage     string          `yaml:"enum_message"`
	Options         []goform.Option `yaml:"options"`
	Rules           []RuleDef       `yaml:"rules"`
}

// RuleDef declares one rule. Value is the bound, pattern or format depending
// on Rule.
type RuleDef struct {
	Rule    string `yaml:"rule"`
	Value   any    `yaml:"value"`
	Message string `yaml:"message"`
}

// LoadFile reads and builds every form defined in path.
func LoadFile(path string) (map[string]*goform.Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemadef: %w", err)
	}
	return Load(b)
}

// Load decodes YAML (unknown keys are rejected) and builds the schemas.
func Load(data []byte) (map[string]*goform.Schema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	out := map[string]*goform.Schema{}
	for {
		var doc Document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("schemadef: decode: %w", err)
		}
		for _, fd := range doc.Forms {
			if _, dup := out[fd.Name]; dup {
				return nil, fmt.Errorf("schemadef: duplicate form %q", fd.Name)
			}
			s, err := fd.Build()
			if err != nil {
				return nil, err
			}
			out[fd.Name] = s
		}
	}
	return out, nil
}

// Build converts the definition into a schema.
func (fd FormDef) Build() (*goform.Schema, error) {
	if fd.Name == "" {
		return nil, errors.New("schemadef: form without name")
	}
	specs := make([]goform.FieldSpec, 0, len(fd.Fields))
	for _, f := range fd.Fields {
		spec, err := f.spec()
		if err != nil {
			return nil, fmt.Errorf("schemadef: form %q field %q: %w", fd.Name, f.Name, err)
		}
		specs = append(specs, spec)
	}
	return goform.NewSchema(fd.Name, specs...)
}

func (f FieldDef) spec() (goform.FieldSpec, error) {
	kind, ok := goform.ParseKind(f.Kind)
	if !ok {
		return goform.FieldSpec{}, fmt.Errorf("unknown kind %q", f.Kind)
	}
	spec := goform.FieldSpec{
		Name:            f.Name,
		Kind:            kind,
		Label:           f.Label,
		Required:        !f.Optional,
		Secret:          f.Secret,
		RequiredMessage: f.RequiredMessage,
		TypeMessage:     f.TypeMessage,
		EnumMessage:     f.EnumMessage,
		Options:         f.Options,
	}
	for i, rd := range f.Rules {
		r, err := rd.build(kind)
		if err != nil {
			return goform.FieldSpec{}, fmt.Errorf("rule %d (%s): %w", i, rd.Rule, err)
		}
		spec.Rules = append(spec.Rules, r)
	}
	return spec, nil
}

func (rd RuleDef) build(kind goform.Kind) (goform.Rule, error) {
	switch rd.Rule {
	case "nonempty":
		return goform.NonEmpty(rd.Message), nil
	case "min", "max":
		n, err := intValue(rd.Value)
		if err != nil {
			return goform.Rule{}, err
		}
		if rd.Rule == "min" {
			return goform.MinLen(n, rd.Message), nil
		}
		return goform.MaxLen(n, rd.Message), nil
	case "gt", "lt", "gte", "lte":
		f, err := floatValue(rd.Value)
		if err != nil {
			return goform.Rule{}, err
		}
		switch rd.Rule {
		case "gt":
			return goform.Gt(f, rd.Message), nil
		case "lt":
			return goform.Lt(f, rd.Message), nil
		case "gte":
			return goform.Gte(f, rd.Message), nil
		default:
			return goform.Lte(f, rd.Message), nil
		}
	case "email":
		return goform.Email(rd.Message), nil
	case "pattern":
		s, ok := rd.Value.(string)
		if !ok {
			return goform.Rule{}, fmt.Errorf("pattern value must be a string")
		}
		re, err := regexp.Compile(s)
		if err != nil {
			return goform.Rule{}, err
		}
		return goform.Pattern(re, rd.Message), nil
	case "valid":
		switch kind {
		case goform.KindDate:
			return goform.Format("date", codec.Check(codec.Date()), rd.Message), nil
		case goform.KindTime:
			return goform.Format("time", codec.Check(codec.Clock()), rd.Message), nil
		}
		return goform.Rule{}, fmt.Errorf("valid applies to date and time fields only")
	}
	return goform.Rule{}, fmt.Errorf("unknown rule")
}

func intValue(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case string:
		return strconv.Atoi(t)
	}
	return 0, fmt.Errorf("value %v is not an integer", v)
}

func floatValue(v any) (float64, error) {
	switch t := v.(type) {
	case int:
		return float64(t), nil
	case float64:
		return t, nil
	case string:
		return strconv.ParseFloat(t, 64)
	}
	return 0, fmt.Errorf("value %v is not a number", v)
}
