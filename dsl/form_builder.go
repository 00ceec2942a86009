package dsl

import (
	goform "github.com/reoring/goform"
)

// FormBuilder collects fields in evaluation order.
type FormBuilder struct {
	name   string
	fields []FieldAdapter
}

// Form creates a new form builder.
func Form(name string) *FormBuilder {
	return &FormBuilder{name: name}
}

// Field registers a field. Declaration order is evaluation order.
func (b *FormBuilder) Field(ad FieldAdapter) *FormBuilder {
	b.fields = append(b.fields, ad)
	return b
}

// Build validates the field list and returns the schema.
func (b *FormBuilder) Build() (*goform.Schema, error) {
	specs := make([]goform.FieldSpec, 0, len(b.fields))
	for _, ad := range b.fields {
		if ad == nil {
			continue
		}
		specs = append(specs, ad.Spec())
	}
	return goform.NewSchema(b.name, specs...)
}

// MustBuild is like Build but panics on error.
func (b *FormBuilder) MustBuild() *goform.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
