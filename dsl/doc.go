// Package dsl provides a zod-like builder for goform schemas.
//
// Overview
//   - Builder API: declare a form with Form(name) and chain Field(...) in evaluation order, then Build()/MustBuild().
//   - Field builders: String, Number, Bool, Enum, Date and Time return typed builders whose rule methods
//     append constraints in call order. The first failing constraint is the one reported for a field.
//   - Fields are required by default (like zod). Optional() drops the requirement; an absent optional
//     field is left out of the Record.
//   - Messages: every rule takes its failure message. An empty message falls back to the i18n default.
//
// Entry points
//   - Form(name): create a form builder.
//   - String/Number/Bool/Enum/Date/Time(name): create field builders.
//   - FieldOf(spec): adapt a hand-written goform.FieldSpec into the builder.
//
// Example (quickstart)
//
//	person := dsl.Form("person").
//	    Field(dsl.String("username").
//	        NonEmpty("Username is required").
//	        Min(3, "must be at least 3 characters").
//	        Max(15, "username can't be more than 15 characters")).
//	    Field(dsl.Number("age").
//	        Invalid("Age is required").
//	        Gt(18, "Must be adult").
//	        Lt(150, "Give a realistic age")).
//	    Field(dsl.Enum("gender").
//	        Option("male", "Male").Option("female", "Female").Option("others", "Others").
//	        Required("Please select gender")).
//	    MustBuild()
//
//	rec, err := person.Parse(ctx, goform.RawInput{"username": "alice", "age": "30", "gender": "female"})
//
// Coercion
//
//	// Enum fields run EmptyAsAbsent before membership checks so an unselected
//	// select reports its required message. Custom stages can be installed:
//	upper := func(v any) any {
//	    if s, ok := v.(string); ok {
//	        return strings.ToUpper(s)
//	    }
//	    return v
//	}
//	dsl.String("code").Coerce(goform.Preprocess(upper, goform.CoerceString))
//
// JSON Schema output hints
//
//	sch, _ := person.JSONSchema()
//	// Gt/Lt => exclusiveMinimum/exclusiveMaximum, Min/Max => minLength/maxLength,
//	// Enum => enum, Email => format "email", Secret => writeOnly
package dsl
