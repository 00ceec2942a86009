package goform

// Package goform provides:
//
// - An ordered field schema that turns raw form input into a typed Record or field-level errors
// - A two-stage pipeline per field: Coerce (present / absent / invalid type) then ordered Rules
// - A stable error model via Issues (field, JSON Pointer, code, message) collapsible into FieldErrors
// - JSON Schema projection of form schemas
//
// Design policy:
// - Keep the engine pure: no I/O, no hidden state, validation failures are returned values.
// - Place the builder under dsl/, codecs under codec/, raw-input decoders under source/,
//   concrete forms under forms/, and the stateful form session under session/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s := forms.Person()
//	rec, err := s.Parse(ctx, goform.RawInput{"username": "alice", "age": "30"})
//	if err != nil {
//		errs := goform.FieldErrorsOf(err) // field -> first failing message
//	}
//	p, err := goform.Bind[Person](rec)
