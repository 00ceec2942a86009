package session

import (
	"context"
	"fmt"

	goform "github.com/reoring/goform"
)

// State is the lifecycle state of a logical form.
type State int

const (
	// Editing accepts edits; FieldErrors may be attached.
	Editing State = iota
	// Submitted is held only while the submit handler runs.
	Submitted
)

func (s State) String() string {
	if s == Submitted {
		return "submitted"
	}
	return "editing"
}

// Mode selects when field edits are validated before the first submit.
type Mode int

const (
	OnSubmit Mode = iota
	OnBlur
	OnChange
)

// ParseMode resolves "onSubmit", "onBlur" or "onChange".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "onSubmit", "submit":
		return OnSubmit, nil
	case "onBlur", "blur", "":
		return OnBlur, nil
	case "onChange", "change":
		return OnChange, nil
	}
	return OnBlur, fmt.Errorf("session: unknown validation mode %q", s)
}

// SubmitFunc receives a validated record. An error keeps the form editing
// with its input intact.
type SubmitFunc func(ctx context.Context, rec goform.Record) error

// Form holds one in-progress set of raw values for a schema.
type Form struct {
	parser    goform.Parser
	mode      Mode
	raw       goform.RawInput
	errs      goform.FieldErrors
	state     State
	submitted int
	attempted bool
	onSubmit  SubmitFunc
	renderer  Renderer
}

// NewForm creates a form over p. onSubmit may be nil.
func NewForm(p goform.Parser, mode Mode, r Renderer, onSubmit SubmitFunc) *Form {
	if r == nil {
		r = NopRenderer{}
	}
	return &Form{parser: p, mode: mode, raw: goform.RawInput{}, renderer: r, onSubmit: onSubmit}
}

// Name returns the schema name.
func (f *Form) Name() string { return f.parser.Name() }

// State returns the current state.
func (f *Form) State() State { return f.state }

// SubmitCount is the number of successful submissions.
func (f *Form) SubmitCount() int { return f.submitted }

// Values returns a copy of the raw input.
func (f *Form) Values() goform.RawInput { return f.raw.Clone() }

// Errors returns a copy of the attached field errors.
func (f *Form) Errors() goform.FieldErrors { return f.errs.Clone() }

// Set records a raw edit. In OnChange mode, or once a submit was attempted,
// the field is validated immediately.
func (f *Form) Set(ctx context.Context, name string, value any) error {
	if _, ok := fieldOf(f.parser, name); !ok {
		return fmt.Errorf("%w: %q in form %q", goform.ErrUnknownField, name, f.Name())
	}
	f.raw[name] = value
	if f.mode == OnChange || f.attempted {
		return f.validateField(ctx, name)
	}
	return nil
}

// Blur signals the field lost focus. In OnBlur mode the field is validated.
func (f *Form) Blur(ctx context.Context, name string) error {
	if f.mode != OnBlur && !f.attempted {
		return nil
	}
	return f.validateField(ctx, name)
}

func (f *Form) validateField(ctx context.Context, name string) error {
	msg, ok, err := f.parser.ValidateField(ctx, name, f.raw)
	if err != nil {
		return err
	}
	if ok {
		delete(f.errs, name)
	} else {
		if f.errs == nil {
			f.errs = goform.FieldErrors{}
		}
		f.errs[name] = msg
	}
	f.renderer.RenderErrors(f.Name(), f.errs.Clone())
	return nil
}

// Submit validates every field. Invalid input stays in Editing with the
// errors attached and returns Issues. Valid input moves to Submitted, runs the
// handler and returns to Editing with cleared input.
func (f *Form) Submit(ctx context.Context) (goform.Record, error) {
	f.attempted = true
	rec, err := f.parser.Parse(ctx, f.raw)
	if err != nil {
		f.errs = goform.FieldErrorsOf(err)
		f.renderer.RenderErrors(f.Name(), f.errs.Clone())
		return goform.Record{}, err
	}
	f.state = Submitted
	if f.onSubmit != nil {
		if herr := f.onSubmit(ctx, rec); herr != nil {
			f.state = Editing
			return goform.Record{}, herr
		}
	}
	f.submitted++
	f.Reset()
	return rec, nil
}

// Reset clears input and errors and returns to Editing.
func (f *Form) Reset() {
	f.raw = goform.RawInput{}
	f.errs = nil
	f.attempted = false
	f.state = Editing
}

func fieldOf(p goform.Parser, name string) (goform.FieldSpec, bool) {
	if s, ok := p.(interface {
		Field(string) (goform.FieldSpec, bool)
	}); ok {
		return s.Field(name)
	}
	for _, fs := range p.Fields() {
		if fs.Name == name {
			return fs, true
		}
	}
	return goform.FieldSpec{}, false
}
