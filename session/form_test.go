package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/forms"
	"github.com/reoring/goform/session"
)

func TestForm_OnBlurValidatesOnlyBlurredFields(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t)
	f := s.PersonForm()
	if err := f.Set(ctx, "username", "ab"); err != nil {
		t.Fatal(err)
	}
	if len(f.Errors()) != 0 {
		t.Fatalf("set must not validate in onBlur mode: %v", f.Errors())
	}
	if err := f.Blur(ctx, "username"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(goform.FieldErrors{"username": "must be at least 3 characters"}, f.Errors()); diff != "" {
		t.Fatalf("errors (-want +got):\n%s", diff)
	}
	_ = f.Set(ctx, "username", "abc")
	_ = f.Blur(ctx, "username")
	if len(f.Errors()) != 0 {
		t.Fatalf("error must clear once valid: %v", f.Errors())
	}
}

func TestForm_OnChangeAndOnSubmitModes(t *testing.T) {
	ctx := context.Background()
	change := session.NewForm(forms.Person(), session.OnChange, nil, nil)
	_ = change.Set(ctx, "email", "x")
	if change.Errors()["email"] != "invalid email" {
		t.Fatalf("onChange: %v", change.Errors())
	}
	submit := session.NewForm(forms.Person(), session.OnSubmit, nil, nil)
	_ = submit.Set(ctx, "email", "x")
	_ = submit.Blur(ctx, "email")
	if len(submit.Errors()) != 0 {
		t.Fatalf("onSubmit must wait for submit: %v", submit.Errors())
	}
	if _, err := submit.Submit(ctx); err == nil {
		t.Fatalf("expected submit errors")
	}
	// After a failed submit, edits re-validate their field.
	_ = submit.Set(ctx, "email", "x@example.com")
	if submit.Errors().Has("email") {
		t.Fatalf("email error should clear on change after submit")
	}
}

func TestForm_SubmitLifecycle(t *testing.T) {
	ctx := context.Background()
	s, rec := newSession(t)
	f := s.PersonForm()
	if _, err := f.Submit(ctx); err == nil {
		t.Fatalf("empty submit must fail")
	}
	if f.State() != session.Editing || len(f.Errors()) != 4 {
		t.Fatalf("invalid submit: state=%v errors=%v", f.State(), f.Errors())
	}
	for k, v := range person("alice") {
		if err := f.Set(ctx, k, v); err != nil {
			t.Fatal(err)
		}
	}
	got, err := f.Submit(ctx)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.String("username") != "alice" || f.SubmitCount() != 1 {
		t.Fatalf("unexpected record %v count %d", got.Map(), f.SubmitCount())
	}
	if f.State() != session.Editing || len(f.Values()) != 0 || len(f.Errors()) != 0 {
		t.Fatalf("form must return to a clean Editing state")
	}
	if diff := cmp.Diff([]string{"alice"}, usernames(s.ListPersons())); diff != "" {
		t.Fatalf("persons (-want +got):\n%s", diff)
	}
	if len(rec.lists) != 1 {
		t.Fatalf("expected list render")
	}
}

func TestForm_HandlerErrorKeepsInput(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	var seen session.State
	var f *session.Form
	f = session.NewForm(forms.Person(), session.OnBlur, nil, func(ctx context.Context, rec goform.Record) error {
		seen = f.State()
		return boom
	})
	for k, v := range person("alice") {
		_ = f.Set(ctx, k, v)
	}
	if _, err := f.Submit(ctx); !errors.Is(err, boom) {
		t.Fatalf("expected handler error, got %v", err)
	}
	if seen != session.Submitted {
		t.Fatalf("handler ran in state %v", seen)
	}
	if f.State() != session.Editing || f.Values()["username"] != "alice" || f.SubmitCount() != 0 {
		t.Fatalf("input must be kept after handler error")
	}
}

func TestForm_UnknownField(t *testing.T) {
	f := session.NewForm(forms.Person(), session.OnBlur, nil, nil)
	if err := f.Set(context.Background(), "nope", 1); !errors.Is(err, goform.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]session.Mode{"onSubmit": session.OnSubmit, "": session.OnBlur, "onChange": session.OnChange} {
		got, err := session.ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := session.ParseMode("always"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestForms_AreIndependent(t *testing.T) {
	ctx := context.Background()
	s, _ := newSession(t)
	_ = s.PrimaryForm().Set(ctx, "username", "x")
	if len(s.PersonForm().Values()) != 0 {
		t.Fatalf("forms share input")
	}
	if s.PrimaryForm().Name() != forms.RegistrationName || s.PersonForm().Name() != forms.PersonName {
		t.Fatalf("unexpected form names")
	}
}
