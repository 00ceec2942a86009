package forms_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/forms"
)

func validRegistration() goform.RawInput {
	return goform.RawInput{
		"username":  "alice",
		"password":  "s3cret!",
		"age":       "42",
		"email":     "alice@example.com",
		"isStudent": true,
		"gender":    goform.Option{Value: "female", Label: "Female"},
		"date":      "2024-05-01",
		"time":      "14:30",
	}
}

func TestRegistration_Valid(t *testing.T) {
	ctx := context.Background()
	rec, err := forms.Registration().Parse(ctx, validRegistration())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, err := forms.RegistrationOf(ctx, rec)
	if err != nil {
		t.Fatalf("RegistrationOf: %v", err)
	}
	want := forms.RegistrationData{
		Username:  "alice",
		Password:  "s3cret!",
		Age:       42,
		Email:     "alice@example.com",
		IsStudent: true,
		Gender:    "female",
		Date:      time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Time:      time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("registration (-want +got):\n%s", diff)
	}
}

func TestRegistration_EmptySubmission(t *testing.T) {
	raw := goform.RawInput{
		"username": "", "password": "", "age": "", "email": "",
		"isStudent": false, "gender": "", "date": "", "time": "",
	}
	_, errs := forms.Registration().Validate(context.Background(), raw)
	want := goform.FieldErrors{
		"username": "Username is required",
		"password": "Password is required",
		"age":      "Age is required",
		"email":    "Email is required",
		"gender":   "Please select gender",
		"date":     "Please provide a date",
		"time":     "Please provide a time",
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("errors (-want +got):\n%s", diff)
	}
}

func TestRegistration_PasswordBounds(t *testing.T) {
	cases := map[string]string{
		"12345":                      "password must contain atleast 6 characters",
		"123456":                     "",
		"1234567890123456789012345":  "",
		"12345678901234567890123456": "password must not exceed 25 characters",
	}
	for pw, want := range cases {
		raw := validRegistration()
		raw["password"] = pw
		_, errs := forms.Registration().Validate(context.Background(), raw)
		if errs["password"] != want {
			t.Errorf("len %d: got %q want %q", len(pw), errs["password"], want)
		}
	}
}

func TestRegistration_SecretPassword(t *testing.T) {
	f, ok := forms.Registration().Field("password")
	if !ok || !f.Secret {
		t.Fatalf("password must be secret")
	}
}

func TestBuiltin(t *testing.T) {
	b := forms.Builtin()
	if b[forms.RegistrationName] == nil || b[forms.PersonName] == nil || len(b) != 2 {
		t.Fatalf("unexpected builtins %v", b)
	}
}
