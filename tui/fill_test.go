package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/forms"
	"github.com/reoring/goform/session"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	confirm      []bool
	selectIdx    []int
	infoMessages []string
	inputPos     int
	passPos      int
	confirmPos   int
	selectPos    int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, _ SelectConfig) (int, error) {
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func TestFill_Registration(t *testing.T) {
	drv := &stubDriver{
		inputs:    []string{"alice", "30", "alice@example.com", "2024-05-01", "14:30"},
		passwords: []string{"s3cret"},
		confirm:   []bool{true},
		selectIdx: []int{2},
	}
	schema := forms.Registration()
	form := session.NewForm(schema, session.OnBlur, nil, nil)
	rec, err := (&Filler{Driver: drv}).Fill(context.Background(), form, schema.Fields())
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	want := map[string]any{
		"username": "alice", "password": "s3cret", "age": 30.0, "email": "alice@example.com",
		"isStudent": true, "gender": "others", "date": "2024-05-01", "time": "14:30",
	}
	if diff := cmp.Diff(want, rec.Map()); diff != "" {
		t.Fatalf("record (-want +got):\n%s", diff)
	}
	if len(drv.infoMessages) != 0 {
		t.Fatalf("unexpected info: %v", drv.infoMessages)
	}
}

func TestFill_ReasksInvalidField(t *testing.T) {
	drv := &stubDriver{
		inputs:    []string{"ab", "alice", "17", "30", "alice@example.com"},
		selectIdx: []int{0},
	}
	schema := forms.Person()
	form := session.NewForm(schema, session.OnBlur, nil, nil)
	rec, err := (&Filler{Driver: drv}).Fill(context.Background(), form, schema.Fields())
	if err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if rec.String("username") != "alice" || rec.Float("age") != 30 || rec.String("gender") != "male" {
		t.Fatalf("unexpected record %v", rec.Map())
	}
	want := []string{"  must be at least 3 characters", "  Must be adult"}
	if diff := cmp.Diff(want, drv.infoMessages); diff != "" {
		t.Fatalf("info (-want +got):\n%s", diff)
	}
}

func TestFill_TooManyAttempts(t *testing.T) {
	drv := &stubDriver{inputs: []string{"a", "b"}}
	schema := forms.Person()
	form := session.NewForm(schema, session.OnBlur, nil, nil)
	_, err := (&Filler{Driver: drv, MaxAttempts: 2}).Fill(context.Background(), form, schema.Fields())
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestFill_DriverErrorStops(t *testing.T) {
	drv := &stubDriver{}
	schema := forms.Person()
	form := session.NewForm(schema, session.OnBlur, nil, nil)
	if _, err := (&Filler{Driver: drv}).Fill(context.Background(), form, schema.Fields()); err == nil {
		t.Fatalf("expected driver error")
	}
	if form.SubmitCount() != 0 {
		t.Fatalf("form must not be submitted")
	}
}

func TestHelp(t *testing.T) {
	schema := forms.Registration()
	got := map[string]string{}
	for _, fs := range schema.Fields() {
		got[fs.Name] = help(fs)
	}
	if got["date"] != "YYYY-MM-DD" || got["time"] != "HH:MM" || got["age"] != "number" {
		t.Fatalf("unexpected hints: %v", got)
	}
	if got["username"] != "up to 15 characters" {
		t.Fatalf("username hint %q", got["username"])
	}
}

func TestRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	r.RenderErrors("person", goform.FieldErrors{"username": "too short", "age": "Must be adult"})
	if got, want := buf.String(), "person: age: Must be adult\nperson: username: too short\n"; got != want {
		t.Fatalf("errors:\n got %q\nwant %q", got, want)
	}

	buf.Reset()
	r.RenderPersons(nil)
	if buf.String() != "no persons\n" {
		t.Fatalf("empty list: %q", buf.String())
	}

	buf.Reset()
	r.RenderPersons([]session.Person{{ID: 1, Username: "alice", Age: 30, Email: "a@b.io", Gender: "female"}})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[1], "alice") || !strings.Contains(lines[1], "30") {
		t.Fatalf("table:\n%s", buf.String())
	}
}
