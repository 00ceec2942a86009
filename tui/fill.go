// Package tui is a terminal rendering collaborator: it prompts for raw field
// values, feeds them into a session.Form and prints errors, records and the
// person list.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/session"
)

// ErrTooManyAttempts is returned when a field stays invalid after
// Filler.MaxAttempts prompts.
var ErrTooManyAttempts = errors.New("tui: too many invalid attempts")

// Filler prompts for every field of a form in declaration order. Each answer
// is set and blurred; a field is asked again while it carries an error.
type Filler struct {
	Driver      PromptDriver
	MaxAttempts int
}

// Fill collects all fields and submits the form. Validation failures on
// submit are returned as goform.Issues.
func (f *Filler) Fill(ctx context.Context, form *session.Form, fields []goform.FieldSpec) (goform.Record, error) {
	for _, fs := range fields {
		if err := f.ask(ctx, form, fs); err != nil {
			return goform.Record{}, err
		}
	}
	return form.Submit(ctx)
}

func (f *Filler) ask(ctx context.Context, form *session.Form, fs goform.FieldSpec) error {
	limit := f.MaxAttempts
	if limit <= 0 {
		limit = 3
	}
	for attempt := 0; attempt < limit; attempt++ {
		v, err := f.prompt(ctx, fs)
		if err != nil {
			return err
		}
		if err := form.Set(ctx, fs.Name, v); err != nil {
			return err
		}
		if err := form.Blur(ctx, fs.Name); err != nil {
			return err
		}
		msg, bad := form.Errors()[fs.Name]
		if !bad {
			return nil
		}
		if err := f.Driver.Info(ctx, "  "+msg); err != nil {
			return err
		}
	}
	return fmt.Errorf("%w: %s", ErrTooManyAttempts, fs.Name)
}

func (f *Filler) prompt(ctx context.Context, fs goform.FieldSpec) (any, error) {
	label := fs.Label
	if label == "" {
		label = fs.Name
	}
	switch fs.Kind {
	case goform.KindBoolean:
		return f.Driver.Confirm(ctx, ConfirmConfig{Message: label})
	case goform.KindEnum:
		opts := make([]string, len(fs.Options))
		for i, o := range fs.Options {
			opts[i] = o.Label
		}
		idx, err := f.Driver.Select(ctx, SelectConfig{Message: label, Options: opts, DefaultIndex: -1})
		if err != nil {
			return nil, err
		}
		if idx < 0 || idx >= len(fs.Options) {
			return "", nil
		}
		return fs.Options[idx], nil
	}
	cfg := InputConfig{Message: label, Help: help(fs)}
	if fs.Secret {
		return f.Driver.Password(ctx, cfg)
	}
	return f.Driver.Input(ctx, cfg)
}

func help(fs goform.FieldSpec) string {
	switch fs.Kind {
	case goform.KindDate:
		return "YYYY-MM-DD"
	case goform.KindTime:
		return "HH:MM"
	case goform.KindNumber:
		return "number"
	}
	for _, r := range fs.Rules {
		if r.Name == "max" {
			if n, ok := r.Params["max"].(int); ok {
				return "up to " + strconv.Itoa(n) + " characters"
			}
		}
	}
	return ""
}
