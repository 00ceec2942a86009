package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/forms"
	"github.com/reoring/goform/session"
	"github.com/reoring/goform/tui"
)

var fillForm string

var fillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Fill a form interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return errors.New("fill needs an interactive terminal; use validate for piped input")
		}
		s, err := lookupForm(fillForm)
		if err != nil {
			return err
		}
		m, err := mode()
		if err != nil {
			return err
		}
		r := tui.NewRenderer(cmd.OutOrStdout())
		sess, err := session.New(session.WithRenderer(r), session.WithLogger(logger), session.WithMode(m))
		if err != nil {
			return err
		}
		var form *session.Form
		switch fillForm {
		case forms.RegistrationName:
			form = sess.PrimaryForm()
		case forms.PersonName:
			form = sess.PersonForm()
		default:
			form = session.NewForm(s, m, r, func(ctx context.Context, rec goform.Record) error {
				r.RenderRecord(s.Name(), rec)
				return nil
			})
		}
		filler := &tui.Filler{Driver: tui.NewSurveyDriver()}
		if _, err := filler.Fill(context.Background(), form, s.Fields()); err != nil {
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			if _, ok := goform.AsIssues(err); ok {
				return errInvalid
			}
			return err
		}
		return nil
	},
}

func init() {
	fillCmd.Flags().StringVarP(&fillForm, "form", "f", "registration", "form name")
}
