package main

import (
	"context"
	"os"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/source"
)

var (
	validateForm  string
	validateInput string
)

type validateResult struct {
	Form   string             `json:"form"`
	Valid  bool               `json:"valid"`
	Record *goform.Record     `json:"record,omitempty"`
	Errors goform.FieldErrors `json:"errors,omitempty"`
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a JSON object against a form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := lookupForm(validateForm)
		if err != nil {
			return err
		}
		r := cmd.InOrStdin()
		if validateInput != "" && validateInput != "-" {
			f, err := os.Open(validateInput)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}
		raw, err := source.JSONReader(r)
		if err != nil {
			return err
		}
		res := validateResult{Form: s.Name()}
		rec, errs := s.Validate(context.Background(), raw)
		if errs == nil {
			res.Valid = true
			res.Record = &rec
		} else {
			res.Errors = errs
		}
		out, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		cmd.OutOrStdout().Write(append(out, '\n'))
		if !res.Valid {
			return errInvalid
		}
		return nil
	},
}

func init() {
	validateCmd.Flags().StringVarP(&validateForm, "form", "f", "registration", "form name")
	validateCmd.Flags().StringVarP(&validateInput, "input", "i", "-", "JSON input file (- for stdin)")
}
