package main

import (
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var schemaForm string

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of a form",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := lookupForm(schemaForm)
		if err != nil {
			return err
		}
		sch, err := s.JSONSchema()
		if err != nil {
			return err
		}
		out, err := json.MarshalIndent(sch, "", "  ")
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(append(out, '\n'))
		return err
	},
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaForm, "form", "f", "registration", "form name")
}
