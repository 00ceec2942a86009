package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	goform "github.com/reoring/goform"
	"github.com/reoring/goform/forms"
	"github.com/reoring/goform/i18n"
	"github.com/reoring/goform/internal/config"
	"github.com/reoring/goform/schemadef"
	"github.com/reoring/goform/session"
)

// errInvalid marks a run that completed but found invalid input.
var errInvalid = errors.New("invalid input")

var (
	configPath string
	langFlag   string

	cfg     config.Config
	logger  *slog.Logger
	schemas map[string]*goform.Schema
)

var rootCmd = &cobra.Command{
	Use:           "goform <command>",
	Short:         "Validate form input and drive a form session from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		if langFlag != "" {
			cfg.Language = langFlag
		}
		i18n.SetLanguage(cfg.Language)
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))
		schemas = forms.Builtin()
		if cfg.Schemas != "" {
			extra, err := schemadef.LoadFile(cfg.Schemas)
			if err != nil {
				return err
			}
			for name, s := range extra {
				if _, dup := schemas[name]; dup {
					return fmt.Errorf("form %q from %s shadows a built-in form", name, cfg.Schemas)
				}
				schemas[name] = s
			}
		}
		logger.Debug("config loaded", "language", cfg.Language, "mode", cfg.Mode, "forms", len(schemas))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+config.DefaultPath+" when present)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "message language (en, ja)")
	rootCmd.AddCommand(validateCmd, schemaCmd, fillCmd, personsCmd)
}

func lookupForm(name string) (*goform.Schema, error) {
	s, ok := schemas[name]
	if !ok {
		names := make([]string, 0, len(schemas))
		for n := range schemas {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown form %q (available: %s)", name, strings.Join(names, ", "))
	}
	return s, nil
}

func mode() (session.Mode, error) { return session.ParseMode(cfg.Mode) }

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
