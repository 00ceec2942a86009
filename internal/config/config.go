// Package config loads the goform CLI configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultPath is read when no --config flag is given and the file exists.
const DefaultPath = "goform.toml"

// Config is the on-disk configuration.
type Config struct {
	// Language of the default messages ("en" or "ja").
	Language string `toml:"language"`
	// Mode is the validation mode of interactive forms (onSubmit, onBlur, onChange).
	Mode string `toml:"mode"`
	// Schemas is an optional YAML file with extra form definitions.
	Schemas string `toml:"schemas"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{Language: "en", Mode: "onBlur", LogLevel: "warn"}
}

// Load reads path over the defaults. A missing file at DefaultPath is not an
// error; an explicit path must exist. GOFORM_LANG overrides Language.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			err = nil
		} else {
			return Config{}, fmt.Errorf("config: %s: %w", path, err)
		}
	}
	if lang := strings.TrimSpace(os.Getenv("GOFORM_LANG")); lang != "" {
		cfg.Language = lang
	}
	return cfg, nil
}

// Level maps LogLevel onto slog.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
