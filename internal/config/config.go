// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

// Package config loads holoflags CLI settings from defaults, an optional YAML
// file and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/holomush/holoflags/internal/logging"
	"github.com/holomush/holoflags/internal/xdg"
)

// Config holds CLI settings.
type Config struct {
	LogFormat  string `koanf:"log-format"`
	LogLevel   string `koanf:"log-level"`
	MetricsOut string `koanf:"metrics-out"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogFormat: string(logging.FormatText),
		LogLevel:  "warn",
	}
}

// Load reads settings. An empty path means the XDG default config file, which
// may be absent; an explicit path must exist. Flags in fs that were set on the
// command line override the file.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	optional := path == ""
	if optional {
		path = xdg.DefaultConfigFile()
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		if !optional || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, oops.Code("CONFIG_INVALID").With("path", path).Wrapf(err, "load config file")
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return Config{}, oops.Code("CONFIG_INVALID").Wrapf(err, "load command-line flags")
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, oops.Code("CONFIG_INVALID").Wrapf(err, "decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every setting has a supported value.
func (c Config) Validate() error {
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Format returns the parsed log format.
func (c Config) Format() logging.Format {
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return logging.FormatText
	}
	return format
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, oops.Code("CONFIG_INVALID").With("log-level", c.LogLevel).Wrapf(err, "invalid log level")
	}
	return level, nil
}
