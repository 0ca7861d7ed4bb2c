// Package config loads application configuration by layering defaults, an
// optional YAML file, and TABULATOR_-prefixed environment variables.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/williatf/TSD-Comp-Tabulator-Unified/internal/errors"
)

// Config holds the runtime settings of the tabulator server.
type Config struct {
	Addr         string `koanf:"addr"`
	MasterDBPath string `koanf:"master_db_path"`
	EventDir     string `koanf:"event_dir"`
	LogLevel     string `koanf:"log_level"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Addr:         ":8080",
		MasterDBPath: "tabulator-master.db",
		EventDir:     "events",
		LogLevel:     "info",
	}
}

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML): the path argument, falling back to $TABULATOR_CONFIG
//  3. env (prefix TABULATOR_)
//
// A missing file is only an error when the path was given explicitly.
func Load(path string) (*Config, error) {
	base := New()

	k := koanf.New(".")

	explicit := path != ""
	if !explicit {
		path = os.Getenv("TABULATOR_CONFIG")
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			if explicit {
				return nil, errors.Wrap(err, errors.ErrValidation, "failed to load config file")
			}
		}
	}

	// Environment variables: TABULATOR_ADDR, TABULATOR_EVENT_DIR, ...
	// Map env keys like TABULATOR_EVENT_DIR -> event_dir (flat keys).
	envProvider := env.Provider("TABULATOR_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "tabulator_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Internal(err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrValidation, "failed to parse configuration")
	}

	if cfg.Addr == "" {
		return nil, errors.Validation("addr must not be empty")
	}
	return &cfg, nil
}
