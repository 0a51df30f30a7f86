// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

// Package config loads server configuration from defaults, an optional
// YAML file, command-line flags, and the environment.
package config

import (
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"
)

// Default values for server configuration.
const (
	DefaultHTTPAddr    = ":3060"
	DefaultMetricsAddr = "127.0.0.1:9100"
	DefaultBcryptCost  = 10
	DefaultLogFormat   = "json"
	DefaultLogLevel    = "info"
)

// Config holds runtime settings for the account service.
//
// The signing secret and database URL are secrets: they are read from
// the JWT_SECRET and DATABASE_URL environment variables and never from
// flags, so they don't leak into process listings.
type Config struct {
	HTTPAddr    string `koanf:"http-addr"`
	MetricsAddr string `koanf:"metrics-addr"`
	DatabaseURL string `koanf:"database-url"`
	JWTSecret   string `koanf:"-"`
	BcryptCost  int    `koanf:"bcrypt-cost"`
	LogFormat   string `koanf:"log-format"`
	LogLevel    string `koanf:"log-level"`
	TLSCert     string `koanf:"tls-cert"`
	TLSKey      string `koanf:"tls-key"`
}

// TLSEnabled reports whether the API should serve HTTPS.
func (c *Config) TLSEnabled() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

// Load builds a Config by applying defaults, then overlaying an
// optional YAML file, then command-line flags, then the environment.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	cfg := &Config{
		HTTPAddr:    DefaultHTTPAddr,
		MetricsAddr: DefaultMetricsAddr,
		BcryptCost:  DefaultBcryptCost,
		LogFormat:   DefaultLogFormat,
		LogLevel:    DefaultLogLevel,
	}

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, oops.Code("CONFIG_INVALID").
				With("path", path).
				Wrap(err)
		}
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, oops.Code("CONFIG_INVALID").
				With("operation", "load flags").
				Wrap(err)
		}
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, oops.Code("CONFIG_INVALID").
			With("operation", "unmarshal config").
			Wrap(err)
	}

	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")

	return cfg, nil
}

// Validate checks that the configuration can run the server.
func (c *Config) Validate() error {
	if c.HTTPAddr == "" {
		return oops.Code("CONFIG_INVALID").Errorf("http-addr is required")
	}
	if c.DatabaseURL == "" {
		return oops.Code("CONFIG_INVALID").Errorf("DATABASE_URL environment variable is required")
	}
	if c.JWTSecret == "" {
		return oops.Code("CONFIG_INVALID").Errorf("JWT_SECRET environment variable is required")
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return oops.Code("CONFIG_INVALID").Errorf("log-format must be 'json' or 'text', got %q", c.LogFormat)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return oops.Code("CONFIG_INVALID").Errorf("log-level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	if (c.TLSCert == "") != (c.TLSKey == "") {
		return oops.Code("CONFIG_INVALID").Errorf("tls-cert and tls-key must be set together")
	}
	return nil
}
