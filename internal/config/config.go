// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config provides configuration for the radix command.
package config

import (
	"fmt"
	"strings"

	"github.com/db47h/radix"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables overriding configuration
// keys, as in RADIX_BASE=16.
const EnvPrefix = "RADIX"

// Output formats.
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
	FormatText    = "text"
)

// Config holds the configuration of the radix command.
type Config struct {
	// Base used when none is given on the command line.
	Base int `mapstructure:"base"`
	// Format is one of FormatJSON, FormatMsgpack or FormatText.
	Format string `mapstructure:"format"`
	// Indent JSON output.
	Indent bool `mapstructure:"indent"`
	// Verify every result before writing it.
	Verify bool `mapstructure:"verify"`
	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string `mapstructure:"log_level"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Base:     10,
		Format:   FormatJSON,
		Indent:   true,
		Verify:   false,
		LogLevel: "warn",
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	d := DefaultConfig()
	v.SetDefault("base", d.Base)
	v.SetDefault("format", d.Format)
	v.SetDefault("indent", d.Indent)
	v.SetDefault("verify", d.Verify)
	v.SetDefault("log_level", d.LogLevel)
	return v
}

// Load loads the configuration from the file at path, if not empty, and
// from RADIX_* environment variables. Missing keys keep their default
// values.
func Load(path string) (*Config, error) {
	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Format = strings.ToLower(cfg.Format)
	return cfg, cfg.Validate()
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Base < 2 || c.Base > radix.MaxBase {
		return fmt.Errorf("config: %w %d", radix.ErrInvalidBase, c.Base)
	}
	switch c.Format {
	case FormatJSON, FormatMsgpack, FormatText:
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}
