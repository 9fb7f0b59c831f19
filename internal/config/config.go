// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads schemargs settings using Viper.
//
// Precedence, lowest first: built-in defaults, the YAML config file,
// SCHEMARGS_* environment variables, flags set on the command line.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to every key when reading the environment,
	// e.g. SCHEMARGS_LOG_LEVEL.
	EnvPrefix = "SCHEMARGS"

	KeySchema   = "schema"
	KeyCatalog  = "catalog"
	KeyOutput   = "output"
	KeyLogLevel = "log-level"
	KeyStateDir = "state-dir"
)

// Output formats understood by the render package.
var OutputFormats = []string{"text", "json", "yaml", "table"}

// Config holds the resolved settings.
type Config struct {
	// Schema is the inline schema used when a command is given none.
	Schema string `mapstructure:"schema" yaml:"schema"`
	// Catalog is the path of a YAML schema catalog.
	Catalog  string `mapstructure:"catalog" yaml:"catalog"`
	Output   string `mapstructure:"output" yaml:"output"`
	LogLevel string `mapstructure:"log-level" yaml:"log-level"`
	// StateDir is where verification runs keep their state.
	StateDir string `mapstructure:"state-dir" yaml:"state-dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Output:   "text",
		LogLevel: "info",
		StateDir: ".schemargs/verify",
	}
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFile is an explicit config file path. It must exist when set.
	ConfigFile string
	// Flags are bound so explicitly set flags override every other source.
	Flags *pflag.FlagSet
}

// Load resolves the configuration from all sources and validates it.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeySchema, defaults.Schema)
	v.SetDefault(KeyCatalog, defaults.Catalog)
	v.SetDefault(KeyOutput, defaults.Output)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyStateDir, defaults.StateDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}
	}

	if opts.Flags != nil {
		for _, key := range []string{KeySchema, KeyCatalog, KeyOutput, KeyLogLevel, KeyStateDir} {
			f := opts.Flags.Lookup(key)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", key, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that Viper cannot type-check.
func (c *Config) Validate() error {
	if !slices.Contains(OutputFormats, c.Output) {
		return fmt.Errorf("invalid output format %q (want one of %s)", c.Output, strings.Join(OutputFormats, ", "))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	if c.StateDir == "" {
		return fmt.Errorf("state-dir must not be empty")
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
