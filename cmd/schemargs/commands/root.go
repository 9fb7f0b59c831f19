// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Schemargs - schema-driven parsing of single-character command-line flags.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bartekus/schemargs/cmd/schemargs/internal/clierr"
	"github.com/bartekus/schemargs/internal/catalog"
	"github.com/bartekus/schemargs/internal/config"
)

// Version returns the build version reported by `schemargs version`.
func Version() string {
	version := os.Getenv("SCHEMARGS_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}
	return version
}

// app carries state shared by all subcommands of one root command.
type app struct {
	configFile string
	verbose    bool

	cfg    *config.Config
	logger *log.Logger
}

// NewRootCmd constructs the schemargs root Cobra command.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "schemargs",
		Short: "Parse command-line arguments against compact flag schemas",
		Long: `schemargs compiles flag schemas such as "l,p#,d*" (boolean l, integer p, string d)
and parses argument vectors against them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (YAML)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().String(config.KeyCatalog, "", "schema catalog file")
	cmd.PersistentFlags().StringP(config.KeyOutput, "o", "text", "output format: text, json, yaml or table")
	cmd.PersistentFlags().String(config.KeyLogLevel, "info", "log level: debug, info, warn or error")
	cmd.PersistentFlags().String(config.KeyStateDir, ".schemargs/verify", "directory to store verification state")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of schemargs",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "schemargs version %s\n", Version())
		},
	})

	cmd.AddCommand(newParseCommand(a))
	cmd.AddCommand(newCompileCommand(a))
	cmd.AddCommand(newSchemasCommand(a))
	cmd.AddCommand(newVerifyCommand(a))

	return cmd
}

// setup loads configuration and sets up logging for the executing command.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return clierr.Wrap(clierr.ExitConfig, "loading configuration", err)
	}
	a.cfg = cfg

	level := cfg.Level()
	if a.verbose {
		level = log.DebugLevel
	}
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "schemargs",
		Level:  level,
	})
	a.logger.Debug("configuration loaded", "output", cfg.Output, "catalog", cfg.Catalog, "state-dir", cfg.StateDir)
	return nil
}

// loadCatalog reads the configured schema catalog.
func (a *app) loadCatalog() (*catalog.Catalog, error) {
	if a.cfg.Catalog == "" {
		return nil, clierr.New(clierr.ExitConfig, "no schema catalog configured (use --catalog or the catalog config key)")
	}
	c, err := catalog.Load(a.cfg.Catalog)
	if err != nil {
		return nil, clierr.Wrap(clierr.ExitConfig, "loading catalog", err)
	}
	a.logger.Debug("catalog loaded", "path", a.cfg.Catalog, "schemas", len(c.Names()))
	return c, nil
}
