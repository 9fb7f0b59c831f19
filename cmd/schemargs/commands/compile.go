// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/schemargs/cmd/schemargs/internal/clierr"
	"github.com/bartekus/schemargs/internal/render"
	"github.com/bartekus/schemargs/pkg/args"
)

func newCompileCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compile [SCHEMA]",
		Short: "Validate a schema and list its flags",
		Long: `Validate a schema and list its flags. Without an argument the schema
from the configuration is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			text := a.cfg.Schema
			if len(argv) == 1 {
				text = argv[0]
			}
			if text == "" {
				return clierr.New(clierr.ExitInvalidSchema, "no schema given")
			}

			schema, err := args.Compile(text)
			if err != nil {
				if a.cfg.Output == "json" || a.cfg.Output == "yaml" {
					if werr := render.WriteError(cmd.OutOrStdout(), a.cfg.Output, err); werr != nil {
						return werr
					}
				}
				return clierr.FromArgs(err)
			}
			return render.WriteElements(cmd.OutOrStdout(), a.cfg.Output, render.ElementRows(schema, nil))
		},
	}
}
