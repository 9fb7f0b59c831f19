// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/schemargs/cmd/schemargs/internal/clierr"
	"github.com/bartekus/schemargs/internal/config"
	"github.com/bartekus/schemargs/internal/render"
	"github.com/bartekus/schemargs/pkg/args"
)

func newParseCommand(a *app) *cobra.Command {
	var use string

	cmd := &cobra.Command{
		Use:   "parse [--schema SCHEMA | --use NAME] -- [ARGS...]",
		Short: "Parse an argument vector against a schema",
		Long: `Parse an argument vector against a schema and print the resolved values.

Put the argument vector after "--" so its flags are not read by schemargs itself:

  schemargs parse --schema "n#,b,s*" -- -nbs 10 Foo`,
		RunE: func(cmd *cobra.Command, argv []string) error {
			schema, err := a.resolveSchema(use)
			if err != nil {
				return err
			}

			parsed, err := schema.Scan(argv)
			if err != nil {
				a.logger.Debug("scan failed", "schema", schema.String(), "err", err)
				if a.cfg.Output == "json" || a.cfg.Output == "yaml" {
					if werr := render.WriteError(cmd.OutOrStdout(), a.cfg.Output, err); werr != nil {
						return werr
					}
				}
				return clierr.FromArgs(err)
			}
			a.logger.Debug("arguments scanned", "schema", schema.String(), "found", parsed.Cardinality())

			return render.WriteReport(cmd.OutOrStdout(), a.cfg.Output, render.NewReport(schema, parsed))
		},
	}

	cmd.Flags().String(config.KeySchema, "", `schema to parse against, e.g. "l,p#,d*"`)
	cmd.Flags().StringVarP(&use, "use", "u", "", "name of a schema in the catalog")

	return cmd
}

// resolveSchema picks the catalog entry named use, falling back to the
// configured inline schema.
func (a *app) resolveSchema(use string) (*args.Schema, error) {
	if use != "" {
		c, err := a.loadCatalog()
		if err != nil {
			return nil, err
		}
		entry, ok := c.Lookup(use)
		if !ok {
			return nil, clierr.Newf(clierr.ExitConfig, "schema %q not found in catalog %s", use, a.cfg.Catalog)
		}
		return entry.Compile()
	}

	if a.cfg.Schema == "" {
		return nil, clierr.New(clierr.ExitInvalidSchema, "no schema given (use --schema or --use)")
	}
	schema, err := args.Compile(a.cfg.Schema)
	if err != nil {
		return nil, clierr.FromArgs(err)
	}
	a.logger.Debug("schema compiled", "schema", schema.String(), "elements", schema.Len())
	return schema, nil
}
