// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"github.com/spf13/cobra"

	"github.com/bartekus/schemargs/cmd/schemargs/internal/clierr"
	"github.com/bartekus/schemargs/internal/render"
)

func newSchemasCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "Browse the schema catalog",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List catalog schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			rows := make([]render.CatalogRow, 0, len(c.Names()))
			for _, name := range c.Names() {
				e, _ := c.Lookup(name)
				rows = append(rows, render.CatalogRow{Name: e.Name, Schema: e.Schema, Description: e.Description})
			}
			return render.WriteCatalog(cmd.OutOrStdout(), a.cfg.Output, rows)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show NAME",
		Short: "List the flags of a catalog schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, argv []string) error {
			c, err := a.loadCatalog()
			if err != nil {
				return err
			}
			e, ok := c.Lookup(argv[0])
			if !ok {
				return clierr.Newf(clierr.ExitConfig, "schema %q not found in catalog %s", argv[0], a.cfg.Catalog)
			}
			schema, err := e.Compile()
			if err != nil {
				return clierr.FromArgs(err)
			}
			return render.WriteElements(cmd.OutOrStdout(), a.cfg.Output, render.ElementRows(schema, e.Help))
		},
	})

	return cmd
}
