package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zero-day-ai/enumkit/catalog"
)

func newInspectCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <catalog> [enumeration...]",
		Short: "Print the codes of each enumeration",
		Long: `Print every enumeration in the catalog, or only the named ones, as a table
of member name, code and display name. Byte codes print as integers and
character codes print quoted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.loadCatalog(cmd, args[0])
			if err != nil {
				return err
			}

			defs := c.Definitions()
			if len(args) > 1 {
				defs = defs[:0]
				for _, name := range args[1:] {
					def, ok := c.Definition(name)
					if !ok {
						return fmt.Errorf("enumeration %q not found in %s", name, args[0])
					}
					defs = append(defs, def)
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
			for i, def := range defs {
				if i > 0 {
					fmt.Fprintln(w)
				}
				printDefinition(w, c, def)
			}
			return w.Flush()
		},
	}
}

func printDefinition(w *tabwriter.Writer, c *catalog.Catalog, def catalog.Definition) {
	rows, _ := c.Rows(def.Name)

	fmt.Fprintf(w, "%s (%s, %d names)\n", def.Name, def.EffectiveKind(), len(rows))
	if def.Description != "" {
		fmt.Fprintf(w, "  %s\n", def.Description)
	}
	for _, row := range rows {
		fmt.Fprintf(w, "  %s\t%s\t%s\n", row.Name, row.Code, row.Display)
	}
}
