package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newNormalizeCmd(root *rootOptions) *cobra.Command {
	var fieldSpecs []string

	cmd := &cobra.Command{
		Use:   "normalize <catalog> [json]",
		Short: "Replace enumeration names in a JSON object with codes",
		Long: `Rewrite top-level fields of a JSON object from member names to codes.
Each --field binds a JSON field to an enumeration as field=enumeration;
a bare name binds a field to the enumeration of the same name. The JSON
is read from the second argument, or from stdin when it is omitted.
Input that cannot be normalized is printed unchanged.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := parseFieldSpecs(fieldSpecs)
			if err != nil {
				return err
			}

			c, err := root.loadCatalog(cmd, args[0])
			if err != nil {
				return err
			}

			for field, name := range fields {
				if _, ok := c.Definition(name); !ok {
					return fmt.Errorf("field %s: enumeration %q not found in %s", field, name, args[0])
				}
			}

			var input string
			if len(args) == 2 {
				input = args[1]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read input: %w", err)
				}
				input = strings.TrimSpace(string(data))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), c.NormalizeJSON(input, fields))
			return err
		},
	}

	cmd.Flags().StringArrayVarP(&fieldSpecs, "field", "f", nil, "bind a JSON field to an enumeration (field=enumeration)")
	_ = cmd.MarkFlagRequired("field")

	return cmd
}

func parseFieldSpecs(specs []string) (map[string]string, error) {
	fields := make(map[string]string, len(specs))
	for _, spec := range specs {
		field, name, found := strings.Cut(spec, "=")
		if !found {
			name = field
		}
		field = strings.TrimSpace(field)
		name = strings.TrimSpace(name)
		if field == "" || name == "" {
			return nil, fmt.Errorf("invalid --field %q: want field=enumeration", spec)
		}
		fields[field] = name
	}
	return fields, nil
}
