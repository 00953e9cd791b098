package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zero-day-ai/enumkit/catalog"
)

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "enumctl",
		Short: "Inspect enumeration catalogs",
		Long: `enumctl loads enumeration definitions from a YAML file or a directory of
YAML files, prints the codes each enumeration assigns, and rewrites JSON
payloads from member names to codes.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newInspectCmd(opts),
		newNormalizeCmd(opts),
	)

	return cmd
}

// logger writes to the command's error stream.
func (o *rootOptions) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (o *rootOptions) loadCatalog(cmd *cobra.Command, path string) (*catalog.Catalog, error) {
	return catalog.Load(path, catalog.WithLogger(o.logger(cmd)))
}
