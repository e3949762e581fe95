package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/numcheck/pkg/numformat"
)

// errInvalidValues is returned by check when at least one value is rejected.
// The rejected values are already reported on stdout.
var errInvalidValues = errors.New("invalid values")

// newRootCmd builds the command tree with flag defaults taken from cfg.
func newRootCmd(cfg appConfig) *cobra.Command {
	root := &cobra.Command{
		Use:   "numcheck",
		Short: "Validate fixed-point numbers against N(m.k) formats",
		Long: `numcheck validates decimal strings against fixed-point formats N(m.k): ` +
			`at most m characters counting the sign and all digits, at most k of ` +
			`them after the '.' or ',' separator.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("catalog", cfg.Format.CatalogPath, "YAML file with named formats")

	root.AddCommand(
		newCheckCmd(cfg),
		newFormatsCmd(),
		newServeCmd(cfg),
	)
	return root
}

// loadCatalog reads the catalog named by the --catalog flag. No path yields
// an empty catalog.
func loadCatalog(ctx context.Context, cmd *cobra.Command) (*numformat.Catalog, error) {
	path, _ := cmd.Flags().GetString("catalog")
	if path == "" {
		return numformat.NewCatalog(), nil
	}
	return numformat.LoadCatalogFile(ctx, path)
}
