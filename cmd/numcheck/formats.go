package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List formats from the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := loadCatalog(cmd.Context(), cmd)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tFORMAT\tNON-NEGATIVE")
			for _, name := range catalog.Names() {
				v, _ := catalog.Lookup(name)
				fmt.Fprintf(tw, "%s\t%s\t%t\n", name, v, v.Format().NonNegative)
			}
			return tw.Flush()
		},
	}
}
