package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/git-pkgs/jdks/internal/core"
)

func newDistributionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distributions",
		Short: "List supported distributions and their default endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, d := range core.SupportedDistributions() {
				fmt.Fprintf(w, "%s\t%s\n", d, core.DefaultURL(d))
			}
			return w.Flush()
		},
	}
}
