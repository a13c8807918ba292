package cmd

import (
	"github.com/spf13/cobra"
)

func refreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Run a refresh cycle now",
		Long: "Re-extracts stored sheets that have not been checked recently and\n" +
			"prints the cycle summary. Fails if a cycle is already running.",
		Example: `  specctl refresh
  specctl refresh --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := newClient().Refresh(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), summary)
			}
			return printRefreshSummary(cmd.OutOrStdout(), summary)
		},
	}
}
