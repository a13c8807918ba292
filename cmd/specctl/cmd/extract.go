package cmd

import (
	"github.com/spf13/cobra"
)

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <url>",
		Short: "Extract a spec sheet from a product page",
		Long: "Sends a product page URL to the API server, which fetches the page and\n" +
			"normalizes its specification tables into the fixed taxonomy.",
		Example: `  specctl extract https://www.gsmarena.com/google_pixel_9_pro-13218.php
  specctl extract https://www.gsmarena.com/google_pixel_9_pro-13218.php --output json > pixel.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Extract(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOutput() {
				if err := outputJSON(out, resp); err != nil {
					return err
				}
				return envelopeErr(resp.Success, resp.ErrorKind)
			}
			if !resp.Success {
				return printFailure(out, resp.ErrorKind, resp.Error)
			}
			return printRecord(out, resp.Data)
		},
	}
}
