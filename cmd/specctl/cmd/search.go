package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search for phone product pages",
		Long: "Asks the API server to search the source site and lists the product\n" +
			"page candidates. A search with no results prints suggestions.",
		Example: `  specctl search "pixel 9 pro"
  specctl search "galaxy s24" --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Search(cmd.Context(), args[0])
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
				return printFailure(out, resp.ErrorKind, resp.Error, resp.Suggestion, resp.Suggestion2)
			}
			return printCandidatesTable(out, resp.Candidates)
		},
	}
}

// envelopeErr turns a failed envelope into a non-zero exit once printed.
func envelopeErr(success bool, kind engine.ErrorKind) error {
	if success {
		return nil
	}
	return fmt.Errorf("%w: %s", errFailed, kind)
}
