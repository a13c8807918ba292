package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/phone-spec-scraper/internal/api/client"
)

func ingestCmd() *cobra.Command {
	var (
		url       string
		candidate int
		reconcile bool
		save      bool
	)

	cmd := &cobra.Command{
		Use:   "ingest [query]",
		Short: "Search, extract, reconcile, and save in one call",
		Long: "Resolves a query or a --url to a spec sheet on the server. A failed\n" +
			"reconciliation keeps the extracted record and reports why.",
		Example: `  specctl ingest "pixel 9 pro" --reconcile --save
  specctl ingest "galaxy s24" --candidate 1
  specctl ingest --url https://www.gsmarena.com/google_pixel_9_pro-13218.php --save`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &apiclient.IngestParams{
				URL:            url,
				CandidateIndex: candidate,
				Reconcile:      reconcile,
				Save:           save,
			}
			if len(args) == 1 {
				params.Query = args[0]
			}
			if params.Query == "" && params.URL == "" {
				return fmt.Errorf("a query argument or --url is required")
			}

			resp, err := newClient().Ingest(cmd.Context(), params)
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

			if err := printRecord(out, resp.Data); err != nil {
				return err
			}
			if resp.ReconcileError != "" {
				fmt.Fprintf(out, "\nReconciliation failed: %s\n", resp.ReconcileError)
			}
			if resp.SheetID != "" {
				fmt.Fprintf(out, "\nSaved sheet %s.\n", resp.SheetID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "product page URL; wins over the query")
	cmd.Flags().IntVar(&candidate, "candidate", 0, "search candidate index to extract")
	cmd.Flags().BoolVar(&reconcile, "reconcile", false, "reconcile the record before returning it")
	cmd.Flags().BoolVar(&save, "save", false, "store the record as a spec sheet")

	return cmd
}
