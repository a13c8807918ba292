package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/phone-spec-scraper/internal/api/client"
)

func sheetsCmd() *cobra.Command {
	sheetsRoot := &cobra.Command{
		Use:   "sheets",
		Short: "Browse stored spec sheets",
		Long: "Query and inspect spec sheets stored by ingest or reconcile --save,\n" +
			"including the outcome of their last refresh.",
	}

	sheetsRoot.AddCommand(
		sheetsListCmd(),
		sheetsGetCmd(),
		sheetsSaveCmd(),
	)

	return sheetsRoot
}

func sheetsListCmd() *cobra.Command {
	var (
		name       string
		reconciled string
		failing    bool
		limit      int
		offset     int
		orderBy    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored sheets with optional filters",
		Example: `  # List all sheets
  specctl sheets list

  # Sheets whose last refresh hit a layout change or outage
  specctl sheets list --failing

  # Unreconciled Galaxy sheets, most recently checked first
  specctl sheets list --name galaxy --reconciled false --order-by last_checked_at`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			params := &apiclient.ListSheetsParams{
				Name:    name,
				Failing: failing,
				Limit:   limit,
				Offset:  offset,
				OrderBy: orderBy,
			}
			if reconciled != "" {
				v, err := strconv.ParseBool(reconciled)
				if err != nil {
					return fmt.Errorf("--reconciled must be true or false: %w", err)
				}
				params.Reconciled = &v
			}

			resp, err := newClient().ListSheets(cmd.Context(), params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, resp)
			}
			if len(resp.Sheets) == 0 {
				fmt.Fprintln(out, "No sheets found.")
				return nil
			}

			fmt.Fprintf(out, "Showing %d of %d sheets\n\n", len(resp.Sheets), resp.Total)
			return printSheetsTable(out, resp.Sheets)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "case-insensitive name filter")
	cmd.Flags().StringVar(&reconciled, "reconciled", "", "filter by reconciliation state (true, false)")
	cmd.Flags().BoolVar(&failing, "failing", false, "only sheets whose last refresh recorded an error")
	cmd.Flags().IntVar(&limit, "limit", 50, "number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().
		StringVar(&orderBy, "order-by", "", "sort order (name, updated_at, last_checked_at)")

	return cmd
}

func sheetsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a stored sheet",
		Example: `  specctl sheets get 6f1c2a9e-7d7b-4c55-9a0e-8d1f3b2c4e5a`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newClient().GetSheet(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), s)
			}
			return printSheetDetail(cmd.OutOrStdout(), s)
		},
	}
}

func sheetsSaveCmd() *cobra.Command {
	var reconciled bool

	cmd := &cobra.Command{
		Use:   "save <file|->",
		Short: "Store a record as a spec sheet",
		Long: "Reads a record, or a saved extract response, and stores it. A sheet\n" +
			"with the same source URL is replaced.",
		Example: `  specctl extract <url> --output json | specctl sheets save -`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := readRecordArg(cmd, args[0])
			if err != nil {
				return err
			}
			s, err := newClient().SaveSheet(cmd.Context(), record, reconciled)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), s)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved sheet %s.\n", s.ID)
			return nil
		},
	}
	cmd.Flags().BoolVar(&reconciled, "reconciled", false, "mark the record as reconciled")

	return cmd
}
