package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
)

func jobsCmd() *cobra.Command {
	var (
		limit  int
		status string
	)

	cmd := &cobra.Command{
		Use:   "jobs [job_name]",
		Short: "Show scheduler job history",
		Long: "Shows recent runs of a scheduled job, refresh by default. Each run\n" +
			"records status, rows affected, and any error.",
		Example: `  specctl jobs
  specctl jobs refresh --status failed
  specctl jobs refresh --limit 5 --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobName := engine.RefreshJobName
			if len(args) == 1 {
				jobName = args[0]
			}

			runs, err := newClient().ListJobRuns(cmd.Context(), jobName, status, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				return outputJSON(out, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintf(out, "No runs found for job %q.\n", jobName)
				return nil
			}
			return printJobRunsTable(out, runs)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs")
	cmd.Flags().StringVar(&status, "status", "", "only show runs in this state (running, succeeded, failed)")

	return cmd
}
