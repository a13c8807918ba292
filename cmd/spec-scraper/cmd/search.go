package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
	"github.com/donaldgifford/phone-spec-scraper/pkg/logger"
)

func searchCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the source site in-process without the API server",
		Example: `  spec-scraper search "pixel 9 pro"
  spec-scraper search "galaxy s24" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(true)
			if err != nil {
				return err
			}
			log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)

			comps, err := buildComponents(cfg, log)
			if err != nil {
				return err
			}
			svc := engine.NewService(comps.finder, comps.extractor, comps.serviceOptions(log, nil)...)

			resp := svc.Search(cmd.Context(), args[0])
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), resp)
			}
			return printSearch(cmd, resp)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the search envelope as JSON")

	return cmd
}

func printSearch(cmd *cobra.Command, resp *engine.SearchResponse) error {
	out := cmd.OutOrStdout()
	if !resp.Success {
		fmt.Fprintln(out, resp.Error)
		for _, s := range []string{resp.Suggestion, resp.Suggestion2} {
			if s != "" {
				fmt.Fprintln(out, "  "+s)
			}
		}
		if resp.ErrorKind == engine.KindNotFound {
			return nil
		}
		return fmt.Errorf("%w: %s", errPipelineFailed, resp.ErrorKind)
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tURL")
	for i, c := range resp.Candidates {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i, c.Name, c.URL)
	}
	return tw.Flush()
}
