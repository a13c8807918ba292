package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
	"github.com/donaldgifford/phone-spec-scraper/pkg/logger"
)

// errPipelineFailed marks a command whose envelope reported failure. The
// envelope has already been printed.
var errPipelineFailed = errors.New("pipeline reported failure")

func scrapeCommand() *cobra.Command {
	var (
		reconcileRecord bool
		candidate       int
	)

	cmd := &cobra.Command{
		Use:   "scrape <url|query>",
		Short: "Extract a spec sheet in-process without the API server",
		Long: "Runs search, extract, and optionally reconcile in this process and\n" +
			"prints the ingest envelope as JSON. An argument starting with http is\n" +
			"treated as a product page URL, anything else as a search query.",
		Example: `  spec-scraper scrape https://www.gsmarena.com/google_pixel_9_pro-13218.php
  spec-scraper scrape "galaxy s24" --candidate 1 --reconcile`,
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

			req := engine.IngestRequest{CandidateIndex: candidate, Reconcile: reconcileRecord}
			if isURL(args[0]) {
				req.URL = args[0]
			} else {
				req.Query = args[0]
			}

			resp := svc.Ingest(cmd.Context(), req)
			if err := writeJSON(cmd.OutOrStdout(), resp); err != nil {
				return err
			}
			if !resp.Success {
				return fmt.Errorf("%w: %s", errPipelineFailed, resp.Error)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&reconcileRecord, "reconcile", false, "reconcile the record through the configured llm backend")
	cmd.Flags().IntVar(&candidate, "candidate", 0, "search candidate index to extract when given a query")

	return cmd
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
