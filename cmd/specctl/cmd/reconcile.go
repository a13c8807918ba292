package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

func reconcileCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "reconcile <file|->",
		Short: "Reconcile an extracted record",
		Long: "Reads an extracted record, or a saved extract response, from a file or\n" +
			"stdin and sends it through the server's completion backend. With --save\n" +
			"the reconciled record is stored as a spec sheet.",
		Example: `  specctl extract <url> --output json > pixel.json
  specctl reconcile pixel.json
  specctl extract <url> --output json | specctl reconcile - --save`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := readRecordArg(cmd, args[0])
			if err != nil {
				return err
			}

			c := newClient()
			resp, err := c.Reconcile(cmd.Context(), record)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput() {
				if err := outputJSON(out, resp); err != nil {
					return err
				}
				if err := envelopeErr(resp.Success, resp.ErrorKind); err != nil {
					return err
				}
			} else {
				if !resp.Success {
					return printFailure(out, resp.ErrorKind, resp.Error)
				}
				if err := printRecord(out, (*domain.ExtractionResult)(resp.Data)); err != nil {
					return err
				}
			}

			if save {
				sheet, err := c.SaveSheet(cmd.Context(), (*domain.ExtractionResult)(resp.Data), true)
				if err != nil {
					return fmt.Errorf("saving reconciled sheet: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved sheet %s.\n", sheet.ID)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&save, "save", false, "store the reconciled record as a spec sheet")

	return cmd
}

func readRecordArg(cmd *cobra.Command, arg string) (*domain.ExtractionResult, error) {
	var r io.Reader
	if arg == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(arg) //nolint:gosec // path from CLI argument
		if err != nil {
			return nil, fmt.Errorf("opening record: %w", err)
		}
		defer f.Close()
		r = f
	}
	return readRecord(r)
}

// readRecord decodes a bare record or an extract/ingest envelope carrying
// one under "data".
func readRecord(r io.Reader) (*domain.ExtractionResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading record: %w", err)
	}

	var envelope struct {
		Data *domain.ExtractionResult `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}

	record := envelope.Data
	if record == nil {
		record = &domain.ExtractionResult{}
		if err := json.Unmarshal(data, record); err != nil {
			return nil, fmt.Errorf("decoding record: %w", err)
		}
	}
	if strings.TrimSpace(record.Name) == "" {
		return nil, errors.New("record has no name")
	}
	return record, nil
}
