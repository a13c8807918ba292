package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/donaldgifford/phone-spec-scraper/internal/engine"
	domain "github.com/donaldgifford/phone-spec-scraper/pkg/types"
)

const timeLayout = "2006-01-02 15:04:05"

// errFailed marks a command whose response envelope reported failure after
// it has been printed.
var errFailed = errors.New("request failed")

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printCandidatesTable(w io.Writer, candidates []domain.SearchCandidate) error {
	tw := newTabWriter(w)
	tw.writef("#\tNAME\tURL\n")
	for i := range candidates {
		tw.writef("%d\t%s\t%s\n", i, candidates[i].Name, candidates[i].URL)
	}
	return tw.finish()
}

// printFailure writes the error and any suggestions of a failed envelope.
func printFailure(w io.Writer, kind engine.ErrorKind, msg string, suggestions ...string) error {
	tw := newTabWriter(w)
	tw.writef("Error:\t%s (%s)\n", msg, kind)
	for _, s := range suggestions {
		if s != "" {
			tw.writef("Hint:\t%s\n", s)
		}
	}
	if err := tw.finish(); err != nil {
		return err
	}
	return fmt.Errorf("%w: %s", errFailed, kind)
}

func printRecord(w io.Writer, r *domain.ExtractionResult) error {
	tw := newTabWriter(w)
	tw.writef("Name:\t%s\n", r.Name)
	tw.writef("Source:\t%s\n", r.SourceURL)
	tw.writef("Specs:\t%d\n", r.TotalSpecs)
	if len(r.Variants) > 0 {
		tw.writef("Variants:\t%s\n", strings.Join(r.Variants, ", "))
	}
	if len(r.Colors) > 0 {
		tw.writef("Colors:\t%s\n", strings.Join(r.Colors, ", "))
	}
	tw.writef("\n")
	for i := range r.KeySpecifications {
		ks := &r.KeySpecifications[i]
		tw.writef("%s:\t%s\n", ks.Title, ks.Value)
	}
	tw.writef("\nGROUP\tNAME\tVALUE\n")
	for i := range r.Specifications {
		s := &r.Specifications[i]
		tw.writef("%s\t%s\t%s\n", s.Group, s.Name, truncate(s.Value, 60))
	}
	return tw.finish()
}

func printSheetsTable(w io.Writer, sheets []domain.SpecSheet) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tSPECS\tRECONCILED\tCHECKED\tERROR\n")
	for i := range sheets {
		s := &sheets[i]
		checked := "-"
		if s.LastCheckedAt != nil {
			checked = s.LastCheckedAt.Format(timeLayout)
		}
		tw.writef("%s\t%s\t%d\t%v\t%s\t%s\n",
			s.ID,
			truncate(s.Name, 40),
			s.TotalSpecs,
			s.Reconciled,
			checked,
			truncate(s.LastError, 40),
		)
	}
	return tw.finish()
}

func printSheetDetail(w io.Writer, s *domain.SpecSheet) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", s.ID)
	tw.writef("Reconciled:\t%v\n", s.Reconciled)
	tw.writef("Updated:\t%s\n", s.UpdatedAt.Format(timeLayout))
	if s.LastCheckedAt != nil {
		tw.writef("Checked:\t%s\n", s.LastCheckedAt.Format(timeLayout))
	}
	if s.LastError != "" {
		tw.writef("Last Error:\t%s\n", s.LastError)
	}
	if err := tw.finish(); err != nil {
		return err
	}
	return printRecord(w, s.Result())
}

func printRefreshSummary(w io.Writer, s *engine.RefreshSummary) error {
	tw := newTabWriter(w)
	tw.writef("Checked:\t%d\n", s.Checked)
	tw.writef("Updated:\t%d\n", s.Updated)
	tw.writef("Verified:\t%d\n", s.Verified)
	tw.writef("Failed:\t%d\n", s.Failed)
	tw.writef("Deferred:\t%d\n", s.Deferred)
	return tw.finish()
}

func printJobRunsTable(w io.Writer, runs []domain.JobRun) error {
	tw := newTabWriter(w)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tROWS\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format(timeLayout)
		}
		rows := "-"
		if r.RowsAffected != nil {
			rows = fmt.Sprintf("%d", *r.RowsAffected)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format(timeLayout),
			completed,
			rows,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
