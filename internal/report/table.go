package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/datahunter/datahunter/internal/types"
)

// WriteTable renders the sensitive files of a directory scan as a bordered
// table followed by the aggregate recommendation.
func WriteTable(w io.Writer, s types.DirectoryScanSummary, opts PrintOptions) error {
	if len(s.SensitiveFiles) == 0 {
		fmt.Fprintf(w, "No sensitive files found in %s (%d scanned)\n", s.Directory, s.TotalFiles)
		_, err := fmt.Fprintln(w, s.Recommendation)
		return err
	}
	label := colorLabel
	if opts.NoColor {
		label = plainLabel
	}
	table := tablewriter.NewWriter(w)
	table.Header("Risk", "File", "Keywords")
	for _, f := range s.SensitiveFiles {
		if err := table.Append([]string{label(f.Sensitivity), f.Path, strings.Join(f.Keywords, ", ")}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	fmt.Fprintf(w, "Files: %d (high: %d, medium: %d, low: %d", s.TotalFiles,
		len(s.HighRiskFiles), len(s.MediumRiskFiles), len(s.LowRiskFiles))
	if s.Skipped > 0 {
		fmt.Fprintf(w, ", skipped: %d", s.Skipped)
	}
	fmt.Fprintln(w, ")")
	_, err := fmt.Fprintln(w, s.Recommendation)
	return err
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
