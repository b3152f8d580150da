package datahunter

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/datahunter/datahunter/internal/audit"
	"github.com/datahunter/datahunter/internal/report"
)

var flagHistoryLimit int

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past scans from the audit log",
		RunE:  runHistory,
	}
	rootCmd.AddCommand(cmd)
	cmd.Flags().IntVarP(&flagHistoryLimit, "limit", "n", 20, "show at most this many records (0 = all)")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(".")
	if err != nil {
		return err
	}
	p := s.auditPath()
	if p == "" {
		return errors.New("no audit log configured (use --audit-log or audit_log in config)")
	}
	al := audit.New(p)
	recs, err := al.Load()
	if errors.Is(err, os.ErrNotExist) {
		recs, err = nil, nil
	}
	if err != nil {
		return err
	}
	if flagHistoryLimit > 0 && len(recs) > flagHistoryLimit {
		recs = recs[:flagHistoryLimit]
	}
	if flagJSON {
		return report.WriteJSON(cmd.OutOrStdout(), recs)
	}
	if len(recs) == 0 {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "No scans recorded in %s\n", al.Path())
		return err
	}
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tKIND\tVERDICT\tLOCATION")
	for _, r := range recs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Timestamp.Format("2006-01-02 15:04:05"), r.Kind, r.Verdict, r.Location)
	}
	return tw.Flush()
}
