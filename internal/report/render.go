// Package report renders scan results as fixed-section text, tables, JSON and
// SARIF. Format functions are pure; Print adds terminal colour.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/datahunter/datahunter/internal/types"
)

const (
	title = "DATAHUNTER - SENSITIVITY SCAN REPORT"
	rule  = "============================================================"
)

// PrintOptions controls terminal rendering.
type PrintOptions struct {
	NoColor bool
}

var categoryLabels = map[types.Category]string{
	types.CatCreditCards:  "Credit Cards",
	types.CatSSN:          "SSN",
	types.CatAadhaar:      "Aadhaar Numbers",
	types.CatPAN:          "PAN Cards",
	types.CatEmails:       "Email Addresses",
	types.CatPhones:       "Phone Numbers",
	types.CatAPIKeys:      "API Keys",
	types.CatPasswords:    "Passwords",
	types.CatBankAccounts: "Bank Accounts",
	types.CatIPAddresses:  "IP Addresses",
	types.CatPrivateKeys:  "Private Keys",
}

// CategoryLabel returns the human label for a category.
func CategoryLabel(c types.Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Format renders a ComprehensiveScanResult, DirectoryScanSummary or
// ContentScanResult (value or pointer).
func Format(v any) (string, error) {
	return render(v, plainLabel)
}

// FormatComprehensive renders the report for a single file.
func FormatComprehensive(r types.ComprehensiveScanResult) string {
	var b strings.Builder
	writeComprehensive(&b, r, plainLabel)
	return b.String()
}

// FormatDirectory renders the report for a directory scan.
func FormatDirectory(s types.DirectoryScanSummary) string {
	var b strings.Builder
	writeDirectory(&b, s, plainLabel)
	return b.String()
}

// FormatContent renders the report for a bare text scan.
func FormatContent(c types.ContentScanResult) string {
	var b strings.Builder
	writeHeader(&b, "<text>")
	writeContent(&b, c, plainLabel)
	writeIssues(&b, c.Issues)
	b.WriteString("\n" + rule + "\n")
	return b.String()
}

// Print writes the report for v to w, colouring risk labels unless disabled.
func Print(w io.Writer, v any, opts PrintOptions) error {
	label := colorLabel
	if opts.NoColor {
		label = plainLabel
	}
	out, err := render(v, label)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func render(v any, label func(types.RiskLevel) string) (string, error) {
	var b strings.Builder
	switch r := v.(type) {
	case types.ComprehensiveScanResult:
		writeComprehensive(&b, r, label)
	case *types.ComprehensiveScanResult:
		writeComprehensive(&b, *r, label)
	case types.DirectoryScanSummary:
		writeDirectory(&b, r, label)
	case *types.DirectoryScanSummary:
		writeDirectory(&b, *r, label)
	case types.ContentScanResult:
		writeHeader(&b, "<text>")
		writeContent(&b, r, label)
		writeIssues(&b, r.Issues)
		b.WriteString("\n" + rule + "\n")
	case *types.ContentScanResult:
		return render(*r, label)
	default:
		return "", fmt.Errorf("unsupported result type %T", v)
	}
	return b.String(), nil
}

func writeHeader(b *strings.Builder, location string) {
	b.WriteString(rule + "\n")
	b.WriteString(title + "\n")
	b.WriteString(rule + "\n")
	fmt.Fprintf(b, "Location: %s\n", location)
}

func writeDirectory(b *strings.Builder, s types.DirectoryScanSummary, label func(types.RiskLevel) string) {
	writeHeader(b, s.Directory)
	b.WriteString("\nSUMMARY:\n")
	fmt.Fprintf(b, "  Total Files Scanned: %d\n", s.TotalFiles)
	fmt.Fprintf(b, "  High Risk Files: %d\n", len(s.HighRiskFiles))
	fmt.Fprintf(b, "  Medium Risk Files: %d\n", len(s.MediumRiskFiles))
	fmt.Fprintf(b, "  Low Risk Files: %d\n", len(s.LowRiskFiles))
	if s.Skipped > 0 {
		fmt.Fprintf(b, "  Skipped (unreadable): %d\n", s.Skipped)
	}
	if s.Cancelled {
		b.WriteString("  Scan cancelled: results are partial\n")
	}
	if len(s.SensitiveFiles) > 0 {
		b.WriteString("\nSENSITIVE FILES:\n")
		for _, f := range s.SensitiveFiles {
			fmt.Fprintf(b, "  %-6s %s", label(f.Sensitivity), f.Path)
			if len(f.Keywords) > 0 {
				fmt.Fprintf(b, " (%s)", strings.Join(f.Keywords, ", "))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\nRECOMMENDATION:\n")
	fmt.Fprintf(b, "  %s\n", s.Recommendation)
	writeIssues(b, s.Issues)
	b.WriteString("\n" + rule + "\n")
}

func writeComprehensive(b *strings.Builder, r types.ComprehensiveScanResult, label func(types.RiskLevel) string) {
	writeHeader(b, r.Path)
	b.WriteString("\nSUMMARY:\n")
	fmt.Fprintf(b, "  Overall Risk: %s\n", label(r.OverallRisk))
	fmt.Fprintf(b, "  Filename Sensitivity: %s", label(r.Filename.SensitivityLevel))
	if len(r.Filename.Indicators) > 0 {
		fmt.Fprintf(b, " (keywords: %s)", strings.Join(r.Filename.Indicators, ", "))
	}
	b.WriteString("\n")
	ext := r.Metadata.Extension
	if ext == "" {
		ext = "(none)"
	}
	fmt.Fprintf(b, "  File Type: %s\n", ext)
	fmt.Fprintf(b, "  File Size: %d bytes\n", r.Metadata.Size)
	for _, ind := range r.Metadata.Indicators {
		fmt.Fprintf(b, "  ! %s\n", ind)
	}
	if r.Content != nil {
		writeContent(b, *r.Content, label)
	}
	b.WriteString("\nRECOMMENDATIONS:\n")
	for _, rec := range r.Recommendations {
		fmt.Fprintf(b, "  - %s\n", rec)
	}
	for _, rec := range r.Metadata.Recommendations {
		fmt.Fprintf(b, "  - %s\n", rec)
	}
	writeIssues(b, r.Issues)
	b.WriteString("\n" + rule + "\n")
}

func writeContent(b *strings.Builder, c types.ContentScanResult, label func(types.RiskLevel) string) {
	b.WriteString("\nCONTENT ANALYSIS:\n")
	fmt.Fprintf(b, "  Sensitivity Score: %.2f%%\n", c.SensitivityScore*100)
	fmt.Fprintf(b, "  Risk Level: %s\n", label(c.RiskLevel))
	fmt.Fprintf(b, "  Total Findings: %d\n", c.TotalFindings())
	for _, cat := range types.Categories() {
		if n := c.Count(cat); n > 0 {
			fmt.Fprintf(b, "  ! %s Found: %d\n", CategoryLabel(cat), n)
		}
	}
}

func writeIssues(b *strings.Builder, issues []types.ScanIssue) {
	if len(issues) == 0 {
		return
	}
	b.WriteString("\nISSUES:\n")
	for _, is := range issues {
		if is.Path != "" {
			fmt.Fprintf(b, "  [%s] %s: %s\n", is.Kind, is.Path, is.Message)
			continue
		}
		fmt.Fprintf(b, "  [%s] %s\n", is.Kind, is.Message)
	}
}

func plainLabel(l types.RiskLevel) string { return strings.ToUpper(string(l)) }

var riskStyles = map[types.RiskLevel]lipgloss.Style{
	types.RiskCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	types.RiskHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	types.RiskMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	types.RiskLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
}

func colorLabel(l types.RiskLevel) string {
	if st, ok := riskStyles[l]; ok {
		return st.Render(plainLabel(l))
	}
	return plainLabel(l)
}
