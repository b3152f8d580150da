// Package audit appends one JSON line per scan to a history file so wipe
// decisions can be traced later. Records carry counts and verdicts only;
// matched values are never written.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/datahunter/datahunter/internal/types"
)

// Record is one scan in the history log.
type Record struct {
	Timestamp      time.Time              `json:"timestamp"`
	ScanID         string                 `json:"scan_id"`
	Kind           string                 `json:"kind"`
	Location       string                 `json:"location"`
	Verdict        types.RiskLevel        `json:"verdict"`
	TotalFiles     int                    `json:"total_files,omitempty"`
	HighRisk       int                    `json:"high_risk,omitempty"`
	MediumRisk     int                    `json:"medium_risk,omitempty"`
	Skipped        int                    `json:"skipped,omitempty"`
	Cancelled      bool                   `json:"cancelled,omitempty"`
	FindingCounts  map[types.Category]int `json:"finding_counts,omitempty"`
	Recommendation string                 `json:"recommendation,omitempty"`
}

// Log is an append-only JSONL file.
type Log struct {
	path string
}

// New returns a log writing to path.
func New(path string) *Log { return &Log{path: path} }

// Path returns the log location.
func (a *Log) Path() string { return a.path }

// Append writes rec as one line. The file is created owner-only.
func (a *Log) Append(rec Record) error {
	if rec.ScanID == "" {
		rec.ScanID = fmt.Sprintf("scan_%d", rec.Timestamp.UnixNano())
	}
	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("failed to create audit dir: %w", err)
		}
	}
	f, err := os.OpenFile(a.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// Load returns all records, newest first. Malformed lines are skipped.
func (a *Log) Load() ([]Record, error) {
	f, err := os.Open(a.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []Record
	dec := json.NewDecoder(f)
	for dec.More() {
		var r Record
		if err := dec.Decode(&r); err != nil {
			break
		}
		records = append(records, r)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// ForDirectory summarises a directory scan.
func ForDirectory(s types.DirectoryScanSummary, verdict types.RiskLevel, at time.Time) Record {
	return Record{
		Timestamp:      at,
		Kind:           "dir",
		Location:       s.Directory,
		Verdict:        verdict,
		TotalFiles:     s.TotalFiles,
		HighRisk:       len(s.HighRiskFiles),
		MediumRisk:     len(s.MediumRiskFiles),
		Skipped:        s.Skipped,
		Cancelled:      s.Cancelled,
		Recommendation: s.Recommendation,
	}
}

// ForFile summarises a comprehensive file scan.
func ForFile(r types.ComprehensiveScanResult, at time.Time) Record {
	rec := Record{
		Timestamp: at,
		Kind:      "file",
		Location:  r.Path,
		Verdict:   r.OverallRisk,
	}
	if len(r.Recommendations) > 0 {
		rec.Recommendation = r.Recommendations[0]
	}
	if r.Content != nil {
		rec.FindingCounts = counts(*r.Content)
	}
	return rec
}

// ForText summarises a bare text scan.
func ForText(c types.ContentScanResult, at time.Time) Record {
	return Record{
		Timestamp:     at,
		Kind:          "text",
		Verdict:       c.RiskLevel,
		FindingCounts: counts(c),
	}
}

func counts(c types.ContentScanResult) map[types.Category]int {
	out := map[types.Category]int{}
	for _, cat := range types.Categories() {
		if n := c.Count(cat); n > 0 {
			out[cat] = n
		}
	}
	return out
}
