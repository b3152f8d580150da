package core

import (
	"encoding/json"
	"io"
)

// MarshalResult pretty-prints any scan result as JSON for humans or
// pipelines.
func MarshalResult(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// UnmarshalDirectorySummary decodes a directory summary, useful for
// ingestion tests.
func UnmarshalDirectorySummary(r io.Reader) (DirectoryScanSummary, error) {
	var s DirectoryScanSummary
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return DirectoryScanSummary{}, err
	}
	return s, nil
}

// UnmarshalComprehensive decodes a single-file result.
func UnmarshalComprehensive(r io.Reader) (ComprehensiveScanResult, error) {
	var c ComprehensiveScanResult
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return ComprehensiveScanResult{}, err
	}
	return c, nil
}
