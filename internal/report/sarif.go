package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/datahunter/datahunter/internal/types"
)

type sarif struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name    string      `json:"name"`
	Version string      `json:"version,omitempty"`
	Rules   []sarifRule `json:"rules,omitempty"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifResult struct {
	RuleID     string         `json:"ruleId"`
	Level      string         `json:"level"`
	Message    sarifMessage   `json:"message"`
	Locations  []sarifLoc     `json:"locations"`
	Properties map[string]any `json:"properties,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifLoc struct {
	PhysicalLocation sarifPhys `json:"physicalLocation"`
}

type sarifPhys struct {
	ArtifactLocation sarifArt `json:"artifactLocation"`
}

type sarifArt struct {
	URI string `json:"uri"`
}

const (
	ruleFilename = "sensitive-filename"
	ruleContent  = "sensitive-content"
)

func riskToLevel(r types.RiskLevel) string {
	switch r {
	case types.RiskCritical, types.RiskHigh:
		return "error"
	case types.RiskMedium:
		return "warning"
	default:
		return "note"
	}
}

func location(path string) []sarifLoc {
	return []sarifLoc{{PhysicalLocation: sarifPhys{ArtifactLocation: sarifArt{URI: path}}}}
}

// WriteSARIF writes a directory summary or a comprehensive file result as
// SARIF 2.1.0. Only medium and higher verdicts become results.
func WriteSARIF(w io.Writer, v any, toolVersion string) error {
	run := sarifRun{
		Tool: sarifTool{Driver: sarifDriver{
			Name:    "datahunter",
			Version: toolVersion,
			Rules: []sarifRule{
				{ID: ruleFilename, ShortDescription: sarifMessage{Text: "File name suggests sensitive data"}},
				{ID: ruleContent, ShortDescription: sarifMessage{Text: "File content contains sensitive data"}},
			},
		}},
		Results: []sarifResult{},
	}
	switch r := v.(type) {
	case types.DirectoryScanSummary:
		run.Results = directoryResults(r)
	case *types.DirectoryScanSummary:
		run.Results = directoryResults(*r)
	case types.ComprehensiveScanResult:
		run.Results = fileResults(r)
	case *types.ComprehensiveScanResult:
		run.Results = fileResults(*r)
	default:
		return fmt.Errorf("unsupported result type %T for SARIF", v)
	}
	doc := sarif{
		Schema:  "https://json.schemastore.org/sarif-2.1.0.json",
		Version: "2.1.0",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func directoryResults(s types.DirectoryScanSummary) []sarifResult {
	out := []sarifResult{}
	for _, f := range s.SensitiveFiles {
		out = append(out, sarifResult{
			RuleID:     ruleFilename,
			Level:      riskToLevel(f.Sensitivity),
			Message:    sarifMessage{Text: "File name matches: " + strings.Join(f.Keywords, ", ")},
			Locations:  location(f.Path),
			Properties: map[string]any{"sensitivity": f.Sensitivity},
		})
	}
	return out
}

func fileResults(r types.ComprehensiveScanResult) []sarifResult {
	out := []sarifResult{}
	if r.Filename.IsSensitive {
		out = append(out, sarifResult{
			RuleID:    ruleFilename,
			Level:     riskToLevel(r.Filename.SensitivityLevel),
			Message:   sarifMessage{Text: "File name matches: " + strings.Join(r.Filename.Indicators, ", ")},
			Locations: location(r.Path),
		})
	}
	if c := r.Content; c != nil && c.RiskLevel != types.RiskLow {
		counts := map[string]any{}
		for _, cat := range types.Categories() {
			if n := c.Count(cat); n > 0 {
				counts[string(cat)] = n
			}
		}
		out = append(out, sarifResult{
			RuleID:     ruleContent,
			Level:      riskToLevel(c.RiskLevel),
			Message:    sarifMessage{Text: fmt.Sprintf("%d findings, sensitivity score %.2f", c.TotalFindings(), c.SensitivityScore)},
			Locations:  location(r.Path),
			Properties: map[string]any{"risk_level": c.RiskLevel, "findings": counts},
		})
	}
	return out
}
