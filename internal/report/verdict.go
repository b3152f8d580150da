package report

import "github.com/datahunter/datahunter/internal/types"

// Verdict returns the risk level a result should be judged by: the overall
// risk for a file, the content risk for text and the worst non-empty bucket
// for a directory.
func Verdict(v any) types.RiskLevel {
	switch r := v.(type) {
	case types.ComprehensiveScanResult:
		return r.OverallRisk
	case *types.ComprehensiveScanResult:
		return r.OverallRisk
	case types.ContentScanResult:
		return r.RiskLevel
	case *types.ContentScanResult:
		return r.RiskLevel
	case types.DirectoryScanSummary:
		return directoryVerdict(r)
	case *types.DirectoryScanSummary:
		return directoryVerdict(*r)
	}
	return types.RiskLow
}

func directoryVerdict(s types.DirectoryScanSummary) types.RiskLevel {
	switch {
	case len(s.HighRiskFiles) > 0:
		return types.RiskHigh
	case len(s.MediumRiskFiles) > 0:
		return types.RiskMedium
	}
	return types.RiskLow
}

// ShouldFail reports whether verdict reaches the failOn threshold. An empty
// or unknown threshold defaults to high. "none" never fails.
func ShouldFail(verdict types.RiskLevel, failOn string) bool {
	if failOn == "none" {
		return false
	}
	th, ok := types.ParseRiskLevel(failOn)
	if !ok {
		th = types.RiskHigh
	}
	// a low verdict never fails the run
	if verdict.Rank() == 0 {
		return false
	}
	return verdict.AtLeast(th)
}
