package engine

import "github.com/datahunter/datahunter/internal/types"

// ContentRisk derives the content risk tier from the total number of pattern
// findings and the classifier score. All comparisons are strict.
func ContentRisk(totalFindings int, score float64) types.RiskLevel {
	switch {
	case totalFindings > 10 || score > 0.8:
		return types.RiskCritical
	case totalFindings > 5 || score > 0.6:
		return types.RiskHigh
	case totalFindings > 0 || score > 0.4:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// FilenameLevel maps a keyword match count to a filename sensitivity level.
func FilenameLevel(matches int) types.RiskLevel {
	switch {
	case matches > 2:
		return types.RiskHigh
	case matches > 0:
		return types.RiskMedium
	default:
		return types.RiskLow
	}
}

// OverallRisk folds component levels into the three-tier overall scale:
// critical and high both become high.
func OverallRisk(levels ...types.RiskLevel) types.RiskLevel {
	medium := false
	for _, l := range levels {
		switch l {
		case types.RiskCritical, types.RiskHigh:
			return types.RiskHigh
		case types.RiskMedium:
			medium = true
		}
	}
	if medium {
		return types.RiskMedium
	}
	return types.RiskLow
}

// Recommendations returns the canned handling advice for an overall risk.
func Recommendations(overall types.RiskLevel) []string {
	switch overall {
	case types.RiskHigh, types.RiskCritical:
		return []string{
			"HIGH RISK: This file contains sensitive data",
			"Consider secure wiping with multiple passes",
			"Generate certificate of destruction for compliance",
		}
	case types.RiskMedium:
		return []string{
			"MEDIUM RISK: Review file before deletion",
			"Use secure wiping method",
		}
	default:
		return []string{"LOW RISK: Standard deletion recommended"}
	}
}

// DirectoryRecommendation picks the aggregate tier from bucket sizes.
func DirectoryRecommendation(high, medium int) (types.DirectoryTier, string) {
	switch {
	case high > 10:
		return types.TierCritical, "CRITICAL: Multiple sensitive files detected. Review carefully before wiping."
	case high > 0:
		return types.TierWarning, "WARNING: Sensitive files detected. Verify before deletion."
	case medium > 5:
		return types.TierCaution, "CAUTION: Some potentially sensitive files found."
	default:
		return types.TierSafe, "SAFE: No major sensitive data detected."
	}
}
