package types

import (
	"errors"
	"strings"
)

// ErrInput reports malformed or missing required input such as an empty
// filename or directory root. It is returned to the caller, never swallowed.
var ErrInput = errors.New("invalid input")

// RiskLevel is a coarse-grained sensitivity tier. Content scans use all four
// levels; filename and overall verdicts only use low, medium and high.
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// Rank orders risk levels so they can be compared. Unknown values rank as low.
func (r RiskLevel) Rank() int {
	switch r {
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	case RiskCritical:
		return 3
	default:
		return 0
	}
}

// AtLeast reports whether r is at or above other.
func (r RiskLevel) AtLeast(other RiskLevel) bool { return r.Rank() >= other.Rank() }

// ParseRiskLevel maps a case-insensitive name to a RiskLevel.
func ParseRiskLevel(s string) (RiskLevel, bool) {
	switch RiskLevel(strings.ToLower(strings.TrimSpace(s))) {
	case RiskLow:
		return RiskLow, true
	case RiskMedium:
		return RiskMedium, true
	case RiskHigh:
		return RiskHigh, true
	case RiskCritical:
		return RiskCritical, true
	}
	return RiskLow, false
}

// Category identifies one class of sensitive-data detector.
type Category string

const (
	CatCreditCards  Category = "credit_cards"
	CatSSN          Category = "ssn"
	CatAadhaar      Category = "aadhaar"
	CatPAN          Category = "pan_card"
	CatEmails       Category = "emails"
	CatPhones       Category = "phones"
	CatAPIKeys      Category = "api_keys"
	CatPasswords    Category = "passwords"
	CatBankAccounts Category = "bank_accounts"
	CatIPAddresses  Category = "ip_addresses"
	CatPrivateKeys  Category = "private_keys"
)

// Categories lists every category in reporting order.
func Categories() []Category {
	return []Category{
		CatCreditCards, CatSSN, CatAadhaar, CatPAN, CatEmails, CatPhones,
		CatAPIKeys, CatPasswords, CatBankAccounts, CatIPAddresses, CatPrivateKeys,
	}
}

// IssueKind classifies a non-fatal problem encountered during a scan.
type IssueKind string

const (
	IssueInput          IssueKind = "input"
	IssueClassification IssueKind = "classification"
	IssueTraversal      IssueKind = "traversal"
)

// ScanIssue is a recovered, non-fatal error attached to a scan result.
type ScanIssue struct {
	Kind    IssueKind `json:"kind"`
	Path    string    `json:"path,omitempty"`
	Message string    `json:"message"`
}

// ContentScanResult holds raw matches per category plus the classifier score
// and the derived risk level.
type ContentScanResult struct {
	Findings         map[Category][]string `json:"findings"`
	SensitivityScore float64               `json:"sensitivity_score"`
	RiskLevel        RiskLevel             `json:"risk_level"`
	Issues           []ScanIssue           `json:"issues,omitempty"`
}

// TotalFindings sums matches across all categories.
func (c ContentScanResult) TotalFindings() int {
	n := 0
	for _, m := range c.Findings {
		n += len(m)
	}
	return n
}

// Count returns the number of matches for one category.
func (c ContentScanResult) Count(cat Category) int { return len(c.Findings[cat]) }

// FilenameScanResult is the keyword verdict for a single file name.
type FilenameScanResult struct {
	Filename         string    `json:"filename"`
	Indicators       []string  `json:"sensitive_indicators"`
	IsSensitive      bool      `json:"is_sensitive"`
	SensitivityLevel RiskLevel `json:"sensitivity_level"`
}

// MetadataScanResult carries extension and size advisories for one path.
type MetadataScanResult struct {
	Path            string   `json:"file_path"`
	Size            int64    `json:"file_size"`
	Extension       string   `json:"file_type"`
	Indicators      []string `json:"sensitivity_indicators"`
	Recommendations []string `json:"recommendations"`
}

// ComprehensiveScanResult aggregates the filename, metadata and optional
// content verdicts for one path.
type ComprehensiveScanResult struct {
	Path            string             `json:"file_path"`
	Filename        FilenameScanResult `json:"filename_analysis"`
	Metadata        MetadataScanResult `json:"metadata_analysis"`
	Content         *ContentScanResult `json:"content_analysis,omitempty"`
	OverallRisk     RiskLevel          `json:"overall_risk"`
	Recommendations []string           `json:"recommendations"`
	Issues          []ScanIssue        `json:"issues,omitempty"`
}

// FileEntry is one file bucketed by the directory scanner.
type FileEntry struct {
	Path        string    `json:"path"`
	Name        string    `json:"filename"`
	Sensitivity RiskLevel `json:"sensitivity"`
	Keywords    []string  `json:"keywords,omitempty"`
}

// DirectoryTier is the aggregate recommendation tier for a directory scan.
type DirectoryTier string

const (
	TierCritical DirectoryTier = "critical"
	TierWarning  DirectoryTier = "warning"
	TierCaution  DirectoryTier = "caution"
	TierSafe     DirectoryTier = "safe"
)

// DirectoryScanSummary is the result of a batch filename scan over a tree.
type DirectoryScanSummary struct {
	Directory          string        `json:"directory"`
	TotalFiles         int           `json:"total_files"`
	SensitiveFiles     []FileEntry   `json:"sensitive_files"`
	HighRiskFiles      []FileEntry   `json:"high_risk_files"`
	MediumRiskFiles    []FileEntry   `json:"medium_risk_files"`
	LowRiskFiles       []FileEntry   `json:"low_risk_files"`
	Skipped            int           `json:"skipped"`
	Cancelled          bool          `json:"cancelled,omitempty"`
	RecommendationTier DirectoryTier `json:"recommendation_tier"`
	Recommendation     string        `json:"recommendation"`
	Issues             []ScanIssue   `json:"issues,omitempty"`
}
