package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/datahunter/datahunter/internal/classifier"
	"github.com/datahunter/datahunter/internal/types"
)

// ScanText runs every pattern over text and scores it with the classifier.
// A classifier failure degrades to a zero score plus a classification issue.
func (e *Engine) ScanText(text string) types.ContentScanResult {
	res := types.ContentScanResult{Findings: e.lib.Match(text)}
	score, err := classifier.SafeScore(e.clf, text)
	if err != nil {
		res.Issues = append(res.Issues, types.ScanIssue{
			Kind:    types.IssueClassification,
			Message: classificationMessage(err),
		})
		if !errors.Is(err, classifier.ErrNoFeatures) {
			e.log.WithError(err).Warn("classifier failed; scoring as 0")
		}
	}
	res.SensitivityScore = score
	res.RiskLevel = ContentRisk(res.TotalFindings(), score)
	return res
}

func classificationMessage(err error) string {
	if errors.Is(err, classifier.ErrNoFeatures) {
		return "no classifier features in content; score defaulted to 0"
	}
	return fmt.Sprintf("classifier failed: %v; score defaulted to 0", err)
}

// ScanFilename matches name against the keyword index.
func (e *Engine) ScanFilename(name string) (types.FilenameScanResult, error) {
	if name == "" {
		return types.FilenameScanResult{}, fmt.Errorf("%w: empty filename", types.ErrInput)
	}
	matches := e.idx.MatchAll(name)
	if matches == nil {
		matches = []string{}
	}
	return types.FilenameScanResult{
		Filename:         name,
		Indicators:       matches,
		IsSensitive:      len(matches) > 0,
		SensitivityLevel: FilenameLevel(len(matches)),
	}, nil
}

type extensionAdvice struct {
	indicator string
}

// extensions that commonly hold sensitive material
var sensitiveExtensions = map[string]extensionAdvice{
	".pdf":    {"Document file - may contain sensitive information"},
	".doc":    {"Word document - check for personal data"},
	".docx":   {"Word document - check for personal data"},
	".xls":    {"Spreadsheet - may contain financial/personal data"},
	".xlsx":   {"Spreadsheet - may contain financial/personal data"},
	".csv":    {"Data file - may contain structured sensitive data"},
	".sql":    {"Database file - may contain sensitive records"},
	".db":     {"Database file - may contain sensitive records"},
	".key":    {"Key file - likely contains cryptographic keys"},
	".pem":    {"Certificate file - contains cryptographic data"},
	".p12":    {"Certificate file - contains cryptographic data"},
	".env":    {"Environment file - likely contains secrets"},
	".config": {"Configuration file - may contain credentials"},
}

const largeFileBytes int64 = 1_000_000_000

// ScanMetadata produces extension and size advisories. It never fails.
func (e *Engine) ScanMetadata(info FileInfo) types.MetadataScanResult {
	ext := strings.ToLower(info.Extension)
	if ext == "" {
		ext = extensionOf(info.Path)
	}
	res := types.MetadataScanResult{
		Path:            info.Path,
		Size:            max(info.Size, 0),
		Extension:       ext,
		Indicators:      []string{},
		Recommendations: []string{},
	}
	if adv, ok := sensitiveExtensions[ext]; ok {
		res.Indicators = append(res.Indicators, adv.indicator)
		res.Recommendations = append(res.Recommendations,
			fmt.Sprintf("Review %s file for sensitive content before wiping", ext))
	}
	if res.Size > largeFileBytes {
		res.Indicators = append(res.Indicators, "Large file - may be backup or archive")
		res.Recommendations = append(res.Recommendations, "Verify contents before deletion")
	}
	return res
}

// ComprehensiveScan combines the filename, metadata and optional content
// verdicts for path. A nil or empty content skips the content scan.
func (e *Engine) ComprehensiveScan(path string, content *string) (types.ComprehensiveScanResult, error) {
	if strings.TrimSpace(path) == "" {
		return types.ComprehensiveScanResult{}, fmt.Errorf("%w: empty path", types.ErrInput)
	}
	res := types.ComprehensiveScanResult{Path: path}

	fn, err := e.ScanFilename(filepath.Base(path))
	if err != nil {
		return types.ComprehensiveScanResult{}, err
	}
	res.Filename = fn

	info, _, err := e.fs.Stat(path)
	if err != nil {
		e.log.WithError(err).WithField("path", path).Debug("stat failed; treating size as 0")
		res.Issues = append(res.Issues, types.ScanIssue{
			Kind:    types.IssueTraversal,
			Path:    path,
			Message: fmt.Sprintf("stat failed: %v", err),
		})
		info = FileInfo{Path: path}
	}
	info.Path = path
	res.Metadata = e.ScanMetadata(info)

	levels := []types.RiskLevel{fn.SensitivityLevel}
	if content != nil && *content != "" {
		c := e.ScanText(*content)
		res.Content = &c
		levels = append(levels, c.RiskLevel)
		for _, is := range c.Issues {
			is.Path = path
			res.Issues = append(res.Issues, is)
		}
	}
	res.OverallRisk = OverallRisk(levels...)
	res.Recommendations = Recommendations(res.OverallRisk)
	return res, nil
}
