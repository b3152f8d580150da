package core

import (
	"github.com/sirupsen/logrus"

	"github.com/datahunter/datahunter/internal/classifier"
	"github.com/datahunter/datahunter/internal/engine"
	"github.com/datahunter/datahunter/internal/report"
	"github.com/datahunter/datahunter/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	Engine     = engine.Engine
	Option     = engine.Option
	FileInfo   = engine.FileInfo
	FS         = engine.FS
	Classifier = classifier.Classifier

	RiskLevel               = types.RiskLevel
	Category                = types.Category
	ScanIssue               = types.ScanIssue
	ContentScanResult       = types.ContentScanResult
	FilenameScanResult      = types.FilenameScanResult
	MetadataScanResult      = types.MetadataScanResult
	ComprehensiveScanResult = types.ComprehensiveScanResult
	DirectoryScanSummary    = types.DirectoryScanSummary
	FileEntry               = types.FileEntry
)

const (
	RiskLow      = types.RiskLow
	RiskMedium   = types.RiskMedium
	RiskHigh     = types.RiskHigh
	RiskCritical = types.RiskCritical
)

var (
	// ErrInput reports an empty filename, path or directory root.
	ErrInput = types.ErrInput

	// ErrRootUnreadable reports a directory root that exists but cannot be listed.
	ErrRootUnreadable = engine.ErrRootUnreadable
)

// New builds an engine. Without WithClassifier the built-in bootstrap
// classifier is trained once here.
func New(opts ...Option) (*Engine, error) { return engine.New(opts...) }

// WithClassifier injects a classifier, e.g. one returned by LoadModel.
func WithClassifier(c Classifier) Option { return engine.WithClassifier(c) }

// WithWorkers bounds concurrent filename scans in BatchScanDirectory.
func WithWorkers(n int) Option {
	return engine.WithConfig(engine.Config{Workers: n})
}

// WithFS replaces the filesystem used for stat and directory listing.
func WithFS(fs FS) Option { return engine.WithFS(fs) }

// WithLogger routes engine logs to l.
func WithLogger(l *logrus.Logger) Option { return engine.WithLogger(logrus.NewEntry(l)) }

// LoadModel loads a classifier from a versioned model artifact.
func LoadModel(path string) (Classifier, error) {
	m, err := classifier.LoadArtifact(path)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// FormatReport renders a ComprehensiveScanResult, DirectoryScanSummary or
// ContentScanResult as a fixed-section text report. Other types render as an
// empty string.
func FormatReport(v any) string {
	s, err := report.Format(v)
	if err != nil {
		return ""
	}
	return s
}

// Categories lists every detector category in reporting order.
func Categories() []Category { return types.Categories() }
