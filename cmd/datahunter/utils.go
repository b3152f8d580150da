package datahunter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/datahunter/datahunter/internal/audit"
	"github.com/datahunter/datahunter/internal/classifier"
	"github.com/datahunter/datahunter/internal/config"
	"github.com/datahunter/datahunter/internal/engine"
	"github.com/datahunter/datahunter/internal/report"
	"github.com/datahunter/datahunter/internal/types"
)

// settings is the merged view of config files for one invocation.
type settings struct {
	local, global config.FileConfig
}

// loadSettings reads the global config and either --config or the local
// config found in dir. Missing files are fine; invalid ones are errors.
func loadSettings(dir string) (settings, error) {
	var s settings
	if c, err := config.LoadGlobal(); err == nil {
		s.global = c
	} else if !isMissingConfig(err) {
		return s, err
	}
	if flagConfig != "" {
		c, err := config.LoadFile(flagConfig)
		if err != nil {
			return s, err
		}
		s.local = c
		return s, nil
	}
	if c, err := config.LoadLocal(dir); err == nil {
		s.local = c
	} else if !isMissingConfig(err) {
		return s, err
	}
	return s, nil
}

func isMissingConfig(err error) bool {
	return errors.Is(err, config.ErrNotFound) || errors.Is(err, fs.ErrNotExist)
}

func logrusEntry() *logrus.Entry {
	return logrus.NewEntry(log)
}

func (s settings) failOn() string {
	if v := pickString(flagFailOn, s.local.FailOn, s.global.FailOn); v != "" {
		return v
	}
	return "high"
}

func (s settings) noColor() bool {
	if pickBool(flagNoColor, s.local.NoColor, s.global.NoColor) {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	return !term.IsTerminal(int(os.Stdout.Fd()))
}

func (s settings) classifier() (classifier.Classifier, error) {
	kind := classifier.Kind(pickString(flagClassifier, s.local.Classifier, s.global.Classifier))
	model := pickString(flagModel, s.local.ModelPath, s.global.ModelPath)
	if kind == "" && flagModel != "" {
		kind = classifier.KindArtifact
	}
	c, err := classifier.New(kind, model)
	if err != nil {
		return nil, fmt.Errorf("load classifier: %w", err)
	}
	log.WithField("classifier", c.Name()).Debug("classifier ready")
	return c, nil
}

func (s settings) engine(cfg engine.Config) (*engine.Engine, error) {
	c, err := s.classifier()
	if err != nil {
		return nil, err
	}
	return engine.New(
		engine.WithClassifier(c),
		engine.WithConfig(cfg),
		engine.WithLogger(logrusEntry()),
	)
}

// emit writes v in the selected format and reports errThreshold when the
// verdict reaches the fail-on level.
func emit(cmd *cobra.Command, s settings, v any) error {
	w := cmd.OutOrStdout()
	verdict := report.Verdict(v)
	if err := s.audit(v, verdict); err != nil {
		log.WithError(err).Warn("audit log not written")
	}
	if pickBool(flagMask, s.local.Mask, s.global.Mask) {
		v = report.Mask(v)
	}
	var err error
	switch {
	case flagJSON:
		err = report.WriteJSON(w, v)
	case flagSARIF:
		err = report.WriteSARIF(w, v, version)
	default:
		err = report.Print(w, v, report.PrintOptions{NoColor: s.noColor()})
	}
	if err != nil {
		return err
	}
	if report.ShouldFail(verdict, s.failOn()) {
		return errThreshold
	}
	return nil
}

func (s settings) auditPath() string {
	return pickString(flagAuditLog, s.local.AuditLog, s.global.AuditLog)
}

// audit appends a history record when an audit log is configured.
func (s settings) audit(v any, verdict types.RiskLevel) error {
	p := s.auditPath()
	if p == "" {
		return nil
	}
	now := time.Now().UTC()
	var rec audit.Record
	switch r := v.(type) {
	case types.DirectoryScanSummary:
		rec = audit.ForDirectory(r, verdict, now)
	case types.ComprehensiveScanResult:
		rec = audit.ForFile(r, now)
	case types.ContentScanResult:
		rec = audit.ForText(r, now)
	default:
		return nil
	}
	return audit.New(p).Append(rec)
}

func absDir(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	return abs
}

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil && *local != "" {
		return *local
	}
	if global != nil && *global != "" {
		return *global
	}
	return ""
}

func pickInt(cli int, local, global *int) int {
	if cli != 0 {
		return cli
	}
	if local != nil && *local != 0 {
		return *local
	}
	if global != nil && *global != 0 {
		return *global
	}
	return 0
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

// pickBoolDefault lets an explicitly set flag win in either direction and
// falls back to def when nothing is configured.
func pickBoolDefault(changed, cli bool, local, global *bool, def bool) bool {
	if changed {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return def
}
