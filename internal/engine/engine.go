package engine

import (
	"fmt"
	"io"
	"runtime"

	"github.com/sirupsen/logrus"

	"github.com/datahunter/datahunter/internal/classifier"
	"github.com/datahunter/datahunter/internal/keywords"
	"github.com/datahunter/datahunter/internal/patterns"
)

// Config controls batch scanning scope and parallelism.
type Config struct {
	// Workers bounds concurrent filename scans (0 = GOMAXPROCS).
	Workers int
	// IncludeGlobs and ExcludeGlobs are comma-separated doublestar globs
	// matched against paths relative to the scan root.
	IncludeGlobs string
	ExcludeGlobs string
	// DefaultExcludes skips VCS and dependency directories such as .git and
	// node_modules.
	DefaultExcludes bool
}

// Engine runs scans against an immutable pattern library, keyword index and
// classifier.
type Engine struct {
	lib *patterns.Library
	idx *keywords.Index
	clf classifier.Classifier
	fs  FS
	cfg Config
	log *logrus.Entry
}

// Option customises an Engine.
type Option func(*Engine)

// WithLibrary replaces the built-in pattern library.
func WithLibrary(l *patterns.Library) Option { return func(e *Engine) { e.lib = l } }

// WithKeywords replaces the built-in keyword index.
func WithKeywords(x *keywords.Index) Option { return func(e *Engine) { e.idx = x } }

// WithClassifier injects the content classifier. Without it New trains the
// bootstrap classifier.
func WithClassifier(c classifier.Classifier) Option { return func(e *Engine) { e.clf = c } }

// WithFS replaces the filesystem collaborator.
func WithFS(fs FS) Option { return func(e *Engine) { e.fs = fs } }

// WithConfig sets batch scanning options.
func WithConfig(cfg Config) Option { return func(e *Engine) { e.cfg = cfg } }

// WithLogger sets the logger; the engine adds a component field.
func WithLogger(l *logrus.Entry) Option { return func(e *Engine) { e.log = l } }

// New builds an Engine. It fails only when the default classifier cannot be
// trained.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{}
	for _, o := range opts {
		o(e)
	}
	if e.lib == nil {
		e.lib = patterns.Default()
	}
	if e.idx == nil {
		e.idx = keywords.Default()
	}
	if e.fs == nil {
		e.fs = OSFS{}
	}
	if e.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		e.log = logrus.NewEntry(l)
	}
	e.log = e.log.WithField("component", "engine")
	if e.clf == nil {
		c, err := classifier.Bootstrap()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize classifier: %w", err)
		}
		e.clf = c
	}
	e.cfg.Workers = determineWorkers(e.cfg.Workers)
	return e, nil
}

// Classifier returns the engine's content classifier.
func (e *Engine) Classifier() classifier.Classifier { return e.clf }

// Workers returns the effective batch worker bound.
func (e *Engine) Workers() int { return e.cfg.Workers }

func determineWorkers(n int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n < 1 {
		n = 1
	}
	if n > 64 {
		n = 64
	}
	return n
}
