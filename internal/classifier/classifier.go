// Package classifier scores free text for sensitivity. A Classifier turns a
// bounded prefix of text into a probability in [0,1]; implementations are
// trained either at startup from an embedded bootstrap corpus or loaded from
// a versioned model artifact.
package classifier

import (
	"errors"
	"fmt"
)

// PrefixLimit is the number of characters fed to a classifier. Cost stays
// independent of document size.
const PrefixLimit = 1000

// ErrNoFeatures is returned when no usable feature can be extracted, e.g. for
// empty, malformed or entirely out-of-vocabulary input.
var ErrNoFeatures = errors.New("no features extracted")

// Classifier scores text for sensitivity.
type Classifier interface {
	// Score returns a probability in [0,1] that text is sensitive.
	Score(text string) (float64, error)
	// Name identifies the implementation, e.g. "bootstrap" or "artifact".
	Name() string
}

// Kind selects a classifier implementation.
type Kind string

const (
	KindBootstrap Kind = "bootstrap"
	KindArtifact  Kind = "artifact"
)

// New returns the classifier selected by kind. modelPath is required for
// KindArtifact and ignored otherwise. An empty kind means KindBootstrap.
func New(kind Kind, modelPath string) (Classifier, error) {
	switch kind {
	case "", KindBootstrap:
		m, err := Bootstrap()
		if err != nil {
			return nil, err
		}
		return m, nil
	case KindArtifact:
		if modelPath == "" {
			return nil, errors.New("artifact classifier requires a model path")
		}
		m, err := LoadArtifact(modelPath)
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, fmt.Errorf("unknown classifier %q", kind)
	}
}

// Prefix returns at most the first PrefixLimit characters of text.
func Prefix(text string) string {
	n := 0
	for i := range text {
		if n == PrefixLimit {
			return text[:i]
		}
		n++
	}
	return text
}

// SafeScore scores the bounded prefix of text, mapping any failure (including
// a panic inside the classifier) to 0.0. The returned error, if any, is for
// reporting only.
func SafeScore(c Classifier, text string) (score float64, err error) {
	if c == nil {
		return 0, errors.New("no classifier configured")
	}
	defer func() {
		if r := recover(); r != nil {
			score, err = 0, fmt.Errorf("classifier %s panicked: %v", c.Name(), r)
		}
	}()
	s, err := c.Score(Prefix(text))
	if err != nil {
		return 0, err
	}
	return clamp01(s), nil
}

func clamp01(v float64) float64 {
	switch {
	case v != v: // NaN
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
