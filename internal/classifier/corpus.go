package classifier

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed corpus.yaml
var corpusYAML []byte

var (
	errMismatchedCorpus = errors.New("corpus documents and labels differ in length or are empty")
	errSingleClass      = errors.New("corpus needs both sensitive and non-sensitive examples")
)

// Corpus is a labelled set of example sentences.
type Corpus struct {
	Sensitive    []string `yaml:"sensitive"`
	NonSensitive []string `yaml:"non_sensitive"`
}

// BootstrapCorpus returns the embedded training corpus.
func BootstrapCorpus() (Corpus, error) {
	var c Corpus
	if err := yaml.Unmarshal(corpusYAML, &c); err != nil {
		return c, fmt.Errorf("parse bootstrap corpus: %w", err)
	}
	return c, nil
}

// LoadCorpus reads a corpus YAML file with sensitive and non_sensitive lists.
func LoadCorpus(path string) (Corpus, error) {
	var c Corpus
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("parse corpus %s: %w", path, err)
	}
	return c, nil
}

// Examples flattens the corpus into documents and labels.
func (c Corpus) Examples() ([]string, []bool) {
	docs := make([]string, 0, len(c.Sensitive)+len(c.NonSensitive))
	labels := make([]bool, 0, cap(docs))
	for _, s := range c.Sensitive {
		docs = append(docs, s)
		labels = append(labels, true)
	}
	for _, s := range c.NonSensitive {
		docs = append(docs, s)
		labels = append(labels, false)
	}
	return docs, labels
}

// Bootstrap trains a model from the embedded corpus.
func Bootstrap() (*Model, error) {
	c, err := BootstrapCorpus()
	if err != nil {
		return nil, err
	}
	m, err := c.Train(string(KindBootstrap))
	if err != nil {
		return nil, fmt.Errorf("train bootstrap classifier: %w", err)
	}
	return m, nil
}

// Train fits a model on the corpus.
func (c Corpus) Train(name string) (*Model, error) {
	docs, labels := c.Examples()
	return Train(name, docs, labels)
}
