package classifier

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	semver "github.com/blang/semver/v4"
	xxhash "github.com/cespare/xxhash/v2"
)

// ArtifactFormat is the model file format written by SaveArtifact. Loaders
// accept any artifact with the same major version.
const ArtifactFormat = "1.0.0"

var (
	// ErrArtifactVersion is returned for a missing or incompatible format version.
	ErrArtifactVersion = errors.New("unsupported model artifact version")
	// ErrArtifactChecksum is returned when the stored checksum does not match the weights.
	ErrArtifactChecksum = errors.New("model artifact checksum mismatch")
)

// Artifact is the on-disk representation of a trained Model.
type Artifact struct {
	FormatVersion string    `json:"format_version"`
	Name          string    `json:"name"`
	Vocabulary    []string  `json:"vocabulary"`
	IDF           []float64 `json:"idf"`
	Logistic      logistic  `json:"logistic"`
	Bayes         bayes     `json:"bayes"`
	Checksum      string    `json:"checksum"`
}

// Artifact exports the model's parameters.
func (m *Model) Artifact() Artifact {
	a := Artifact{
		FormatVersion: ArtifactFormat,
		Name:          m.name,
		Vocabulary:    append([]string(nil), m.vec.terms...),
		IDF:           append([]float64(nil), m.vec.idf...),
		Logistic:      m.lr,
		Bayes:         m.nb,
	}
	a.Checksum = a.sum()
	return a
}

// sum hashes the vocabulary and every weight in a fixed order.
func (a Artifact) sum() string {
	d := xxhash.New()
	var buf [8]byte
	putFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		_, _ = d.Write(buf[:])
	}
	for _, t := range a.Vocabulary {
		_, _ = d.WriteString(t)
		_, _ = d.Write([]byte{0})
	}
	for _, f := range a.IDF {
		putFloat(f)
	}
	for _, f := range a.Logistic.Weights {
		putFloat(f)
	}
	putFloat(a.Logistic.Bias)
	for c := 0; c < 2; c++ {
		putFloat(a.Bayes.LogPrior[c])
		for _, f := range a.Bayes.LogProb[c] {
			putFloat(f)
		}
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// Validate checks version compatibility, dimensions and checksum.
func (a Artifact) Validate() error {
	v, err := semver.ParseTolerant(a.FormatVersion)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrArtifactVersion, a.FormatVersion)
	}
	want := semver.MustParse(ArtifactFormat)
	if v.Major != want.Major {
		return fmt.Errorf("%w: %s (supported %d.x)", ErrArtifactVersion, v, want.Major)
	}
	dim := len(a.Vocabulary)
	if dim == 0 || len(a.IDF) != dim || len(a.Logistic.Weights) != dim ||
		len(a.Bayes.LogProb[0]) != dim || len(a.Bayes.LogProb[1]) != dim {
		return fmt.Errorf("model artifact has inconsistent dimensions (vocabulary %d)", dim)
	}
	if a.Checksum != a.sum() {
		return ErrArtifactChecksum
	}
	return nil
}

// WriteArtifact encodes m as indented JSON.
func WriteArtifact(w io.Writer, m *Model) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m.Artifact())
}

// SaveArtifact writes m to path.
func SaveArtifact(path string, m *Model) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create model artifact: %w", err)
	}
	if err := WriteArtifact(f, m); err != nil {
		_ = f.Close()
		return fmt.Errorf("write model artifact: %w", err)
	}
	return f.Close()
}

// ReadArtifact decodes and validates an artifact, returning a ready model.
func ReadArtifact(r io.Reader) (*Model, error) {
	var a Artifact
	if err := json.NewDecoder(r).Decode(&a); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &Model{
		name: string(KindArtifact),
		vec:  newVectorizer(a.Vocabulary, a.IDF),
		lr:   a.Logistic,
		nb:   a.Bayes,
	}, nil
}

// LoadArtifact reads a model file from path.
func LoadArtifact(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model artifact: %w", err)
	}
	defer f.Close()
	return ReadArtifact(f)
}

// Info summarises an artifact without building a model.
type Info struct {
	FormatVersion string `json:"format_version"`
	Name          string `json:"name"`
	Features      int    `json:"features"`
	Checksum      string `json:"checksum"`
}

// InspectArtifact reads just enough of path to describe it.
func InspectArtifact(path string) (Info, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Info{}, fmt.Errorf("read model artifact: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return Info{}, fmt.Errorf("decode model artifact: %w", err)
	}
	return Info{FormatVersion: a.FormatVersion, Name: a.Name, Features: len(a.Vocabulary), Checksum: a.Checksum}, a.Validate()
}
