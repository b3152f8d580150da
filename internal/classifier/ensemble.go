package classifier

import (
	"math"
)

const (
	lrEpochs       = 400
	lrRate         = 1.0
	lrL2           = 1e-4
	bayesSmoothing = 0.1
)

// logistic is a binary logistic-regression member.
type logistic struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

func (m logistic) prob(x vector) float64 {
	z := m.Bias
	for _, f := range x {
		z += m.Weights[f.idx] * f.val
	}
	return sigmoid(z)
}

// trainLogistic runs deterministic full-batch gradient descent.
func trainLogistic(xs []vector, ys []float64, dim int) logistic {
	m := logistic{Weights: make([]float64, dim)}
	n := float64(len(xs))
	grad := make([]float64, dim)
	for epoch := 0; epoch < lrEpochs; epoch++ {
		for j := range grad {
			grad[j] = lrL2 * m.Weights[j]
		}
		var gb float64
		for i, x := range xs {
			d := (m.prob(x) - ys[i]) / n
			for _, f := range x {
				grad[f.idx] += d * f.val
			}
			gb += d
		}
		for j := range m.Weights {
			m.Weights[j] -= lrRate * grad[j]
		}
		m.Bias -= lrRate * gb
	}
	return m
}

// bayes is a two-class multinomial naive Bayes member over TF-IDF weights.
type bayes struct {
	LogPrior [2]float64   `json:"log_prior"`
	LogProb  [2][]float64 `json:"log_prob"`
}

func trainBayes(xs []vector, ys []float64, dim int) bayes {
	var m bayes
	var docs [2]float64
	var mass [2][]float64
	var total [2]float64
	for c := 0; c < 2; c++ {
		mass[c] = make([]float64, dim)
	}
	for i, x := range xs {
		c := int(ys[i])
		docs[c]++
		for _, f := range x {
			mass[c][f.idx] += f.val
			total[c] += f.val
		}
	}
	n := docs[0] + docs[1]
	for c := 0; c < 2; c++ {
		m.LogPrior[c] = math.Log((docs[c] + 1) / (n + 2))
		m.LogProb[c] = make([]float64, dim)
		denom := total[c] + bayesSmoothing*float64(dim)
		for j := 0; j < dim; j++ {
			m.LogProb[c][j] = math.Log((mass[c][j] + bayesSmoothing) / denom)
		}
	}
	return m
}

func (m bayes) prob(x vector) float64 {
	var ll [2]float64
	for c := 0; c < 2; c++ {
		ll[c] = m.LogPrior[c]
		for _, f := range x {
			ll[c] += f.val * m.LogProb[c][f.idx]
		}
	}
	return sigmoid(ll[1] - ll[0])
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}

// Model is a trained TF-IDF ensemble. It is immutable after construction and
// safe for concurrent use.
type Model struct {
	name string
	vec  *Vectorizer
	lr   logistic
	nb   bayes
}

// Train fits a model on labelled documents (label true = sensitive).
func Train(name string, docs []string, labels []bool) (*Model, error) {
	if len(docs) == 0 || len(docs) != len(labels) {
		return nil, errMismatchedCorpus
	}
	var pos, neg int
	for _, l := range labels {
		if l {
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return nil, errSingleClass
	}
	vec := fitVectorizer(docs, maxFeatures)
	xs := make([]vector, 0, len(docs))
	ys := make([]float64, 0, len(docs))
	for i, d := range docs {
		x, err := vec.Transform(d)
		if err != nil {
			continue
		}
		xs = append(xs, x)
		if labels[i] {
			ys = append(ys, 1)
		} else {
			ys = append(ys, 0)
		}
	}
	return &Model{
		name: name,
		vec:  vec,
		lr:   trainLogistic(xs, ys, vec.Len()),
		nb:   trainBayes(xs, ys, vec.Len()),
	}, nil
}

// Score averages the member probabilities for text.
func (m *Model) Score(text string) (float64, error) {
	x, err := m.vec.Transform(text)
	if err != nil {
		return 0, err
	}
	return clamp01((m.lr.prob(x) + m.nb.prob(x)) / 2), nil
}

// Name identifies how the model was obtained.
func (m *Model) Name() string { return m.name }

// VocabularySize returns the number of features the model uses.
func (m *Model) VocabularySize() int { return m.vec.Len() }
