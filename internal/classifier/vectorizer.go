package classifier

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// maxFeatures bounds the vocabulary to the most frequent n-grams.
const maxFeatures = 1000

var reToken = regexp.MustCompile(`\b\w\w+\b`)

// feature is one non-zero entry of a sparse vector.
type feature struct {
	idx int
	val float64
}

// vector is a sparse feature vector sorted by index.
type vector []feature

// Vectorizer maps text to L2-normalised TF-IDF weights over unigrams and
// bigrams.
type Vectorizer struct {
	vocab map[string]int
	terms []string
	idf   []float64
}

// ngrams lower-cases text and returns its unigrams followed by its bigrams.
func ngrams(text string) []string {
	toks := reToken.FindAllString(strings.ToLower(text), -1)
	out := make([]string, 0, 2*len(toks))
	out = append(out, toks...)
	for i := 0; i+1 < len(toks); i++ {
		out = append(out, toks[i]+" "+toks[i+1])
	}
	return out
}

// fitVectorizer learns the vocabulary and smoothed IDF weights from docs.
func fitVectorizer(docs []string, limit int) *Vectorizer {
	tf := map[string]int{}
	df := map[string]int{}
	for _, d := range docs {
		seen := map[string]bool{}
		for _, g := range ngrams(d) {
			tf[g]++
			if !seen[g] {
				seen[g] = true
				df[g]++
			}
		}
	}
	terms := make([]string, 0, len(tf))
	for t := range tf {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if tf[terms[i]] != tf[terms[j]] {
			return tf[terms[i]] > tf[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if limit > 0 && len(terms) > limit {
		terms = terms[:limit]
	}
	sort.Strings(terms)

	n := float64(len(docs))
	idf := make([]float64, len(terms))
	for i, t := range terms {
		idf[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
	return newVectorizer(terms, idf)
}

func newVectorizer(terms []string, idf []float64) *Vectorizer {
	vocab := make(map[string]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
	}
	return &Vectorizer{vocab: vocab, terms: terms, idf: idf}
}

// Transform returns the sparse TF-IDF vector for text.
func (v *Vectorizer) Transform(text string) (vector, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty input", ErrNoFeatures)
	}
	if !utf8.ValidString(text) {
		return nil, fmt.Errorf("%w: invalid utf-8", ErrNoFeatures)
	}
	counts := map[int]float64{}
	for _, g := range ngrams(text) {
		if i, ok := v.vocab[g]; ok {
			counts[i]++
		}
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("%w: no known terms", ErrNoFeatures)
	}
	vec := make(vector, 0, len(counts))
	for i, c := range counts {
		vec = append(vec, feature{idx: i, val: c * v.idf[i]})
	}
	sort.Slice(vec, func(a, b int) bool { return vec[a].idx < vec[b].idx })
	var norm float64
	for _, f := range vec {
		norm += f.val * f.val
	}
	norm = math.Sqrt(norm)
	for k := range vec {
		vec[k].val /= norm
	}
	return vec, nil
}

// Len returns the vocabulary size.
func (v *Vectorizer) Len() int { return len(v.terms) }
