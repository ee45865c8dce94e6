// Package modelfile loads the trained model artifacts (TF-IDF
// vectorizer and logistic regression classifier) from JSON files
// exported by the training pipeline. Artifacts are loaded once at
// process start and never mutated, so the returned values are safe for
// concurrent use.
package modelfile

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

// tfidfArtifact is the on-disk JSON layout of an exported vectorizer
type tfidfArtifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Dim        int            `json:"dim"`
}

// TFIDF is a pre-trained term-frequency/inverse-document-frequency
// vectorizer over space-separated tokens. Transform output is
// L2-normalized, matching the training-side convention.
type TFIDF struct {
	vocabulary map[string]int
	idf        []float64
	dim        int
}

// LoadTFIDF reads and validates a vectorizer artifact
func LoadTFIDF(path string) (*TFIDF, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vectorizer artifact: %w", err)
	}

	var art tfidfArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("parse vectorizer artifact: %w", err)
	}

	if art.Dim <= 0 {
		return nil, fmt.Errorf("vectorizer artifact: invalid dim %d", art.Dim)
	}
	if len(art.IDF) != art.Dim {
		return nil, fmt.Errorf("vectorizer artifact: idf length %d does not match dim %d", len(art.IDF), art.Dim)
	}
	for term, idx := range art.Vocabulary {
		if idx < 0 || idx >= art.Dim {
			return nil, fmt.Errorf("vectorizer artifact: term %q has index %d outside [0,%d)", term, idx, art.Dim)
		}
	}

	return &TFIDF{
		vocabulary: art.Vocabulary,
		idf:        art.IDF,
		dim:        art.Dim,
	}, nil
}

// Dim returns the vectorizer output dimension
func (t *TFIDF) Dim() int {
	return t.dim
}

// Transform maps normalized (space-joined) text to a tf-idf vector.
// Out-of-vocabulary tokens contribute nothing. Deterministic; the error
// is always nil and exists to satisfy the Vectorizer contract.
func (t *TFIDF) Transform(text string) ([]float64, error) {
	vec := make([]float64, t.dim)

	for _, tok := range strings.Fields(text) {
		if idx, ok := t.vocabulary[tok]; ok {
			vec[idx] += t.idf[idx]
		}
	}

	// L2 normalization
	var sumSquares float64
	for _, v := range vec {
		sumSquares += v * v
	}
	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec, nil
}
