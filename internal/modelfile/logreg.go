package modelfile

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// logregArtifact is the on-disk JSON layout of an exported classifier.
// Label convention: 0 = real, 1 = fake; the weights score the fake
// class.
type logregArtifact struct {
	Weights   []float64 `json:"weights"`
	Intercept float64   `json:"intercept"`
}

// LogisticRegression is a pre-trained binary classifier over assembled
// feature vectors
type LogisticRegression struct {
	weights   []float64
	intercept float64
}

// LoadLogistic reads and validates a classifier artifact
func LoadLogistic(path string) (*LogisticRegression, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read classifier artifact: %w", err)
	}

	var art logregArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("parse classifier artifact: %w", err)
	}

	if len(art.Weights) == 0 {
		return nil, fmt.Errorf("classifier artifact: no weights")
	}

	return &LogisticRegression{
		weights:   art.Weights,
		intercept: art.Intercept,
	}, nil
}

// Dim returns the expected feature vector length
func (m *LogisticRegression) Dim() int {
	return len(m.weights)
}

// Predict returns the class label: 0 for real, 1 for fake
func (m *LogisticRegression) Predict(vec []float32) (int, error) {
	_, fake, err := m.PredictProbabilities(vec)
	if err != nil {
		return 0, err
	}
	if fake >= 0.5 {
		return 1, nil
	}
	return 0, nil
}

// PredictProbabilities returns the (real, fake) class probabilities.
// A dimension mismatch indicates a broken or mismatched artifact and is
// reported as an error rather than silently truncated.
func (m *LogisticRegression) PredictProbabilities(vec []float32) (real, fake float64, err error) {
	if len(vec) != len(m.weights) {
		return 0, 0, fmt.Errorf("feature dimension mismatch: got %d, model expects %d", len(vec), len(m.weights))
	}

	z := m.intercept
	for i, w := range m.weights {
		z += w * float64(vec[i])
	}

	fake = 1.0 / (1.0 + math.Exp(-z))
	return 1 - fake, fake, nil
}
