// Package vector assembles the fixed-length feature vector fed to the
// classifier: vectorizer output over the normalized text, followed by
// the heuristic feature sequence computed from the raw text.
package vector

import (
	"github.com/verinews/verinews/internal/feature"
)

// Vectorizer is the external text-vectorization collaborator. It is
// pre-trained, loaded once at startup, and must be safe for concurrent
// read-only use.
type Vectorizer interface {
	Transform(text string) ([]float64, error)
}

// Result is the assembler output. Degraded reports that the vectorizer
// failed and a neutral zero vector was substituted, so callers and tests
// can assert on the degrade path directly instead of relying on a
// caught error.
type Result struct {
	Vector   []float32
	Degraded bool
	Reason   string // vectorizer failure diagnostic, Degraded only
}

// Assembler builds classifier input vectors of exactly expectedDim
// entries.
//
// Dimension policy: excess entries are truncated; a shortfall is
// zero-padded. (The training pipeline sizes expectedDim so the combined
// vector normally needs truncation only; zero-padding keeps the
// contract total for undersized vectorizers.)
type Assembler struct {
	vectorizer  Vectorizer
	extractor   *feature.Extractor
	expectedDim int
}

// NewAssembler creates an assembler for the given collaborators
func NewAssembler(v Vectorizer, ex *feature.Extractor, expectedDim int) *Assembler {
	return &Assembler{
		vectorizer:  v,
		extractor:   ex,
		expectedDim: expectedDim,
	}
}

// Assemble builds the feature vector. The vectorizer runs over the
// normalized text, the heuristic extractor over the raw text; the
// heuristic values are appended in name-sorted order.
//
// A vectorizer failure is absorbed into a zero vector of expectedDim
// entries rather than propagated: a malformed input should degrade to a
// neutral classification, not crash the pipeline.
func (a *Assembler) Assemble(normalizedText, rawText string) Result {
	base, err := a.vectorizer.Transform(normalizedText)
	if err != nil {
		return Result{
			Vector:   make([]float32, a.expectedDim),
			Degraded: true,
			Reason:   err.Error(),
		}
	}

	heur := a.extractor.Extract(rawText).Vector()

	combined := make([]float64, 0, len(base)+len(heur))
	combined = append(combined, base...)
	combined = append(combined, heur...)

	// Exactly expectedDim entries: truncate excess, zero-pad shortfall
	out := make([]float32, a.expectedDim)
	for i := 0; i < a.expectedDim && i < len(combined); i++ {
		out[i] = float32(combined[i])
	}

	return Result{Vector: out}
}
