package vector

import (
	"errors"
	"testing"

	"github.com/verinews/verinews/internal/feature"
	"github.com/verinews/verinews/internal/model"
)

// stubVectorizer returns a fixed vector or a fixed error
type stubVectorizer struct {
	vec []float64
	err error
}

func (s *stubVectorizer) Transform(text string) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.vec, nil
}

func TestAssembler_Assemble_ExactDimension(t *testing.T) {
	ex := feature.NewExtractor(nil)

	tests := []struct {
		name        string
		baseLen     int
		expectedDim int
	}{
		{"truncate excess", 300, 204},
		{"zero-pad shortfall", 10, 204},
		{"exact fit", 198, 204}, // 198 + 6 heuristics = 204
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := make([]float64, tt.baseLen)
			for i := range base {
				base[i] = 0.5
			}

			a := NewAssembler(&stubVectorizer{vec: base}, ex, tt.expectedDim)
			result := a.Assemble("normalized text", "raw text")

			if len(result.Vector) != tt.expectedDim {
				t.Errorf("Expected vector of length %d, got %d", tt.expectedDim, len(result.Vector))
			}
			if result.Degraded {
				t.Error("Expected non-degraded result")
			}
		})
	}
}

func TestAssembler_Assemble_HeuristicsFollowBase(t *testing.T) {
	ex := feature.NewExtractor(nil)

	base := []float64{0.1, 0.2}
	a := NewAssembler(&stubVectorizer{vec: base}, ex, 8)

	raw := "新华社电。" // 5 runes, 2 sentences, reliable=1
	result := a.Assemble("ignored", raw)

	want := model.HeuristicFeatures{
		Length:    5,
		Sentences: 2,
		Reliable:  1,
	}.Vector()

	// Base occupies [0,2); heuristics follow in name-sorted order
	if result.Vector[0] != 0.1 || result.Vector[1] != 0.2 {
		t.Errorf("Expected base values first, got %v", result.Vector[:2])
	}
	for i, v := range want {
		if float64(result.Vector[2+i]) != v {
			t.Errorf("Heuristic slot %d: expected %v, got %v", i, v, result.Vector[2+i])
		}
	}
}

func TestAssembler_Assemble_DegradesOnVectorizerFailure(t *testing.T) {
	ex := feature.NewExtractor(nil)
	a := NewAssembler(&stubVectorizer{err: errors.New("vocabulary load failed")}, ex, 204)

	result := a.Assemble("some text", "some text")

	if !result.Degraded {
		t.Fatal("Expected degraded result on vectorizer failure")
	}
	if result.Reason == "" {
		t.Error("Expected a failure reason on the degraded result")
	}
	if len(result.Vector) != 204 {
		t.Errorf("Expected full-length zero vector, got length %d", len(result.Vector))
	}
	for i, v := range result.Vector {
		if v != 0 {
			t.Errorf("Expected zero vector, found %v at index %d", v, i)
			break
		}
	}
}

func TestAssembler_Assemble_EmptyBaseVector(t *testing.T) {
	ex := feature.NewExtractor(nil)
	a := NewAssembler(&stubVectorizer{vec: []float64{}}, ex, 10)

	result := a.Assemble("", "短文本")

	if len(result.Vector) != 10 {
		t.Errorf("Expected padded vector of length 10, got %d", len(result.Vector))
	}
	if result.Degraded {
		t.Error("An empty base vector is not a failure")
	}
	// Heuristics land at the front when the base is empty
	if result.Vector[2] != 3 { // length feature: 3 runes
		t.Errorf("Expected length feature 3 at slot 2, got %v", result.Vector[2])
	}
}
