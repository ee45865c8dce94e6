package model

import (
	"strings"
	"testing"
)

func TestHeuristicFeatures_Vector_NameSortedOrder(t *testing.T) {
	f := HeuristicFeatures{
		Length:       100,
		Sentences:    3,
		Reliable:     1,
		IsAbsurd:     0,
		Urgent:       1,
		Exaggeration: 0,
	}

	vec := f.Vector()

	if len(vec) != FeatureCount {
		t.Fatalf("Expected %d features, got %d", FeatureCount, len(vec))
	}

	// Alphabetical by canonical name:
	// exaggeration, is_absurd, length, reliable, sentences, urgent
	want := []float64{0, 0, 100, 1, 3, 1}
	for i, v := range want {
		if vec[i] != v {
			t.Errorf("Slot %d: expected %v, got %v (full vector %v)", i, v, vec[i], vec)
		}
	}
}

func TestHeuristicFeatures_Vector_Deterministic(t *testing.T) {
	f := HeuristicFeatures{Length: 42, Sentences: 2, Urgent: 1}

	first := f.Vector()
	for i := 0; i < 10; i++ {
		again := f.Vector()
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("Vector ordering unstable at slot %d: %v vs %v", j, first, again)
			}
		}
	}
}

func TestHeuristicFeatures_Map_CanonicalNames(t *testing.T) {
	m := HeuristicFeatures{}.Map()

	for _, name := range []string{"length", "sentences", "reliable", "is_absurd", "urgent", "exaggeration"} {
		if _, ok := m[name]; !ok {
			t.Errorf("Missing canonical feature name %q", name)
		}
	}
	if len(m) != FeatureCount {
		t.Errorf("Expected %d features, got %d", FeatureCount, len(m))
	}
}

func TestNewFeedbackRecord_TruncatesLongText(t *testing.T) {
	long := strings.Repeat("真", 600)

	rec := NewFeedbackRecord(long, LabelFake, "")

	if got := len([]rune(rec.Text)); got != 500 {
		t.Errorf("Expected text truncated to 500 runes, got %d", got)
	}
	// Truncation counts runes, never splits a CJK character
	for _, r := range rec.Text {
		if r != '真' {
			t.Errorf("Truncation corrupted a rune: %q", r)
			break
		}
	}
}

func TestNewFeedbackRecord_ShortTextUnchanged(t *testing.T) {
	rec := NewFeedbackRecord("短文本", LabelReal, "correct label was real")

	if rec.Text != "短文本" {
		t.Errorf("Expected text unchanged, got %q", rec.Text)
	}
	if rec.ReportedLabel != LabelReal {
		t.Errorf("Expected label real, got %v", rec.ReportedLabel)
	}
	if rec.Comment != "correct label was real" {
		t.Errorf("Expected comment preserved, got %q", rec.Comment)
	}
	if rec.Timestamp.IsZero() {
		t.Error("Expected timestamp to be set")
	}
}

func TestInferenceError_Unwrap(t *testing.T) {
	inner := ErrEmptyInput // any sentinel works for unwrap checking
	err := &InferenceError{Stage: "predict", Err: inner}

	if err.Unwrap() != inner {
		t.Error("Expected Unwrap to return the wrapped error")
	}
	if !strings.Contains(err.Error(), "predict") {
		t.Errorf("Expected stage in error message, got %q", err.Error())
	}
}
