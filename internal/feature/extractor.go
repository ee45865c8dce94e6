// Package feature computes heuristic trust signals and runs the
// absurdity gate over raw news text. Both operate on the unnormalized
// input: the marker lists target specific literal phrases, so matching
// is deliberately case- and punctuation-sensitive.
package feature

import (
	"strings"
	"unicode/utf8"

	"github.com/verinews/verinews/internal/model"
)

// Extractor computes the fixed set of heuristic features from raw text
type Extractor struct {
	authority []string
	absurd    []string
	urgency   []string
	hyperbole []string
}

// NewExtractor creates an extractor from the detector configuration.
// A nil config falls back to the built-in defaults.
func NewExtractor(cfg *model.DetectorConfig) *Extractor {
	if cfg == nil {
		cfg = &model.DefaultConfig().Detector
	}

	return &Extractor{
		authority: cfg.AuthorityMarkers,
		absurd:    cfg.AbsurdPhrases,
		urgency:   cfg.UrgencyMarkers,
		hyperbole: cfg.HyperboleMarkers,
	}
}

// Extract computes heuristic features from the raw text. Total and
// deterministic: it never fails, and the same text always yields the
// same output.
func (e *Extractor) Extract(rawText string) model.HeuristicFeatures {
	return model.HeuristicFeatures{
		Length:       float64(utf8.RuneCountInString(rawText)),
		Sentences:    float64(strings.Count(rawText, "。") + 1),
		Reliable:     flag(containsAny(rawText, e.authority)),
		IsAbsurd:     flag(containsAny(rawText, e.absurd)),
		Urgent:       flag(containsAny(rawText, e.urgency)),
		Exaggeration: flag(containsAny(rawText, e.hyperbole)),
	}
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(text, m) {
			return true
		}
	}
	return false
}

func flag(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
