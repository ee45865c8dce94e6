package model

import "sort"

// HeuristicFeatures is the fixed set of scalar signals computed from the
// raw (unnormalized) text. Flag values are exactly 0.0 or 1.0.
type HeuristicFeatures struct {
	Length       float64 `json:"length"`       // rune count of the raw text
	Sentences    float64 `json:"sentences"`    // '。' count + 1, always >= 1
	Reliable     float64 `json:"reliable"`     // authority-source marker present
	IsAbsurd     float64 `json:"is_absurd"`    // physically-impossible phrase present
	Urgent       float64 `json:"urgent"`       // urgency marker present
	Exaggeration float64 `json:"exaggeration"` // hyperbole marker present
}

// Map returns the features keyed by their canonical names
func (f HeuristicFeatures) Map() map[string]float64 {
	return map[string]float64{
		"length":       f.Length,
		"sentences":    f.Sentences,
		"reliable":     f.Reliable,
		"is_absurd":    f.IsAbsurd,
		"urgent":       f.Urgent,
		"exaggeration": f.Exaggeration,
	}
}

// Vector returns the feature values ordered by feature name. The sort
// makes the ordering deterministic regardless of how the map is built;
// the assembler appends this sequence after the vectorizer output.
func (f HeuristicFeatures) Vector() []float64 {
	m := f.Map()

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vec := make([]float64, 0, len(keys))
	for _, k := range keys {
		vec = append(vec, m[k])
	}
	return vec
}

// FeatureCount is the number of heuristic features appended to the
// vectorizer output by the assembler.
const FeatureCount = 6
