package feature

import "strings"

// Gate is the fast-path rule check for unambiguous fabricated content.
// Certain claims are fake regardless of what a statistical model says;
// matching one skips classifier inference entirely and produces a
// deterministic, explainable override.
type Gate struct {
	phrases []string
}

// NewGate creates a gate over an ordered phrase list. Order matters:
// Check reports the first match in list order.
func NewGate(phrases []string) *Gate {
	return &Gate{phrases: phrases}
}

// Check scans the raw text for absurd phrases. It returns the first
// matching phrase in list order, or ok=false when nothing matched.
func (g *Gate) Check(rawText string) (phrase string, ok bool) {
	for _, p := range g.phrases {
		if p != "" && strings.Contains(rawText, p) {
			return p, true
		}
	}
	return "", false
}
