// Package calibrate adjusts raw classifier probabilities using trust
// signals from the raw text, then renormalizes to a valid pair.
package calibrate

import (
	"math"
	"strings"

	"github.com/verinews/verinews/internal/model"
)

// Calibrator boosts the real-news probability when the text cites an
// authority source. The boost is capped below certainty and never
// lowers the probability.
type Calibrator struct {
	markers []string
	boost   float64
	ceiling float64
}

// New creates a calibrator. markers are the authority-source literals;
// boost is the multiplicative factor (e.g. 1.7); ceiling caps the
// boosted value (e.g. 0.97) to avoid saturating to certainty.
func New(markers []string, boost, ceiling float64) *Calibrator {
	return &Calibrator{
		markers: markers,
		boost:   boost,
		ceiling: ceiling,
	}
}

// Calibrate applies the authority boost and renormalizes. The
// renormalization runs even when no boost applied: the classifier
// output is not assumed pre-normalized. Negative inputs are clamped to
// zero; a degenerate all-zero pair renormalizes to (0.5, 0.5).
func (c *Calibrator) Calibrate(pair model.ProbabilityPair, rawText string) model.ProbabilityPair {
	real := math.Max(pair.Real, 0)
	fake := math.Max(pair.Fake, 0)

	if c.hasAuthorityMarker(rawText) {
		boosted := math.Min(real*c.boost, c.ceiling)
		// Monotonic: the boost only ever raises the value. The cap can
		// fall below an already-high input; keep the input then.
		if boosted > real {
			real = boosted
		}
	}

	sum := real + fake
	if sum == 0 {
		return model.ProbabilityPair{Real: 0.5, Fake: 0.5}
	}

	return model.ProbabilityPair{
		Real: real / sum,
		Fake: fake / sum,
	}
}

func (c *Calibrator) hasAuthorityMarker(text string) bool {
	for _, m := range c.markers {
		if m != "" && strings.Contains(text, m) {
			return true
		}
	}
	return false
}
