package calibrate

import (
	"math"
	"testing"

	"github.com/verinews/verinews/internal/model"
)

func defaultCalibrator() *Calibrator {
	cfg := model.DefaultConfig()
	return New(cfg.Detector.AuthorityMarkers, cfg.Calibration.ReliableBoost, cfg.Calibration.RealCeiling)
}

func TestCalibrator_Calibrate_OutputSumsToOne(t *testing.T) {
	c := defaultCalibrator()

	pairs := []model.ProbabilityPair{
		{Real: 0.3, Fake: 0.7},
		{Real: 0.9, Fake: 0.1},
		{Real: 0.5, Fake: 0.5},
		{Real: 0.2, Fake: 0.9}, // not pre-normalized
	}
	texts := []string{"普通文本", "新华社报道", "官方声明。", "无标记文本"}

	for _, pair := range pairs {
		for _, text := range texts {
			out := c.Calibrate(pair, text)
			sum := out.Real + out.Fake
			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("Calibrate(%+v, %q): sum = %v, want 1.0", pair, text, sum)
			}
		}
	}
}

func TestCalibrator_Calibrate_BoostRaisesRealProbability(t *testing.T) {
	c := defaultCalibrator()

	pair := model.ProbabilityPair{Real: 0.4, Fake: 0.6}

	without := c.Calibrate(pair, "普通新闻文本")
	with := c.Calibrate(pair, "新华社报道的新闻文本")

	if with.Real <= without.Real {
		t.Errorf("Expected boost to raise real probability: %v vs %v", with.Real, without.Real)
	}
}

func TestCalibrator_Calibrate_BoostValue(t *testing.T) {
	c := defaultCalibrator()

	// real 0.4 * 1.7 = 0.68, under the 0.97 ceiling
	out := c.Calibrate(model.ProbabilityPair{Real: 0.4, Fake: 0.6}, "官方消息")

	wantReal := 0.68 / (0.68 + 0.6)
	if math.Abs(out.Real-wantReal) > 1e-9 {
		t.Errorf("Expected boosted real %v, got %v", wantReal, out.Real)
	}
}

func TestCalibrator_Calibrate_CeilingCapsBoost(t *testing.T) {
	c := defaultCalibrator()

	// real 0.8 * 1.7 = 1.36, capped at 0.97
	out := c.Calibrate(model.ProbabilityPair{Real: 0.8, Fake: 0.2}, "新华社电")

	wantReal := 0.97 / (0.97 + 0.2)
	if math.Abs(out.Real-wantReal) > 1e-9 {
		t.Errorf("Expected ceiling-capped real %v, got %v", wantReal, out.Real)
	}
}

func TestCalibrator_Calibrate_CapNeverLowersHighInput(t *testing.T) {
	c := defaultCalibrator()

	// Input real already above the ceiling: the cap must not pull it down
	pair := model.ProbabilityPair{Real: 0.99, Fake: 0.01}

	with := c.Calibrate(pair, "官方确认")
	without := c.Calibrate(pair, "无标记")

	if with.Real < without.Real {
		t.Errorf("Boost lowered an already-high probability: %v < %v", with.Real, without.Real)
	}
}

func TestCalibrator_Calibrate_RenormalizesWithoutMarker(t *testing.T) {
	c := defaultCalibrator()

	// Raw pair does not sum to 1; renormalization runs regardless
	out := c.Calibrate(model.ProbabilityPair{Real: 0.2, Fake: 0.6}, "普通文本")

	if math.Abs(out.Real-0.25) > 1e-9 || math.Abs(out.Fake-0.75) > 1e-9 {
		t.Errorf("Expected (0.25, 0.75), got (%v, %v)", out.Real, out.Fake)
	}
}

func TestCalibrator_Calibrate_ClampsNegativeInput(t *testing.T) {
	c := defaultCalibrator()

	out := c.Calibrate(model.ProbabilityPair{Real: -0.1, Fake: 0.5}, "普通文本")

	if out.Real != 0 || out.Fake != 1 {
		t.Errorf("Expected (0, 1) for clamped negative real, got (%v, %v)", out.Real, out.Fake)
	}
}

func TestCalibrator_Calibrate_ZeroSumFallsBackToNeutral(t *testing.T) {
	c := defaultCalibrator()

	out := c.Calibrate(model.ProbabilityPair{Real: 0, Fake: 0}, "普通文本")

	if out.Real != 0.5 || out.Fake != 0.5 {
		t.Errorf("Expected neutral (0.5, 0.5) for zero-sum input, got (%v, %v)", out.Real, out.Fake)
	}
}
