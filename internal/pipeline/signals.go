package pipeline

import (
	"fmt"

	"github.com/verinews/verinews/internal/model"
)

// buildSignals derives the diagnostic signals attached to a report.
// gatePhrase is non-empty only when the absurdity gate fired.
func buildSignals(report *model.Report, gatePhrase string) []model.Signal {
	var signals []model.Signal

	if gatePhrase != "" {
		signals = append(signals, model.Signal{
			Type:        model.SignalAbsurdOverride,
			Severity:    model.SeverityCritical,
			Description: fmt.Sprintf("Physically impossible claim matched: %s", gatePhrase),
			Data: map[string]interface{}{
				"phrase":     gatePhrase,
				"confidence": 1.0,
				"rule":       "first matching phrase in configured list order",
			},
		})
	}

	if report.Features.Reliable == 1.0 {
		signals = append(signals, model.Signal{
			Type:        model.SignalAuthoritySource,
			Severity:    model.SeverityInfo,
			Description: "Text cites an authority source; real-probability boost applied during calibration",
			Data: map[string]interface{}{
				"real_probability": report.Probabilities.Real,
			},
		})
	}

	if report.Features.Urgent == 1.0 || report.Features.Exaggeration == 1.0 {
		signals = append(signals, model.Signal{
			Type:        model.SignalSensationalLanguage,
			Severity:    model.SeverityWarning,
			Description: "Urgency or hyperbole markers detected; common in fabricated stories",
			Data: map[string]interface{}{
				"urgent":       report.Features.Urgent == 1.0,
				"exaggeration": report.Features.Exaggeration == 1.0,
			},
		})
	}

	if report.Degraded {
		signals = append(signals, model.Signal{
			Type:        model.SignalDegradedFeatures,
			Severity:    model.SeverityWarning,
			Description: "Vectorizer failed; the classifier scored a neutral zero vector",
			Data: map[string]interface{}{
				"policy": "degrade-to-neutral-input",
			},
		})
	}

	return signals
}
