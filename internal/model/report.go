package model

import "time"

// Label is the classification outcome for a piece of news text
type Label string

const (
	LabelReal Label = "real"
	LabelFake Label = "fake"
)

// ProbabilityPair is a calibrated (real, fake) probability pair.
// Invariant: both values are in [0,1] and sum to 1.0; the calibrator
// renormalizes explicitly rather than trusting the classifier output.
type ProbabilityPair struct {
	Real float64 `json:"real"`
	Fake float64 `json:"fake"`
}

// Verdict is the terminal result of one classification call.
// Reason is populated only when the absurdity gate short-circuited
// the classifier; it names the matched phrase.
type Verdict struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"`
	Reason     string  `json:"reason,omitempty"`
}

// Report is the complete result of classifying one text
type Report struct {
	SourceURL string     `json:"source_url,omitempty"` // scan mode only
	CheckedAt time.Time  `json:"checked_at"`
	FetchMeta *FetchMeta `json:"fetch_meta,omitempty"` // scan mode only

	Verdict       Verdict           `json:"verdict"`
	Probabilities ProbabilityPair   `json:"probabilities"`
	Features      HeuristicFeatures `json:"features"`
	Degraded      bool              `json:"degraded,omitempty"` // vectorizer failed, zero vector used

	Signals []Signal `json:"signals,omitempty"`

	LLM *LLMAnalysis `json:"llm,omitempty"` // optional, never affects the verdict
}

// FetchMeta contains HTTP metadata from fetching the article
type FetchMeta struct {
	StatusCode   int               `json:"status_code"`
	ContentType  string            `json:"content_type,omitempty"`
	LastModified string            `json:"last_modified,omitempty"`
	ETag         string            `json:"etag,omitempty"`
	Headers      map[string]string `json:"headers,omitempty"`
}

// Signal is a diagnostic observation attached to a report, with
// transparent data explaining where it came from
type Signal struct {
	Type        SignalType             `json:"type"`
	Severity    SignalSeverity         `json:"severity"`
	Description string                 `json:"description"`
	Data        map[string]interface{} `json:"data,omitempty"`
}

// SignalType classifies the diagnostic signal
type SignalType string

const (
	SignalAbsurdOverride      SignalType = "absurd_override"      // gate short-circuited the classifier
	SignalAuthoritySource     SignalType = "authority_source"     // authority marker found in text
	SignalSensationalLanguage SignalType = "sensational_language" // urgency or hyperbole markers found
	SignalDegradedFeatures    SignalType = "degraded_features"    // zero vector substituted for vectorizer output
)

// SignalSeverity indicates the importance of the signal
type SignalSeverity string

const (
	SeverityInfo     SignalSeverity = "info"
	SeverityWarning  SignalSeverity = "warning"
	SeverityCritical SignalSeverity = "critical"
)

// LLMAnalysis contains the optional LLM-generated commentary.
// CRITICAL: generated after the verdict, never feeds back into it.
type LLMAnalysis struct {
	Enabled    bool   `json:"enabled"`
	Provider   string `json:"provider,omitempty"`
	Model      string `json:"model,omitempty"`
	AnalysisMD string `json:"analysis_md,omitempty"`
}
