package model

import "time"

// feedbackTextLimit caps how much of the submitted text is kept in a
// feedback record (in runes, so CJK text is not cut mid-character).
const feedbackTextLimit = 500

// FeedbackRecord is a user report of a misclassification. The core only
// constructs the record; persistence belongs to a FeedbackSink.
type FeedbackRecord struct {
	Timestamp     time.Time `json:"timestamp"`
	Text          string    `json:"text"`
	ReportedLabel Label     `json:"reported_label"`
	Comment       string    `json:"comment,omitempty"`
}

// NewFeedbackRecord builds a feedback record, truncating the text to the
// first 500 runes
func NewFeedbackRecord(text string, reported Label, comment string) FeedbackRecord {
	runes := []rune(text)
	if len(runes) > feedbackTextLimit {
		text = string(runes[:feedbackTextLimit])
	}

	return FeedbackRecord{
		Timestamp:     time.Now().UTC(),
		Text:          text,
		ReportedLabel: reported,
		Comment:       comment,
	}
}
