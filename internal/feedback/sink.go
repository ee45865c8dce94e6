// Package feedback persists user-reported misclassifications. The
// decision pipeline only constructs FeedbackRecord values; this package
// owns storage.
package feedback

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/verinews/verinews/internal/model"
)

// Sink accepts feedback records for persistence
type Sink interface {
	Save(rec model.FeedbackRecord) error
}

// JSONLSink appends one JSON record per line to a file
type JSONLSink struct {
	path string
}

// NewJSONLSink creates a sink writing to the given path. The parent
// directory is created on first save.
func NewJSONLSink(path string) *JSONLSink {
	return &JSONLSink{path: path}
}

// Save appends the record
func (s *JSONLSink) Save(rec model.FeedbackRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create feedback dir: %w", err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal feedback: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open feedback file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write feedback: %w", err)
	}

	return nil
}
