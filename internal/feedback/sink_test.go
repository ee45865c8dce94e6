package feedback

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/verinews/verinews/internal/model"
)

func TestJSONLSink_Save(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "feedback.jsonl")
	sink := NewJSONLSink(path)

	rec := model.NewFeedbackRecord("这条新闻被误判了", model.LabelFake, "actually fabricated")
	if err := sink.Save(rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Parent directory was created and the record is valid JSON
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read feedback file: %v", err)
	}

	var got model.FeedbackRecord
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("stored record is not valid JSON: %v", err)
	}
	if got.Text != "这条新闻被误判了" {
		t.Errorf("expected text preserved, got %q", got.Text)
	}
	if got.ReportedLabel != model.LabelFake {
		t.Errorf("expected label fake, got %v", got.ReportedLabel)
	}
	if got.Comment != "actually fabricated" {
		t.Errorf("expected comment preserved, got %q", got.Comment)
	}
}

func TestJSONLSink_AppendsOneLinePerRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback.jsonl")
	sink := NewJSONLSink(path)

	for i := 0; i < 3; i++ {
		rec := model.NewFeedbackRecord("文本", model.LabelReal, "")
		if err := sink.Save(rec); err != nil {
			t.Fatalf("Save %d failed: %v", i, err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open feedback file: %v", err)
	}
	defer func() { _ = f.Close() }()

	lines := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var rec model.FeedbackRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Errorf("line %d is not valid JSON: %v", lines, err)
		}
		lines++
	}

	if lines != 3 {
		t.Errorf("expected 3 lines, got %d", lines)
	}
}
