package normalize

import (
	"strings"
	"testing"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()

	n, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return n
}

func TestNormalizer_EmptyInput(t *testing.T) {
	n := newTestNormalizer(t)

	if got := n.Normalize(""); got != "" {
		t.Errorf("Expected empty output for empty input, got %q", got)
	}
}

func TestNormalizer_PunctuationOnly(t *testing.T) {
	n := newTestNormalizer(t)

	// Nothing survives cleaning, so the result is empty
	if got := n.Normalize("！？。，、…——【】"); got != "" {
		t.Errorf("Expected empty output for punctuation-only input, got %q", got)
	}
}

func TestNormalizer_StripsPunctuationAndLowercases(t *testing.T) {
	n := newTestNormalizer(t)

	got := n.Normalize("Breaking NEWS!!! 震惊。")

	if strings.ContainsAny(got, "!。") {
		t.Errorf("Expected punctuation stripped, got %q", got)
	}
	if got != strings.ToLower(got) {
		t.Errorf("Expected lowercased output, got %q", got)
	}
	if !strings.Contains(got, "breaking") || !strings.Contains(got, "news") {
		t.Errorf("Expected Latin words preserved, got %q", got)
	}
	if !strings.Contains(got, "震惊") {
		t.Errorf("Expected CJK content preserved, got %q", got)
	}
}

func TestNormalizer_SegmentsChineseText(t *testing.T) {
	n := newTestNormalizer(t)

	got := n.Normalize("新华社报道经济持续增长")

	// Segmentation splits the run of ideographs into multiple tokens
	tokens := strings.Fields(got)
	if len(tokens) < 2 {
		t.Errorf("Expected multiple tokens from segmentation, got %q", got)
	}

	// The joined tokens contain exactly the original characters
	if strings.ReplaceAll(got, " ", "") != "新华社报道经济持续增长" {
		t.Errorf("Expected segmentation to preserve characters, got %q", got)
	}
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := newTestNormalizer(t)

	inputs := []string{
		"紧急通知：月球即将爆炸！",
		"Mixed 中英文 content 123",
		"新华社消息。经济稳定增长。",
	}

	for _, input := range inputs {
		once := n.Normalize(input)
		twice := n.Normalize(once)

		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalizer_CollapsesWhitespace(t *testing.T) {
	n := newTestNormalizer(t)

	got := n.Normalize("hello    world\t\n  test")

	if strings.Contains(got, "  ") {
		t.Errorf("Expected collapsed whitespace, got %q", got)
	}
}

func TestClean_KeepsDigits(t *testing.T) {
	got := clean("GDP增长7.5%！")

	if !strings.Contains(got, "7") || !strings.Contains(got, "5") {
		t.Errorf("Expected digits preserved, got %q", got)
	}
	if strings.ContainsAny(got, ".%！") {
		t.Errorf("Expected symbols stripped, got %q", got)
	}
}
