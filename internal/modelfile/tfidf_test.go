package modelfile

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func TestLoadTFIDF_Valid(t *testing.T) {
	path := writeArtifact(t, "vec.json", `{
		"vocabulary": {"经济": 0, "增长": 1, "新闻": 2},
		"idf": [1.2, 2.5, 0.8],
		"dim": 3
	}`)

	v, err := LoadTFIDF(path)
	if err != nil {
		t.Fatalf("LoadTFIDF failed: %v", err)
	}
	if v.Dim() != 3 {
		t.Errorf("Expected dim 3, got %d", v.Dim())
	}
}

func TestLoadTFIDF_MissingFile(t *testing.T) {
	if _, err := LoadTFIDF(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Expected error for missing artifact file")
	}
}

func TestLoadTFIDF_InvalidDim(t *testing.T) {
	path := writeArtifact(t, "vec.json", `{"vocabulary": {}, "idf": [], "dim": 0}`)

	if _, err := LoadTFIDF(path); err == nil {
		t.Error("Expected error for zero dim")
	}
}

func TestLoadTFIDF_IDFLengthMismatch(t *testing.T) {
	path := writeArtifact(t, "vec.json", `{"vocabulary": {}, "idf": [1.0], "dim": 3}`)

	if _, err := LoadTFIDF(path); err == nil {
		t.Error("Expected error for idf length mismatch")
	}
}

func TestLoadTFIDF_VocabularyIndexOutOfRange(t *testing.T) {
	path := writeArtifact(t, "vec.json", `{
		"vocabulary": {"词": 5},
		"idf": [1.0, 1.0],
		"dim": 2
	}`)

	if _, err := LoadTFIDF(path); err == nil {
		t.Error("Expected error for out-of-range vocabulary index")
	}
}

func TestTFIDF_Transform(t *testing.T) {
	path := writeArtifact(t, "vec.json", `{
		"vocabulary": {"经济": 0, "增长": 1},
		"idf": [1.0, 2.0],
		"dim": 2
	}`)

	v, err := LoadTFIDF(path)
	if err != nil {
		t.Fatalf("LoadTFIDF failed: %v", err)
	}

	vec, err := v.Transform("经济 增长 未知词")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if len(vec) != 2 {
		t.Fatalf("Expected vector of length 2, got %d", len(vec))
	}

	// Raw weights (1.0, 2.0), L2-normalized
	norm := math.Sqrt(1.0 + 4.0)
	if math.Abs(vec[0]-1.0/norm) > 1e-9 || math.Abs(vec[1]-2.0/norm) > 1e-9 {
		t.Errorf("Expected normalized (%v, %v), got (%v, %v)", 1.0/norm, 2.0/norm, vec[0], vec[1])
	}
}

func TestTFIDF_Transform_OutOfVocabulary(t *testing.T) {
	path := writeArtifact(t, "vec.json", `{
		"vocabulary": {"经济": 0},
		"idf": [1.0],
		"dim": 1
	}`)

	v, err := LoadTFIDF(path)
	if err != nil {
		t.Fatalf("LoadTFIDF failed: %v", err)
	}

	vec, err := v.Transform("全部 未知 词汇")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}
	if vec[0] != 0 {
		t.Errorf("Expected zero vector for out-of-vocabulary text, got %v", vec)
	}
}

func TestTFIDF_Transform_RepeatedTokensAccumulate(t *testing.T) {
	path := writeArtifact(t, "vec.json", `{
		"vocabulary": {"a": 0, "b": 1},
		"idf": [1.0, 1.0],
		"dim": 2
	}`)

	v, err := LoadTFIDF(path)
	if err != nil {
		t.Fatalf("LoadTFIDF failed: %v", err)
	}

	vec, err := v.Transform("a a a b")
	if err != nil {
		t.Fatalf("Transform failed: %v", err)
	}

	// Term frequency matters: a (3 hits) outweighs b (1 hit)
	if vec[0] <= vec[1] {
		t.Errorf("Expected repeated token to carry more weight: %v vs %v", vec[0], vec[1])
	}
}
