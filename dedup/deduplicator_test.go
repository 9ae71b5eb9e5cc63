package dedup

import (
	"testing"
)

// stubEmbeddings maps exact texts to canned vectors.
type stubEmbeddings struct {
	vectors map[string][]float32
}

func (s *stubEmbeddings) ModelName() string { return "stub" }

func (s *stubEmbeddings) EmbedTexts(texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		vec, ok := s.vectors[t]
		if !ok {
			vec = []float32{0, 0, 1}
		}
		out[i] = vec
	}
	return out, nil
}

func newStub() *stubEmbeddings {
	return &stubEmbeddings{vectors: map[string][]float32{
		"python 4 released":   {1, 0, 0},
		"python 40 released":  {0.99, 0.01, 0},
		"coffee prices spike": {0, 1, 0},
	}}
}

func TestProcessDetectsSemanticDuplicate(t *testing.T) {
	d := New(Config{Embeddings: newStub()})

	result, err := d.Process("python 4 released")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result.IsDuplicate {
		t.Fatal("first trend flagged as duplicate")
	}

	result, err = d.Process("python 40 released")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if !result.IsDuplicate {
		t.Fatal("near-identical trend not flagged as duplicate")
	}
	if result.MatchingKey != "python 4 released" {
		t.Errorf("matching key %q", result.MatchingKey)
	}
	if result.SimilarityScore < SimilarityThreshold {
		t.Errorf("similarity %.4f below threshold", result.SimilarityScore)
	}
	// Duplicate must not be re-indexed.
	if d.Count() != 1 {
		t.Errorf("index size %d after duplicate, want 1", d.Count())
	}
}

func TestProcessKeepsDistinctTrends(t *testing.T) {
	d := New(Config{Embeddings: newStub()})

	if _, err := d.Process("python 4 released"); err != nil {
		t.Fatalf("Process: %v", err)
	}
	result, err := d.Process("coffee prices spike")
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if result.IsDuplicate {
		t.Error("orthogonal trend flagged as duplicate")
	}
	if d.Count() != 2 {
		t.Errorf("index size %d, want 2", d.Count())
	}
}

func TestCheckWithoutEmbeddingsNeverDuplicates(t *testing.T) {
	d := New(Config{})

	for _, key := range []string{"a", "a", "a"} {
		result, err := d.Check(key)
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if result.IsDuplicate {
			t.Error("duplicate reported with all layers disabled")
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	if got := cosineSimilarity([]float32{1, 0}, []float32{1, 0}); got < 0.999 {
		t.Errorf("identical vectors similarity %.4f", got)
	}
	if got := cosineSimilarity([]float32{1, 0}, []float32{0, 1}); got != 0 {
		t.Errorf("orthogonal vectors similarity %.4f", got)
	}
	if got := cosineSimilarity([]float32{1, 0}, []float32{1}); got != 0 {
		t.Errorf("mismatched lengths similarity %.4f, want 0", got)
	}
}

func TestHashTrendKeyStable(t *testing.T) {
	a := HashTrendKey("some trend")
	b := HashTrendKey("some trend")
	if a != b {
		t.Error("hash not stable across calls")
	}
	if len(a) != 64 {
		t.Errorf("hash length %d, want 64 hex chars", len(a))
	}
}
