package dedup

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync"
	"time"
)

const (
	SimilarityThreshold float32       = 0.95
	TTL                 time.Duration = 24 * time.Hour
)

// Result contains the outcome of a deduplication check
type Result struct {
	IsDuplicate     bool      `json:"is_duplicate"`
	MatchingKey     string    `json:"matching_key,omitempty"`
	SimilarityScore float32   `json:"similarity_score,omitempty"`
	CheckedAt       time.Time `json:"checked_at"`
}

type indexEntry struct {
	key     string
	vector  []float32
	addedAt time.Time
}

// Deduplicator decides whether a trend key has been seen before, either
// exactly (bloom filter) or as a semantic rewording (embeddings over an
// in-memory vector index).
type Deduplicator struct {
	embeddings EmbeddingsProvider
	bloom      *RedisBloom
	threshold  float32

	mu      sync.Mutex
	entries []indexEntry
}

// Config holds deduplicator settings
type Config struct {
	Embeddings          EmbeddingsProvider // nil disables semantic checks
	Bloom               *RedisBloom        // nil disables exact-match checks
	SimilarityThreshold float32            // Default: 0.95 (95%)
}

func New(cfg Config) *Deduplicator {
	threshold := cfg.SimilarityThreshold
	if threshold == 0 {
		threshold = SimilarityThreshold
	}
	return &Deduplicator{
		embeddings: cfg.Embeddings,
		bloom:      cfg.Bloom,
		threshold:  threshold,
	}
}

// NewFromEnv assembles a deduplicator from the environment: the bloom filter
// from the Redis settings, the embeddings provider from COHERE_API_KEY. The
// bloom side may be dropped if Redis is unreachable as long as embeddings are
// configured; with neither backend available an error is returned so callers
// can log it and poll without duplicate screening.
func NewFromEnv() (*Deduplicator, error) {
	embeddings := NewDefaultEmbeddingsProvider(os.Getenv("COHERE_EMBED_MODEL"))

	bloom, err := NewRedisBloomFromEnv()
	if err != nil {
		if embeddings == nil {
			return nil, fmt.Errorf("no dedup backend available: %w", err)
		}
		log.Printf("Warning: bloom filter unavailable, running semantic checks only: %v", err)
		bloom = nil
	}
	return New(Config{Embeddings: embeddings, Bloom: bloom}), nil
}

// Check reports whether the trend key is a duplicate of one seen within
// the TTL window. On bloom failures the semantic check still runs.
func (d *Deduplicator) Check(trendKey string) (*Result, error) {
	checkTime := time.Now()

	if d.bloom != nil {
		exists, err := d.bloom.Exists(HashTrendKey(trendKey))
		if err != nil {
			log.Printf("Warning: bloom check failed: %v", err)
		} else if exists {
			return &Result{IsDuplicate: true, CheckedAt: checkTime}, nil
		}
	}

	if d.embeddings == nil {
		return &Result{IsDuplicate: false, CheckedAt: checkTime}, nil
	}

	vectors, err := d.embeddings.EmbedTexts([]string{trendKey})
	if err != nil {
		return nil, fmt.Errorf("failed to embed trend key: %w", err)
	}
	query := vectors[0]

	d.mu.Lock()
	defer d.mu.Unlock()
	d.evictStaleLocked(checkTime)

	var best *Result
	var bestSimilarity float32
	for _, entry := range d.entries {
		similarity := cosineSimilarity(query, entry.vector)
		if similarity < d.threshold || similarity <= bestSimilarity {
			continue
		}
		bestSimilarity = similarity
		best = &Result{
			IsDuplicate:     true,
			MatchingKey:     entry.key,
			SimilarityScore: similarity,
			CheckedAt:       checkTime,
		}
	}

	if best != nil {
		log.Printf("Found duplicate trend: %q matches %q with %.2f%% similarity",
			trendKey, best.MatchingKey, best.SimilarityScore*100)
		return best, nil
	}
	return &Result{IsDuplicate: false, CheckedAt: checkTime}, nil
}

// Add records a trend key so future checks can match against it.
func (d *Deduplicator) Add(trendKey string) error {
	if d.embeddings != nil {
		vectors, err := d.embeddings.EmbedTexts([]string{trendKey})
		if err != nil {
			return fmt.Errorf("failed to embed trend key: %w", err)
		}
		d.mu.Lock()
		d.entries = append(d.entries, indexEntry{
			key:     trendKey,
			vector:  vectors[0],
			addedAt: time.Now(),
		})
		d.mu.Unlock()
	}

	if d.bloom != nil {
		if err := d.bloom.Add(HashTrendKey(trendKey)); err != nil {
			log.Printf("Warning: failed to add trend to bloom filter: %v", err)
		}
	}
	return nil
}

// Process performs both duplicate check and addition if not duplicate
func (d *Deduplicator) Process(trendKey string) (*Result, error) {
	result, err := d.Check(trendKey)
	if err != nil {
		return nil, err
	}
	if !result.IsDuplicate {
		if err := d.Add(trendKey); err != nil {
			return nil, fmt.Errorf("failed to add new trend: %w", err)
		}
	}
	return result, nil
}

// Count returns the number of indexed trend keys.
func (d *Deduplicator) Count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

// Close releases the bloom filter connection.
func (d *Deduplicator) Close() error {
	if d.bloom != nil {
		return d.bloom.Close()
	}
	return nil
}

func (d *Deduplicator) evictStaleLocked(now time.Time) {
	cutoff := now.Add(-TTL)
	kept := d.entries[:0]
	for _, entry := range d.entries {
		if entry.addedAt.After(cutoff) {
			kept = append(kept, entry)
		}
	}
	d.entries = kept
}

func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
