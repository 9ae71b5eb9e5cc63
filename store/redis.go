// Package store persists trend state in Redis: a seen-set for raw trend
// strings, a sorted set of scores keyed by normalized trend key, and a
// small metadata hash per trend.
package store

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vanzic/Project-Rivo/types"
)

const (
	seenKey   = "trends:seen"
	scoresKey = "trends:scores"

	// Trends untouched for longer than this window drop out of rankings.
	recencyWindow = 48 * time.Hour

	maxSampleTitles = 5
	maxSources      = 10
)

// Config configures the Redis connection
type Config struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
}

// RedisStore implements the trend store on a plain Redis instance
type RedisStore struct {
	client *redis.Client
}

// NewFromEnv creates a RedisStore using environment variables
// REDIS_ADDR, REDIS_PASS, REDIS_DB (optional)
func NewFromEnv() (*RedisStore, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	db := 0
	if d := os.Getenv("REDIS_DB"); d != "" {
		if v, err := strconv.Atoi(d); err == nil {
			db = v
		}
	}
	return New(Config{Addr: addr, Password: os.Getenv("REDIS_PASS"), DB: db})
}

// New creates a RedisStore and verifies connectivity
func New(cfg Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	return &RedisStore{client: client}, nil
}

// Close closes the underlying Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// MarkSeen records a raw trend string and reports whether it was new.
func (s *RedisStore) MarkSeen(ctx context.Context, trendID string) (bool, error) {
	added, err := s.client.SAdd(ctx, seenKey, trendID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to mark trend seen: %w", err)
	}
	return added == 1, nil
}

// IncrementScore bumps the score for a normalized trend key and updates
// its metadata hash plus source and title sets.
func (s *RedisStore) IncrementScore(ctx context.Context, trendKey, source, title string) error {
	now := time.Now().Format(time.RFC3339)
	meta := metaKey(trendKey)

	pipe := s.client.TxPipeline()
	pipe.ZIncrBy(ctx, scoresKey, 1, trendKey)
	pipe.HSetNX(ctx, meta, "first_seen", now)
	pipe.HSet(ctx, meta, "last_seen", now)
	if source != "" {
		pipe.SAdd(ctx, sourcesKey(trendKey), source)
	}
	if title != "" {
		pipe.SAdd(ctx, titlesKey(trendKey), title)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment score for %s: %w", trendKey, err)
	}
	return nil
}

// GetScore returns the current score for a trend key, 0 if unknown.
func (s *RedisStore) GetScore(ctx context.Context, trendKey string) (int, error) {
	score, err := s.client.ZScore(ctx, scoresKey, trendKey).Result()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get score for %s: %w", trendKey, err)
	}
	return int(score), nil
}

// TopTrends returns the highest scoring trends updated within the recency
// window, best first.
func (s *RedisStore) TopTrends(ctx context.Context, limit int) ([]types.TrendOutput, error) {
	// Over-fetch so stale entries filtered below still leave `limit` rows.
	entries, err := s.client.ZRevRangeWithScores(ctx, scoresKey, 0, int64(limit*2)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to rank trends: %w", err)
	}

	cutoff := time.Now().Add(-recencyWindow)
	results := make([]types.TrendOutput, 0, limit)

	for _, entry := range entries {
		if len(results) >= limit {
			break
		}
		trendKey, ok := entry.Member.(string)
		if !ok {
			continue
		}

		meta, err := s.client.HGetAll(ctx, metaKey(trendKey)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to load metadata for %s: %w", trendKey, err)
		}

		lastSeen := meta["last_seen"]
		if ts, err := time.Parse(time.RFC3339, lastSeen); err == nil && ts.Before(cutoff) {
			continue
		}

		sources, err := s.client.SMembers(ctx, sourcesKey(trendKey)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to load sources for %s: %w", trendKey, err)
		}
		titles, err := s.client.SMembers(ctx, titlesKey(trendKey)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to load titles for %s: %w", trendKey, err)
		}
		if len(sources) > maxSources {
			sources = sources[:maxSources]
		}
		if len(titles) > maxSampleTitles {
			titles = titles[:maxSampleTitles]
		}

		results = append(results, types.TrendOutput{
			TrendKey:     trendKey,
			Score:        int(entry.Score),
			Sources:      sources,
			SampleTitles: titles,
			FirstSeen:    meta["first_seen"],
			LastSeen:     lastSeen,
		})
	}

	return results, nil
}

func metaKey(trendKey string) string    { return "trend:" + types.SafeKey(trendKey) }
func sourcesKey(trendKey string) string { return metaKey(trendKey) + ":sources" }
func titlesKey(trendKey string) string  { return metaKey(trendKey) + ":titles" }
