// Package dedup decides whether an incoming trend is genuinely new.
// Two layers: a Redis bloom filter catches exact repeats cheaply, then
// embedding similarity catches rewordings of the same topic.
package dedup

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// BloomConfig configures RedisBloom connection and key
type BloomConfig struct {
	Addr     string // e.g. localhost:6379
	Password string
	DB       int
	Key      string // redis key for bloom filter
	TTL      time.Duration
	// Capacity sets the initial BF.RESERVE capacity (number of items)
	Capacity int
	// ErrorRate sets the desired false positive probability (e.g. 0.001)
	ErrorRate float64
}

// RedisBloom is a minimal Redis-backed Bloom wrapper using RedisBloom commands
type RedisBloom struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisBloomFromEnv creates a RedisBloom client using environment variables
// REDIS_ADDR, REDIS_PASS, BLOOM_KEY (optional), BLOOM_TTL_SECONDS (optional)
func NewRedisBloomFromEnv() (*RedisBloom, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	key := os.Getenv("BLOOM_KEY")
	if key == "" {
		key = "trends:bloom"
	}
	ttl := 24 * time.Hour
	if t := os.Getenv("BLOOM_TTL_SECONDS"); t != "" {
		if secs, err := strconv.Atoi(t); err == nil && secs > 0 {
			ttl = time.Duration(secs) * time.Second
		}
	}
	capacity := 100000
	if c := os.Getenv("BLOOM_CAPACITY"); c != "" {
		if v, err := strconv.Atoi(c); err == nil && v > 0 {
			capacity = v
		}
	}
	errorRate := 0.001
	if e := os.Getenv("BLOOM_ERROR_RATE"); e != "" {
		if v, err := strconv.ParseFloat(e, 64); err == nil && v > 0 {
			errorRate = v
		}
	}

	return NewRedisBloom(BloomConfig{
		Addr:      addr,
		Password:  os.Getenv("REDIS_PASS"),
		Key:       key,
		TTL:       ttl,
		Capacity:  capacity,
		ErrorRate: errorRate,
	})
}

// NewRedisBloom creates a RedisBloom wrapper and verifies connectivity
func NewRedisBloom(cfg BloomConfig) (*RedisBloom, error) {
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

	rb := &RedisBloom{client: client, key: cfg.Key, ttl: cfg.TTL}

	// If the key does not exist, reserve a filter with the configured
	// capacity and error rate. BF.ADD auto-creates on failure, so a
	// failed reserve is not fatal (e.g. module configured differently).
	exists, err := client.Exists(ctx, cfg.Key).Result()
	if err == nil && exists == 0 {
		_ = client.Do(ctx, "BF.RESERVE", cfg.Key, fmt.Sprintf("%f", cfg.ErrorRate), cfg.Capacity).Err()
	}

	return rb, nil
}

// Close closes the underlying Redis client
func (r *RedisBloom) Close() error {
	return r.client.Close()
}

// Exists checks if the hashed value is present in the bloom filter.
func (r *RedisBloom) Exists(hash string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := r.client.Do(ctx, "BF.EXISTS", r.key, hash).Result()
	if err != nil {
		return false, err
	}

	switch v := res.(type) {
	case int64:
		return v == 1, nil
	case string:
		return v == "1", nil
	default:
		return false, fmt.Errorf("unexpected BF.EXISTS response type %T: %v", res, res)
	}
}

// Add inserts the hashed value into the bloom filter and refreshes the
// key TTL so the filter stays alive for `ttl` after the latest insert.
func (r *RedisBloom) Add(hash string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := r.client.Do(ctx, "BF.ADD", r.key, hash).Err(); err != nil {
		return err
	}
	return r.client.Expire(ctx, r.key, r.ttl).Err()
}

// HashTrendKey returns a stable SHA-256 hex hash for a normalized trend key.
func HashTrendKey(trendKey string) string {
	h := sha256.Sum256([]byte(trendKey))
	return hex.EncodeToString(h[:])
}
