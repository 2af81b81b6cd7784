// Package cache stores analysis results keyed by a hash of their inputs.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

// KeyPrefix namespaces every key written to Redis.
const KeyPrefix = "analysis:"

// Cache is a result cache. Get reports a miss with ok == false and a nil error.
type Cache interface {
	Get(ctx context.Context, key string) (*types.AnalysisResult, bool, error)
	Set(ctx context.Context, key string, result *types.AnalysisResult, ttl time.Duration) error
}

// Key derives the cache key of one résumé/job pair.
func Key(resumeText, jobText string) string {
	return ingestion.ContentHash(resumeText, jobText)
}

// RedisCache stores results as JSON strings in Redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache wraps an existing client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Dial connects to Redis and checks the connection with PING.
func Dial(ctx context.Context, addr, password string, db int) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return NewRedisCache(client), nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (*types.AnalysisResult, bool, error) {
	val, err := c.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(val, &result); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached result %s: %w", key, err)
	}
	return &result, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, result *types.AnalysisResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	if err := c.client.Set(ctx, KeyPrefix+key, data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Close closes the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

// MemoryCache is an in-process Cache. Values are copied through JSON so that
// callers never share a result.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string]memoryEntry), now: time.Now}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*types.AnalysisResult, bool, error) {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && !entry.expires.IsZero() && !c.now().Before(entry.expires) {
		delete(c.entries, key)
		ok = false
	}
	c.mu.Unlock()
	if !ok {
		return nil, false, nil
	}

	var result types.AnalysisResult
	if err := json.Unmarshal(entry.data, &result); err != nil {
		return nil, false, err
	}
	return &result, true, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, result *types.AnalysisResult, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	entry := memoryEntry{data: data}
	if ttl > 0 {
		entry.expires = c.now().Add(ttl)
	}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
	return nil
}

// Len returns the number of stored entries, expired ones included.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
