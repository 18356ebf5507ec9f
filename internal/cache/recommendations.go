// Package cache stores generated recommendation lists in Redis so repeated
// dashboard visits do not re-invoke the plan generator.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/yatra/travel-planner/internal/types"
)

// Key derives the cache key for a recommendation list, scoped to the user and
// requested trip duration. Entries are never invalidated except by an
// explicit user-triggered refresh, which overwrites in place.
func Key(userID string, tripDurationDays int) string {
	return fmt.Sprintf("ai_recs_%s_%d", userID, tripDurationDays)
}

// RecommendationCache wraps a Redis client with the ai_recs_* key contract.
type RecommendationCache struct {
	rdb *redis.Client
}

// New wraps an existing Redis client.
func New(rdb *redis.Client) *RecommendationCache {
	return &RecommendationCache{rdb: rdb}
}

// NewFromURL connects to Redis using a redis:// URL and verifies the
// connection before returning.
func NewFromURL(ctx context.Context, redisURL string) (*RecommendationCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return &RecommendationCache{rdb: rdb}, nil
}

// Get returns the cached list for (userID, tripDurationDays), with ok=false
// on a miss.
func (c *RecommendationCache) Get(ctx context.Context, userID string, tripDurationDays int) ([]types.Recommendation, bool, error) {
	val, err := c.rdb.Get(ctx, Key(userID, tripDurationDays)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read recommendation cache: %w", err)
	}

	var recs []types.Recommendation
	if err := json.Unmarshal([]byte(val), &recs); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached recommendations: %w", err)
	}
	return recs, true, nil
}

// Put overwrites the cache entry unconditionally. Entries carry no TTL;
// the last writer wins. Two overlapping refreshes are not fenced.
func (c *RecommendationCache) Put(ctx context.Context, userID string, tripDurationDays int, recs []types.Recommendation) error {
	data, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("failed to encode recommendations: %w", err)
	}
	if err := c.rdb.Set(ctx, Key(userID, tripDurationDays), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write recommendation cache: %w", err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (c *RecommendationCache) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}
