package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultReportTTL = time.Minute

// ReportCache stores serialised report payloads with a short TTL so that
// repeated dashboard polls do not hammer the aggregate queries.
// Key format: reports:<name>[:<qualifier>]
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache wraps the given Redis client. A non-positive ttl falls back
// to one minute.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	if ttl <= 0 {
		ttl = defaultReportTTL
	}
	return &ReportCache{client: client, ttl: ttl}
}

// Get returns the cached payload for key, or (nil, nil) on a miss.
func (c *ReportCache) Get(ctx context.Context, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("report cache get: %w", err)
	}
	return payload, nil
}

// Set stores payload under key, expiring after the configured TTL.
func (c *ReportCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("report cache set: %w", err)
	}
	return nil
}
