// Package cache fronts the upstream player-details endpoint with Redis so
// repeated card opens do not burn upstream quota. The cache is optional:
// a nil *PlayerDetailsCache is safe to call and always misses.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// PlayerDetailsCache stores opaque player-detail payloads keyed by player ID.
type PlayerDetailsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPlayerDetailsCache connects to Redis and verifies the connection.
func NewPlayerDetailsCache(redisURL string, ttl time.Duration) (*PlayerDetailsCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PlayerDetailsCache{client: client, ttl: ttl}, nil
}

// Close closes the Redis connection.
func (c *PlayerDetailsCache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}

// HealthCheck pings Redis to verify the connection.
func (c *PlayerDetailsCache) HealthCheck(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Get returns the cached payload for the player, if present.
func (c *PlayerDetailsCache) Get(ctx context.Context, playerID int) (json.RawMessage, bool) {
	if c == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, detailsKey(playerID)).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

// Set stores the payload for the player with the configured TTL.
func (c *PlayerDetailsCache) Set(ctx context.Context, playerID int, payload json.RawMessage) error {
	if c == nil {
		return nil
	}
	if len(payload) == 0 {
		return errors.New("empty payload")
	}
	return c.client.Set(ctx, detailsKey(playerID), []byte(payload), c.ttl).Err()
}

// Invalidate drops the cached payload for the player.
func (c *PlayerDetailsCache) Invalidate(ctx context.Context, playerID int) error {
	if c == nil {
		return nil
	}
	return c.client.Del(ctx, detailsKey(playerID)).Err()
}

func detailsKey(playerID int) string {
	return fmt.Sprintf("player:details:%d", playerID)
}
