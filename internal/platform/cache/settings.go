package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const settingsKey = "settings:snapshot"

// SettingsCache keeps a JSON snapshot of the settings document. Settings are
// read on nearly every PDF render but change rarely.
type SettingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSettingsCache builds a settings snapshot cache.
func NewSettingsCache(client *redis.Client, ttl time.Duration) *SettingsCache {
	return &SettingsCache{client: client, ttl: ttl}
}

// Get returns the cached snapshot, or ErrMiss.
func (c *SettingsCache) Get(ctx context.Context) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, ErrMiss
	}
	data, err := c.client.Get(ctx, settingsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set stores a settings snapshot.
func (c *SettingsCache) Set(ctx context.Context, data []byte) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Set(ctx, settingsKey, data, c.ttl).Err()
}

// Invalidate drops the snapshot after settings are saved.
func (c *SettingsCache) Invalidate(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Del(ctx, settingsKey).Err()
}
