package export

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "supplierdesk:artifact:v1"

// ArtifactCache keeps rendered artifact bodies in Redis keyed by content hash.
// A nil cache, or one without a client, always calls the loader.
type ArtifactCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewArtifactCache instantiates the cache helper.
func NewArtifactCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *ArtifactCache {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArtifactCache{client: client, ttl: ttl, logger: logger}
}

// Key composes the cache key for a rendered document.
func (c *ArtifactCache) Key(parts ...string) string {
	return cacheKeyPrefix + ":" + strings.Join(parts, ":")
}

// Fetch loads a cached body or populates it using the loader. Redis failures are
// logged and fall back to the loader; loader errors are returned unchanged.
func (c *ArtifactCache) Fetch(ctx context.Context, key string, loader func(context.Context) ([]byte, error)) ([]byte, error) {
	if loader == nil {
		return nil, errors.New("cache: loader required")
	}
	if c == nil || c.client == nil {
		return loader(ctx)
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		return payload, nil
	}
	healthy := errors.Is(err, redis.Nil)
	if !healthy {
		c.logger.Warn("artifact cache read", slog.String("key", key), slog.Any("error", err))
	}

	payload, err = loader(ctx)
	if err != nil {
		return nil, err
	}
	if healthy {
		if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
			c.logger.Warn("artifact cache write", slog.String("key", key), slog.Any("error", err))
		}
	}
	return payload, nil
}
