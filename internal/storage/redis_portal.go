package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/lemonbridge/pkg/billing"
)

const portalLinkKeyPrefix = "billing:portal_link:"

// RedisPortalLinkCache implements billing.PortalLinkCache on Redis with
// per-key TTL expiry.
type RedisPortalLinkCache struct {
	client redis.UniversalClient
}

// NewRedisPortalLinkCache creates a portal link cache backed by Redis.
func NewRedisPortalLinkCache(client redis.UniversalClient) *RedisPortalLinkCache {
	if client == nil {
		panic("storage: redis client is required")
	}
	return &RedisPortalLinkCache{client: client}
}

func (c *RedisPortalLinkCache) Get(ctx context.Context, userID uuid.UUID) (string, error) {
	url, err := c.client.Get(ctx, portalLinkKeyPrefix+userID.String()).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", billing.ErrCacheMiss
		}
		return "", err
	}
	return url, nil
}

func (c *RedisPortalLinkCache) Set(ctx context.Context, userID uuid.UUID, url string, ttl time.Duration) error {
	return c.client.Set(ctx, portalLinkKeyPrefix+userID.String(), url, ttl).Err()
}
