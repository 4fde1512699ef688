// Package cache backs webhook-event deduplication with Redis. The gateway
// retries webhook delivery on non-2xx responses, so each event id is
// claimed with SETNX before its side effect runs.
package cache

import (
	"context"
	"time"

	"oasis-backend/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const dedupKeyPrefix = "webhook:event:"

type RedisEventDedup struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisEventDedup(cfg config.RedisConfig, ttl time.Duration) *RedisEventDedup {
	return &RedisEventDedup{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		ttl:    ttl,
	}
}

// Claim marks an event id as processed. Returns false when another
// delivery of the same event already claimed it.
func (d *RedisEventDedup) Claim(ctx context.Context, eventID string) (bool, error) {
	return d.client.SetNX(ctx, dedupKeyPrefix+eventID, "processed", d.ttl).Result()
}

// Release undoes a claim so a failed handler run can be retried by the
// gateway's next delivery.
func (d *RedisEventDedup) Release(ctx context.Context, eventID string) error {
	return d.client.Del(ctx, dedupKeyPrefix+eventID).Err()
}

func (d *RedisEventDedup) Close() error {
	return d.client.Close()
}
