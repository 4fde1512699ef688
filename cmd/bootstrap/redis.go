package bootstrap

import (
	"context"
	"time"

	"oasis-backend/internal/infra/cache"
	"oasis-backend/internal/pkg/config"

	"go.uber.org/fx"
)

// Claimed webhook event ids outlive the longest gateway retry window.
const webhookDedupTTL = 72 * time.Hour

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewEventDedup,
	),
)

func NewEventDedup(lc fx.Lifecycle, cfg config.Config) *cache.RedisEventDedup {
	dedup := cache.NewRedisEventDedup(cfg.Redis, webhookDedupTTL)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return dedup.Close()
		},
	})

	return dedup
}
