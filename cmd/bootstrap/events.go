package bootstrap

import (
	"context"
	"log/slog"

	"oasis-backend/internal/infra/events"
	"oasis-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher returns a no-op publisher when no brokers are
// configured; the event stream is optional infrastructure.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) events.Publisher {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("no Kafka brokers configured, booking events disabled")
		return events.NopPublisher{}
	}

	publisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.BookingTopic, logger)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return publisher.Close()
		},
	})

	return publisher
}
