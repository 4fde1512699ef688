package components

import (
	"oasis-backend/internal/infra/cache"
	"oasis-backend/internal/infra/gateway"
	"oasis-backend/internal/infra/mailer"
	repo_impl "oasis-backend/internal/infra/repository"
	"oasis-backend/internal/usecase/commands"
	"oasis-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repo_impl.NewBookingRepository,
			fx.As(new(queries.BookingReader)),
		),
		fx.Annotate(
			func(c *gateway.Client) *gateway.Client { return c },
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			func(c *gateway.Client) *gateway.Client { return c },
			fx.As(new(queries.PaymentReader)),
		),
		fx.Annotate(
			func(n *mailer.SMTPNotifier) *mailer.SMTPNotifier { return n },
			fx.As(new(commands.Notifier)),
		),
		fx.Annotate(
			func(d *cache.RedisEventDedup) *cache.RedisEventDedup { return d },
			fx.As(new(commands.EventDedup)),
		),
	),
)
