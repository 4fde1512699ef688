package components

import (
	"log/slog"

	"oasis-backend/internal/infra/events"
	"oasis-backend/internal/pkg/clock"
	"oasis-backend/internal/pkg/config"
	"oasis-backend/internal/pkg/jwt"
	"oasis-backend/internal/usecase/commands"
	"oasis-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		func(
			gw commands.PaymentGateway,
			bookings commands.BookingRepository,
			notifier commands.Notifier,
			publisher events.Publisher,
			clk clock.Clock,
			cfg config.Config,
			logger *slog.Logger,
		) commands.PaymentCommands {
			return commands.NewPaymentCommands(gw, bookings, notifier, publisher, clk, cfg.Razorpay, cfg.Payment, logger)
		},
		func(
			bookings commands.BookingRepository,
			dedup commands.EventDedup,
			publisher events.Publisher,
			clk clock.Clock,
			cfg config.Config,
			logger *slog.Logger,
		) commands.WebhookCommands {
			return commands.NewWebhookCommands(cfg.Razorpay.WebhookSecret, bookings, dedup, publisher, clk, logger)
		},
		commands.NewBookingCommands,
		commands.NewContactCommands,
		func(cfg config.Config, jwtService *jwt.Service, logger *slog.Logger) commands.AuthCommands {
			return commands.NewAuthCommands(cfg.Admin, jwtService, logger)
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewPaymentQueries,
		func(cfg config.Config) (queries.PackageQueries, error) {
			return queries.LoadPackageQueries(cfg.Catalog.PackagesFile)
		},
	),
)
