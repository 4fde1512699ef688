package bootstrap

import (
	"log/slog"

	"oasis-backend/internal/infra/gateway"
	"oasis-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		NewRazorpayClient,
	),
)

func NewRazorpayClient(cfg config.Config, logger *slog.Logger) *gateway.Client {
	return gateway.NewClient(cfg.Razorpay, logger)
}
