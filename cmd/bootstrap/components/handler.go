package components

import (
	"oasis-backend/internal/handler"
	"oasis-backend/internal/handler/api"
	"oasis-backend/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewPaymentHandler,
		api.NewBookingHandler,
		api.NewContactHandler,
		api.NewPackagesHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
