package bootstrap

import (
	"log/slog"

	"oasis-backend/internal/infra/mailer"
	"oasis-backend/internal/pkg/config"

	"go.uber.org/fx"
)

var MailerModule = fx.Module("mailer",
	fx.Provide(
		NewSMTPNotifier,
	),
)

func NewSMTPNotifier(cfg config.Config, logger *slog.Logger) *mailer.SMTPNotifier {
	return mailer.NewSMTPNotifier(cfg.SMTP, logger)
}
