package commands

import (
	"context"
	"log/slog"
	"strings"

	"oasis-backend/internal/pkg/config"
	"oasis-backend/internal/pkg/errs"
	"oasis-backend/internal/pkg/jwt"
	"oasis-backend/internal/pkg/password"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	Email string
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	cfg        config.AdminConfig
	jwtService *jwt.Service
	logger     *slog.Logger
}

func NewAuthCommands(cfg config.AdminConfig, jwtService *jwt.Service, logger *slog.Logger) AuthCommands {
	return &authCommandsImpl{cfg: cfg, jwtService: jwtService, logger: logger}
}

// Login checks credentials against the configured back-office account.
// Wrong email and wrong password produce the same error so the response
// does not reveal which part failed.
func (a *authCommandsImpl) Login(_ context.Context, in LoginInput) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, errs.Mark(errs.New("email and password are required"), errs.ErrValidation)
	}

	if email != strings.ToLower(a.cfg.Email) {
		a.logger.Warn("login rejected", "email", email)
		return nil, errs.Mark(errs.New("credential mismatch"), errs.ErrInvalidCredentials)
	}
	if err := password.Compare(a.cfg.PasswordHash, in.Password); err != nil {
		a.logger.Warn("login rejected", "email", email)
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(email)
	if err != nil {
		return nil, errs.Wrap(err, "issue admin token")
	}
	return &LoginResult{Token: token, Email: email}, nil
}
