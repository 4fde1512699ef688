package middleware

import (
	"log/slog"

	"oasis-backend/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy for the storefront and the
// back-office SPA; both origin lists come from config.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	policy := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS policy configured", "allow_origins", cfg.AllowOrigins)
	return cors.New(policy)
}
