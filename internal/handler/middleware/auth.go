package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"oasis-backend/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxAdminEmailKey = "admin_email"

// AuthMiddleware guards the back-office routes. Tokens travel in the
// Authorization header only; there is no browser session to protect with
// cookies.
type AuthMiddleware struct {
	jwtService *jwt.Service
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminEmailKey, claims.Email)
		c.Next()
	}
}

func GetAdminEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxAdminEmailKey)
	if !exists {
		return "", false
	}
	e, ok := email.(string)
	return e, ok
}
