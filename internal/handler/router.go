package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"oasis-backend/internal/handler/api"
	"oasis-backend/internal/handler/middleware"
	"oasis-backend/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	paymentHandler *api.PaymentHandler,
	bookingHandler *api.BookingHandler,
	contactHandler *api.ContactHandler,
	packagesHandler *api.PackagesHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, paymentHandler, bookingHandler, contactHandler, packagesHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	paymentHandler *api.PaymentHandler,
	bookingHandler *api.BookingHandler,
	contactHandler *api.ContactHandler,
	packagesHandler *api.PackagesHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		payments := apiGroup.Group("/payments")
		{
			addRoutes(payments, []route{
				{Method: http.MethodPost, Path: "/create-order", Handler: paymentHandler.CreateOrder},
				{Method: http.MethodPost, Path: "/verify-payment", Handler: paymentHandler.VerifyPayment},
				{Method: http.MethodPost, Path: "/webhook", Handler: paymentHandler.Webhook},
				{Method: http.MethodGet, Path: "/status/:paymentId", Handler: paymentHandler.PaymentStatus},
				{Method: http.MethodPost, Path: "/refund", Handler: paymentHandler.Refund,
					Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			})
		}

		contactGroup := apiGroup.Group("/contact")
		{
			addRoutes(contactGroup, []route{
				{Method: http.MethodPost, Path: "/submit", Handler: contactHandler.Submit},
			})
		}

		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})
		}

		packages := apiGroup.Group("/packages")
		{
			addRoutes(packages, []route{
				{Method: http.MethodGet, Path: "", Handler: packagesHandler.List},
				{Method: http.MethodGet, Path: "/search", Handler: packagesHandler.Search},
				{Method: http.MethodGet, Path: "/:slug", Handler: packagesHandler.Get},
			})
		}

		bookings := apiGroup.Group("/bookings")
		{
			adminOnly := []gin.HandlerFunc{authMiddleware.RequireAdmin()}
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.Create},
				{Method: http.MethodGet, Path: "/order/:orderId", Handler: bookingHandler.GetByOrder},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.Get},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.List, Mw: adminOnly},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: bookingHandler.UpdateStatus, Mw: adminOnly},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
