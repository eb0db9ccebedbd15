package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/royalbikes/showroom-backend/internal/auth"
	"github.com/royalbikes/showroom-backend/internal/server/handlers"
)

// Handlers bundles the HTTP adapters the router mounts.
type Handlers struct {
	Auth       *handlers.AuthHandler
	Vehicle    *handlers.VehicleHandler
	Billing    *handlers.BillingHandler
	Booked     *handlers.BookedHandler
	Dashboard  *handlers.DashboardHandler
	Permission *handlers.PermissionHandler
}

// New wires the Gin engine with required routes and middlewares. Everything
// under /api and the dashboard require a valid token; login, registration
// and the health probe are public.
func New(h Handlers, authSvc *auth.Service, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.POST("/login", h.Auth.Login)
	r.POST("/register", h.Auth.Register)
	r.POST("/logout", h.Auth.Logout)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	guard := authMiddleware(authSvc, logger)

	r.GET("/dashboard", guard, h.Dashboard.Stats)

	api := r.Group("/api", guard)
	{
		api.GET("/vehicles", h.Vehicle.List)
		api.POST("/vehicles", h.Vehicle.Create)
		api.DELETE("/vehicles/:id", h.Vehicle.Delete)

		api.GET("/billing", h.Billing.List)
		api.POST("/billing", h.Billing.Create)
		api.PUT("/billing/:id", h.Billing.Update)
		api.DELETE("/billing/:id", h.Billing.Delete)
		api.POST("/billing/:id/book", h.Billing.Book)

		api.GET("/booked-vehicles", h.Booked.List)
		api.POST("/booked-vehicles", h.Booked.Create)
		api.DELETE("/booked-vehicles/:id", h.Booked.Delete)

		api.GET("/permissions", h.Permission.List)
	}

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// authMiddleware validates the bearer token and stashes the caller's claims
// in the request context.
func authMiddleware(authSvc *auth.Service, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := authSvc.ValidateToken(token)
		if err != nil {
			logger.Warn("rejected token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_type", claims.UserType)
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
