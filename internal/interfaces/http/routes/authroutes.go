package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/interfaces/http/handlers"
	"github.com/sevendesk/helpdesk/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter // nil when redis is disabled
}

// SetupAuthRoutes configures authentication routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	limit := passThrough
	if cfg.RateLimiter != nil {
		limit = cfg.RateLimiter.Limit()
	}

	auth := engine.Group("/auth")
	{
		auth.POST("/login", limit, cfg.AuthHandler.Login)
		auth.POST("/register", limit, cfg.AuthHandler.Register)
		auth.GET("/me", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Me)
	}
}

func passThrough(c *gin.Context) {
	c.Next()
}
