package http

import (
	"github.com/sevendesk/helpdesk/internal/infrastructure/storage"
	"github.com/sevendesk/helpdesk/internal/interfaces/http/middleware"
	"github.com/sevendesk/helpdesk/internal/interfaces/http/routes"
)

// SetupRoutes registers middleware and every route group.
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.AccessLogger(c.log.Named("http")))
	c.engine.Use(middleware.CORS(c.cfg.Server.Origins()))
	c.engine.Use(middleware.SecurityHeaders())

	c.engine.GET("/", c.hdlrs.healthHandler.Banner)
	c.engine.GET("/db/health", c.hdlrs.healthHandler.Database)

	if local, ok := c.svcs.store.(*storage.LocalStore); ok {
		c.engine.Static(local.PublicPath(), local.Root())
	}

	routes.SetupAuthRoutes(c.engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimiter:    c.loginRateLimiter,
	})

	routes.SetupUserRoutes(c.engine, &routes.UserRouteConfig{
		UserHandler:    c.hdlrs.userHandler,
		ProfileHandler: c.hdlrs.profileHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupTicketRoutes(c.engine, &routes.TicketRouteConfig{
		TicketHandler:        c.hdlrs.ticketHandler,
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
	})

	routes.SetupStreamRoutes(c.engine, &routes.StreamRouteConfig{
		StreamHandler:  c.hdlrs.streamHandler,
		AuthMiddleware: c.authMiddleware,
	})
}
