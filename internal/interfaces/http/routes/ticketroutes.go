package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	tickethandlers "github.com/sevendesk/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/sevendesk/helpdesk/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.Handler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupTicketRoutes(engine *gin.Engine, config *TicketRouteConfig) {
	tickets := engine.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.POST("", config.TicketHandler.CreateTicket)

		tickets.GET("/:id/comments", config.TicketHandler.ListComments)
		tickets.POST("/:id/comments", config.TicketHandler.AddComment)
		tickets.POST("/:id/typing", config.TicketHandler.SignalTyping)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id",
			config.PermissionMiddleware.RequirePermission(permission.ResourceTicket, permission.ActionDelete),
			config.TicketHandler.DeleteTicket)
	}
}
