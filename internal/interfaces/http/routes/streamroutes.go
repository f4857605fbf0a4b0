package routes

import (
	"github.com/gin-gonic/gin"

	streamhandlers "github.com/sevendesk/helpdesk/internal/interfaces/http/handlers/stream"
	"github.com/sevendesk/helpdesk/internal/interfaces/http/middleware"
)

type StreamRouteConfig struct {
	StreamHandler  *streamhandlers.Handler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupStreamRoutes configures the SSE endpoints. EventSource cannot send
// headers, so the auth middleware also accepts ?token=.
func SetupStreamRoutes(engine *gin.Engine, config *StreamRouteConfig) {
	auth := config.AuthMiddleware.RequireAuth()

	engine.GET("/events", auth, config.StreamHandler.GlobalEvents)
	engine.GET("/tickets/:id/stream", auth, config.StreamHandler.TicketEvents)
}
