package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/interfaces/http/handlers"
	"github.com/sevendesk/helpdesk/internal/interfaces/http/middleware"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
)

// UserRouteConfig holds dependencies for profile and user admin routes.
type UserRouteConfig struct {
	UserHandler    *handlers.UserHandler
	ProfileHandler *handlers.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupUserRoutes configures /users. The /me routes are registered before
// /:id so they never reach the admin group.
func SetupUserRoutes(engine *gin.Engine, cfg *UserRouteConfig) {
	users := engine.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.PATCH("/me", cfg.ProfileHandler.UpdateProfile)
		users.POST("/me/avatar", cfg.ProfileHandler.UploadAvatar)

		admin := users.Group("")
		admin.Use(authorization.RequireRole(authorization.RoleAdmin))
		{
			admin.GET("", cfg.UserHandler.ListUsers)
			admin.POST("", cfg.UserHandler.CreateUser)
			admin.GET("/:id", cfg.UserHandler.GetUser)
			admin.PATCH("/:id", cfg.UserHandler.UpdateUser)
			admin.DELETE("/:id", cfg.UserHandler.DeleteUser)
			admin.POST("/:id/reset-password", cfg.UserHandler.ResetPassword)
		}
	}
}
