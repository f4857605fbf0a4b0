package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/shared/constants"
)

// RequireRole lets the request through only when the authenticated role is in
// the allow-list. Comparison is case-insensitive on both sides.
func RequireRole(allowed ...UserRole) gin.HandlerFunc {
	set := make(map[UserRole]bool, len(allowed))
	for _, r := range allowed {
		set[RoleOrDefault(string(r))] = true
	}

	return func(c *gin.Context) {
		role, ok := ParseUserRole(c.GetString(constants.ContextKeyUserRole))
		if !ok || !set[role] {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

// RoleFromContext returns the role set by the auth middleware.
func RoleFromContext(c *gin.Context) UserRole {
	return RoleOrDefault(c.GetString(constants.ContextKeyUserRole))
}
