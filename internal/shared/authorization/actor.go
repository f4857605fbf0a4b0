package authorization

import (
	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/shared/constants"
)

// Actor is the authenticated caller handed from the HTTP layer to use cases.
type Actor struct {
	UserID uint
	Role   UserRole
}

// ActorFromContext reads the caller set by the auth middleware.
func ActorFromContext(c *gin.Context) (Actor, bool) {
	v, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return Actor{}, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return Actor{}, false
	}
	return Actor{UserID: id, Role: RoleFromContext(c)}, true
}
