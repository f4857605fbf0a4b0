package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/infrastructure/auth"
	"github.com/sevendesk/helpdesk/internal/shared/constants"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth accepts a Bearer token or, for EventSource clients that cannot
// set headers, a token query parameter. Every failure gets the same 401 body.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader(constants.HeaderAuthorization))
		if token == "" {
			token = c.Query(constants.QueryParamToken)
		}
		if token == "" {
			m.reject(c, "missing token")
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.reject(c, err.Error())
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			m.reject(c, err.Error())
			return
		}

		c.Set(constants.ContextKeyUserID, userID)
		c.Set(constants.ContextKeyUserRole, claims.UserRole().String())
		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, reason string) {
	m.logger.Debugw("request not authenticated", "path", c.Request.URL.Path, "reason", reason)
	utils.ErrorResponse(c, http.StatusUnauthorized, errors.MsgUnauthorized)
	c.Abort()
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
