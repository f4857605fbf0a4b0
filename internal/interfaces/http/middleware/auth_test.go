package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevendesk/helpdesk/internal/infrastructure/auth"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	"github.com/sevendesk/helpdesk/internal/shared/constants"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newAuthRouter(jwt *auth.JWTService) *gin.Engine {
	r := gin.New()
	mw := NewAuthMiddleware(jwt, logger.NewNopLogger())
	r.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.MustGet(constants.ContextKeyUserID),
			"role": c.GetString(constants.ContextKeyUserRole),
		})
	})
	r.GET("/admin", mw.RequireAuth(), authorization.RequireRole(authorization.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	jwt := auth.NewJWTService("test-secret", 1)
	other := auth.NewJWTService("other-secret", 1)
	r := newAuthRouter(jwt)

	good, err := jwt.Generate(7, "agent@helpdesk.io", authorization.RoleAgent)
	require.NoError(t, err)
	forged, err := other.Generate(7, "agent@helpdesk.io", authorization.RoleAdmin)
	require.NoError(t, err)

	tests := []struct {
		name       string
		target     string
		header     string
		wantStatus int
	}{
		{"bearer header", "/me", "Bearer " + good, http.StatusOK},
		{"lower-case scheme", "/me", "bearer " + good, http.StatusOK},
		{"query fallback", "/me?token=" + good, "", http.StatusOK},
		{"missing", "/me", "", http.StatusUnauthorized},
		{"wrong scheme", "/me", "Basic " + good, http.StatusUnauthorized},
		{"bad signature", "/me", "Bearer " + forged, http.StatusUnauthorized},
		{"garbage", "/me?token=abc", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
				return
			}
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.EqualValues(t, 7, body["id"])
			assert.Equal(t, "AGENTE", body["role"])
		})
	}
}

func TestRequireRole_AdminOnly(t *testing.T) {
	jwt := auth.NewJWTService("test-secret", 1)
	r := newAuthRouter(jwt)

	for role, want := range map[authorization.UserRole]int{
		authorization.RoleAdmin:  http.StatusNoContent,
		authorization.RoleAgent:  http.StatusForbidden,
		authorization.RoleClient: http.StatusForbidden,
	} {
		token, err := jwt.Generate(1, "x@helpdesk.io", role)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, want, w.Code, "role %s", role)
	}
}

func TestRedactToken(t *testing.T) {
	assert.Equal(t, "token=*&a=1", redactToken("token=abc.def&a=1"))
	assert.Equal(t, "status=ABERTO", redactToken("status=ABERTO"))
	assert.Equal(t, "", redactToken(""))
}
