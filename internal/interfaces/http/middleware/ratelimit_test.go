package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/sevendesk/helpdesk/internal/infrastructure/ratelimit"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

func newLimitedRouter(t *testing.T, perMinute int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(ratelimit.NewRedisRateLimiter(client), "login", ratelimit.Limits{PerMinute: perMinute}, logger.NewNopLogger())
	r := gin.New()
	r.POST("/auth/login", rl.Limit(), func(c *gin.Context) { c.Status(http.StatusOK) })
	return r, mr
}

func postLogin(r *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = ip + ":5000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_Limit(t *testing.T) {
	r, _ := newLimitedRouter(t, 2)

	assert.Equal(t, http.StatusOK, postLogin(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, postLogin(r, "10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, postLogin(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, postLogin(r, "10.0.0.2"))
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	r, mr := newLimitedRouter(t, 1)
	mr.Close()

	assert.Equal(t, http.StatusOK, postLogin(r, "10.0.0.1"))
	assert.Equal(t, http.StatusOK, postLogin(r, "10.0.0.1"))
}
