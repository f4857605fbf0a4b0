package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/shared/constants"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/utils"
)

type HealthHandler struct {
	clock   DatabaseClock
	version string
	logger  logger.Interface
}

func NewHealthHandler(clock DatabaseClock, version string, logger logger.Interface) *HealthHandler {
	return &HealthHandler{clock: clock, version: version, logger: logger}
}

// Banner handles GET /
func (h *HealthHandler) Banner(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, gin.H{
		"ok":      true,
		"service": constants.ServiceName,
		"version": h.version,
	})
}

// Database handles GET /db/health
func (h *HealthHandler) Database(c *gin.Context) {
	now, err := h.clock.Now(c.Request.Context())
	if err != nil {
		h.logger.Errorw("database health check failed", "error", err)
		utils.SuccessResponse(c, http.StatusServiceUnavailable, gin.H{"ok": false, "error": "database unavailable"})
		return
	}
	utils.SuccessResponse(c, http.StatusOK, gin.H{"ok": true, "now": now})
}
