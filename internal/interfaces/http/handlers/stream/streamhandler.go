// Package stream serves the Server-Sent Events endpoints.
package stream

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/application/ticket/usecases"
	"github.com/sevendesk/helpdesk/internal/infrastructure/services"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/utils"
)

const (
	contentType      = "text/event-stream"
	defaultKeepalive = 30 * time.Second
)

// Registry is the part of the stream registry the handler drives.
type Registry interface {
	Subscribe(key services.StreamKey, userID uint, onClose func()) (*services.Subscription, error)
	Unsubscribe(sub *services.Subscription)
}

type ticketViewAuthorizer interface {
	Execute(ctx context.Context, query usecases.AuthorizeTicketViewQuery) error
}

type Handler struct {
	registry   Registry
	authorizer ticketViewAuthorizer
	keepalive  time.Duration
	logger     logger.Interface
}

func NewHandler(registry Registry, authorizer ticketViewAuthorizer, keepalive time.Duration, logger logger.Interface) *Handler {
	if keepalive <= 0 {
		keepalive = defaultKeepalive
	}
	return &Handler{
		registry:   registry,
		authorizer: authorizer,
		keepalive:  keepalive,
		logger:     logger,
	}
}

// GlobalEvents handles GET /events
func (h *Handler) GlobalEvents(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, errors.MsgUnauthorized)
		return
	}
	h.serve(c, services.UserStreamKey(actor.UserID), actor.UserID)
}

// TicketEvents handles GET /tickets/:id/stream. Access is checked once, at
// subscribe time.
func (h *Handler) TicketEvents(c *gin.Context) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, errors.MsgUnauthorized)
		return
	}
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.authorizer.Execute(c.Request.Context(), usecases.AuthorizeTicketViewQuery{Actor: actor, TicketID: ticketID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.serve(c, services.TicketStreamKey(ticketID), actor.UserID)
}

func (h *Handler) serve(c *gin.Context, key services.StreamKey, userID uint) {
	sub, err := h.registry.Subscribe(key, userID, nil)
	if err != nil {
		h.logger.Warnw("stream subscribe rejected", "key", key.String(), "user_id", userID, "error", err)
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "Service unavailable")
		return
	}
	defer h.registry.Unsubscribe(sub)

	setupResponse(c)
	if _, err := c.Writer.WriteString(": connected\n\n"); err != nil {
		h.logger.Debugw("stream initial write failed", "key", key.String(), "error", err)
		return
	}
	c.Writer.Flush()

	h.logger.Infow("stream opened", "key", key.String(), "user_id", userID, "sub_id", sub.ID)
	h.runEventLoop(c, sub)
	h.logger.Infow("stream closed", "key", key.String(), "user_id", userID, "sub_id", sub.ID)
}

// runEventLoop writes frames until the client leaves, the registry drops the
// subscription or a write fails.
func (h *Handler) runEventLoop(c *gin.Context, sub *services.Subscription) {
	keepAliveTicker := time.NewTicker(h.keepalive)
	defer keepAliveTicker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return

		case <-sub.Done():
			return

		case frame := <-sub.Events():
			if _, err := c.Writer.Write(frame); err != nil {
				h.logger.Debugw("stream write failed", "sub_id", sub.ID, "error", err)
				return
			}
			c.Writer.Flush()

		case <-keepAliveTicker.C:
			if _, err := c.Writer.WriteString(": keepalive\n\n"); err != nil {
				h.logger.Debugw("stream keepalive failed", "sub_id", sub.ID, "error", err)
				return
			}
			c.Writer.Flush()
		}
	}
}

func setupResponse(c *gin.Context) {
	c.Header("Content-Type", contentType)
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
}
