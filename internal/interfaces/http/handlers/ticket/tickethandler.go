// Package ticket exposes the ticket and comment endpoints.
package ticket

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/application/ticket/dto"
	"github.com/sevendesk/helpdesk/internal/application/ticket/usecases"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	apperrors "github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/utils"
)

type Handler struct {
	listTicketsUC  listTicketsExecutor
	createTicketUC createTicketExecutor
	getTicketUC    getTicketExecutor
	updateTicketUC updateTicketExecutor
	deleteTicketUC deleteTicketExecutor
	listCommentsUC listCommentsExecutor
	addCommentUC   addCommentExecutor
	signalTypingUC signalTypingExecutor
	logger         logger.Interface
}

func NewHandler(
	listTicketsUC listTicketsExecutor,
	createTicketUC createTicketExecutor,
	getTicketUC getTicketExecutor,
	updateTicketUC updateTicketExecutor,
	deleteTicketUC deleteTicketExecutor,
	listCommentsUC listCommentsExecutor,
	addCommentUC addCommentExecutor,
	signalTypingUC signalTypingExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		listTicketsUC:  listTicketsUC,
		createTicketUC: createTicketUC,
		getTicketUC:    getTicketUC,
		updateTicketUC: updateTicketUC,
		deleteTicketUC: deleteTicketUC,
		listCommentsUC: listCommentsUC,
		addCommentUC:   addCommentUC,
		signalTypingUC: signalTypingUC,
		logger:         logger,
	}
}

// ListTickets handles GET /tickets
func (h *Handler) ListTickets(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	assigneeID, err := utils.ParseOptionalUintQuery(c, "assigneeId")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	page := utils.ParsePagination(c)

	result, err := h.listTicketsUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Actor:      actor,
		Search:     c.Query("search"),
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		AssigneeID: assigneeID,
		Associacao: c.Query("associacao"),
		Page:       page.Page,
		PageSize:   page.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total)
}

// CreateTicket handles POST /tickets
func (h *Handler) CreateTicket(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req dto.CreateTicketRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Actor:       actor,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		AssigneeID:  req.AssigneeID,
		Associacao:  req.Associacao,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// GetTicket handles GET /tickets/:id
func (h *Handler) GetTicket(c *gin.Context) {
	actor, ticketID, ok := h.actorAndTicket(c)
	if !ok {
		return
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), usecases.GetTicketQuery{Actor: actor, TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// UpdateTicket handles PATCH /tickets/:id
func (h *Handler) UpdateTicket(c *gin.Context) {
	actor, ticketID, ok := h.actorAndTicket(c)
	if !ok {
		return
	}
	var req dto.UpdateTicketRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		Actor:       actor,
		TicketID:    ticketID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		Associacao:  req.Associacao,
		AssigneeID:  req.AssigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *Handler) DeleteTicket(c *gin.Context) {
	actor, ticketID, ok := h.actorAndTicket(c)
	if !ok {
		return
	}

	if err := h.deleteTicketUC.Execute(c.Request.Context(), usecases.DeleteTicketCommand{Actor: actor, TicketID: ticketID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListComments handles GET /tickets/:id/comments
func (h *Handler) ListComments(c *gin.Context) {
	actor, ticketID, ok := h.actorAndTicket(c)
	if !ok {
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{Actor: actor, TicketID: ticketID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// AddComment handles POST /tickets/:id/comments
func (h *Handler) AddComment(c *gin.Context) {
	actor, ticketID, ok := h.actorAndTicket(c)
	if !ok {
		return
	}
	var req dto.AddCommentRequest
	if !h.bind(c, &req) {
		return
	}

	result, err := h.addCommentUC.Execute(c.Request.Context(), usecases.AddCommentCommand{
		Actor:    actor,
		TicketID: ticketID,
		Body:     req.Body,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// SignalTyping handles POST /tickets/:id/typing. A missing flag means typing.
func (h *Handler) SignalTyping(c *gin.Context) {
	actor, ticketID, ok := h.actorAndTicket(c)
	if !ok {
		return
	}
	var req dto.TypingRequest
	if !h.bind(c, &req) {
		return
	}
	typing := true
	if req.Typing != nil {
		typing = *req.Typing
	}

	err := h.signalTypingUC.Execute(c.Request.Context(), usecases.SignalTypingCommand{
		Actor:    actor,
		TicketID: ticketID,
		Typing:   typing,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) actor(c *gin.Context) (authorization.Actor, bool) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, apperrors.MsgUnauthorized)
		return authorization.Actor{}, false
	}
	return actor, true
}

func (h *Handler) actorAndTicket(c *gin.Context) (authorization.Actor, uint, bool) {
	actor, ok := h.actor(c)
	if !ok {
		return actor, 0, false
	}
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return actor, 0, false
	}
	return actor, ticketID, true
}

// bind decodes an optional JSON body. An empty body leaves req zeroed.
func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Debugw("invalid request body", "path", c.FullPath(), "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
