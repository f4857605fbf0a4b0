package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/application/user/dto"
	"github.com/sevendesk/helpdesk/internal/application/user/usecases"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	apperrors "github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUC       loginExecutor
	registerUC    registerExecutor
	currentUserUC currentUserExecutor
	logger        logger.Interface
}

func NewAuthHandler(
	loginUC loginExecutor,
	registerUC registerExecutor,
	currentUserUC currentUserExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:       loginUC,
		registerUC:    registerUC,
		currentUserUC: currentUserUC,
		logger:        logger,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if apperrors.ShouldLogAuthError(err) {
			h.logger.Warnw("login failed", "error", err)
		}
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.AuthResponse{
		Token: result.Token,
		User:  dto.ToUserDTO(result.User),
	})
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	result, err := h.registerUC.Execute(c.Request.Context(), usecases.RegisterCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.AuthResponse{
		Token: result.Token,
		User:  dto.ToUserDTO(result.User),
	})
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	u, err := h.currentUserUC.Execute(c.Request.Context(), actor.UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.ToUserDTO(u))
}

func requireActor(c *gin.Context) (authorization.Actor, bool) {
	actor, ok := authorization.ActorFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, apperrors.MsgUnauthorized)
		return authorization.Actor{}, false
	}
	return actor, true
}

// bindOptionalJSON decodes the body when there is one. Missing fields are
// reported by the use case with its own message.
func bindOptionalJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil && !errors.Is(err, io.EOF) {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
