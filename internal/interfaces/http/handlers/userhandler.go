package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/application/user/dto"
	"github.com/sevendesk/helpdesk/internal/application/user/usecases"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/utils"
)

// UserHandler serves the admin user management endpoints.
type UserHandler struct {
	listUsersUC     listUsersExecutor
	createUserUC    createUserExecutor
	getUserUC       getUserExecutor
	updateUserUC    updateUserExecutor
	deleteUserUC    deleteUserExecutor
	resetPasswordUC resetPasswordExecutor
	logger          logger.Interface
}

func NewUserHandler(
	listUsersUC listUsersExecutor,
	createUserUC createUserExecutor,
	getUserUC getUserExecutor,
	updateUserUC updateUserExecutor,
	deleteUserUC deleteUserExecutor,
	resetPasswordUC resetPasswordExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		listUsersUC:     listUsersUC,
		createUserUC:    createUserUC,
		getUserUC:       getUserUC,
		updateUserUC:    updateUserUC,
		deleteUserUC:    deleteUserUC,
		resetPasswordUC: resetPasswordUC,
		logger:          logger,
	}
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Actor:  actor,
		Search: c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, dto.ToUserDTOList(result.Users), result.Total)
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Actor:    actor,
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.CreateUserResponse{
		User:              dto.ToUserDTO(result.User),
		GeneratedPassword: result.GeneratedPassword,
	})
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	u, err := h.getUserUC.Execute(c.Request.Context(), actor, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.ToUserDTO(u))
}

// UpdateUser handles PATCH /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req dto.UpdateUserRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	u, err := h.updateUserUC.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		Actor:  actor,
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.ToUserDTO(u))
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), actor, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ResetPassword handles POST /users/:id/reset-password
func (h *UserHandler) ResetPassword(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	userID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	temp, err := h.resetPasswordUC.Execute(c.Request.Context(), actor, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.ResetPasswordResponse{TemporaryPassword: temp})
}
