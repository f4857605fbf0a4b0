package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sevendesk/helpdesk/internal/application/user/dto"
	"github.com/sevendesk/helpdesk/internal/application/user/usecases"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/utils"
)

const (
	avatarFormField = "avatar"
	// MaxAvatarBytes bounds an avatar upload.
	MaxAvatarBytes = 5 << 20
)

type ProfileHandler struct {
	updateProfileUC updateProfileExecutor
	uploadAvatarUC  uploadAvatarExecutor
	logger          logger.Interface
}

func NewProfileHandler(updateProfileUC updateProfileExecutor, uploadAvatarUC uploadAvatarExecutor, logger logger.Interface) *ProfileHandler {
	return &ProfileHandler{
		updateProfileUC: updateProfileUC,
		uploadAvatarUC:  uploadAvatarUC,
		logger:          logger,
	}
}

// UpdateProfile handles PATCH /users/me
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if !bindOptionalJSON(c, &req) {
		return
	}

	u, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID: actor.UserID,
		Name:   req.Name,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.ToUserDTO(u))
}

// UploadAvatar handles POST /users/me/avatar (multipart field "avatar").
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxAvatarBytes+1<<20)
	fileHeader, err := c.FormFile(avatarFormField)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("avatar exceeds %d MB", MaxAvatarBytes>>20))
		return
	}
	if err != nil {
		h.logger.Debugw("avatar upload without file", "user_id", actor.UserID, "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "avatar file required")
		return
	}
	if fileHeader.Size > MaxAvatarBytes {
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("avatar exceeds %d MB", MaxAvatarBytes>>20))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.ErrorResponseWithError(c, fmt.Errorf("failed to open upload: %w", err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxAvatarBytes))
	if err != nil {
		utils.ErrorResponseWithError(c, fmt.Errorf("failed to read upload: %w", err))
		return
	}

	url, err := h.uploadAvatarUC.Execute(c.Request.Context(), usecases.UploadAvatarCommand{
		UserID:  actor.UserID,
		Data:    data,
		BaseURL: requestBaseURL(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, dto.AvatarResponse{AvatarURL: url})
}

// requestBaseURL rebuilds scheme and host, honoring a TLS-terminating proxy.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
