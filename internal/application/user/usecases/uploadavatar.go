package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/biztime"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

const (
	avatarContentType = "image/jpeg"
	avatarExtension   = ".jpg"
)

type UploadAvatarCommand struct {
	UserID uint
	Data   []byte
	// BaseURL is the scheme and host the request arrived on. Relative store
	// paths are resolved against it.
	BaseURL string
}

type UploadAvatarUseCase struct {
	userRepo  user.Repository
	processor ImageProcessor
	store     ObjectStore
	logger    logger.Interface
}

func NewUploadAvatarUseCase(
	userRepo user.Repository,
	processor ImageProcessor,
	store ObjectStore,
	logger logger.Interface,
) *UploadAvatarUseCase {
	return &UploadAvatarUseCase{
		userRepo:  userRepo,
		processor: processor,
		store:     store,
		logger:    logger,
	}
}

// Execute stores a fresh object per upload and returns its absolute URL with
// a cache-busting version query.
func (uc *UploadAvatarUseCase) Execute(ctx context.Context, cmd UploadAvatarCommand) (string, error) {
	if len(cmd.Data) == 0 {
		return "", errors.NewValidationError("avatar file required")
	}

	u, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "user_id", cmd.UserID, "error", err)
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return "", errors.NewTokenInvalidError("user no longer exists")
	}

	img, err := uc.processor.Process(cmd.Data)
	if err != nil {
		uc.logger.Warnw("avatar rejected", "user_id", cmd.UserID, "size", len(cmd.Data), "error", err)
		return "", errors.NewValidationError("unsupported image")
	}

	ts := biztime.UnixMilli()
	key := fmt.Sprintf("avatars/u%d-%d%s", u.ID(), ts, avatarExtension)

	location, err := uc.store.Put(ctx, key, img, avatarContentType)
	if err != nil {
		uc.logger.Errorw("failed to store avatar", "user_id", u.ID(), "key", key, "error", err)
		return "", fmt.Errorf("failed to store avatar: %w", err)
	}

	u.SetAvatarURL(location)
	if err := uc.userRepo.Update(ctx, u); err != nil {
		return "", err
	}

	url := location
	if strings.HasPrefix(location, "/") {
		url = strings.TrimRight(cmd.BaseURL, "/") + location
	}
	url = fmt.Sprintf("%s?v=%d", url, ts)

	uc.logger.Infow("avatar updated", "user_id", u.ID(), "location", location)
	return url, nil
}
