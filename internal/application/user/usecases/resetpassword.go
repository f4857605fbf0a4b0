package usecases

import (
	"context"
	"fmt"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type ResetPasswordUseCase struct {
	admin     userAdmin
	hasher    PasswordHasher
	generator PasswordGenerator
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	enforcer permission.PermissionEnforcer,
	hasher PasswordHasher,
	generator PasswordGenerator,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		admin:     userAdmin{userRepo: userRepo, enforcer: enforcer, logger: logger},
		hasher:    hasher,
		generator: generator,
	}
}

// Execute replaces the password with a generated one and returns it. The
// plain value is never stored or logged.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, actor Actor, userID uint) (string, error) {
	if err := uc.admin.authorize(actor); err != nil {
		return "", err
	}

	u, err := uc.admin.load(ctx, userID)
	if err != nil {
		return "", err
	}

	temp, err := uc.generator.Generate()
	if err != nil {
		uc.admin.logger.Errorw("failed to generate password", "error", err)
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	hash, err := uc.hasher.Hash(temp)
	if err != nil {
		uc.admin.logger.Errorw("failed to hash password", "error", err)
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	if err := u.SetPasswordHash(hash); err != nil {
		return "", err
	}

	if err := uc.admin.userRepo.Update(ctx, u); err != nil {
		return "", err
	}

	uc.admin.logger.Infow("password reset by admin", "user_id", u.ID(), "admin_id", actor.UserID)
	return temp, nil
}
