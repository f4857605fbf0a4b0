package usecases

import (
	"context"
	"strings"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

// UpdateUserCommand carries the admin-editable fields. Nil or blank fields
// are left untouched.
type UpdateUserCommand struct {
	Actor  Actor
	UserID uint
	Name   *string
	Email  *string
	Role   *string
}

type UpdateUserUseCase struct {
	admin userAdmin
}

func NewUpdateUserUseCase(userRepo user.Repository, enforcer permission.PermissionEnforcer, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{admin: userAdmin{userRepo: userRepo, enforcer: enforcer, logger: logger}}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	if err := uc.admin.authorize(cmd.Actor); err != nil {
		return nil, err
	}

	name, email, role := trimmed(cmd.Name), trimmed(cmd.Email), trimmed(cmd.Role)
	if name == "" && email == "" && role == "" {
		return nil, errors.NewValidationError("Nothing to update")
	}

	u, err := uc.admin.load(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if role != "" {
		if err := u.ChangeRole(authorization.UserRole(role)); err != nil {
			return nil, errors.NewValidationError("invalid role")
		}
	}
	if name != "" {
		if err := u.Rename(name); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if email != "" {
		if err := ensureEmailFree(ctx, uc.admin.userRepo, email, u.ID()); err != nil {
			return nil, err
		}
		if err := u.ChangeEmail(email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.admin.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	uc.admin.logger.Infow("user updated by admin", "user_id", u.ID(), "admin_id", cmd.Actor.UserID)
	return u, nil
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
