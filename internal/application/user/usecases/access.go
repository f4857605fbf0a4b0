package usecases

import (
	"context"
	"fmt"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

const (
	msgNotFound  = "Not found"
	msgForbidden = "Forbidden"
)

// userAdmin guards the admin-only operations and loads their target user.
type userAdmin struct {
	userRepo user.Repository
	enforcer permission.PermissionEnforcer
	logger   logger.Interface
}

func (a userAdmin) authorize(actor Actor) error {
	ok, err := a.enforcer.Enforce(actor.Role, permission.ResourceUser, permission.ActionManage)
	if err != nil {
		a.logger.Errorw("permission check failed", "role", actor.Role, "error", err)
		return fmt.Errorf("failed to check permission: %w", err)
	}
	if !ok {
		return errors.NewForbiddenError(msgForbidden)
	}
	return nil
}

func (a userAdmin) load(ctx context.Context, userID uint) (*user.User, error) {
	u, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		a.logger.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, errors.NewNotFoundError(msgNotFound)
	}
	return u, nil
}

// ensureEmailFree rejects an address already held by another account.
func ensureEmailFree(ctx context.Context, repo user.Repository, email string, ownerID uint) error {
	existing, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil && existing.ID() != ownerID {
		return errors.NewConflictError("email already in use")
	}
	return nil
}
