package usecases

import (
	"context"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type DeleteUserUseCase struct {
	admin userAdmin
}

func NewDeleteUserUseCase(userRepo user.Repository, enforcer permission.PermissionEnforcer, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{admin: userAdmin{userRepo: userRepo, enforcer: enforcer, logger: logger}}
}

// Execute removes the account. Tickets it requested and comments it wrote
// go with it; tickets assigned to it become unassigned.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, actor Actor, userID uint) error {
	if err := uc.admin.authorize(actor); err != nil {
		return err
	}
	if err := uc.admin.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	uc.admin.logger.Infow("user deleted by admin", "user_id", userID, "admin_id", actor.UserID)
	return nil
}
