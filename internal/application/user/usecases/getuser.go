package usecases

import (
	"context"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type GetUserUseCase struct {
	admin userAdmin
}

func NewGetUserUseCase(userRepo user.Repository, enforcer permission.PermissionEnforcer, logger logger.Interface) *GetUserUseCase {
	return &GetUserUseCase{admin: userAdmin{userRepo: userRepo, enforcer: enforcer, logger: logger}}
}

func (uc *GetUserUseCase) Execute(ctx context.Context, actor Actor, userID uint) (*user.User, error) {
	if err := uc.admin.authorize(actor); err != nil {
		return nil, err
	}
	return uc.admin.load(ctx, userID)
}
