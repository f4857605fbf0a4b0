package usecases

import (
	"context"
	"strings"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/constants"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type ListUsersQuery struct {
	Actor  Actor
	Search string
}

type ListUsersResult struct {
	Users []*user.User
	Total int64
}

type ListUsersUseCase struct {
	admin userAdmin
}

func NewListUsersUseCase(userRepo user.Repository, enforcer permission.PermissionEnforcer, logger logger.Interface) *ListUsersUseCase {
	return &ListUsersUseCase{admin: userAdmin{userRepo: userRepo, enforcer: enforcer, logger: logger}}
}

func (uc *ListUsersUseCase) Execute(ctx context.Context, query ListUsersQuery) (*ListUsersResult, error) {
	if err := uc.admin.authorize(query.Actor); err != nil {
		return nil, err
	}

	users, total, err := uc.admin.userRepo.List(ctx, user.ListFilter{
		Search: strings.TrimSpace(query.Search),
		Limit:  constants.MaxUserListSize,
	})
	if err != nil {
		return nil, err
	}
	return &ListUsersResult{Users: users, Total: total}, nil
}
