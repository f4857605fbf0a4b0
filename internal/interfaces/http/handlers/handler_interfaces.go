package handlers

import (
	"context"
	"time"

	"github.com/sevendesk/helpdesk/internal/application/user/usecases"
	"github.com/sevendesk/helpdesk/internal/domain/user"
)

type loginExecutor interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error)
}

type registerExecutor interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.AuthResult, error)
}

type currentUserExecutor interface {
	Execute(ctx context.Context, userID uint) (*user.User, error)
}

type updateProfileExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateProfileCommand) (*user.User, error)
}

type uploadAvatarExecutor interface {
	Execute(ctx context.Context, cmd usecases.UploadAvatarCommand) (string, error)
}

type listUsersExecutor interface {
	Execute(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
}

type createUserExecutor interface {
	Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*usecases.CreateUserResult, error)
}

type getUserExecutor interface {
	Execute(ctx context.Context, actor usecases.Actor, userID uint) (*user.User, error)
}

type updateUserExecutor interface {
	Execute(ctx context.Context, cmd usecases.UpdateUserCommand) (*user.User, error)
}

type deleteUserExecutor interface {
	Execute(ctx context.Context, actor usecases.Actor, userID uint) error
}

type resetPasswordExecutor interface {
	Execute(ctx context.Context, actor usecases.Actor, userID uint) (string, error)
}

// DatabaseClock reports the database server time.
type DatabaseClock interface {
	Now(ctx context.Context) (time.Time, error)
}
