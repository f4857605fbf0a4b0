package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type CreateUserCommand struct {
	Actor    Actor
	Name     string
	Email    string
	Role     string
	Password *string
}

type CreateUserResult struct {
	User *user.User
	// GeneratedPassword is set only when the caller supplied no password.
	GeneratedPassword *string
}

type CreateUserUseCase struct {
	admin     userAdmin
	hasher    PasswordHasher
	generator PasswordGenerator
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	enforcer permission.PermissionEnforcer,
	hasher PasswordHasher,
	generator PasswordGenerator,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		admin:     userAdmin{userRepo: userRepo, enforcer: enforcer, logger: logger},
		hasher:    hasher,
		generator: generator,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*CreateUserResult, error) {
	if err := uc.admin.authorize(cmd.Actor); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cmd.Name) == "" || strings.TrimSpace(cmd.Email) == "" {
		return nil, errors.NewValidationError("name and email required")
	}

	role := authorization.RoleClient
	if strings.TrimSpace(cmd.Role) != "" {
		parsed, ok := authorization.ParseUserRole(cmd.Role)
		if !ok {
			return nil, errors.NewValidationError("invalid role")
		}
		role = parsed
	}

	email := user.NormalizeEmail(cmd.Email)
	if err := ensureEmailFree(ctx, uc.admin.userRepo, email, 0); err != nil {
		return nil, err
	}

	var generated *string
	plain := ""
	if cmd.Password != nil {
		plain = *cmd.Password
	}
	if plain == "" {
		pw, err := uc.generator.Generate()
		if err != nil {
			uc.admin.logger.Errorw("failed to generate password", "error", err)
			return nil, fmt.Errorf("failed to generate password: %w", err)
		}
		plain = pw
		generated = &pw
	}

	hash, err := uc.hasher.Hash(plain)
	if err != nil {
		uc.admin.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(cmd.Name, email, role, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.admin.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	uc.admin.logger.Infow("user created by admin", "user_id", u.ID(), "role", u.Role(), "admin_id", cmd.Actor.UserID)
	return &CreateUserResult{User: u, GeneratedPassword: generated}, nil
}
