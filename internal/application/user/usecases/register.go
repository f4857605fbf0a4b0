package usecases

import (
	"context"
	"fmt"

	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/utils"
)

type RegisterCommand struct {
	Name     string `json:"name" validate:"notblank,max=120"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute creates a CLIENTE account and signs it in.
func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*AuthResult, error) {
	cmd.Email = user.NormalizeEmail(cmd.Email)
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	if err := ensureEmailFree(ctx, uc.userRepo, cmd.Email, 0); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := user.NewUser(cmd.Name, cmd.Email, authorization.RoleClient, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := uc.tokens.Generate(u.ID(), u.Email(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to sign token", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	uc.logger.Infow("user registered", "user_id", u.ID())
	return &AuthResult{Token: token, User: u}, nil
}
