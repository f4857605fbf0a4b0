package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

// AuthResult is a freshly signed token together with its owner.
type AuthResult struct {
	Token string
	User  *user.User
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute answers an unknown e-mail and a wrong password with the same error.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*AuthResult, error) {
	email := user.NormalizeEmail(cmd.Email)
	if email == "" || strings.TrimSpace(cmd.Password) == "" {
		return nil, errors.NewValidationError("email and password required")
	}

	u, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		uc.logger.Debugw("login rejected", "reason", "unknown email")
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := uc.hasher.Verify(cmd.Password, u.PasswordHash()); err != nil {
		uc.logger.Debugw("login rejected", "reason", "password mismatch", "user_id", u.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	token, err := uc.tokens.Generate(u.ID(), u.Email(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to sign token", "user_id", u.ID(), "error", err)
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", u.ID(), "role", u.Role())
	return &AuthResult{Token: token, User: u}, nil
}
