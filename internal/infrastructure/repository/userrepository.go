package repository

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/sevendesk/helpdesk/internal/infrastructure/persistence/models"
	"github.com/sevendesk/helpdesk/internal/shared/constants"
	"github.com/sevendesk/helpdesk/internal/shared/db"
	apperrors "github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

const msgEmailInUse = "email already in use"

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError(msgEmailInUse)
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := u.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created successfully", "id", model.ID, "role", model.Role)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("LOWER(email) = ?", user.NormalizeEmail(email)).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetByIDs returns the users that exist among ids, in no particular order.
func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return []*user.User{}, nil
	}

	var userModels []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id IN ?", ids).Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to get users by IDs", "count", len(ids), "error", err)
		return nil, fmt.Errorf("failed to get users: %w", err)
	}

	return r.mapper.ToDomainList(userModels)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"email":         model.Email,
			"role":          model.Role,
			"password_hash": model.PasswordHash,
			"avatar_url":    model.AvatarURL,
		})

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError(msgEmailInUse)
		}
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Not found")
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.UserModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete user", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Not found")
	}

	return nil
}

// List returns the newest users first together with the unpaged total.
func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	limit := filter.Limit
	if limit <= 0 || limit > constants.MaxUserListSize {
		limit = constants.MaxUserListSize
	}
	base := db.GetTxFromContext(ctx, r.db)
	search := db.ContainsFold(filter.Search, "name", "email")

	var (
		total      int64
		userModels []models.UserModel
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := base.WithContext(gctx).Model(&models.UserModel{}).Scopes(search).Count(&total).Error; err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := base.WithContext(gctx).
			Scopes(search, db.Paginate(0, limit)).
			Order("id DESC").
			Find(&userModels).Error
		if err != nil {
			return fmt.Errorf("failed to list users: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, 0, err
	}

	users, err := r.mapper.ToDomainList(userModels)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}
