package repository

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/sevendesk/helpdesk/internal/infrastructure/persistence/models"
	"github.com/sevendesk/helpdesk/internal/shared/constants"
	"github.com/sevendesk/helpdesk/internal/shared/db"
	apperrors "github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(db *gorm.DB, logger logger.Interface) ticket.TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create ticket", "requester_id", model.RequesterID, "error", err)
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// Update writes every mutable column, including NULLs for a cleared
// assignee or association.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":       model.Title,
			"description": model.Description,
			"status":      model.Status,
			"priority":    model.Priority,
			"assignee_id": model.AssigneeID,
			"associacao":  model.Associacao,
			"updated_at":  model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update ticket", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Not found")
	}

	return nil
}

// Delete removes the ticket and its comments.
func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ticket_id = ?", id).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete ticket comments: %w", err)
		}

		result := tx.Delete(&models.TicketModel{}, id)
		if result.Error != nil {
			r.logger.Errorw("failed to delete ticket", "id", id, "error", result.Error)
			return fmt.Errorf("failed to delete ticket: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("Not found")
		}
		return nil
	})
}

func (r *TicketRepository) GetByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get ticket", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// List computes the page and the total from the same filter scope.
func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}

	base := db.GetTxFromContext(ctx, r.db)
	where := filterScope(filter)

	var (
		total        int64
		ticketModels []models.TicketModel
	)

	// Each goroutine writes to a distinct variable; Wait orders the reads below.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := base.WithContext(gctx).Model(&models.TicketModel{}).Scopes(where).Count(&total).Error; err != nil {
			return fmt.Errorf("failed to count tickets: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		err := base.WithContext(gctx).
			Scopes(where, db.Paginate((page-1)*pageSize, pageSize)).
			Order("updated_at DESC").
			Order("id DESC").
			Find(&ticketModels).Error
		if err != nil {
			return fmt.Errorf("failed to list tickets: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		r.logger.Errorw("failed to list tickets", "error", err)
		return nil, 0, err
	}

	tickets, err := r.mapper.ToDomainList(ticketModels)
	if err != nil {
		return nil, 0, err
	}
	return tickets, total, nil
}

func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := db.GetTxFromContext(ctx, r.db).Model(&models.TicketModel{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return total, nil
}

func filterScope(filter ticket.TicketFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if filter.RequesterID != nil {
			tx = tx.Where("requester_id = ?", *filter.RequesterID)
		}
		if filter.Status != nil {
			tx = tx.Where("status = ?", filter.Status.String())
		}
		if filter.Priority != nil {
			tx = tx.Where("priority = ?", filter.Priority.String())
		}
		if filter.AssigneeID != nil {
			tx = tx.Where("assignee_id = ?", *filter.AssigneeID)
		}
		return tx.Scopes(
			db.ContainsFold(filter.Search, "title", "description"),
			db.ContainsFold(filter.Association, "associacao"),
		)
	}
}
