package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/sevendesk/helpdesk/internal/infrastructure/persistence/models"
	"github.com/sevendesk/helpdesk/internal/shared/db"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewCommentRepository(db *gorm.DB, logger logger.Interface) ticket.CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create comment", "ticket_id", model.TicketID, "error", err)
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return c.SetID(model.ID)
}

// ListByTicketID returns comments oldest first.
func (r *CommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&commentModels).Error
	if err != nil {
		r.logger.Errorw("failed to list comments", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]*ticket.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}
