package usecases

import (
	"context"
	"fmt"

	"github.com/sevendesk/helpdesk/internal/application/ticket/dto"
	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/utils/setutil"
)

type ListCommentsQuery struct {
	Actor    Actor
	TicketID uint
}

type ListCommentsUseCase struct {
	access      ticketAccess
	commentRepo ticket.CommentRepository
	users       UserReader
	renderer    TextRenderer
	logger      logger.Interface
}

func NewListCommentsUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	users UserReader,
	enforcer permission.PermissionEnforcer,
	renderer TextRenderer,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		access:      ticketAccess{ticketRepo: ticketRepo, enforcer: enforcer, logger: logger},
		commentRepo: commentRepo,
		users:       users,
		renderer:    renderer,
		logger:      logger,
	}
}

// Execute returns the conversation oldest first.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]dto.CommentDTO, error) {
	t, err := uc.access.loadReadable(ctx, query.Actor, query.TicketID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list comments", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	authorIDs := setutil.NewIDSet()
	for _, c := range comments {
		authorIDs.Add(c.AuthorID())
	}
	authors, err := usersByID(ctx, uc.users, authorIDs.Slice())
	if err != nil {
		uc.logger.Errorw("failed to resolve comment authors", "ticket_id", t.ID(), "error", err)
		return nil, err
	}

	result := make([]dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		result = append(result, dto.ToCommentDTO(c, authors[c.AuthorID()], uc.renderer.ToHTML(c.Body())))
	}
	return result, nil
}
