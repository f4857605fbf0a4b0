package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/sevendesk/helpdesk/internal/application/ticket/dto"
	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/shared/biztime"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	Actor    Actor
	TicketID uint
	Body     string
}

type AddCommentUseCase struct {
	access      ticketAccess
	commentRepo ticket.CommentRepository
	users       UserReader
	txMgr       TransactionRunner
	notifier    TicketNotifier
	renderer    TextRenderer
	logger      logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	users UserReader,
	enforcer permission.PermissionEnforcer,
	txMgr TransactionRunner,
	notifier TicketNotifier,
	renderer TextRenderer,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		access:      ticketAccess{ticketRepo: ticketRepo, enforcer: enforcer, logger: logger},
		commentRepo: commentRepo,
		users:       users,
		txMgr:       txMgr,
		notifier:    notifier,
		renderer:    renderer,
		logger:      logger,
	}
}

// Execute stores the comment, bumps the ticket and then notifies, in order:
// the ticket stream gets the comment and a typing-stopped signal for the
// author, and the participants' global streams get the comment, minus the author.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	uc.logger.Infow("executing add comment use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	body := strings.TrimSpace(cmd.Body)
	if body == "" {
		return nil, errors.NewValidationError("body required")
	}

	t, err := uc.access.loadReadable(ctx, cmd.Actor, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	comment, err := ticket.NewComment(t.ID(), cmd.Actor.UserID, body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.commentRepo.Create(txCtx, comment); err != nil {
			uc.logger.Errorw("failed to save comment", "error", err)
			return fmt.Errorf("failed to save comment: %w", err)
		}

		t.Touch()
		if err := uc.access.ticketRepo.Update(txCtx, t); err != nil {
			uc.logger.Errorw("failed to update ticket", "error", err)
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	author, err := uc.users.GetByID(ctx, cmd.Actor.UserID)
	if err != nil {
		// The comment is stored; fall back to an author-less payload.
		uc.logger.Warnw("failed to load comment author", "user_id", cmd.Actor.UserID, "error", err)
		author = nil
	}

	result := dto.ToCommentDTO(comment, author, uc.renderer.ToHTML(comment.Body()))
	if result.Author == nil {
		result.Author = &dto.UserSummary{ID: cmd.Actor.UserID}
	}

	uc.notifier.PublishToTicket(t.ID(), dto.EventComment, result)
	uc.notifier.PublishToTicket(t.ID(), dto.EventTyping, dto.TypingEvent{
		TicketID:  t.ID(),
		Typing:    false,
		UserID:    cmd.Actor.UserID,
		Name:      result.Author.Name,
		AvatarURL: result.Author.AvatarURL,
		At:        biztime.UnixMilli(),
	})
	uc.notifier.PublishToUsers(t.Participants(), dto.EventComment, dto.CommentNotification{
		TicketID: t.ID(),
		Comment:  result,
	}, cmd.Actor.UserID)

	uc.logger.Infow("comment added successfully", "comment_id", comment.ID(), "ticket_id", t.ID())
	return &result, nil
}
