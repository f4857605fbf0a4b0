package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/sevendesk/helpdesk/internal/application/ticket/dto"
	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	vo "github.com/sevendesk/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor       Actor
	Title       string
	Description string
	Priority    string
	AssigneeID  *uint
	Associacao  *string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	users      UserReader
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	users UserReader,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		users:      users,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.Actor.UserID)

	title := strings.TrimSpace(cmd.Title)
	description := strings.TrimSpace(cmd.Description)
	if title == "" || description == "" {
		return nil, errors.NewValidationError("title and description required")
	}

	var priority vo.Priority
	if cmd.Priority != "" {
		p, err := vo.NewPriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("invalid priority")
		}
		priority = p
	}

	t, err := ticket.NewTicket(title, description, priority, cmd.Actor.UserID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.AssigneeID != nil {
		if err := ensureAssigneeExists(ctx, uc.users, *cmd.AssigneeID); err != nil {
			return nil, err
		}
		if err := t.AssignTo(cmd.AssigneeID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if err := t.SetAssociation(cmd.Associacao); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Create(ctx, t); err != nil {
		uc.logger.Errorw("failed to create ticket", "error", err)
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", t.ID(), "requester_id", t.RequesterID())
	result := dto.ToTicketDTO(t)
	return &result, nil
}

func ensureAssigneeExists(ctx context.Context, users UserReader, assigneeID uint) error {
	if assigneeID == 0 {
		return errors.NewValidationError("invalid assigneeId")
	}
	u, err := users.GetByID(ctx, assigneeID)
	if err != nil {
		return fmt.Errorf("failed to load assignee: %w", err)
	}
	if u == nil {
		return errors.NewValidationError("assignee not found")
	}
	return nil
}
