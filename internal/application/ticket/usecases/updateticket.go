package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/sevendesk/helpdesk/internal/application/ticket/dto"
	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	vo "github.com/sevendesk/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/nullable"
)

// UpdateTicketCommand carries a partial update. Empty title, description,
// status or priority strings count as absent.
type UpdateTicketCommand struct {
	Actor       Actor
	TicketID    uint
	Title       nullable.Field[string]
	Description nullable.Field[string]
	Status      nullable.Field[string]
	Priority    nullable.Field[string]
	Associacao  nullable.Field[string]
	AssigneeID  nullable.Field[uint]
}

type UpdateTicketUseCase struct {
	access ticketAccess
	users  UserReader
	logger logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	users UserReader,
	enforcer permission.PermissionEnforcer,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		access: ticketAccess{ticketRepo: ticketRepo, enforcer: enforcer, logger: logger},
		users:  users,
		logger: logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	t, err := uc.access.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError(msgNotFound)
	}

	updateAny, err := uc.access.allowed(cmd.Actor, permission.ActionUpdateAny)
	if err != nil {
		return nil, err
	}

	if updateAny {
		err = uc.applyStaffUpdate(ctx, t, cmd)
	} else {
		err = uc.applyRequesterUpdate(t, cmd)
	}
	if err != nil {
		return nil, err
	}

	t.Touch()
	if err := uc.access.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", t.ID(), "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID(), "status", t.Status())
	result := dto.ToTicketDTO(t)
	return &result, nil
}

// applyRequesterUpdate lets the requester reword their own ticket. Any other
// member of the request is ignored.
func (uc *UpdateTicketUseCase) applyRequesterUpdate(t *ticket.Ticket, cmd UpdateTicketCommand) error {
	if !t.IsRequestedBy(cmd.Actor.UserID) {
		uc.logger.Warnw("ticket update denied", "ticket_id", t.ID(), "user_id", cmd.Actor.UserID)
		return errors.NewForbiddenError(msgForbidden)
	}

	title, hasTitle := uc.text(cmd.Title)
	description, hasDescription := uc.text(cmd.Description)
	if !hasTitle && !hasDescription {
		return errors.NewValidationError("Nothing to update")
	}
	return uc.applyText(t, title, hasTitle, description, hasDescription)
}

func (uc *UpdateTicketUseCase) applyStaffUpdate(ctx context.Context, t *ticket.Ticket, cmd UpdateTicketCommand) error {
	title, hasTitle := uc.text(cmd.Title)
	description, hasDescription := uc.text(cmd.Description)
	if err := uc.applyText(t, title, hasTitle, description, hasDescription); err != nil {
		return err
	}

	if cmd.Status.HasValue() && cmd.Status.Value != "" {
		status, err := vo.NewTicketStatus(cmd.Status.Value)
		if err != nil {
			return errors.NewValidationError("invalid status")
		}
		if err := t.ChangeStatus(status); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Priority.HasValue() && cmd.Priority.Value != "" {
		priority, err := vo.NewPriority(cmd.Priority.Value)
		if err != nil {
			return errors.NewValidationError("invalid priority")
		}
		if err := t.ChangePriority(priority); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.Associacao.Set {
		if err := t.SetAssociation(cmd.Associacao.Ptr()); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}

	if cmd.AssigneeID.Set {
		assignee := cmd.AssigneeID.Ptr()
		if assignee != nil {
			if err := ensureAssigneeExists(ctx, uc.users, *assignee); err != nil {
				return err
			}
		}
		if err := t.AssignTo(assignee); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	return nil
}

func (uc *UpdateTicketUseCase) text(f nullable.Field[string]) (string, bool) {
	if !f.HasValue() {
		return "", false
	}
	v := strings.TrimSpace(f.Value)
	return v, v != ""
}

func (uc *UpdateTicketUseCase) applyText(t *ticket.Ticket, title string, hasTitle bool, description string, hasDescription bool) error {
	if hasTitle {
		if err := t.UpdateTitle(title); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	if hasDescription {
		if err := t.UpdateDescription(description); err != nil {
			return errors.NewValidationError(err.Error())
		}
	}
	return nil
}
