package usecases

import (
	"context"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    Actor
	TicketID uint
}

type DeleteTicketUseCase struct {
	access ticketAccess
	logger logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	enforcer permission.PermissionEnforcer,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		access: ticketAccess{ticketRepo: ticketRepo, enforcer: enforcer, logger: logger},
		logger: logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	ok, err := uc.access.allowed(cmd.Actor, permission.ActionDelete)
	if err != nil {
		return err
	}
	if !ok {
		uc.logger.Warnw("ticket delete denied", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID, "role", cmd.Actor.Role)
		return errors.NewForbiddenError(msgForbidden)
	}

	if err := uc.access.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		}
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
