package usecases

import (
	"context"
	"fmt"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/errors"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

const (
	msgNotFound  = "Not found"
	msgForbidden = "Forbidden"
)

// ticketAccess combines the role policy with ticket ownership.
type ticketAccess struct {
	ticketRepo ticket.TicketRepository
	enforcer   permission.PermissionEnforcer
	logger     logger.Interface
}

func (a ticketAccess) allowed(actor Actor, action string) (bool, error) {
	ok, err := a.enforcer.Enforce(actor.Role, permission.ResourceTicket, action)
	if err != nil {
		return false, fmt.Errorf("failed to check permission: %w", err)
	}
	return ok, nil
}

// canRead reports whether actor may see t: either the role reads every
// ticket or the actor requested it.
func (a ticketAccess) canRead(actor Actor, t *ticket.Ticket) (bool, error) {
	if t.IsRequestedBy(actor.UserID) {
		return true, nil
	}
	return a.allowed(actor, permission.ActionReadAny)
}

// loadReadable returns the ticket or a not-found / forbidden AppError.
func (a ticketAccess) loadReadable(ctx context.Context, actor Actor, ticketID uint) (*ticket.Ticket, error) {
	t, err := a.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		a.logger.Errorw("failed to load ticket", "ticket_id", ticketID, "error", err)
		return nil, fmt.Errorf("failed to load ticket: %w", err)
	}
	if t == nil {
		return nil, errors.NewNotFoundError(msgNotFound)
	}

	ok, err := a.canRead(actor, t)
	if err != nil {
		return nil, err
	}
	if !ok {
		a.logger.Warnw("ticket access denied", "ticket_id", ticketID, "user_id", actor.UserID, "role", actor.Role)
		return nil, errors.NewForbiddenError(msgForbidden)
	}
	return t, nil
}

// usersByID resolves ids into a lookup map. Unknown ids are simply absent.
func usersByID(ctx context.Context, users UserReader, ids []uint) (map[uint]*user.User, error) {
	out := make(map[uint]*user.User, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	list, err := users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range list {
		out[u.ID()] = u
	}
	return out, nil
}
