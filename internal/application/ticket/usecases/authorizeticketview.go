package usecases

import (
	"context"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type AuthorizeTicketViewQuery struct {
	Actor    Actor
	TicketID uint
}

// AuthorizeTicketViewUseCase gates ticket stream subscriptions with the same
// rule as reading the ticket.
type AuthorizeTicketViewUseCase struct {
	access ticketAccess
}

func NewAuthorizeTicketViewUseCase(
	ticketRepo ticket.TicketRepository,
	enforcer permission.PermissionEnforcer,
	logger logger.Interface,
) *AuthorizeTicketViewUseCase {
	return &AuthorizeTicketViewUseCase{
		access: ticketAccess{ticketRepo: ticketRepo, enforcer: enforcer, logger: logger},
	}
}

func (uc *AuthorizeTicketViewUseCase) Execute(ctx context.Context, query AuthorizeTicketViewQuery) error {
	_, err := uc.access.loadReadable(ctx, query.Actor, query.TicketID)
	return err
}
