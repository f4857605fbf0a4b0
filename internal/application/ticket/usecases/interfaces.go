package usecases

import (
	"context"

	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
)

type Actor = authorization.Actor

// TicketNotifier delivers live events. Delivery is best effort and never fails
// the calling use case.
type TicketNotifier interface {
	PublishToTicket(ticketID uint, event string, payload any)
	PublishToUsers(userIDs []uint, event string, payload any, excludedUserID uint)
}

// UserReader resolves display data for ticket participants and comment authors.
type UserReader interface {
	GetByID(ctx context.Context, id uint) (*user.User, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error)
}

// TextRenderer renders comment bodies to safe HTML. Stored text is kept as typed.
type TextRenderer interface {
	ToHTML(source string) string
}

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
