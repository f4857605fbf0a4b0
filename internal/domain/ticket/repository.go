package ticket

import (
	"context"

	vo "github.com/sevendesk/helpdesk/internal/domain/ticket/valueobjects"
)

// TicketRepository persists tickets. GetByID returns (nil, nil) when the
// ticket does not exist.
type TicketRepository interface {
	Create(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	Count(ctx context.Context) (int64, error)
}

// TicketFilter is applied identically to the page and the total count.
// Results are ordered by most recently updated first.
type TicketFilter struct {
	Search      string
	Status      *vo.TicketStatus
	Priority    *vo.Priority
	AssigneeID  *uint
	Association string
	RequesterID *uint
	Page        int
	PageSize    int
}

type CommentRepository interface {
	Create(ctx context.Context, comment *Comment) error
	ListByTicketID(ctx context.Context, ticketID uint) ([]*Comment, error)
}
