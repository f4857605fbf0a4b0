package valueobjects

import (
	"fmt"

	"github.com/sevendesk/helpdesk/internal/shared/utils/enumutil"
)

type TicketStatus string

const (
	StatusOpen     TicketStatus = "ABERTO"
	StatusPending  TicketStatus = "PENDENTE"
	StatusResolved TicketStatus = "RESOLVIDO"
	StatusClosed   TicketStatus = "FECHADO"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:     true,
	StatusPending:  true,
	StatusResolved: true,
	StatusClosed:   true,
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// IsFinal reports whether the ticket no longer expects work.
func (ts TicketStatus) IsFinal() bool {
	return ts == StatusResolved || ts == StatusClosed
}

// NewTicketStatus parses s case-insensitively.
func NewTicketStatus(s string) (TicketStatus, error) {
	status := TicketStatus(enumutil.Normalize(s))
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}
