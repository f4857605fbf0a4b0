package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	vo "github.com/sevendesk/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
	"github.com/sevendesk/helpdesk/internal/shared/services/markdown"
)

var (
	testLogger   = logger.NewNopLogger()
	testRenderer = markdown.NewService()
)

func uintPtr(v uint) *uint { return &v }

func admin(id uint) Actor  { return Actor{UserID: id, Role: authorization.RoleAdmin} }
func agent(id uint) Actor  { return Actor{UserID: id, Role: authorization.RoleAgent} }
func client(id uint) Actor { return Actor{UserID: id, Role: authorization.RoleClient} }

func newTestUser(t *testing.T, id uint, name string, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, name, name+"@helpdesk.io", role.String(), "hash", nil, time.Now().Add(-48*time.Hour))
	require.NoError(t, err)
	return u
}

func newTestTicket(t *testing.T, id, requesterID uint, assigneeID *uint) *ticket.Ticket {
	t.Helper()
	created := time.Now().Add(-2 * time.Hour).UTC()
	tk, err := ticket.ReconstructTicket(
		id,
		"Erro ao logar",
		"Recebo 500 ao tentar autenticar.",
		vo.StatusOpen,
		vo.PriorityHigh,
		requesterID,
		assigneeID,
		nil,
		created,
		created,
	)
	require.NoError(t, err)
	return tk
}

func ticketRepoWith(tk *ticket.Ticket) *mockTicketRepository {
	return &mockTicketRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*ticket.Ticket, error) {
			if tk != nil && tk.ID() == id {
				return tk, nil
			}
			return nil, nil
		},
	}
}
