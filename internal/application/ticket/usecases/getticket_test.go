package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	apperrors "github.com/sevendesk/helpdesk/internal/shared/errors"
)

func conversation(t *testing.T, ticketID uint) []*ticket.Comment {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	c1, err := ticket.ReconstructComment(1, ticketID, 9, "Pode enviar navegador e horário?", base)
	require.NoError(t, err)
	c2, err := ticket.ReconstructComment(2, ticketID, 7, "Chrome, **10:20**.", base.Add(time.Minute))
	require.NoError(t, err)
	c3, err := ticket.ReconstructComment(3, ticketID, 12, "Resolvido no deploy.", base.Add(2*time.Minute))
	require.NoError(t, err)
	return []*ticket.Comment{c1, c2, c3}
}

func TestGetTicketUseCase_Detail(t *testing.T) {
	tk := newTestTicket(t, 42, 7, uintPtr(9))
	users := newMockUserReader(
		newTestUser(t, 7, "Cliente", authorization.RoleClient),
		newTestUser(t, 9, "Agente", authorization.RoleAgent),
		newTestUser(t, 12, "Admin", authorization.RoleAdmin),
	)
	comments := &mockCommentRepository{
		ListByTicketIDFunc: func(_ context.Context, id uint) ([]*ticket.Comment, error) {
			return conversation(t, id), nil
		},
	}
	uc := NewGetTicketUseCase(ticketRepoWith(tk), comments, users, &mockEnforcer{}, testRenderer, testLogger)

	detail, err := uc.Execute(context.Background(), GetTicketQuery{Actor: client(7), TicketID: 42})
	require.NoError(t, err)

	assert.Equal(t, uint(42), detail.ID)
	require.NotNil(t, detail.Requester)
	assert.Equal(t, "Cliente", detail.Requester.Name)
	require.NotNil(t, detail.Assignee)
	assert.Equal(t, "Agente", detail.Assignee.Name)

	require.Len(t, detail.Comments, 3)
	assert.Equal(t, uint(1), detail.Comments[0].ID)
	assert.Equal(t, "Agente", detail.Comments[0].Author.Name)
	assert.Contains(t, detail.Comments[1].BodyHTML, "<strong>10:20</strong>")
	require.NotNil(t, detail.Comments[2].Author)
	assert.Equal(t, "Admin", detail.Comments[2].Author.Name)
}

func TestGetTicketUseCase_Access(t *testing.T) {
	tk := newTestTicket(t, 42, 7, nil)

	tests := []struct {
		name    string
		actor   Actor
		id      uint
		wantErr func(error) bool
	}{
		{"requester", client(7), 42, nil},
		{"agent", agent(9), 42, nil},
		{"admin", admin(1), 42, nil},
		{"other client", client(8), 42, apperrors.IsForbiddenError},
		{"missing ticket", admin(1), 43, apperrors.IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewGetTicketUseCase(ticketRepoWith(tk), &mockCommentRepository{}, newMockUserReader(), &mockEnforcer{}, testRenderer, testLogger)
			detail, err := uc.Execute(context.Background(), GetTicketQuery{Actor: tt.actor, TicketID: tt.id})
			if tt.wantErr != nil {
				assert.True(t, tt.wantErr(err), "unexpected error %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, detail.Comments)
			assert.Nil(t, detail.Assignee)
		})
	}
}

func TestGetTicketUseCase_StoreFailure(t *testing.T) {
	tk := newTestTicket(t, 42, 7, nil)
	comments := &mockCommentRepository{
		ListByTicketIDFunc: func(context.Context, uint) ([]*ticket.Comment, error) {
			return nil, errors.New("timeout")
		},
	}
	uc := NewGetTicketUseCase(ticketRepoWith(tk), comments, newMockUserReader(), &mockEnforcer{}, testRenderer, testLogger)

	_, err := uc.Execute(context.Background(), GetTicketQuery{Actor: admin(1), TicketID: 42})
	require.Error(t, err)
	assert.Nil(t, apperrors.GetAppError(err))
}

func TestListCommentsUseCase_Execute(t *testing.T) {
	tk := newTestTicket(t, 42, 7, uintPtr(9))
	comments := &mockCommentRepository{
		ListByTicketIDFunc: func(_ context.Context, id uint) ([]*ticket.Comment, error) {
			return conversation(t, id), nil
		},
	}
	users := newMockUserReader(newTestUser(t, 7, "Cliente", authorization.RoleClient), newTestUser(t, 9, "Agente", authorization.RoleAgent))
	uc := NewListCommentsUseCase(ticketRepoWith(tk), comments, users, &mockEnforcer{}, testRenderer, testLogger)

	result, err := uc.Execute(context.Background(), ListCommentsQuery{Actor: agent(9), TicketID: 42})
	require.NoError(t, err)
	require.Len(t, result, 3)
	assert.Equal(t, uint(42), result[0].TicketID)
	assert.Equal(t, "Agente", result[0].Author.Name)
	assert.Nil(t, result[2].Author)

	_, err = uc.Execute(context.Background(), ListCommentsQuery{Actor: client(8), TicketID: 42})
	assert.True(t, apperrors.IsForbiddenError(err))
}
