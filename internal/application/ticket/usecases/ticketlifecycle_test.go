package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevendesk/helpdesk/internal/application/ticket/dto"
	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	apperrors "github.com/sevendesk/helpdesk/internal/shared/errors"
)

func TestCreateTicketUseCase_Execute(t *testing.T) {
	var created *ticket.Ticket
	repo := &mockTicketRepository{
		CreateFunc: func(_ context.Context, tk *ticket.Ticket) error {
			created = tk
			return tk.SetID(100)
		},
	}
	users := newMockUserReader(newTestUser(t, 9, "Agente", authorization.RoleAgent))
	uc := NewCreateTicketUseCase(repo, users, testLogger)

	association := " acme "
	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       client(7),
		Title:       "  Erro ao logar: a<b e c>d  ",
		Description: "Recebo 500.",
		AssigneeID:  uintPtr(9),
		Associacao:  &association,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, uint(100), result.ID)
	assert.Equal(t, "Erro ao logar: a<b e c>d", result.Title)
	assert.Equal(t, "ABERTO", result.Status)
	assert.Equal(t, "MÉDIA", result.Priority)
	assert.Equal(t, uint(7), result.RequesterID)
	require.NotNil(t, result.AssigneeID)
	assert.Equal(t, uint(9), *result.AssigneeID)
	require.NotNil(t, result.Associacao)
	assert.Equal(t, "acme", *result.Associacao)
}

func TestCreateTicketUseCase_Validation(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, newMockUserReader(), testLogger)

	tests := []struct {
		name string
		cmd  CreateTicketCommand
		msg  string
	}{
		{"missing title", CreateTicketCommand{Description: "d"}, "title and description required"},
		{"missing description", CreateTicketCommand{Title: "t"}, "title and description required"},
		{"bad priority", CreateTicketCommand{Title: "t", Description: "d", Priority: "urgent"}, "invalid priority"},
		{"unknown assignee", CreateTicketCommand{Title: "t", Description: "d", AssigneeID: uintPtr(3)}, "assignee not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cmd.Actor = client(7)
			_, err := uc.Execute(context.Background(), tt.cmd)
			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeValidation, appErr.Type)
			assert.Equal(t, tt.msg, appErr.Message)
		})
	}
}

func TestDeleteTicketUseCase_Execute(t *testing.T) {
	var deleted []uint
	repo := &mockTicketRepository{
		DeleteFunc: func(_ context.Context, id uint) error {
			if id != 42 {
				return apperrors.NewNotFoundError("Not found")
			}
			deleted = append(deleted, id)
			return nil
		},
	}
	uc := NewDeleteTicketUseCase(repo, &mockEnforcer{}, testLogger)

	assert.True(t, apperrors.IsForbiddenError(uc.Execute(context.Background(), DeleteTicketCommand{Actor: agent(9), TicketID: 42})))
	assert.True(t, apperrors.IsForbiddenError(uc.Execute(context.Background(), DeleteTicketCommand{Actor: client(7), TicketID: 42})))
	assert.True(t, apperrors.IsNotFoundError(uc.Execute(context.Background(), DeleteTicketCommand{Actor: admin(1), TicketID: 43})))
	require.NoError(t, uc.Execute(context.Background(), DeleteTicketCommand{Actor: admin(1), TicketID: 42}))

	assert.Equal(t, []uint{42}, deleted)
}

func TestSignalTypingUseCase_PublishesOnTicketOnly(t *testing.T) {
	tk := newTestTicket(t, 42, 7, uintPtr(9))
	notifier := &mockNotifier{}
	users := newMockUserReader(newTestUser(t, 9, "Agente", authorization.RoleAgent))
	uc := NewSignalTypingUseCase(ticketRepoWith(tk), users, &mockEnforcer{}, notifier, testLogger)

	require.NoError(t, uc.Execute(context.Background(), SignalTypingCommand{Actor: agent(9), TicketID: 42, Typing: true}))

	events := notifier.published()
	require.Len(t, events, 1)
	assert.Equal(t, uint(42), events[0].Ticket)
	assert.Empty(t, events[0].Users)
	assert.Equal(t, dto.EventTyping, events[0].Event)

	typing := events[0].Payload.(dto.TypingEvent)
	assert.True(t, typing.Typing)
	assert.Equal(t, "Agente", typing.Name)
	assert.Equal(t, uint(9), typing.UserID)
}

func TestSignalTypingUseCase_ForeignClient(t *testing.T) {
	notifier := &mockNotifier{}
	uc := NewSignalTypingUseCase(ticketRepoWith(newTestTicket(t, 42, 7, nil)), newMockUserReader(), &mockEnforcer{}, notifier, testLogger)

	err := uc.Execute(context.Background(), SignalTypingCommand{Actor: client(8), TicketID: 42, Typing: true})
	assert.True(t, apperrors.IsForbiddenError(err))
	assert.Empty(t, notifier.published())
}

func TestAuthorizeTicketViewUseCase_Execute(t *testing.T) {
	uc := NewAuthorizeTicketViewUseCase(ticketRepoWith(newTestTicket(t, 42, 7, nil)), &mockEnforcer{}, testLogger)

	assert.NoError(t, uc.Execute(context.Background(), AuthorizeTicketViewQuery{Actor: client(7), TicketID: 42}))
	assert.NoError(t, uc.Execute(context.Background(), AuthorizeTicketViewQuery{Actor: agent(9), TicketID: 42}))
	assert.True(t, apperrors.IsForbiddenError(uc.Execute(context.Background(), AuthorizeTicketViewQuery{Actor: client(8), TicketID: 42})))
	assert.True(t, apperrors.IsNotFoundError(uc.Execute(context.Background(), AuthorizeTicketViewQuery{Actor: admin(1), TicketID: 1})))
}
