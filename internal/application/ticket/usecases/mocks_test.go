package usecases

import (
	"context"
	"sync"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
)

type mockTicketRepository struct {
	CreateFunc  func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc  func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc  func(ctx context.Context, ticketID uint) error
	GetByIDFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc    func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error)
	CountFunc   func(ctx context.Context) (int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

type mockCommentRepository struct {
	CreateFunc         func(ctx context.Context, c *ticket.Comment) error
	ListByTicketIDFunc func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
}

func (m *mockCommentRepository) Create(ctx context.Context, c *ticket.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

// mockUserReader serves users from a fixed map.
type mockUserReader struct {
	users map[uint]*user.User
	err   error
}

func newMockUserReader(users ...*user.User) *mockUserReader {
	m := &mockUserReader{users: make(map[uint]*user.User, len(users))}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *mockUserReader) GetByID(_ context.Context, id uint) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users[id], nil
}

func (m *mockUserReader) GetByIDs(_ context.Context, ids []uint) ([]*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]*user.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

// mockEnforcer mirrors the production role matrix.
type mockEnforcer struct {
	EnforceFunc func(role authorization.UserRole, resource, action string) (bool, error)
}

func (m *mockEnforcer) Enforce(role authorization.UserRole, resource, action string) (bool, error) {
	if m.EnforceFunc != nil {
		return m.EnforceFunc(role, resource, action)
	}
	if resource != permission.ResourceTicket {
		return role == authorization.RoleAdmin, nil
	}
	switch action {
	case permission.ActionReadAny, permission.ActionUpdateAny:
		return role == authorization.RoleAdmin || role == authorization.RoleAgent, nil
	case permission.ActionDelete:
		return role == authorization.RoleAdmin, nil
	}
	return false, nil
}

type publishedEvent struct {
	Ticket   uint
	Users    []uint
	Excluded uint
	Event    string
	Payload  any
}

// mockNotifier records every publish in call order.
type mockNotifier struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (m *mockNotifier) PublishToTicket(ticketID uint, event string, payload any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, publishedEvent{Ticket: ticketID, Event: event, Payload: payload})
}

func (m *mockNotifier) PublishToUsers(userIDs []uint, event string, payload any, excludedUserID uint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, publishedEvent{Users: userIDs, Excluded: excludedUserID, Event: event, Payload: payload})
}

func (m *mockNotifier) published() []publishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]publishedEvent(nil), m.events...)
}

type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}
