// Package seed fills an empty database with demo accounts and a sample ticket.
package seed

import (
	"context"
	"fmt"

	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	vo "github.com/sevendesk/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

// DemoPassword is shared by every seeded account.
const DemoPassword = "123456"

type demoAccount struct {
	name  string
	email string
	role  authorization.UserRole
}

var demoAccounts = []demoAccount{
	{"Admin", "admin@helpdesk.io", authorization.RoleAdmin},
	{"Agente", "agent@helpdesk.io", authorization.RoleAgent},
	{"Cliente", "client@helpdesk.io", authorization.RoleClient},
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}

type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Result reports what a run created; a second run reports nothing.
type Result struct {
	UsersCreated  int
	TicketCreated bool
}

type Seeder struct {
	userRepo    user.Repository
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	hasher      PasswordHasher
	txMgr       TransactionRunner
	logger      logger.Interface
}

func NewSeeder(
	userRepo user.Repository,
	ticketRepo ticket.TicketRepository,
	commentRepo ticket.CommentRepository,
	hasher PasswordHasher,
	txMgr TransactionRunner,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		userRepo:    userRepo,
		ticketRepo:  ticketRepo,
		commentRepo: commentRepo,
		hasher:      hasher,
		txMgr:       txMgr,
		logger:      logger,
	}
}

// Run is idempotent. Existing accounts keep their passwords and the sample
// ticket is only created while the ticket table is empty.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	err := s.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		accounts := make(map[authorization.UserRole]*user.User, len(demoAccounts))
		for _, acc := range demoAccounts {
			u, created, err := s.ensureUser(txCtx, acc)
			if err != nil {
				return err
			}
			if created {
				result.UsersCreated++
			}
			accounts[acc.role] = u
		}

		count, err := s.ticketRepo.Count(txCtx)
		if err != nil {
			return fmt.Errorf("failed to count tickets: %w", err)
		}
		if count > 0 {
			return nil
		}

		if err := s.createSampleTicket(txCtx, accounts[authorization.RoleClient], accounts[authorization.RoleAgent]); err != nil {
			return err
		}
		result.TicketCreated = true
		return nil
	})
	if err != nil {
		s.logger.Errorw("seed failed", "error", err)
		return nil, err
	}

	s.logger.Infow("seed finished", "users_created", result.UsersCreated, "ticket_created", result.TicketCreated)
	return result, nil
}

func (s *Seeder) ensureUser(ctx context.Context, acc demoAccount) (*user.User, bool, error) {
	existing, err := s.userRepo.GetByEmail(ctx, acc.email)
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up %s: %w", acc.email, err)
	}
	if existing != nil {
		return existing, false, nil
	}

	hash, err := s.hasher.Hash(DemoPassword)
	if err != nil {
		return nil, false, err
	}
	u, err := user.NewUser(acc.name, acc.email, acc.role, hash)
	if err != nil {
		return nil, false, err
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, false, fmt.Errorf("failed to create %s: %w", acc.email, err)
	}
	return u, true, nil
}

func (s *Seeder) createSampleTicket(ctx context.Context, client, agent *user.User) error {
	t, err := ticket.NewTicket("Erro ao logar", "Recebo 500 ao tentar autenticar.", vo.PriorityHigh, client.ID())
	if err != nil {
		return err
	}
	agentID := agent.ID()
	if err := t.AssignTo(&agentID); err != nil {
		return err
	}
	if err := s.ticketRepo.Create(ctx, t); err != nil {
		return fmt.Errorf("failed to create sample ticket: %w", err)
	}

	thread := []struct {
		author uint
		body   string
	}{
		{agent.ID(), "Pode enviar navegador e horário?"},
		{client.ID(), "Chrome, 10:20."},
	}
	for _, msg := range thread {
		c, err := ticket.NewComment(t.ID(), msg.author, msg.body)
		if err != nil {
			return err
		}
		if err := s.commentRepo.Create(ctx, c); err != nil {
			return fmt.Errorf("failed to create sample comment: %w", err)
		}
	}
	return nil
}
