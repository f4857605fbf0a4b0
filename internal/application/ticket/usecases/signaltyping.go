package usecases

import (
	"context"
	"fmt"

	"github.com/sevendesk/helpdesk/internal/application/ticket/dto"
	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/shared/biztime"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

type SignalTypingCommand struct {
	Actor    Actor
	TicketID uint
	Typing   bool
}

// SignalTypingUseCase relays typing indicators to the viewers of one ticket.
// Global streams never receive them.
type SignalTypingUseCase struct {
	access   ticketAccess
	users    UserReader
	notifier TicketNotifier
	logger   logger.Interface
}

func NewSignalTypingUseCase(
	ticketRepo ticket.TicketRepository,
	users UserReader,
	enforcer permission.PermissionEnforcer,
	notifier TicketNotifier,
	logger logger.Interface,
) *SignalTypingUseCase {
	return &SignalTypingUseCase{
		access:   ticketAccess{ticketRepo: ticketRepo, enforcer: enforcer, logger: logger},
		users:    users,
		notifier: notifier,
		logger:   logger,
	}
}

func (uc *SignalTypingUseCase) Execute(ctx context.Context, cmd SignalTypingCommand) error {
	t, err := uc.access.loadReadable(ctx, cmd.Actor, cmd.TicketID)
	if err != nil {
		return err
	}

	u, err := uc.users.GetByID(ctx, cmd.Actor.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load typing user", "user_id", cmd.Actor.UserID, "error", err)
		return fmt.Errorf("failed to load user: %w", err)
	}

	event := dto.TypingEvent{
		TicketID: t.ID(),
		Typing:   cmd.Typing,
		UserID:   cmd.Actor.UserID,
		At:       biztime.UnixMilli(),
	}
	if u != nil {
		event.Name = u.Name()
		event.AvatarURL = u.AvatarURL()
	}

	uc.notifier.PublishToTicket(t.ID(), dto.EventTyping, event)
	return nil
}
