package http

import (
	"time"

	"github.com/sevendesk/helpdesk/internal/interfaces/http/handlers"
	streamHandlers "github.com/sevendesk/helpdesk/internal/interfaces/http/handlers/stream"
	ticketHandlers "github.com/sevendesk/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/sevendesk/helpdesk/internal/shared/version"
)

// allHandlers holds all HTTP handlers.
type allHandlers struct {
	healthHandler  *handlers.HealthHandler
	authHandler    *handlers.AuthHandler
	profileHandler *handlers.ProfileHandler
	userHandler    *handlers.UserHandler
	ticketHandler  *ticketHandlers.Handler
	streamHandler  *streamHandlers.Handler
}

func (c *Container) newHandlers() *allHandlers {
	u := c.ucs
	log := c.log

	return &allHandlers{
		healthHandler:  handlers.NewHealthHandler(c.svcs.healthChecker, version.Version, log),
		authHandler:    handlers.NewAuthHandler(u.loginUC, u.registerUC, u.currentUserUC, log),
		profileHandler: handlers.NewProfileHandler(u.updateProfileUC, u.uploadAvatarUC, log),
		userHandler: handlers.NewUserHandler(
			u.listUsersUC, u.createUserUC, u.getUserUC,
			u.updateUserUC, u.deleteUserUC, u.resetPasswordUC, log,
		),
		ticketHandler: ticketHandlers.NewHandler(
			u.listTicketsUC, u.createTicketUC, u.getTicketUC, u.updateTicketUC,
			u.deleteTicketUC, u.listCommentsUC, u.addCommentUC, u.signalTypingUC, log,
		),
		streamHandler: streamHandlers.NewHandler(
			c.registry,
			u.authorizeTicketViewUC,
			time.Duration(c.cfg.Stream.KeepaliveSeconds)*time.Second,
			log.Named("sse"),
		),
	}
}
