package http

import (
	ticketUsecases "github.com/sevendesk/helpdesk/internal/application/ticket/usecases"
	"github.com/sevendesk/helpdesk/internal/application/user/usecases"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Auth / profile
	loginUC         *usecases.LoginUseCase
	registerUC      *usecases.RegisterUseCase
	currentUserUC   *usecases.GetCurrentUserUseCase
	updateProfileUC *usecases.UpdateProfileUseCase
	uploadAvatarUC  *usecases.UploadAvatarUseCase

	// User administration
	listUsersUC     *usecases.ListUsersUseCase
	createUserUC    *usecases.CreateUserUseCase
	getUserUC       *usecases.GetUserUseCase
	updateUserUC    *usecases.UpdateUserUseCase
	deleteUserUC    *usecases.DeleteUserUseCase
	resetPasswordUC *usecases.ResetPasswordUseCase

	// Tickets
	listTicketsUC         *ticketUsecases.ListTicketsUseCase
	createTicketUC        *ticketUsecases.CreateTicketUseCase
	getTicketUC           *ticketUsecases.GetTicketUseCase
	updateTicketUC        *ticketUsecases.UpdateTicketUseCase
	deleteTicketUC        *ticketUsecases.DeleteTicketUseCase
	listCommentsUC        *ticketUsecases.ListCommentsUseCase
	addCommentUC          *ticketUsecases.AddCommentUseCase
	signalTypingUC        *ticketUsecases.SignalTypingUseCase
	authorizeTicketViewUC *ticketUsecases.AuthorizeTicketViewUseCase
}

func (c *Container) newUseCases() *allUseCases {
	r := c.repos
	s := c.svcs
	log := c.log

	return &allUseCases{
		loginUC:         usecases.NewLoginUseCase(r.userRepo, s.hasher, s.jwtService, log),
		registerUC:      usecases.NewRegisterUseCase(r.userRepo, s.hasher, s.jwtService, log),
		currentUserUC:   usecases.NewGetCurrentUserUseCase(r.userRepo, log),
		updateProfileUC: usecases.NewUpdateProfileUseCase(r.userRepo, log),
		uploadAvatarUC:  usecases.NewUploadAvatarUseCase(r.userRepo, s.avatars, s.store, log),

		listUsersUC:     usecases.NewListUsersUseCase(r.userRepo, s.enforcer, log),
		createUserUC:    usecases.NewCreateUserUseCase(r.userRepo, s.enforcer, s.hasher, s.passwords, log),
		getUserUC:       usecases.NewGetUserUseCase(r.userRepo, s.enforcer, log),
		updateUserUC:    usecases.NewUpdateUserUseCase(r.userRepo, s.enforcer, log),
		deleteUserUC:    usecases.NewDeleteUserUseCase(r.userRepo, s.enforcer, log),
		resetPasswordUC: usecases.NewResetPasswordUseCase(r.userRepo, s.enforcer, s.hasher, s.passwords, log),

		listTicketsUC:         ticketUsecases.NewListTicketsUseCase(r.ticketRepo, s.enforcer, log),
		createTicketUC:        ticketUsecases.NewCreateTicketUseCase(r.ticketRepo, r.userRepo, log),
		getTicketUC:           ticketUsecases.NewGetTicketUseCase(r.ticketRepo, r.commentRepo, r.userRepo, s.enforcer, s.renderer, log),
		updateTicketUC:        ticketUsecases.NewUpdateTicketUseCase(r.ticketRepo, r.userRepo, s.enforcer, log),
		deleteTicketUC:        ticketUsecases.NewDeleteTicketUseCase(r.ticketRepo, s.enforcer, log),
		listCommentsUC:        ticketUsecases.NewListCommentsUseCase(r.ticketRepo, r.commentRepo, r.userRepo, s.enforcer, s.renderer, log),
		addCommentUC:          ticketUsecases.NewAddCommentUseCase(r.ticketRepo, r.commentRepo, r.userRepo, s.enforcer, r.txMgr, s.registry, s.renderer, log),
		signalTypingUC:        ticketUsecases.NewSignalTypingUseCase(r.ticketRepo, r.userRepo, s.enforcer, s.registry, log),
		authorizeTicketViewUC: ticketUsecases.NewAuthorizeTicketViewUseCase(r.ticketRepo, s.enforcer, log),
	}
}
