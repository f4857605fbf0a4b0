package http

import (
	"gorm.io/gorm"

	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/infrastructure/repository"
	"github.com/sevendesk/helpdesk/internal/shared/db"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo    user.Repository
	ticketRepo  ticket.TicketRepository
	commentRepo ticket.CommentRepository
	txMgr       *db.TransactionManager
}

func newRepositories(gdb *gorm.DB, log logger.Interface) *repositories {
	return &repositories{
		userRepo:    repository.NewUserRepository(gdb, log),
		ticketRepo:  repository.NewTicketRepository(gdb, log),
		commentRepo: repository.NewCommentRepository(gdb, log),
		txMgr:       db.NewTransactionManager(gdb),
	}
}
