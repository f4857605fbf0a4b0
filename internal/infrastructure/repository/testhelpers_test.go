package repository

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/sevendesk/helpdesk/internal/domain/ticket"
	vo "github.com/sevendesk/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/infrastructure/persistence/models"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

// setupTestDB opens an in-memory SQLite database. A single connection keeps
// concurrent queries on the same in-memory schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.TicketModel{}, &models.CommentModel{}))
	return db
}

func fakeUser(t *testing.T, role authorization.UserRole) *user.User {
	t.Helper()
	u, err := user.NewUser(gofakeit.Name(), gofakeit.Email(), role, "$2a$10$"+gofakeit.LetterN(53))
	require.NoError(t, err)
	return u
}

func fakeTicket(t *testing.T, requesterID uint, priority vo.Priority) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(gofakeit.Sentence(4), gofakeit.Paragraph(1, 2, 8, " "), priority, requesterID)
	require.NoError(t, err)
	return tk
}

func uintPtr(v uint) *uint { return &v }

func newTestLogger() logger.Interface { return logger.NewNopLogger() }
