package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	"github.com/sevendesk/helpdesk/internal/shared/logger"
)

var testLogger = logger.NewNopLogger()

func adminActor() Actor  { return Actor{UserID: 1, Role: authorization.RoleAdmin} }
func agentActor() Actor  { return Actor{UserID: 2, Role: authorization.RoleAgent} }
func clientActor() Actor { return Actor{UserID: 3, Role: authorization.RoleClient} }

func strPtr(s string) *string { return &s }

func newTestUser(t *testing.T, id uint, email string, role authorization.UserRole, password string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(id, "User", email, role.String(), "hashed:"+password, nil, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return u
}

// repoWith serves lookups by id and e-mail from a fixed set of users.
func repoWith(users ...*user.User) *mockUserRepository {
	return &mockUserRepository{
		GetByIDFunc: func(_ context.Context, id uint) (*user.User, error) {
			for _, u := range users {
				if u.ID() == id {
					return u, nil
				}
			}
			return nil, nil
		},
		GetByEmailFunc: func(_ context.Context, email string) (*user.User, error) {
			for _, u := range users {
				if u.Email() == user.NormalizeEmail(email) {
					return u, nil
				}
			}
			return nil, nil
		},
	}
}
