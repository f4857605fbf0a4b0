package usecases

import (
	"context"
	"fmt"
	"sync"

	"github.com/sevendesk/helpdesk/internal/domain/permission"
	"github.com/sevendesk/helpdesk/internal/domain/user"
	"github.com/sevendesk/helpdesk/internal/shared/authorization"
)

type mockUserRepository struct {
	CreateFunc     func(ctx context.Context, u *user.User) error
	GetByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	GetByIDsFunc   func(ctx context.Context, ids []uint) ([]*user.User, error)
	UpdateFunc     func(ctx context.Context, u *user.User) error
	DeleteFunc     func(ctx context.Context, id uint) error
	ListFunc       func(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return u.SetID(100)
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

// mockHasher "hashes" by prefixing, so tests can assert on stored hashes.
type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (mockHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type mockTokenIssuer struct {
	GenerateFunc func(userID uint, email string, role authorization.UserRole) (string, error)
}

func (m *mockTokenIssuer) Generate(userID uint, email string, role authorization.UserRole) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(userID, email, role)
	}
	return fmt.Sprintf("token-%d-%s", userID, role), nil
}

type mockPasswordGenerator struct {
	value string
	calls int
}

func (m *mockPasswordGenerator) Generate() (string, error) {
	m.calls++
	return m.value, nil
}

type mockImageProcessor struct {
	ProcessFunc func(data []byte) ([]byte, error)
}

func (m *mockImageProcessor) Process(data []byte) ([]byte, error) {
	if m.ProcessFunc != nil {
		return m.ProcessFunc(data)
	}
	return []byte("jpeg"), nil
}

type storedObject struct {
	key         string
	data        []byte
	contentType string
}

type mockObjectStore struct {
	mu      sync.Mutex
	prefix  string
	objects []storedObject
	err     error
}

func (m *mockObjectStore) Put(_ context.Context, key string, data []byte, contentType string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects = append(m.objects, storedObject{key: key, data: data, contentType: contentType})
	return m.prefix + key, nil
}

// mockEnforcer grants user management to admins only.
type mockEnforcer struct{}

func (mockEnforcer) Enforce(role authorization.UserRole, resource, action string) (bool, error) {
	return role == authorization.RoleAdmin && resource == permission.ResourceUser && action == permission.ActionManage, nil
}
