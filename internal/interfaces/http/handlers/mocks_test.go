package handlers

import (
	"context"
	"time"

	"github.com/sevendesk/helpdesk/internal/application/user/usecases"
	"github.com/sevendesk/helpdesk/internal/domain/user"
)

type mockLoginUC struct {
	got    usecases.LoginCommand
	result *usecases.AuthResult
	err    error
}

func (m *mockLoginUC) Execute(_ context.Context, cmd usecases.LoginCommand) (*usecases.AuthResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockRegisterUC struct {
	result *usecases.AuthResult
	err    error
}

func (m *mockRegisterUC) Execute(_ context.Context, _ usecases.RegisterCommand) (*usecases.AuthResult, error) {
	return m.result, m.err
}

type mockCurrentUserUC struct {
	result *user.User
	err    error
}

func (m *mockCurrentUserUC) Execute(_ context.Context, _ uint) (*user.User, error) {
	return m.result, m.err
}

type mockUpdateProfileUC struct {
	got    usecases.UpdateProfileCommand
	result *user.User
	err    error
}

func (m *mockUpdateProfileUC) Execute(_ context.Context, cmd usecases.UpdateProfileCommand) (*user.User, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUploadAvatarUC struct {
	got    usecases.UploadAvatarCommand
	result string
	err    error
}

func (m *mockUploadAvatarUC) Execute(_ context.Context, cmd usecases.UploadAvatarCommand) (string, error) {
	m.got = cmd
	return m.result, m.err
}

type mockListUsersUC struct {
	got    usecases.ListUsersQuery
	result *usecases.ListUsersResult
	err    error
}

func (m *mockListUsersUC) Execute(_ context.Context, q usecases.ListUsersQuery) (*usecases.ListUsersResult, error) {
	m.got = q
	return m.result, m.err
}

type mockCreateUserUC struct {
	got    usecases.CreateUserCommand
	result *usecases.CreateUserResult
	err    error
}

func (m *mockCreateUserUC) Execute(_ context.Context, cmd usecases.CreateUserCommand) (*usecases.CreateUserResult, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetUserUC struct {
	result *user.User
	err    error
}

func (m *mockGetUserUC) Execute(_ context.Context, _ usecases.Actor, _ uint) (*user.User, error) {
	return m.result, m.err
}

type mockUpdateUserUC struct {
	got    usecases.UpdateUserCommand
	result *user.User
	err    error
}

func (m *mockUpdateUserUC) Execute(_ context.Context, cmd usecases.UpdateUserCommand) (*user.User, error) {
	m.got = cmd
	return m.result, m.err
}

type mockDeleteUserUC struct {
	gotID uint
	err   error
}

func (m *mockDeleteUserUC) Execute(_ context.Context, _ usecases.Actor, userID uint) error {
	m.gotID = userID
	return m.err
}

type mockResetPasswordUC struct {
	result string
	err    error
}

func (m *mockResetPasswordUC) Execute(_ context.Context, _ usecases.Actor, _ uint) (string, error) {
	return m.result, m.err
}

type mockClock struct {
	now time.Time
	err error
}

func (m *mockClock) Now(_ context.Context) (time.Time, error) {
	return m.now, m.err
}
