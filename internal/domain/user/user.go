package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sevendesk/helpdesk/internal/shared/authorization"
	"github.com/sevendesk/helpdesk/internal/shared/biztime"
)

const (
	maxNameLength  = 120
	maxEmailLength = 254
)

// User is a helpdesk account. The password hash never leaves the
// application layer.
type User struct {
	id           uint
	name         string
	email        string
	role         authorization.UserRole
	passwordHash string
	avatarURL    *string
	createdAt    time.Time
}

func NewUser(name, email string, role authorization.UserRole, passwordHash string) (*User, error) {
	u := &User{createdAt: biztime.NowUTC()}
	if err := u.Rename(name); err != nil {
		return nil, err
	}
	if err := u.ChangeEmail(email); err != nil {
		return nil, err
	}
	if err := u.ChangeRole(role); err != nil {
		return nil, err
	}
	if err := u.SetPasswordHash(passwordHash); err != nil {
		return nil, err
	}
	return u, nil
}

// ReconstructUser rebuilds a persisted user without re-running creation rules.
// Unknown role spellings fall back to the least privileged role.
func ReconstructUser(
	id uint,
	name string,
	email string,
	role string,
	passwordHash string,
	avatarURL *string,
	createdAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	return &User{
		id:           id,
		name:         name,
		email:        email,
		role:         authorization.RoleOrDefault(role),
		passwordHash: passwordHash,
		avatarURL:    avatarURL,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Name() string                 { return u.name }
func (u *User) Email() string                { return u.email }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) AvatarURL() *string           { return u.avatarURL }
func (u *User) CreatedAt() time.Time         { return u.createdAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	u.name = name
	return nil
}

func (u *User) ChangeEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > maxEmailLength {
		return fmt.Errorf("email exceeds maximum length of %d characters", maxEmailLength)
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return fmt.Errorf("invalid email format")
	}
	u.email = email
	return nil
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	parsed, ok := authorization.ParseUserRole(string(role))
	if !ok {
		return fmt.Errorf("invalid role %q", role)
	}
	u.role = parsed
	return nil
}

func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	return nil
}

// SetAvatarURL stores the public path of the user's current avatar.
func (u *User) SetAvatarURL(url string) {
	u.avatarURL = &url
}

// NormalizeEmail lower-cases and trims an address; e-mails are unique and
// matched case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
