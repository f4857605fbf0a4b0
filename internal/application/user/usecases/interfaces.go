package usecases

import (
	"context"

	"github.com/sevendesk/helpdesk/internal/shared/authorization"
)

type Actor = authorization.Actor

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenIssuer interface {
	Generate(userID uint, email string, role authorization.UserRole) (string, error)
}

// PasswordGenerator issues temporary passwords for admin-created accounts.
type PasswordGenerator interface {
	Generate() (string, error)
}

// ImageProcessor normalizes an uploaded avatar. Any error means the upload
// could not be decoded as a supported image.
type ImageProcessor interface {
	Process(data []byte) ([]byte, error)
}

// ObjectStore persists a blob and returns its public URL or path.
type ObjectStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}
