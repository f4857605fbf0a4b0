package errors

import (
	stderrors "errors"
	"net/http"
)

const (
	ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"
	ErrorTypeTokenInvalid       ErrorType = "token_invalid"
)

// MsgUnauthorized is the single message returned for every authentication failure.
const MsgUnauthorized = "Unauthorized"

// AuthError represents an authentication failure. The client-facing message never
// tells which check failed.
type AuthError struct {
	*AppError
	// ShouldLog is false for expected failures such as a mistyped password.
	ShouldLog bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError is returned for both unknown e-mail and wrong password.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "Invalid credentials",
			Code:    http.StatusUnauthorized,
		},
	}
}

// NewTokenInvalidError covers missing, malformed, expired and badly signed tokens alike.
func NewTokenInvalidError(details ...string) *AuthError {
	return &AuthError{
		AppError:  newAppError(ErrorTypeTokenInvalid, http.StatusUnauthorized, MsgUnauthorized, details),
		ShouldLog: true,
	}
}

// GetAuthError extracts AuthError from error chain
func GetAuthError(err error) *AuthError {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr
	}
	return nil
}

// ShouldLogAuthError reports whether err deserves a log line; non-auth errors always do.
func ShouldLogAuthError(err error) bool {
	if authErr := GetAuthError(err); authErr != nil {
		return authErr.ShouldLog
	}
	return true
}
