package users

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the domain and application layers
// wraps exactly one of these, so callers can branch with errors.Is.
var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidPhone       = errors.New("invalid phone")
	ErrInvalidDocument    = errors.New("invalid identity document")
	ErrUserUnderage       = errors.New("user underage")
	ErrInvalidRestaurant  = errors.New("invalid restaurant")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrRoleNotFound       = errors.New("role not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
)

// Error is a domain error carrying a user facing message.
type Error struct {
	Kind    error
	Message string
}

// NewError creates a domain error of the given kind.
func NewError(kind error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// IsValidationError reports whether err is one of the input validation kinds.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidPhone) ||
		errors.Is(err, ErrInvalidDocument) ||
		errors.Is(err, ErrUserUnderage) ||
		errors.Is(err, ErrInvalidRestaurant)
}

// NewInvalidCredentialsError returns the error used for every failed login.
func NewInvalidCredentialsError() *Error {
	return NewError(ErrInvalidCredentials, "Invalid email or password")
}
