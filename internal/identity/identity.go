// Package identity authenticates the site's owner and notifies observers of sign-in state changes.
package identity

import (
	"context"
	"errors"

	"github.com/hjs-ah/portfolio/internal/domain"
)

// Error codes and messages mirror those of the hosted authentication provider the admin console was first
// written against, so the login view reads the same whichever provider is configured.
const (
	CodeInvalidEmail  = "auth/invalid-email"
	CodeUserNotFound  = "auth/user-not-found"
	CodeWrongPassword = "auth/wrong-password"
	CodeInternal      = "auth/internal-error"
)

var (
	ErrInvalidEmail  = &Error{Code: CodeInvalidEmail, Message: "The email address is badly formatted."}
	ErrUserNotFound  = &Error{Code: CodeUserNotFound, Message: "There is no user record corresponding to this identifier. The user may have been deleted."}
	ErrWrongPassword = &Error{Code: CodeWrongPassword, Message: "The password is invalid or the user does not have a password."}
	ErrInternal      = &Error{Code: CodeInternal, Message: "An internal error has occurred."}
)

// Error is a sign-in failure. Message is meant to be shown to the user as is.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Message returns the text to display for a sign-in failure.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

//go:generate mockgen -destination=../mocks/identity.go -package=mocks github.com/hjs-ah/portfolio/internal/identity Provider
type Provider interface {
	// Observe calls fn with the current user, or nil if nobody is signed in, and again on every change until
	// the returned function is called.
	Observe(fn func(user *domain.User)) (unsubscribe func())
	// SignIn fails with an *Error.
	SignIn(ctx context.Context, email, password string) (domain.User, error)
	SignOut(ctx context.Context)
}
