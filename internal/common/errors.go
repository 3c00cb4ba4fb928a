// Package common defines shared constants and sentinel errors used across
// client and server layers of accountdesk. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Directory errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrEmailNotFound      = errors.New("email not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed session token).
	ErrInvalidToken = errors.New("invalid token")
)

// userMessages holds the text shown to the person filling a form.
var userMessages = []struct {
	err error
	msg string
}{
	{ErrInvalidCredentials, "Invalid credentials"},
	{ErrUserAlreadyExists, "User already exists"},
	{ErrEmailNotFound, "Email not found"},
	{ErrInvalidToken, "Session is no longer valid"},
}

// UserMessage returns the user-facing text for err. Errors outside the
// directory taxonomy fall back to fallback.
func UserMessage(err error, fallback string) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return fallback
}
