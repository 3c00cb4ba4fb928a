// Package forms holds the field-level checks the account pages run before
// a request is sent to the directory. Each check returns the first problem
// found as an *Error whose text is meant to be shown to the user as is.
package forms

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/dmitrijs2005/accountdesk/internal/common"
)

const (
	MsgMissingFields   = "Please fill in all fields"
	MsgMissingEmail    = "Please enter your email"
	MsgInvalidEmail    = "Invalid email format"
	MsgInvalidPhone    = "Invalid phone number (10 digits required)"
	MsgPasswordsDiffer = "Passwords do not match"
	MsgWeakPassword    = "Password is too weak"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Error is a validation failure. It matches common.ErrorValidation.
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return common.ErrorValidation
}

func invalid(msg string) error {
	return &Error{Message: msg}
}

// Strength grades a password.
type Strength string

const (
	Weak   Strength = "weak"
	Medium Strength = "medium"
	Strong Strength = "strong"
)

// PasswordStrength grades p: shorter than 6 is weak; shorter than 8, or
// lacking an uppercase letter or a digit, is medium. Length is counted in
// UTF-16 code units, so a character outside the BMP counts twice.
func PasswordStrength(p string) Strength {
	n := len(utf16.Encode([]rune(p)))
	if n < 6 {
		return Weak
	}
	if n < 8 || !strings.ContainsFunc(p, isASCIIUpper) || !strings.ContainsFunc(p, isASCIIDigit) {
		return Medium
	}
	return Strong
}

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// ValidEmail reports whether s looks like an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NormalizePhone strips everything but digits.
func NormalizePhone(s string) string {
	return strings.Map(func(r rune) rune {
		if isASCIIDigit(r) {
			return r
		}
		return -1
	}, s)
}

// LoginForm is the login page input.
type LoginForm struct {
	Username string
	Email    string
	Password string
}

func (f LoginForm) Validate() error {
	if f.Username == "" || f.Email == "" || f.Password == "" {
		return invalid(MsgMissingFields)
	}
	if !ValidEmail(f.Email) {
		return invalid(MsgInvalidEmail)
	}
	if PasswordStrength(f.Password) == Weak {
		return invalid(MsgWeakPassword)
	}
	return nil
}

// RegisterForm is the registration page input.
type RegisterForm struct {
	Username        string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

func (f RegisterForm) Validate() error {
	if f.Username == "" || f.Email == "" || f.Phone == "" || f.Password == "" || f.ConfirmPassword == "" {
		return invalid(MsgMissingFields)
	}
	if !ValidEmail(f.Email) {
		return invalid(MsgInvalidEmail)
	}
	if len(NormalizePhone(f.Phone)) != 10 {
		return invalid(MsgInvalidPhone)
	}
	if f.Password != f.ConfirmPassword {
		return invalid(MsgPasswordsDiffer)
	}
	if PasswordStrength(f.Password) == Weak {
		return invalid(MsgWeakPassword)
	}
	return nil
}

// ForgotPasswordForm is the password reset page input.
type ForgotPasswordForm struct {
	Email string
}

func (f ForgotPasswordForm) Validate() error {
	if f.Email == "" {
		return invalid(MsgMissingEmail)
	}
	if !ValidEmail(f.Email) {
		return invalid(MsgInvalidEmail)
	}
	return nil
}
