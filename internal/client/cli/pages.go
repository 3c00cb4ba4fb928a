package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/accountdesk/internal/api"
	"github.com/dmitrijs2005/accountdesk/internal/client/client"
	"github.com/dmitrijs2005/accountdesk/internal/client/session"
	"github.com/dmitrijs2005/accountdesk/internal/common"
	"github.com/dmitrijs2005/accountdesk/internal/forms"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// failure turns an error from a form or the server into alert text.
func failure(err error, fallback string) string {
	var fe *forms.Error
	if errors.As(err, &fe) {
		return fe.Message
	}
	if errors.Is(err, client.ErrUnavailable) {
		return "Server unavailable, please try again later"
	}
	if errors.Is(err, common.ErrorValidation) {
		return err.Error()
	}
	return common.UserMessage(err, fallback)
}

// Home greets the signed-in user or points at login and register.
func (a *App) Home(ctx context.Context) error {
	pageTitle(a.out, "Home")

	if a.user == nil {
		fmt.Fprintln(a.out, "You are not logged in.")
		hint(a.out, "Type 'login' to sign in or 'register' to create an account.")
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s\n", a.user.Username)
	hint(a.out, a.user.Email)
	return nil
}

// Login reads the login form and signs in. The session is saved on success.
func (a *App) Login(ctx context.Context) error {
	pageTitle(a.out, "Login")

	var f forms.LoginForm
	var err error

	if f.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if f.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if f.Password, err = getPassword("Password", a.out); err != nil {
		return err
	}
	hint(a.out, "Password strength: "+string(forms.PasswordStrength(f.Password)))

	if err := f.Validate(); err != nil {
		dangerAlert(a.out, failure(err, ""))
		return err
	}

	hint(a.out, "Signing in...")

	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.api.Login(callCtx, f.Username, f.Email, f.Password)
	if err != nil {
		dangerAlert(a.out, failure(err, "Login failed"))
		return err
	}

	a.user = resp.User
	if a.user == nil {
		a.user = &api.User{Username: f.Username, Email: f.Email}
	}

	if err := a.sessions.Save(ctx, session.Session{Token: resp.Token, User: *a.user}); err != nil {
		dangerAlert(a.out, "Logged in, but the session could not be saved: "+err.Error())
	}

	successAlert(a.out, "Login successful")
	return a.Home(ctx)
}

// Register reads the registration form and creates the account. On success
// the login page follows.
func (a *App) Register(ctx context.Context) error {
	pageTitle(a.out, "Register")

	var f forms.RegisterForm
	var err error

	for _, field := range []struct {
		prompt string
		dst    *string
	}{
		{"Username", &f.Username},
		{"Email", &f.Email},
		{"Phone", &f.Phone},
	} {
		if *field.dst, err = getSimpleText(a.reader, field.prompt, a.out); err != nil {
			return err
		}
	}
	if f.Password, err = getPassword("Password", a.out); err != nil {
		return err
	}
	hint(a.out, "Password strength: "+string(forms.PasswordStrength(f.Password)))
	if f.ConfirmPassword, err = getPassword("Confirm password", a.out); err != nil {
		return err
	}

	if err := f.Validate(); err != nil {
		dangerAlert(a.out, failure(err, ""))
		return err
	}

	hint(a.out, "Creating account...")

	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.api.Register(callCtx, &api.RegisterRequest{
		Username: f.Username,
		Email:    f.Email,
		Phone:    f.Phone,
		Password: f.Password,
	})
	if err != nil {
		dangerAlert(a.out, failure(err, "Registration failed"))
		return err
	}

	successAlert(a.out, resp.Message)
	return a.Login(ctx)
}

// ForgotPassword reads an email and requests reset instructions for it.
func (a *App) ForgotPassword(ctx context.Context) error {
	pageTitle(a.out, "Forgot password")

	var f forms.ForgotPasswordForm
	var err error

	if f.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}

	if err := f.Validate(); err != nil {
		dangerAlert(a.out, failure(err, ""))
		return err
	}

	hint(a.out, "Sending...")

	callCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	resp, err := a.api.ForgotPassword(callCtx, f.Email)
	if err != nil {
		dangerAlert(a.out, failure(err, "Request failed"))
		return err
	}

	successAlert(a.out, resp.Message)
	return nil
}

// Logout forgets the session locally. The server keeps no session state.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Clear(ctx); err != nil {
		dangerAlert(a.out, "Could not clear session: "+err.Error())
		return err
	}

	a.api.SetToken("")
	a.user = nil

	successAlert(a.out, "Logged out")
	return nil
}
