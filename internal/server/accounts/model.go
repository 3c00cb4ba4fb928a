// Package accounts implements the mock account directory: an in-memory set
// of user records and the login, registration and forgot-password requests
// answered against it.
//
// Passwords are stored and compared as plaintext. The directory is a
// stand-in for a real backend and must not be used to hold real credentials.
package accounts

// User is a directory record.
type User struct {
	ID       int64
	Username string
	Email    string
	Phone    string
	Password string
}

// View returns the sanitized representation of u.
func (u User) View() UserView {
	return UserView{ID: u.ID, Username: u.Username, Email: u.Email}
}

// UserView is the part of a User that may leave the directory.
type UserView struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Credentials is a login request. A record matches when either Username or
// Email equals the stored value and Password matches exactly.
type Credentials struct {
	Username string
	Email    string
	Password string
}

// Registration is a candidate record submitted for sign up.
type Registration struct {
	Username string
	Email    string
	Phone    string
	Password string
}

type LoginResult struct {
	Success bool
	Token   string
	User    UserView
}

type RegisterResult struct {
	Success bool
	Message string
	User    UserView
}

type ForgotPasswordResult struct {
	Success bool
	Message string
}

const (
	registeredMessage   = "User registered successfully"
	resetRequestMessage = "Password reset instructions sent to your email"
)
