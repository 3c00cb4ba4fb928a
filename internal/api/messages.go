// Package api is the wire contract between the accountdesk server and its
// clients: request/response messages, the gRPC service descriptor, a typed
// client stub and a JSON codec the messages travel in.
package api

// User is the sanitized account view. It never carries a password.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ForgotPasswordResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ProfileRequest carries no fields; the session token travels in metadata.
type ProfileRequest struct{}

type ProfileResponse struct {
	User *User `json:"user"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
