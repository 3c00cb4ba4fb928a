package client

import (
	"context"

	"github.com/dmitrijs2005/accountdesk/internal/api"
)

// Client is what the CLI needs from the server.
type Client interface {
	Close() error
	SetToken(token string)
	Login(ctx context.Context, username, email, password string) (*api.LoginResponse, error)
	Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error)
	ForgotPassword(ctx context.Context, email string) (*api.ForgotPasswordResponse, error)
	Profile(ctx context.Context) (*api.User, error)
	Ping(ctx context.Context) error
}
