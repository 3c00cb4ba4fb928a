package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/accountdesk/internal/api"
	"github.com/dmitrijs2005/accountdesk/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// accountAPI is the subset of *api.AccountServiceClient in use.
type accountAPI interface {
	Login(ctx context.Context, in *api.LoginRequest, opts ...grpc.CallOption) (*api.LoginResponse, error)
	Register(ctx context.Context, in *api.RegisterRequest, opts ...grpc.CallOption) (*api.RegisterResponse, error)
	ForgotPassword(ctx context.Context, in *api.ForgotPasswordRequest, opts ...grpc.CallOption) (*api.ForgotPasswordResponse, error)
	Profile(ctx context.Context, in *api.ProfileRequest, opts ...grpc.CallOption) (*api.ProfileResponse, error)
	Ping(ctx context.Context, in *api.PingRequest, opts ...grpc.CallOption) (*api.PingResponse, error)
}

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      accountAPI

	mu    sync.RWMutex
	token string
}

func withSessionToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.SessionTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) currentToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken makes token the one sent with subsequent calls. An empty token
// stops sending one.
func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

func (s *GRPCClient) sessionTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if token := s.currentToken(); token != "" {
		ctx = withSessionToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewAccountClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults.
func NewAccountClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.sessionTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}

	c.conn = conn
	c.client = api.NewAccountServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

// Login signs in by username or email. On success the returned token is
// kept for later calls.
func (s *GRPCClient) Login(ctx context.Context, username, email, password string) (*api.LoginResponse, error) {

	req := &api.LoginRequest{Username: username, Email: email, Password: password}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, s.mapError(err, common.ErrInvalidCredentials)
	}

	s.SetToken(resp.Token)

	return resp, nil
}

func (s *GRPCClient) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err, nil)
	}

	return resp, nil
}

func (s *GRPCClient) ForgotPassword(ctx context.Context, email string) (*api.ForgotPasswordResponse, error) {

	resp, err := s.client.ForgotPassword(ctx, &api.ForgotPasswordRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err, nil)
	}

	return resp, nil
}

// Profile returns the user behind the current token.
func (s *GRPCClient) Profile(ctx context.Context) (*api.User, error) {

	resp, err := s.client.Profile(ctx, &api.ProfileRequest{})
	if err != nil {
		return nil, s.mapError(err, common.ErrInvalidToken)
	}

	return resp.User, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return s.mapError(err, nil)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil
}

// mapError converts a gRPC status into a sentinel error. unauthenticated is
// what codes.Unauthenticated means for the calling method.
func (s *GRPCClient) mapError(err error, unauthenticated error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		if unauthenticated != nil {
			return unauthenticated
		}
		return common.ErrInvalidToken
	case codes.AlreadyExists:
		return common.ErrUserAlreadyExists
	case codes.NotFound:
		return common.ErrEmailNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", common.ErrorValidation, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
