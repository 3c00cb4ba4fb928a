package client

import (
	"context"
	"errors"
	"net"
	"sync"
	"testing"

	"github.com/dmitrijs2005/accountdesk/internal/api"
	"github.com/dmitrijs2005/accountdesk/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

/*************
 * Fake stub
 *************/

type fakeAPI struct {
	lastLoginReq    *api.LoginRequest
	lastRegisterReq *api.RegisterRequest
	lastForgotReq   *api.ForgotPasswordRequest

	loginResp *api.LoginResponse
	loginErr  error

	registerResp *api.RegisterResponse
	registerErr  error

	forgotResp *api.ForgotPasswordResponse
	forgotErr  error

	profileResp *api.ProfileResponse
	profileErr  error

	pingResp *api.PingResponse
	pingErr  error
}

func (f *fakeAPI) Login(ctx context.Context, in *api.LoginRequest, opts ...grpc.CallOption) (*api.LoginResponse, error) {
	f.lastLoginReq = in
	return f.loginResp, f.loginErr
}
func (f *fakeAPI) Register(ctx context.Context, in *api.RegisterRequest, opts ...grpc.CallOption) (*api.RegisterResponse, error) {
	f.lastRegisterReq = in
	return f.registerResp, f.registerErr
}
func (f *fakeAPI) ForgotPassword(ctx context.Context, in *api.ForgotPasswordRequest, opts ...grpc.CallOption) (*api.ForgotPasswordResponse, error) {
	f.lastForgotReq = in
	return f.forgotResp, f.forgotErr
}
func (f *fakeAPI) Profile(ctx context.Context, in *api.ProfileRequest, opts ...grpc.CallOption) (*api.ProfileResponse, error) {
	return f.profileResp, f.profileErr
}
func (f *fakeAPI) Ping(ctx context.Context, in *api.PingRequest, opts ...grpc.CallOption) (*api.PingResponse, error) {
	return f.pingResp, f.pingErr
}

/*************
 * Interceptor
 *************/

func TestInterceptor_AttachesToken(t *testing.T) {
	c := &GRPCClient{}
	c.SetToken("mock-jwt-token-1")

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Equal(t, []string{"mock-jwt-token-1"}, md.Get(common.SessionTokenHeaderName))
		return nil
	}

	require.NoError(t, c.sessionTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker))
}

func TestInterceptor_ReplacesCallerToken(t *testing.T) {
	c := &GRPCClient{}
	c.SetToken("new")

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.SessionTokenHeaderName, "old")
	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Equal(t, []string{"new"}, md.Get(common.SessionTokenHeaderName))
		return nil
	}

	require.NoError(t, c.sessionTokenInterceptor(ctx, "/svc/Method", nil, nil, nil, invoker))
}

func TestInterceptor_NoTokenNoHeader(t *testing.T) {
	c := &GRPCClient{}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		require.Empty(t, md.Get(common.SessionTokenHeaderName))
		return status.Error(codes.Internal, "boom")
	}

	err := c.sessionTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.Equal(t, codes.Internal, status.Code(err))
}

/*************
 * mapError
 *************/

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	require.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x"), common.ErrInvalidCredentials), common.ErrInvalidCredentials)
	require.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x"), nil), common.ErrInvalidToken)
	require.ErrorIs(t, c.mapError(status.Error(codes.AlreadyExists, "x"), nil), common.ErrUserAlreadyExists)
	require.ErrorIs(t, c.mapError(status.Error(codes.NotFound, "x"), nil), common.ErrEmailNotFound)
	require.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x"), nil), ErrUnavailable)
	require.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x"), nil), ErrUnavailable)

	err := c.mapError(status.Error(codes.InvalidArgument, "email is required"), nil)
	require.ErrorIs(t, err, common.ErrorValidation)
	require.ErrorContains(t, err, "email is required")

	require.ErrorContains(t, c.mapError(errors.New("plain"), nil), "rpc error:")
	require.NoError(t, c.mapError(nil, nil))
}

/*************
 * Methods over the fake
 *************/

func TestLogin_KeepsToken(t *testing.T) {
	f := &fakeAPI{loginResp: &api.LoginResponse{Success: true, Token: "mock-jwt-token-1", User: &api.User{ID: 1}}}
	c := &GRPCClient{client: f}

	resp, err := c.Login(context.Background(), "testuser", "", "Test123!")
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.User.ID)
	assert.Equal(t, "mock-jwt-token-1", c.currentToken())
	assert.Equal(t, &api.LoginRequest{Username: "testuser", Password: "Test123!"}, f.lastLoginReq)
}

func TestLogin_InvalidCredentialsKeepsOldToken(t *testing.T) {
	f := &fakeAPI{loginErr: status.Error(codes.Unauthenticated, "Invalid credentials")}
	c := &GRPCClient{client: f}
	c.SetToken("previous")

	_, err := c.Login(context.Background(), "testuser", "", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Equal(t, "previous", c.currentToken())
}

func TestRegister(t *testing.T) {
	f := &fakeAPI{registerResp: &api.RegisterResponse{Success: true, Message: "User registered successfully"}}
	c := &GRPCClient{client: f}

	req := &api.RegisterRequest{Username: "alice", Email: "alice@x.com", Phone: "1112223333", Password: "Abcd1234"}
	resp, err := c.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Same(t, req, f.lastRegisterReq)

	f.registerErr = status.Error(codes.AlreadyExists, "User already exists")
	_, err = c.Register(context.Background(), req)
	require.ErrorIs(t, err, common.ErrUserAlreadyExists)
}

func TestForgotPassword(t *testing.T) {
	f := &fakeAPI{forgotErr: status.Error(codes.NotFound, "Email not found")}
	c := &GRPCClient{client: f}

	_, err := c.ForgotPassword(context.Background(), "nobody@x.com")
	require.ErrorIs(t, err, common.ErrEmailNotFound)
	assert.Equal(t, "nobody@x.com", f.lastForgotReq.Email)
}

func TestProfile_InvalidToken(t *testing.T) {
	c := &GRPCClient{client: &fakeAPI{profileErr: status.Error(codes.Unauthenticated, "missing token")}}

	_, err := c.Profile(context.Background())
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestPing(t *testing.T) {
	c := &GRPCClient{client: &fakeAPI{pingResp: &api.PingResponse{Status: "OK"}}}
	require.NoError(t, c.Ping(context.Background()))

	c = &GRPCClient{client: &fakeAPI{pingResp: &api.PingResponse{Status: "NOT_OK"}}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)

	c = &GRPCClient{client: &fakeAPI{pingErr: status.Error(codes.Unavailable, "down")}}
	require.ErrorIs(t, c.Ping(context.Background()), ErrUnavailable)
}

func TestClose_WithoutConn(t *testing.T) {
	require.NoError(t, (&GRPCClient{}).Close())
}

/*************
 * Real connection
 *************/

type tokenEchoServer struct {
	mu        sync.Mutex
	lastToken string
}

func (s *tokenEchoServer) Login(ctx context.Context, in *api.LoginRequest) (*api.LoginResponse, error) {
	return &api.LoginResponse{Success: true, Token: "tok-" + in.Username, User: &api.User{ID: 7, Username: in.Username}}, nil
}
func (s *tokenEchoServer) Register(context.Context, *api.RegisterRequest) (*api.RegisterResponse, error) {
	return nil, status.Error(codes.AlreadyExists, "User already exists")
}
func (s *tokenEchoServer) ForgotPassword(context.Context, *api.ForgotPasswordRequest) (*api.ForgotPasswordResponse, error) {
	return &api.ForgotPasswordResponse{Success: true}, nil
}
func (s *tokenEchoServer) Profile(ctx context.Context, _ *api.ProfileRequest) (*api.ProfileResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	tokens := md.Get(common.SessionTokenHeaderName)
	if len(tokens) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}
	s.mu.Lock()
	s.lastToken = tokens[0]
	s.mu.Unlock()
	return &api.ProfileResponse{User: &api.User{ID: 7}}, nil
}
func (s *tokenEchoServer) Ping(context.Context, *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func TestGRPCClient_OverBufconn(t *testing.T) {
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	fake := &tokenEchoServer{}
	api.RegisterAccountServiceServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	c, err := NewAccountClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Ping(ctx))

	_, err = c.Profile(ctx)
	require.ErrorIs(t, err, common.ErrInvalidToken)

	_, err = c.Login(ctx, "alice", "", "pw")
	require.NoError(t, err)

	u, err := c.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)

	fake.mu.Lock()
	assert.Equal(t, "tok-alice", fake.lastToken)
	fake.mu.Unlock()

	_, err = c.Register(ctx, &api.RegisterRequest{Username: "alice"})
	require.ErrorIs(t, err, common.ErrUserAlreadyExists)
}
