package api

import (
	"context"

	"google.golang.org/grpc"
)

const ServiceName = "accountdesk.AccountService"

// Full method names, as seen by interceptors.
const (
	AccountService_Login_FullMethodName          = "/" + ServiceName + "/Login"
	AccountService_Register_FullMethodName       = "/" + ServiceName + "/Register"
	AccountService_ForgotPassword_FullMethodName = "/" + ServiceName + "/ForgotPassword"
	AccountService_Profile_FullMethodName        = "/" + ServiceName + "/Profile"
	AccountService_Ping_FullMethodName           = "/" + ServiceName + "/Ping"
)

// AccountServiceServer is implemented by the server side of the service.
type AccountServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	ForgotPassword(context.Context, *ForgotPasswordRequest) (*ForgotPasswordResponse, error)
	Profile(context.Context, *ProfileRequest) (*ProfileResponse, error)
	Ping(context.Context, *PingRequest) (*PingResponse, error)
}

// unaryHandler adapts a typed server method to grpc.MethodHandler.
func unaryHandler[Req, Resp any](fullMethod string, call func(AccountServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(AccountServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(AccountServiceServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// AccountService_ServiceDesc describes the service for grpc.Server.
var AccountService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AccountServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Login",
			Handler:    unaryHandler(AccountService_Login_FullMethodName, AccountServiceServer.Login),
		},
		{
			MethodName: "Register",
			Handler:    unaryHandler(AccountService_Register_FullMethodName, AccountServiceServer.Register),
		},
		{
			MethodName: "ForgotPassword",
			Handler:    unaryHandler(AccountService_ForgotPassword_FullMethodName, AccountServiceServer.ForgotPassword),
		},
		{
			MethodName: "Profile",
			Handler:    unaryHandler(AccountService_Profile_FullMethodName, AccountServiceServer.Profile),
		},
		{
			MethodName: "Ping",
			Handler:    unaryHandler(AccountService_Ping_FullMethodName, AccountServiceServer.Ping),
		},
	},
	Streams: []grpc.StreamDesc{},
}

// RegisterAccountServiceServer attaches srv to s.
func RegisterAccountServiceServer(s grpc.ServiceRegistrar, srv AccountServiceServer) {
	s.RegisterService(&AccountService_ServiceDesc, srv)
}

// AccountServiceClient is the typed client stub. Every call is sent with
// the JSON codec.
type AccountServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAccountServiceClient(cc grpc.ClientConnInterface) *AccountServiceClient {
	return &AccountServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *AccountServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, AccountService_Login_FullMethodName, in, opts)
}

func (c *AccountServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	return invoke[RegisterResponse](ctx, c.cc, AccountService_Register_FullMethodName, in, opts)
}

func (c *AccountServiceClient) ForgotPassword(ctx context.Context, in *ForgotPasswordRequest, opts ...grpc.CallOption) (*ForgotPasswordResponse, error) {
	return invoke[ForgotPasswordResponse](ctx, c.cc, AccountService_ForgotPassword_FullMethodName, in, opts)
}

func (c *AccountServiceClient) Profile(ctx context.Context, in *ProfileRequest, opts ...grpc.CallOption) (*ProfileResponse, error) {
	return invoke[ProfileResponse](ctx, c.cc, AccountService_Profile_FullMethodName, in, opts)
}

func (c *AccountServiceClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, AccountService_Ping_FullMethodName, in, opts)
}
