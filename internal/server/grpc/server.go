// Package grpc exposes the account directory over gRPC.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/accountdesk/internal/api"
	"github.com/dmitrijs2005/accountdesk/internal/logging"
	"github.com/dmitrijs2005/accountdesk/internal/server/accounts"
	"google.golang.org/grpc"
)

// accountSvc is the part of accounts.Service the handlers use.
type accountSvc interface {
	Login(ctx context.Context, creds accounts.Credentials) *accounts.Pending[*accounts.LoginResult]
	Register(ctx context.Context, r accounts.Registration) *accounts.Pending[*accounts.RegisterResult]
	ForgotPassword(ctx context.Context, email string) *accounts.Pending[*accounts.ForgotPasswordResult]
	Profile(token string) (*accounts.UserView, error)
}

type GRPCServer struct {
	address  string
	accounts accountSvc
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as accountSvc) (*GRPCServer, error) {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		accounts: as,
	}, nil
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.sessionTokenInterceptor))

	api.RegisterAccountServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
