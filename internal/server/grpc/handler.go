package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/accountdesk/internal/api"
	"github.com/dmitrijs2005/accountdesk/internal/common"
	"github.com/dmitrijs2005/accountdesk/internal/server/accounts"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func toAPIUser(v accounts.UserView) *api.User {
	return &api.User{ID: v.ID, Username: v.Username, Email: v.Email}
}

// toStatus maps directory errors onto gRPC statuses. Messages of the
// directory taxonomy are the user-facing text.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, common.UserMessage(err, ""))
	case errors.Is(err, common.ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, common.UserMessage(err, ""))
	case errors.Is(err, common.ErrEmailNotFound):
		return status.Error(codes.NotFound, common.UserMessage(err, ""))
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return status.FromContextError(err).Err()
	default:
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}

func (s *GRPCServer) Login(ctx context.Context, req *api.LoginRequest) (*api.LoginResponse, error) {

	res, err := s.accounts.Login(ctx, accounts.Credentials{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}).Wait()

	if err != nil {
		s.logger.Warn(ctx, "Login rejected", "error", err.Error())
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Logged in", "user_id", res.User.ID)
	return &api.LoginResponse{Success: res.Success, Token: res.Token, User: toAPIUser(res.User)}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *api.RegisterRequest) (*api.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	if err := requireFields(
		"username", req.Username,
		"email", req.Email,
		"phone", req.Phone,
		"password", req.Password,
	); err != nil {
		return nil, toStatus(err)
	}

	res, err := s.accounts.Register(ctx, accounts.Registration{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}).Wait()

	if err != nil {
		s.logger.Warn(ctx, "Registration rejected", "error", err.Error())
		return nil, toStatus(err)
	}

	s.logger.Info(ctx, "Registered", "user_id", res.User.ID, "username", res.User.Username)
	return &api.RegisterResponse{Success: res.Success, Message: res.Message, User: toAPIUser(res.User)}, nil
}

func (s *GRPCServer) ForgotPassword(ctx context.Context, req *api.ForgotPasswordRequest) (*api.ForgotPasswordResponse, error) {

	res, err := s.accounts.ForgotPassword(ctx, req.Email).Wait()
	if err != nil {
		return nil, toStatus(err)
	}

	return &api.ForgotPasswordResponse{Success: res.Success, Message: res.Message}, nil
}

func (s *GRPCServer) Profile(ctx context.Context, req *api.ProfileRequest) (*api.ProfileResponse, error) {

	token, _ := ctx.Value(sessionTokenKey).(string)
	if token == "" {
		token = firstMetadataValue(ctx, common.SessionTokenHeaderName)
	}

	v, err := s.accounts.Profile(token)
	if err != nil {
		return nil, toStatus(err)
	}

	return &api.ProfileResponse{User: toAPIUser(*v)}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {

	return &api.PingResponse{Status: "OK"}, nil

}

// requireFields takes name/value pairs and fails on the first empty value.
func requireFields(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return &fieldError{field: pairs[i]}
		}
	}
	return nil
}

type fieldError struct {
	field string
}

func (e *fieldError) Error() string { return e.field + " is required" }
func (e *fieldError) Unwrap() error { return common.ErrorValidation }
