// Package client talks to the accountdesk server.
//
// GRPCClient wraps the generated-style api.AccountServiceClient stub. It
// remembers the session token of the last successful login (or one set with
// SetToken) and attaches it to every outgoing call, and it turns gRPC status
// codes back into the sentinel errors of package common so callers can match
// them with errors.Is:
//
//	Login           Unauthenticated  -> common.ErrInvalidCredentials
//	Register        AlreadyExists    -> common.ErrUserAlreadyExists
//	ForgotPassword  NotFound         -> common.ErrEmailNotFound
//	Profile         Unauthenticated  -> common.ErrInvalidToken
//	any             InvalidArgument  -> common.ErrorValidation
//	any             Unavailable, DeadlineExceeded -> ErrUnavailable
package client
