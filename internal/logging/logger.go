// Package logging defines the structured-logging interface used across
// accountdesk, with a log/slog implementation.
package logging

import "context"

// Logger is a context-aware, structured logger. Args are key/value pairs:
//
//	log.Info(ctx, "Logged in", "user_id", userID)
//
// A request id put in ctx with WithRequestID is logged as "request_id".
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	With(args ...any) Logger
}
