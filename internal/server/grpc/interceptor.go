package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/accountdesk/internal/api"
	"github.com/dmitrijs2005/accountdesk/internal/common"
	"github.com/dmitrijs2005/accountdesk/internal/logging"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const sessionTokenKey ctxKey = "sessionToken"

func firstMetadataValue(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// requestIDInterceptor tags every call with a request id (the caller's, if
// it sent one), echoes it back in the response header and logs the outcome.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	id := firstMetadataValue(ctx, common.RequestIDHeaderName)
	if id == "" {
		id = uuid.NewString()
	}

	ctx = logging.WithRequestID(ctx, id)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Debug(ctx, "request handled",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)

	return resp, err
}

// sessionTokenInterceptor requires a session token on calls that act on
// behalf of a logged-in user.
func (s *GRPCServer) sessionTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if info.FullMethod == api.AccountService_Profile_FullMethodName {

		token := firstMetadataValue(ctx, common.SessionTokenHeaderName)
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		ctx = context.WithValue(ctx, sessionTokenKey, token)
	}

	return handler(ctx, req)
}
