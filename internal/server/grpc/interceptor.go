package grpc

import (
	"context"
	"path"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
)

type ctxKey string

const (
	callerKey    ctxKey = "caller"
	requestIDKey ctxKey = "requestID"
)

// publicMethods are served without an access token.
var publicMethods = map[string]bool{
	pb.TodoService_Ping_FullMethodName: true,
}

func callerFromContext(ctx context.Context) (identity.Verified, bool) {
	v, ok := ctx.Value(callerKey).(identity.Verified)
	return v, ok && v.Valid()
}

func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func firstMetadata(ctx context.Context, key string) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(key); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// requestIDInterceptor reuses the caller's request id or mints one and
// echoes it in the response header.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	id := firstMetadata(ctx, common.RequestIDHeaderName)
	if id == "" {
		id = uuid.NewString()
	}
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))
	return handler(context.WithValue(ctx, requestIDKey, id), req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	method := path.Base(info.FullMethod)
	code := status.Code(err)
	s.metrics.ObserveRPC(method, code.String(), start)

	args := []any{
		"method", method,
		"code", code.String(),
		"request_id", requestIDFromContext(ctx),
		"duration", time.Since(start),
	}
	if code == codes.Internal || code == codes.Unknown {
		s.logger.Error(ctx, "rpc failed", append(args, "error", err)...)
	} else {
		s.logger.Info(ctx, "rpc", args...)
	}
	return resp, err
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	accessToken := firstMetadata(ctx, common.AccessTokenHeaderName)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	who, err := s.verifier.Verify(accessToken)
	if err != nil {
		s.logger.Warn(ctx, "token rejected", "request_id", requestIDFromContext(ctx), "error", err)
		st, _ := api.ToStatus(err)
		if status.Code(st) != codes.Unauthenticated {
			st = status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
		}
		return nil, st
	}

	return handler(context.WithValue(ctx, callerKey, who), req)
}
