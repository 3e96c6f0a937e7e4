// Package grpc serves todokeeper.v1.TodoService.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/todokeeper/internal/identity"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"github.com/dmitrijs2005/todokeeper/internal/server/metrics"
	"github.com/dmitrijs2005/todokeeper/internal/todo"
)

// TodoService is the subset of todo.Service the handlers call.
type TodoService interface {
	Initialize(ctx context.Context, who identity.Verified) (*todo.Counter, error)
	Create(ctx context.Context, who identity.Verified, title string) (*todo.Record, error)
	MarkComplete(ctx context.Context, who identity.Verified, seq uint64) (*todo.Record, error)
	Update(ctx context.Context, who identity.Verified, seq uint64, title string) (*todo.Record, error)
	Delete(ctx context.Context, who identity.Verified, seq uint64) (uint64, error)
	Counter(ctx context.Context, who identity.Verified) (*todo.Counter, error)
	Get(ctx context.Context, who identity.Verified, seq uint64) (*todo.Record, error)
	List(ctx context.Context, who identity.Verified) ([]*todo.Record, error)
}

// TokenVerifier turns an access token into a verified caller.
type TokenVerifier interface {
	Verify(token string) (identity.Verified, error)
}

type GRPCServer struct {
	pb.UnimplementedTodoServiceServer
	address  string
	todos    TodoService
	verifier TokenVerifier
	metrics  *metrics.Metrics
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, todos TodoService, verifier TokenVerifier, m *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		todos:    todos,
		verifier: verifier,
		metrics:  m,
	}
}

// NewServer builds the grpc.Server with the interceptor chain and the
// service registered.
func (s *GRPCServer) NewServer(opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			s.requestIDInterceptor,
			s.loggingInterceptor,
			s.accessTokenInterceptor,
		),
	}, opts...)
	srv := grpc.NewServer(opts...)
	pb.RegisterTodoServiceServer(srv, s)
	return srv
}

// Serve serves on lis until ctx is canceled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	<-stopped
	return nil
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}
