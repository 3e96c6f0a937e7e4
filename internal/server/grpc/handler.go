package grpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"github.com/dmitrijs2005/todokeeper/internal/todo"
)

func counterToProto(c *todo.Counter) *pb.Counter {
	return &pb.Counter{
		Owner:     c.Owner[:],
		Address:   c.Address[:],
		NextIndex: c.NextIndex,
		Bump:      uint32(c.Bump),
		Rent:      c.Rent,
	}
}

func todoToProto(r *todo.Record) *pb.Todo {
	return &pb.Todo{
		Owner:     r.Owner[:],
		Seq:       r.Seq,
		Address:   r.Address[:],
		Bump:      uint32(r.Bump),
		Title:     r.Title,
		Completed: r.Completed,
		Rent:      r.Rent,
	}
}

// caller returns the identity established by accessTokenInterceptor.
func (s *GRPCServer) caller(ctx context.Context) (identity.Verified, error) {
	who, ok := callerFromContext(ctx)
	if !ok {
		return identity.Verified{}, status.Error(codes.Unauthenticated, "unauthorized")
	}
	return who, nil
}

// statusError maps err to a status and logs what the client will not see.
func (s *GRPCServer) statusError(ctx context.Context, err error) error {
	st, ok := api.ToStatus(err)
	if !ok {
		s.logger.Error(ctx, "internal error", "request_id", requestIDFromContext(ctx), "error", err)
	}
	return st
}

func (s *GRPCServer) InitializeCounter(ctx context.Context, req *pb.InitializeCounterRequest) (*pb.Counter, error) {
	who, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.todos.Initialize(ctx, who)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	s.logger.Info(ctx, "Counter initialized", "owner", who.Owner().String())
	return counterToProto(c), nil
}

func (s *GRPCServer) CreateTodo(ctx context.Context, req *pb.CreateTodoRequest) (*pb.Todo, error) {
	who, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.todos.Create(ctx, who, req.Title)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return todoToProto(r), nil
}

func (s *GRPCServer) MarkComplete(ctx context.Context, req *pb.TodoRequest) (*pb.Todo, error) {
	who, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.todos.MarkComplete(ctx, who, req.Seq)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return todoToProto(r), nil
}

func (s *GRPCServer) UpdateTodo(ctx context.Context, req *pb.UpdateTodoRequest) (*pb.Todo, error) {
	who, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.todos.Update(ctx, who, req.Seq, req.Title)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return todoToProto(r), nil
}

func (s *GRPCServer) DeleteTodo(ctx context.Context, req *pb.TodoRequest) (*pb.DeleteTodoResponse, error) {
	who, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	refund, err := s.todos.Delete(ctx, who, req.Seq)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	s.metrics.AddRefund(refund)
	return &pb.DeleteTodoResponse{Seq: req.Seq, Refund: refund}, nil
}

func (s *GRPCServer) GetCounter(ctx context.Context, req *pb.GetCounterRequest) (*pb.Counter, error) {
	who, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	c, err := s.todos.Counter(ctx, who)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return counterToProto(c), nil
}

func (s *GRPCServer) GetTodo(ctx context.Context, req *pb.TodoRequest) (*pb.Todo, error) {
	who, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.todos.Get(ctx, who, req.Seq)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return todoToProto(r), nil
}

func (s *GRPCServer) ListTodos(ctx context.Context, req *pb.ListTodosRequest) (*pb.ListTodosResponse, error) {
	who, err := s.caller(ctx)
	if err != nil {
		return nil, err
	}
	records, err := s.todos.List(ctx, who)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	resp := &pb.ListTodosResponse{Todos: make([]*pb.Todo, 0, len(records))}
	for _, r := range records {
		resp.Todos = append(resp.Todos, todoToProto(r))
	}
	return resp, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}
