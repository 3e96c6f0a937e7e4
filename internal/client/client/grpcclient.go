package client

import (
	"context"
	"crypto/ed25519"
	"errors"
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/todokeeper/internal/address"
	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"github.com/dmitrijs2005/todokeeper/internal/todo"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.TodoServiceClient
	key         *identity.KeyPair
	tokenTTL    time.Duration
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor signs a short-lived token for every call. Ping is
// public and goes out bare when no key is loaded.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.key == nil {
		if method == pb.TodoService_Ping_FullMethodName {
			return invoker(ctx, method, req, reply, cc, opts...)
		}
		return ErrNoKey
	}

	token, err := identity.IssueToken(s.key.Private, s.tokenTTL)
	if err != nil {
		return fmt.Errorf("sign access token: %w", err)
	}
	return invoker(withAccessToken(ctx, token), method, req, reply, cc, opts...)
}

// NewGRPCClient connects lazily to endpointURL. key may be nil, in which
// case only Ping works.
func NewGRPCClient(endpointURL string, key *identity.KeyPair, tokenTTL time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, key: key, tokenTTL: tokenTTL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = pb.NewTodoServiceClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) Initialize(ctx context.Context) (*todo.Counter, error) {
	resp, err := s.client.InitializeCounter(ctx, &pb.InitializeCounterRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return counterFromProto(resp)
}

func (s *GRPCClient) Counter(ctx context.Context) (*todo.Counter, error) {
	resp, err := s.client.GetCounter(ctx, &pb.GetCounterRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return counterFromProto(resp)
}

// checkEncodable rejects titles a proto3 string field cannot carry.
func checkEncodable(title string) error {
	if !utf8.ValidString(title) {
		return todo.ErrTitleInvalidUTF8
	}
	return nil
}

func (s *GRPCClient) Create(ctx context.Context, title string) (*todo.Record, error) {
	if err := checkEncodable(title); err != nil {
		return nil, err
	}
	resp, err := s.client.CreateTodo(ctx, &pb.CreateTodoRequest{Title: title})
	if err != nil {
		return nil, s.mapError(err)
	}
	return todoFromProto(resp)
}

func (s *GRPCClient) MarkComplete(ctx context.Context, seq uint64) (*todo.Record, error) {
	resp, err := s.client.MarkComplete(ctx, &pb.TodoRequest{Seq: seq})
	if err != nil {
		return nil, s.mapError(err)
	}
	return todoFromProto(resp)
}

func (s *GRPCClient) Update(ctx context.Context, seq uint64, title string) (*todo.Record, error) {
	if err := checkEncodable(title); err != nil {
		return nil, err
	}
	resp, err := s.client.UpdateTodo(ctx, &pb.UpdateTodoRequest{Seq: seq, Title: title})
	if err != nil {
		return nil, s.mapError(err)
	}
	return todoFromProto(resp)
}

// Delete removes the record and returns the refunded rent.
func (s *GRPCClient) Delete(ctx context.Context, seq uint64) (uint64, error) {
	resp, err := s.client.DeleteTodo(ctx, &pb.TodoRequest{Seq: seq})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Refund, nil
}

func (s *GRPCClient) Get(ctx context.Context, seq uint64) (*todo.Record, error) {
	resp, err := s.client.GetTodo(ctx, &pb.TodoRequest{Seq: seq})
	if err != nil {
		return nil, s.mapError(err)
	}
	return todoFromProto(resp)
}

func (s *GRPCClient) List(ctx context.Context) ([]*todo.Record, error) {
	resp, err := s.client.ListTodos(ctx, &pb.ListTodosRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	records := make([]*todo.Record, 0, len(resp.Todos))
	for _, t := range resp.Todos {
		r, err := todoFromProto(t)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

func ownerAndAddress(owner, addr []byte) (identity.Owner, address.Address, error) {
	o, err := identity.OwnerFromPublicKey(ed25519.PublicKey(owner))
	if err != nil {
		return o, address.Address{}, fmt.Errorf("%w: owner: %v", ErrBadResponse, err)
	}
	a, err := address.FromBytes(addr)
	if err != nil {
		return o, a, fmt.Errorf("%w: address: %v", ErrBadResponse, err)
	}
	return o, a, nil
}

func bumpFromProto(b uint32) (uint8, error) {
	if b > math.MaxUint8 {
		return 0, fmt.Errorf("%w: bump %d", ErrBadResponse, b)
	}
	return uint8(b), nil
}

func counterFromProto(c *pb.Counter) (*todo.Counter, error) {
	o, a, err := ownerAndAddress(c.Owner, c.Address)
	if err != nil {
		return nil, err
	}
	bump, err := bumpFromProto(c.Bump)
	if err != nil {
		return nil, err
	}
	return &todo.Counter{Owner: o, Address: a, NextIndex: c.NextIndex, Bump: bump, Rent: c.Rent}, nil
}

func todoFromProto(t *pb.Todo) (*todo.Record, error) {
	o, a, err := ownerAndAddress(t.Owner, t.Address)
	if err != nil {
		return nil, err
	}
	bump, err := bumpFromProto(t.Bump)
	if err != nil {
		return nil, err
	}
	return &todo.Record{
		Owner:     o,
		Seq:       t.Seq,
		Address:   a,
		Bump:      bump,
		Title:     t.Title,
		Completed: t.Completed,
		Rent:      t.Rent,
	}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNoKey) {
		return err
	}
	if st, ok := status.FromError(err); ok {
		switch st.Code() {
		case codes.Unavailable:
			return fmt.Errorf("%w: %s", ErrUnavailable, st.Message())
		case codes.DeadlineExceeded:
			return fmt.Errorf("%w: %w", ErrUnavailable, context.DeadlineExceeded)
		}
	}
	return api.FromStatus(err)
}
