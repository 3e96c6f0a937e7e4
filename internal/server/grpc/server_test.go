package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/dmitrijs2005/todokeeper/internal/address"
	"github.com/dmitrijs2005/todokeeper/internal/api"
	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
	"github.com/dmitrijs2005/todokeeper/internal/ledger"
	"github.com/dmitrijs2005/todokeeper/internal/ledger/memstore"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"github.com/dmitrijs2005/todokeeper/internal/server/metrics"
	"github.com/dmitrijs2005/todokeeper/internal/todo"
)

type harness struct {
	client  pb.TodoServiceClient
	metrics *metrics.Metrics
	kp      *identity.KeyPair
}

func startServer(t *testing.T) *harness {
	t.Helper()

	d, err := address.NewDeriver(16)
	require.NoError(t, err)
	svc := todo.NewService(memstore.New(), d, logging.Nop{})
	m := metrics.New(prometheus.NewRegistry())

	s := NewGRPCServer("bufnet", logging.Nop{}, svc, identity.NewTokenVerifier(time.Hour), m)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	kp, err := identity.GenerateKeyPair()
	require.NoError(t, err)

	return &harness{client: pb.NewTodoServiceClient(conn), metrics: m, kp: kp}
}

func (h *harness) authed(t *testing.T) context.Context {
	t.Helper()
	token, err := identity.IssueToken(h.kp.Private, time.Minute)
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)
}

func TestServer_PingWithoutToken(t *testing.T) {
	h := startServer(t)

	var header metadata.MD
	resp, err := h.client.Ping(context.Background(), &pb.PingRequest{}, grpc.Header(&header))
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.Status != "OK" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
	if len(header.Get(common.RequestIDHeaderName)) != 1 {
		t.Fatalf("expected a request id header, got %v", header)
	}
}

func TestServer_RequestIDIsEchoed(t *testing.T) {
	h := startServer(t)

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.RequestIDHeaderName, "req-42")
	var header metadata.MD
	_, err := h.client.Ping(ctx, &pb.PingRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"req-42"}, header.Get(common.RequestIDHeaderName))
}

func TestServer_MissingToken(t *testing.T) {
	h := startServer(t)

	_, err := h.client.InitializeCounter(context.Background(), &pb.InitializeCounterRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
	if status.Convert(err).Message() != "missing token" {
		t.Fatalf("expected 'missing token', got %q", status.Convert(err).Message())
	}
}

func TestServer_InvalidToken(t *testing.T) {
	h := startServer(t)

	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, "not-a-valid-jwt")
	_, err := h.client.ListTodos(ctx, &pb.ListTodosRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
	assert.ErrorIs(t, api.FromStatus(err), common.ErrInvalidToken)
}

func TestServer_Scenario(t *testing.T) {
	h := startServer(t)
	ctx := h.authed(t)

	c, err := h.client.InitializeCounter(ctx, &pb.InitializeCounterRequest{})
	require.NoError(t, err)
	assert.Equal(t, h.kp.Public[:], c.Owner)
	assert.Equal(t, uint64(0), c.NextIndex)

	r, err := h.client.CreateTodo(ctx, &pb.CreateTodoRequest{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), r.Seq)

	r, err = h.client.MarkComplete(ctx, &pb.TodoRequest{Seq: 0})
	require.NoError(t, err)
	assert.True(t, r.Completed)

	r, err = h.client.UpdateTodo(ctx, &pb.UpdateTodoRequest{Seq: 0, Title: "Buy oat milk"})
	require.NoError(t, err)
	assert.Equal(t, "Buy oat milk", r.Title)

	del, err := h.client.DeleteTodo(ctx, &pb.TodoRequest{Seq: 0})
	require.NoError(t, err)
	assert.Equal(t, ledger.RentFor(todo.RecordSize), del.Refund)
	assert.Equal(t, float64(del.Refund), testutil.ToFloat64(h.metrics.RentRefunded))

	r, err = h.client.CreateTodo(ctx, &pb.CreateTodoRequest{Title: "Walk dog"})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), r.Seq)
	assert.Len(t, r.Address, address.Size)
	assert.Equal(t, h.kp.Public[:], r.Owner)

	c, err = h.client.GetCounter(ctx, &pb.GetCounterRequest{})
	require.NoError(t, err)
	assert.Equal(t, uint64(2), c.NextIndex)

	got, err := h.client.GetTodo(ctx, &pb.TodoRequest{Seq: 1})
	require.NoError(t, err)
	assert.Equal(t, "Walk dog", got.Title)

	list, err := h.client.ListTodos(ctx, &pb.ListTodosRequest{})
	require.NoError(t, err)
	require.Len(t, list.Todos, 1)
	assert.Equal(t, uint64(1), list.Todos[0].Seq)

	assert.Equal(t, 2.0, testutil.ToFloat64(h.metrics.RequestsTotal.WithLabelValues("CreateTodo", "OK")))
}

func TestServer_DomainErrorsMapToCodes(t *testing.T) {
	h := startServer(t)
	ctx := h.authed(t)

	_, err := h.client.CreateTodo(ctx, &pb.CreateTodoRequest{Title: "abc"})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
	assert.ErrorIs(t, api.FromStatus(err), todo.ErrCounterMissing)

	_, err = h.client.InitializeCounter(ctx, &pb.InitializeCounterRequest{})
	require.NoError(t, err)
	_, err = h.client.InitializeCounter(ctx, &pb.InitializeCounterRequest{})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))
	assert.ErrorIs(t, api.FromStatus(err), todo.ErrAlreadyInitialized)

	_, err = h.client.CreateTodo(ctx, &pb.CreateTodoRequest{Title: "   "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.ErrorIs(t, api.FromStatus(err), todo.ErrTitleWhitespaceOnly)

	_, err = h.client.GetTodo(ctx, &pb.TodoRequest{Seq: 9})
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.ErrorIs(t, api.FromStatus(err), todo.ErrRecordNotFound)

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.RequestsTotal.WithLabelValues("GetTodo", "NotFound")))
}

func TestServer_ExpiredToken(t *testing.T) {
	h := startServer(t)

	token, err := identity.IssueToken(h.kp.Private, -time.Minute)
	require.NoError(t, err)
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AccessTokenHeaderName, token)

	_, err = h.client.GetCounter(ctx, &pb.GetCounterRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.ErrorIs(t, api.FromStatus(err), common.ErrTokenExpired)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	s := NewGRPCServer("127.0.0.1:0", logging.Nop{}, nil, identity.NewTokenVerifier(0), nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	s := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, nil, identity.NewTokenVerifier(0), nil)
	if err := s.Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}
