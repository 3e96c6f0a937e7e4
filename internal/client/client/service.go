package client

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/todo"
)

// Client is the todokeeper API as seen by the CLI.
type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Initialize(ctx context.Context) (*todo.Counter, error)
	Counter(ctx context.Context) (*todo.Counter, error)
	Create(ctx context.Context, title string) (*todo.Record, error)
	MarkComplete(ctx context.Context, seq uint64) (*todo.Record, error)
	Update(ctx context.Context, seq uint64, title string) (*todo.Record, error)
	Delete(ctx context.Context, seq uint64) (uint64, error)
	Get(ctx context.Context, seq uint64) (*todo.Record, error)
	List(ctx context.Context) ([]*todo.Record, error)
}

var _ Client = (*GRPCClient)(nil)
