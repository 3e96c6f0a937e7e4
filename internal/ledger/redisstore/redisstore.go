// Package redisstore keeps ledger slots in Redis. Updates are optimistic:
// every key read is WATCHed before it is read and the buffered writes are
// applied in one MULTI/EXEC, retried when a watched key changed. Each
// update also bumps a per-owner version key, so two updates for the same
// owner can never both commit from the same snapshot.
package redisstore

import (
	"bytes"
	"context"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/todokeeper/internal/address"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
	"github.com/dmitrijs2005/todokeeper/internal/ledger"
)

const (
	DefaultPrefix     = "todokeeper:"
	DefaultMaxRetries = 50
)

// ErrContention is returned when an update keeps conflicting with others.
var ErrContention = errors.New("redis: too many conflicting transactions")

type Option func(*Store)

// WithPrefix namespaces every key.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithMaxRetries bounds how often a conflicting transaction is rerun.
func WithMaxRetries(n uint64) Option {
	return func(s *Store) { s.maxRetries = n }
}

type Store struct {
	client     *redis.Client
	prefix     string
	maxRetries uint64

	// in-process exclusion keeps local callers from spinning on each other
	owners ledger.OwnerLocks
}

func New(client *redis.Client, opts ...Option) *Store {
	s := &Store{
		client:     client,
		prefix:     DefaultPrefix,
		maxRetries: DefaultMaxRetries,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Open parses a redis:// URL and pings the server.
func Open(ctx context.Context, url string, opts ...Option) (*Store, error) {
	ropts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(ropts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(client, opts...), nil
}

func (s *Store) Update(ctx context.Context, owner identity.Owner, fn ledger.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.owners.Lock(owner)
	defer unlock()

	return s.run(ctx, s.ownerKey(owner), false, fn)
}

func (s *Store) View(ctx context.Context, fn ledger.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.run(ctx, "", true, fn)
}

func (s *Store) Close() error {
	err := s.client.Close()
	if errors.Is(err, redis.ErrClosed) {
		return nil
	}
	return err
}

func (s *Store) run(ctx context.Context, versionKey string, readOnly bool, fn ledger.TxFunc) error {
	b := retry.WithMaxRetries(s.maxRetries,
		retry.WithJitterPercent(50,
			retry.WithCappedDuration(50*time.Millisecond, retry.NewExponential(time.Millisecond))))

	err := retry.Do(ctx, b, func(ctx context.Context) error {
		err := s.attempt(ctx, versionKey, readOnly, fn)
		if errors.Is(err, redis.TxFailedErr) {
			return retry.RetryableError(err)
		}
		return err
	})
	switch {
	case errors.Is(err, redis.TxFailedErr):
		return ErrContention
	case errors.Is(err, redis.ErrClosed):
		return ledger.ErrClosed
	}
	return err
}

func (s *Store) attempt(ctx context.Context, versionKey string, readOnly bool, fn ledger.TxFunc) error {
	var keys []string
	if versionKey != "" {
		keys = append(keys, versionKey)
	}
	return s.client.Watch(ctx, func(rtx *redis.Tx) error {
		tx := &redisTx{
			store:    s,
			rtx:      rtx,
			readOnly: readOnly,
			watched:  make(map[string]bool),
			writes:   make(map[string]*ledger.Slot),
		}
		if err := fn(ctx, tx); err != nil {
			return err
		}
		_, err := rtx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for key, sl := range tx.writes {
				if sl == nil {
					pipe.Del(ctx, key)
					continue
				}
				pipe.Set(ctx, key, encodeSlot(sl), 0)
			}
			if versionKey != "" {
				pipe.Incr(ctx, versionKey)
			} else {
				// an empty MULTI still fails if a watched key moved
				pipe.Ping(ctx)
			}
			return nil
		})
		return err
	}, keys...)
}

func (s *Store) ownerKey(owner identity.Owner) string {
	return s.prefix + "owner:" + owner.String() + ":version"
}

func (s *Store) slotKey(addr address.Address) string {
	return s.prefix + "slot:" + hex.EncodeToString(addr[:])
}

// value layout: owner(32) | rent u64 BE | data
const headerSize = len(identity.Owner{}) + 8

func encodeSlot(sl *ledger.Slot) []byte {
	b := make([]byte, headerSize+len(sl.Data))
	copy(b, sl.Owner[:])
	binary.BigEndian.PutUint64(b[len(sl.Owner):], sl.Rent)
	copy(b[headerSize:], sl.Data)
	return b
}

func decodeSlot(addr address.Address, b []byte) (*ledger.Slot, error) {
	if len(b) < headerSize {
		return nil, ledger.ErrCorruptSlot
	}
	sl := &ledger.Slot{Address: addr}
	copy(sl.Owner[:], b)
	sl.Rent = binary.BigEndian.Uint64(b[len(sl.Owner):headerSize])
	sl.Data = bytes.Clone(b[headerSize:])
	return sl, nil
}

// redisTx buffers writes; nil entries are closed slots.
type redisTx struct {
	store    *Store
	rtx      *redis.Tx
	readOnly bool
	watched  map[string]bool
	writes   map[string]*ledger.Slot
}

func (t *redisTx) load(ctx context.Context, addr address.Address) (*ledger.Slot, error) {
	key := t.store.slotKey(addr)
	if sl, ok := t.writes[key]; ok {
		if sl == nil {
			return nil, ledger.ErrSlotNotFound
		}
		return sl.Clone(), nil
	}
	if !t.watched[key] {
		if err := t.rtx.Watch(ctx, key).Err(); err != nil {
			return nil, fmt.Errorf("redis watch: %w", err)
		}
		t.watched[key] = true
	}
	b, err := t.rtx.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ledger.ErrSlotNotFound
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return decodeSlot(addr, b)
}

func (t *redisTx) Get(ctx context.Context, addr address.Address) (*ledger.Slot, error) {
	return t.load(ctx, addr)
}

func (t *redisTx) Create(ctx context.Context, owner identity.Owner, addr address.Address, data []byte) (*ledger.Slot, error) {
	if t.readOnly {
		return nil, ledger.ErrReadOnly
	}
	_, err := t.load(ctx, addr)
	switch {
	case err == nil:
		return nil, ledger.ErrSlotOccupied
	case !errors.Is(err, ledger.ErrSlotNotFound):
		return nil, err
	}
	sl := &ledger.Slot{
		Address: addr,
		Owner:   owner,
		Data:    bytes.Clone(data),
		Rent:    ledger.RentFor(len(data)),
	}
	t.writes[t.store.slotKey(addr)] = sl
	return sl.Clone(), nil
}

func (t *redisTx) Update(ctx context.Context, addr address.Address, data []byte) error {
	if t.readOnly {
		return ledger.ErrReadOnly
	}
	sl, err := t.load(ctx, addr)
	if err != nil {
		return err
	}
	if len(sl.Data) != len(data) {
		return ledger.ErrSizeMismatch
	}
	sl.Data = bytes.Clone(data)
	t.writes[t.store.slotKey(addr)] = sl
	return nil
}

func (t *redisTx) Close(ctx context.Context, addr address.Address) (uint64, error) {
	if t.readOnly {
		return 0, ledger.ErrReadOnly
	}
	sl, err := t.load(ctx, addr)
	if err != nil {
		return 0, err
	}
	t.writes[t.store.slotKey(addr)] = nil
	return sl.Rent, nil
}
