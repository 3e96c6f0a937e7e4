// Package levelstore keeps ledger slots in an embedded LevelDB. Each Update
// runs in a LevelDB transaction, which also excludes every other writer.
package levelstore

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/dmitrijs2005/todokeeper/internal/address"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
	"github.com/dmitrijs2005/todokeeper/internal/ledger"
)

var slotPrefix = []byte("slot/")

// value layout: owner(32) | rent u64 BE | data
const headerSize = len(identity.Owner{}) + 8

type Store struct {
	db *leveldb.DB
}

// Open opens or creates a database in dir.
func Open(dir string) (*Store, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenMemory returns a store that lives only in memory.
func OpenMemory() (*Store, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Update(ctx context.Context, owner identity.Owner, fn ledger.TxFunc) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	tr, err := s.db.OpenTransaction()
	if err != nil {
		return mapErr(err)
	}
	defer func() {
		if p := recover(); p != nil {
			tr.Discard()
			panic(p)
		}
		if err != nil {
			tr.Discard()
			return
		}
		if cerr := tr.Commit(); cerr != nil {
			err = mapErr(cerr)
		}
	}()

	return fn(ctx, &levelTx{r: tr, w: tr})
}

func (s *Store) View(ctx context.Context, fn ledger.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	snap, err := s.db.GetSnapshot()
	if err != nil {
		return mapErr(err)
	}
	defer snap.Release()
	return fn(ctx, &levelTx{r: snap})
}

func (s *Store) Close() error {
	return s.db.Close()
}

type reader interface {
	Get(key []byte, ro *opt.ReadOptions) ([]byte, error)
}

type writer interface {
	Put(key, value []byte, wo *opt.WriteOptions) error
	Delete(key []byte, wo *opt.WriteOptions) error
}

// levelTx is read-only when w is nil.
type levelTx struct {
	r reader
	w writer
}

func slotKey(addr address.Address) []byte {
	k := make([]byte, 0, len(slotPrefix)+address.Size)
	k = append(k, slotPrefix...)
	return append(k, addr[:]...)
}

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

func (t *levelTx) Get(ctx context.Context, addr address.Address) (*ledger.Slot, error) {
	b, err := t.r.Get(slotKey(addr), nil)
	if err != nil {
		return nil, mapErr(err)
	}
	return decodeSlot(addr, b)
}

func (t *levelTx) Create(ctx context.Context, owner identity.Owner, addr address.Address, data []byte) (*ledger.Slot, error) {
	if t.w == nil {
		return nil, ledger.ErrReadOnly
	}
	_, err := t.r.Get(slotKey(addr), nil)
	switch {
	case err == nil:
		return nil, ledger.ErrSlotOccupied
	case !errors.Is(err, leveldb.ErrNotFound):
		return nil, mapErr(err)
	}

	sl := &ledger.Slot{
		Address: addr,
		Owner:   owner,
		Data:    bytes.Clone(data),
		Rent:    ledger.RentFor(len(data)),
	}
	if err := t.w.Put(slotKey(addr), encodeSlot(sl), nil); err != nil {
		return nil, mapErr(err)
	}
	return sl, nil
}

func (t *levelTx) Update(ctx context.Context, addr address.Address, data []byte) error {
	if t.w == nil {
		return ledger.ErrReadOnly
	}
	sl, err := t.Get(ctx, addr)
	if err != nil {
		return err
	}
	if len(sl.Data) != len(data) {
		return ledger.ErrSizeMismatch
	}
	sl.Data = data
	return mapErr(t.w.Put(slotKey(addr), encodeSlot(sl), nil))
}

func (t *levelTx) Close(ctx context.Context, addr address.Address) (uint64, error) {
	if t.w == nil {
		return 0, ledger.ErrReadOnly
	}
	sl, err := t.Get(ctx, addr)
	if err != nil {
		return 0, err
	}
	if err := t.w.Delete(slotKey(addr), nil); err != nil {
		return 0, mapErr(err)
	}
	return sl.Rent, nil
}

func mapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, leveldb.ErrNotFound):
		return ledger.ErrSlotNotFound
	case errors.Is(err, leveldb.ErrClosed):
		return ledger.ErrClosed
	default:
		return fmt.Errorf("leveldb: %w", err)
	}
}
