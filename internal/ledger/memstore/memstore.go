// Package memstore is an in-memory ledger.Store. Writes are journaled per
// transaction and applied under the store lock on commit; a per-owner mutex
// serializes transactions of the same owner.
package memstore

import (
	"bytes"
	"context"
	"sync"

	"github.com/dmitrijs2005/todokeeper/internal/address"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
	"github.com/dmitrijs2005/todokeeper/internal/ledger"
)

type Store struct {
	mu     sync.RWMutex
	slots  map[address.Address]*ledger.Slot
	closed bool

	owners ledger.OwnerLocks
}

func New() *Store {
	return &Store{
		slots: make(map[address.Address]*ledger.Slot),
	}
}

func (s *Store) Update(ctx context.Context, owner identity.Owner, fn ledger.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	unlock := s.owners.Lock(owner)
	defer unlock()

	tx := &memTx{store: s, writes: make(map[address.Address]*ledger.Slot)}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	return s.commit(tx)
}

func (s *Store) View(ctx context.Context, fn ledger.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ledger.ErrClosed
	}
	return fn(ctx, &memTx{store: s, readOnly: true})
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Len reports the number of live slots.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

func (s *Store) commit(tx *memTx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ledger.ErrClosed
	}
	for addr, w := range tx.writes {
		if w != nil && tx.created[addr] {
			if _, taken := s.slots[addr]; taken {
				return ledger.ErrSlotOccupied
			}
		}
	}
	for addr, w := range tx.writes {
		if w == nil {
			delete(s.slots, addr)
			continue
		}
		s.slots[addr] = w
	}
	return nil
}

// memTx reads through its own journal. nil journal entries are closed slots.
type memTx struct {
	store    *Store
	readOnly bool
	writes   map[address.Address]*ledger.Slot
	created  map[address.Address]bool
}

func (t *memTx) lookup(addr address.Address) (*ledger.Slot, bool, error) {
	if w, ok := t.writes[addr]; ok {
		return w, w != nil, nil
	}
	if t.readOnly {
		// View already holds the read lock.
		sl, ok := t.store.slots[addr]
		return sl, ok, nil
	}
	t.store.mu.RLock()
	defer t.store.mu.RUnlock()
	if t.store.closed {
		return nil, false, ledger.ErrClosed
	}
	sl, ok := t.store.slots[addr]
	return sl, ok, nil
}

func (t *memTx) Get(ctx context.Context, addr address.Address) (*ledger.Slot, error) {
	sl, ok, err := t.lookup(addr)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ledger.ErrSlotNotFound
	}
	return sl.Clone(), nil
}

func (t *memTx) Create(ctx context.Context, owner identity.Owner, addr address.Address, data []byte) (*ledger.Slot, error) {
	if t.readOnly {
		return nil, ledger.ErrReadOnly
	}
	_, ok, err := t.lookup(addr)
	if err != nil {
		return nil, err
	}
	if ok {
		return nil, ledger.ErrSlotOccupied
	}
	sl := &ledger.Slot{
		Address: addr,
		Owner:   owner,
		Data:    bytes.Clone(data),
		Rent:    ledger.RentFor(len(data)),
	}
	t.writes[addr] = sl
	if t.created == nil {
		t.created = make(map[address.Address]bool)
	}
	t.created[addr] = true
	return sl.Clone(), nil
}

func (t *memTx) Update(ctx context.Context, addr address.Address, data []byte) error {
	if t.readOnly {
		return ledger.ErrReadOnly
	}
	sl, ok, err := t.lookup(addr)
	if err != nil {
		return err
	}
	if !ok {
		return ledger.ErrSlotNotFound
	}
	if len(sl.Data) != len(data) {
		return ledger.ErrSizeMismatch
	}
	next := sl.Clone()
	copy(next.Data, data)
	t.writes[addr] = next
	return nil
}

func (t *memTx) Close(ctx context.Context, addr address.Address) (uint64, error) {
	if t.readOnly {
		return 0, ledger.ErrReadOnly
	}
	sl, ok, err := t.lookup(addr)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ledger.ErrSlotNotFound
	}
	t.writes[addr] = nil
	delete(t.created, addr)
	return sl.Rent, nil
}
