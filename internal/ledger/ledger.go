// Package ledger is the host side of the store: fixed-size slots at derived
// addresses, allocated and funded on creation and reclaimed on close.
//
// All mutation happens inside Store.Update. Implementations guarantee that
// the closure's writes apply all at once or not at all, and that closures
// scoped to the same owner never interleave.
package ledger

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/todokeeper/internal/address"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
)

var (
	ErrSlotNotFound = errors.New("slot not found")
	ErrSlotOccupied = errors.New("slot already in use")
	ErrSizeMismatch = errors.New("slot size mismatch")
	ErrReadOnly     = errors.New("read-only transaction")
	ErrCorruptSlot  = errors.New("slot data is corrupt")
	ErrClosed       = errors.New("store is closed")
)

// Slot is one allocated storage cell.
type Slot struct {
	Address address.Address
	// Owner paid the rent and receives it back on close.
	Owner identity.Owner
	Data  []byte
	Rent  uint64
}

// Clone returns a deep copy.
func (s *Slot) Clone() *Slot {
	c := *s
	c.Data = append([]byte(nil), s.Data...)
	return &c
}

// Tx is the view of the store inside one operation.
type Tx interface {
	// Get returns the slot at addr or ErrSlotNotFound.
	Get(ctx context.Context, addr address.Address) (*Slot, error)

	// Create allocates a fresh slot. It fails with ErrSlotOccupied if the
	// address holds a slot, including one created earlier in the same Tx.
	Create(ctx context.Context, owner identity.Owner, addr address.Address, data []byte) (*Slot, error)

	// Update overwrites an existing slot's data. The size is fixed at
	// allocation; a different length fails with ErrSizeMismatch.
	Update(ctx context.Context, addr address.Address, data []byte) error

	// Close deallocates the slot and returns the rent refunded to its owner.
	Close(ctx context.Context, addr address.Address) (uint64, error)
}

// TxFunc is one atomic operation.
type TxFunc func(ctx context.Context, tx Tx) error

type Store interface {
	// Update runs fn atomically with exclusive access to owner's slots.
	Update(ctx context.Context, owner identity.Owner, fn TxFunc) error

	// View runs fn against a consistent read-only view. Writes fail with
	// ErrReadOnly.
	View(ctx context.Context, fn TxFunc) error

	Close() error
}

const (
	// SlotOverhead is the per-slot bookkeeping size charged on top of data.
	SlotOverhead = 128
	// RentPerByteYear is the rent rate in base units.
	RentPerByteYear = 3480
	// ExemptionYears of prepaid rent make a slot rent-exempt.
	ExemptionYears = 2
)

// RentFor is the deposit required to keep a slot of size bytes alive.
func RentFor(size int) uint64 {
	return uint64(SlotOverhead+size) * RentPerByteYear * ExemptionYears
}
