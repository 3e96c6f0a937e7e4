// Package ledgertest is a behavioral suite every ledger.Store backend runs.
package ledgertest

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/todokeeper/internal/address"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
	"github.com/dmitrijs2005/todokeeper/internal/ledger"
)

// Factory returns a fresh, empty store. Run closes it after each subtest.
type Factory func(t *testing.T) ledger.Store

func Run(t *testing.T, newStore Factory) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s ledger.Store)
	}{
		{"CreateGetUpdateClose", testLifecycle},
		{"CreateOccupied", testCreateOccupied},
		{"CreateTwiceInOneTx", testCreateTwiceInOneTx},
		{"NotFound", testNotFound},
		{"SizeMismatch", testSizeMismatch},
		{"RollbackOnError", testRollbackOnError},
		{"RollbackOnPanic", testRollbackOnPanic},
		{"ReadYourWrites", testReadYourWrites},
		{"ViewIsReadOnly", testViewIsReadOnly},
		{"RecreateAfterClose", testRecreateAfterClose},
		{"SameOwnerSerialized", testSameOwnerSerialized},
		{"CanceledContext", testCanceledContext},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newStore(t)
			t.Cleanup(func() { _ = s.Close() })
			tc.fn(t, s)
		})
	}
}

// NewOwner returns a random owner key.
func NewOwner(t *testing.T) identity.Owner {
	t.Helper()
	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	o, err := identity.OwnerFromPublicKey(pub)
	require.NoError(t, err)
	return o
}

// NewAddress returns a random address; the suite never needs it off-curve.
func NewAddress(t *testing.T) address.Address {
	t.Helper()
	var a address.Address
	_, err := rand.Read(a[:])
	require.NoError(t, err)
	return a
}

func get(t *testing.T, s ledger.Store, addr address.Address) (*ledger.Slot, error) {
	t.Helper()
	var out *ledger.Slot
	err := s.View(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		sl, err := tx.Get(ctx, addr)
		out = sl
		return err
	})
	return out, err
}

func testLifecycle(t *testing.T, s ledger.Store) {
	ctx := context.Background()
	owner := NewOwner(t)
	addr := NewAddress(t)

	err := s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		sl, err := tx.Create(ctx, owner, addr, []byte("abcd"))
		if err != nil {
			return err
		}
		assert.Equal(t, ledger.RentFor(4), sl.Rent)
		return nil
	})
	require.NoError(t, err)

	sl, err := get(t, s, addr)
	require.NoError(t, err)
	assert.Equal(t, addr, sl.Address)
	assert.Equal(t, owner, sl.Owner)
	assert.Equal(t, []byte("abcd"), sl.Data)
	assert.Equal(t, ledger.RentFor(4), sl.Rent)

	require.NoError(t, s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		return tx.Update(ctx, addr, []byte("wxyz"))
	}))
	sl, err = get(t, s, addr)
	require.NoError(t, err)
	assert.Equal(t, []byte("wxyz"), sl.Data)

	var refund uint64
	require.NoError(t, s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		refund, err = tx.Close(ctx, addr)
		return err
	}))
	assert.Equal(t, ledger.RentFor(4), refund)

	_, err = get(t, s, addr)
	assert.ErrorIs(t, err, ledger.ErrSlotNotFound)
}

func testCreateOccupied(t *testing.T, s ledger.Store) {
	ctx := context.Background()
	owner := NewOwner(t)
	addr := NewAddress(t)

	create := func(data []byte) error {
		return s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
			_, err := tx.Create(ctx, owner, addr, data)
			return err
		})
	}
	require.NoError(t, create([]byte{1}))
	assert.ErrorIs(t, create([]byte{2}), ledger.ErrSlotOccupied)

	sl, err := get(t, s, addr)
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, sl.Data)
}

func testCreateTwiceInOneTx(t *testing.T, s ledger.Store) {
	ctx := context.Background()
	owner := NewOwner(t)
	addr := NewAddress(t)

	err := s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		if _, err := tx.Create(ctx, owner, addr, []byte{1}); err != nil {
			return err
		}
		_, err := tx.Create(ctx, owner, addr, []byte{2})
		return err
	})
	assert.ErrorIs(t, err, ledger.ErrSlotOccupied)

	_, err = get(t, s, addr)
	assert.ErrorIs(t, err, ledger.ErrSlotNotFound)
}

func testNotFound(t *testing.T, s ledger.Store) {
	ctx := context.Background()
	owner := NewOwner(t)
	addr := NewAddress(t)

	_, err := get(t, s, addr)
	assert.ErrorIs(t, err, ledger.ErrSlotNotFound)

	err = s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		return tx.Update(ctx, addr, []byte{1})
	})
	assert.ErrorIs(t, err, ledger.ErrSlotNotFound)

	err = s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Close(ctx, addr)
		return err
	})
	assert.ErrorIs(t, err, ledger.ErrSlotNotFound)
}

func testSizeMismatch(t *testing.T, s ledger.Store) {
	ctx := context.Background()
	owner := NewOwner(t)
	addr := NewAddress(t)

	require.NoError(t, s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Create(ctx, owner, addr, []byte{1, 2, 3})
		return err
	}))
	err := s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		return tx.Update(ctx, addr, []byte{1, 2})
	})
	assert.ErrorIs(t, err, ledger.ErrSizeMismatch)
}

func testRollbackOnError(t *testing.T, s ledger.Store) {
	ctx := context.Background()
	owner := NewOwner(t)
	kept, dropped := NewAddress(t), NewAddress(t)

	require.NoError(t, s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Create(ctx, owner, kept, []byte{0})
		return err
	}))

	boom := errors.New("boom")
	err := s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		if err := tx.Update(ctx, kept, []byte{9}); err != nil {
			return err
		}
		if _, err := tx.Create(ctx, owner, dropped, []byte{1}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	sl, err := get(t, s, kept)
	require.NoError(t, err)
	assert.Equal(t, []byte{0}, sl.Data)
	_, err = get(t, s, dropped)
	assert.ErrorIs(t, err, ledger.ErrSlotNotFound)
}

func testRollbackOnPanic(t *testing.T, s ledger.Store) {
	ctx := context.Background()
	owner := NewOwner(t)
	addr := NewAddress(t)

	assert.Panics(t, func() {
		_ = s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
			if _, err := tx.Create(ctx, owner, addr, []byte{1}); err != nil {
				return err
			}
			panic("boom")
		})
	})

	_, err := get(t, s, addr)
	assert.ErrorIs(t, err, ledger.ErrSlotNotFound)

	// the owner must not stay locked
	require.NoError(t, s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Create(ctx, owner, addr, []byte{2})
		return err
	}))
}

func testReadYourWrites(t *testing.T, s ledger.Store) {
	ctx := context.Background()
	owner := NewOwner(t)
	addr := NewAddress(t)

	err := s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		if _, err := tx.Create(ctx, owner, addr, []byte{1, 1}); err != nil {
			return err
		}
		sl, err := tx.Get(ctx, addr)
		if err != nil {
			return err
		}
		assert.Equal(t, []byte{1, 1}, sl.Data)

		if err := tx.Update(ctx, addr, []byte{2, 2}); err != nil {
			return err
		}
		sl, err = tx.Get(ctx, addr)
		if err != nil {
			return err
		}
		assert.Equal(t, []byte{2, 2}, sl.Data)

		if _, err := tx.Close(ctx, addr); err != nil {
			return err
		}
		_, err = tx.Get(ctx, addr)
		assert.ErrorIs(t, err, ledger.ErrSlotNotFound)
		return nil
	})
	require.NoError(t, err)

	_, err = get(t, s, addr)
	assert.ErrorIs(t, err, ledger.ErrSlotNotFound)
}

func testViewIsReadOnly(t *testing.T, s ledger.Store) {
	ctx := context.Background()
	owner := NewOwner(t)
	addr := NewAddress(t)

	err := s.View(ctx, func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Create(ctx, owner, addr, []byte{1})
		return err
	})
	assert.ErrorIs(t, err, ledger.ErrReadOnly)

	err = s.View(ctx, func(ctx context.Context, tx ledger.Tx) error {
		return tx.Update(ctx, addr, []byte{1})
	})
	assert.ErrorIs(t, err, ledger.ErrReadOnly)

	err = s.View(ctx, func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Close(ctx, addr)
		return err
	})
	assert.ErrorIs(t, err, ledger.ErrReadOnly)
}

func testRecreateAfterClose(t *testing.T, s ledger.Store) {
	ctx := context.Background()
	owner := NewOwner(t)
	addr := NewAddress(t)

	err := s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		if _, err := tx.Create(ctx, owner, addr, []byte{1}); err != nil {
			return err
		}
		if _, err := tx.Close(ctx, addr); err != nil {
			return err
		}
		_, err := tx.Create(ctx, owner, addr, []byte{7, 7})
		return err
	})
	require.NoError(t, err)

	sl, err := get(t, s, addr)
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 7}, sl.Data)
	assert.Equal(t, ledger.RentFor(2), sl.Rent)
}

// testSameOwnerSerialized runs read-modify-write increments concurrently;
// any interleaving would lose updates.
func testSameOwnerSerialized(t *testing.T, s ledger.Store) {
	ctx := context.Background()
	owner := NewOwner(t)
	addr := NewAddress(t)

	require.NoError(t, s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Create(ctx, owner, addr, []byte{0})
		return err
	}))

	const workers = 8
	const rounds = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers*rounds)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				errs <- s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
					sl, err := tx.Get(ctx, addr)
					if err != nil {
						return err
					}
					return tx.Update(ctx, addr, []byte{sl.Data[0] + 1})
				})
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	sl, err := get(t, s, addr)
	require.NoError(t, err)
	assert.Equal(t, byte(workers*rounds), sl.Data[0])
}

func testCanceledContext(t *testing.T, s ledger.Store) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	owner := NewOwner(t)

	called := false
	err := s.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
