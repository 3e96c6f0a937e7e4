// Package todo implements the per-owner todo operations on top of a
// ledger.Store. Every mutation runs as one ledger transaction scoped to the
// caller, so it applies completely or not at all.
package todo

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/dmitrijs2005/todokeeper/internal/address"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
	"github.com/dmitrijs2005/todokeeper/internal/ledger"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
)

// Service runs the todo operations for verified callers.
type Service struct {
	store   ledger.Store
	deriver *address.Deriver
	logger  logging.Logger
}

// NewService returns a Service over store. A nil logger discards output.
func NewService(store ledger.Store, deriver *address.Deriver, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Nop{}
	}
	return &Service{
		store:   store,
		deriver: deriver,
		logger:  logger.With("module", "todo"),
	}
}

func ownerOf(who identity.Verified) (identity.Owner, error) {
	if !who.Valid() {
		return identity.Owner{}, ErrUnverified
	}
	return who.Owner(), nil
}

func (s *Service) counterAddress(owner identity.Owner) (address.Derived, error) {
	d, err := s.deriver.Counter(owner)
	if err != nil {
		return address.Derived{}, fmt.Errorf("derive counter address: %w", err)
	}
	return d, nil
}

func (s *Service) recordAddress(owner identity.Owner, seq uint64) (address.Derived, error) {
	d, err := s.deriver.Record(owner, seq)
	if err != nil {
		return address.Derived{}, fmt.Errorf("derive todo address: %w", err)
	}
	return d, nil
}

// Initialize creates the caller's counter with NextIndex 0.
func (s *Service) Initialize(ctx context.Context, who identity.Verified) (*Counter, error) {
	owner, err := ownerOf(who)
	if err != nil {
		return nil, err
	}
	ca, err := s.counterAddress(owner)
	if err != nil {
		return nil, err
	}

	var out *Counter
	err = s.store.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		sl, err := tx.Create(ctx, owner, ca.Address, encodeCounter(0, ca.Bump))
		if err != nil {
			if errors.Is(err, ledger.ErrSlotOccupied) {
				return ErrAlreadyInitialized
			}
			return err
		}
		out = &Counter{Owner: owner, Address: ca.Address, Bump: ca.Bump, Rent: sl.Rent}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "counter initialized", "owner", owner.String(), "address", ca.Address.String())
	return out, nil
}

// loadCounter reads the owner's counter inside tx.
func (s *Service) loadCounter(ctx context.Context, tx ledger.Tx, owner identity.Owner, ca address.Derived) (*Counter, error) {
	sl, err := tx.Get(ctx, ca.Address)
	if err != nil {
		if errors.Is(err, ledger.ErrSlotNotFound) {
			return nil, ErrCounterMissing
		}
		return nil, err
	}
	if sl.Owner != owner {
		return nil, ledger.ErrCorruptSlot
	}
	next, bump, err := decodeCounter(sl.Data)
	if err != nil {
		return nil, err
	}
	return &Counter{Owner: owner, Address: ca.Address, NextIndex: next, Bump: bump, Rent: sl.Rent}, nil
}

// loadRecord reads one record inside tx.
func (s *Service) loadRecord(ctx context.Context, tx ledger.Tx, owner identity.Owner, seq uint64, ra address.Derived) (*Record, error) {
	sl, err := tx.Get(ctx, ra.Address)
	if err != nil {
		if errors.Is(err, ledger.ErrSlotNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	if sl.Owner != owner {
		return nil, ledger.ErrCorruptSlot
	}
	title, done, err := decodeRecord(sl.Data)
	if err != nil {
		return nil, err
	}
	return &Record{
		Owner:     owner,
		Seq:       seq,
		Address:   ra.Address,
		Bump:      ra.Bump,
		Title:     title,
		Completed: done,
		Rent:      sl.Rent,
	}, nil
}

// Create allocates a record at the counter's next index and advances the
// counter. A missing counter or an occupied slot is reported before the
// title is looked at.
func (s *Service) Create(ctx context.Context, who identity.Verified, title string) (*Record, error) {
	owner, err := ownerOf(who)
	if err != nil {
		return nil, err
	}
	ca, err := s.counterAddress(owner)
	if err != nil {
		return nil, err
	}

	var out *Record
	err = s.store.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		c, err := s.loadCounter(ctx, tx, owner, ca)
		if err != nil {
			return err
		}
		if c.NextIndex == math.MaxUint64 {
			return ErrCounterExhausted
		}
		ra, err := s.recordAddress(owner, c.NextIndex)
		if err != nil {
			return err
		}

		switch _, err := tx.Get(ctx, ra.Address); {
		case err == nil:
			return ErrAddressInUse
		case !errors.Is(err, ledger.ErrSlotNotFound):
			return err
		}
		if err := ValidateTitle(title); err != nil {
			return err
		}

		sl, err := tx.Create(ctx, owner, ra.Address, encodeRecord(title, false))
		if err != nil {
			if errors.Is(err, ledger.ErrSlotOccupied) {
				return ErrAddressInUse
			}
			return err
		}
		if err := tx.Update(ctx, ca.Address, encodeCounter(c.NextIndex+1, c.Bump)); err != nil {
			return err
		}

		out = &Record{
			Owner:   owner,
			Seq:     c.NextIndex,
			Address: ra.Address,
			Bump:    ra.Bump,
			Title:   title,
			Rent:    sl.Rent,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "todo created", "owner", owner.String(), "seq", out.Seq)
	return out, nil
}

// MarkComplete sets the completion flag. Completing a completed record is a
// no-op.
func (s *Service) MarkComplete(ctx context.Context, who identity.Verified, seq uint64) (*Record, error) {
	owner, err := ownerOf(who)
	if err != nil {
		return nil, err
	}
	ra, err := s.recordAddress(owner, seq)
	if err != nil {
		return nil, err
	}

	var out *Record
	err = s.store.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		r, err := s.loadRecord(ctx, tx, owner, seq, ra)
		if err != nil {
			return err
		}
		if !r.Completed {
			r.Completed = true
			if err := tx.Update(ctx, ra.Address, encodeRecord(r.Title, true)); err != nil {
				return err
			}
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "todo completed", "owner", owner.String(), "seq", seq)
	return out, nil
}

// Update replaces a record's title and keeps its completion flag.
func (s *Service) Update(ctx context.Context, who identity.Verified, seq uint64, title string) (*Record, error) {
	owner, err := ownerOf(who)
	if err != nil {
		return nil, err
	}
	ra, err := s.recordAddress(owner, seq)
	if err != nil {
		return nil, err
	}

	var out *Record
	err = s.store.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		r, err := s.loadRecord(ctx, tx, owner, seq, ra)
		if err != nil {
			return err
		}
		if err := ValidateTitle(title); err != nil {
			return err
		}
		r.Title = title
		if err := tx.Update(ctx, ra.Address, encodeRecord(r.Title, r.Completed)); err != nil {
			return err
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug(ctx, "todo updated", "owner", owner.String(), "seq", seq)
	return out, nil
}

// Delete closes a record's slot and returns the rent refunded to the owner.
// The sequence number is never handed out again.
func (s *Service) Delete(ctx context.Context, who identity.Verified, seq uint64) (uint64, error) {
	owner, err := ownerOf(who)
	if err != nil {
		return 0, err
	}
	ra, err := s.recordAddress(owner, seq)
	if err != nil {
		return 0, err
	}

	var refund uint64
	err = s.store.Update(ctx, owner, func(ctx context.Context, tx ledger.Tx) error {
		if _, err := s.loadRecord(ctx, tx, owner, seq, ra); err != nil {
			return err
		}
		rent, err := tx.Close(ctx, ra.Address)
		refund = rent
		return err
	})
	if err != nil {
		return 0, err
	}
	s.logger.Debug(ctx, "todo deleted", "owner", owner.String(), "seq", seq, "refund", refund)
	return refund, nil
}

// Counter returns the caller's counter.
func (s *Service) Counter(ctx context.Context, who identity.Verified) (*Counter, error) {
	owner, err := ownerOf(who)
	if err != nil {
		return nil, err
	}
	ca, err := s.counterAddress(owner)
	if err != nil {
		return nil, err
	}

	var out *Counter
	err = s.store.View(ctx, func(ctx context.Context, tx ledger.Tx) error {
		c, err := s.loadCounter(ctx, tx, owner, ca)
		out = c
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one of the caller's records.
func (s *Service) Get(ctx context.Context, who identity.Verified, seq uint64) (*Record, error) {
	owner, err := ownerOf(who)
	if err != nil {
		return nil, err
	}
	ra, err := s.recordAddress(owner, seq)
	if err != nil {
		return nil, err
	}

	var out *Record
	err = s.store.View(ctx, func(ctx context.Context, tx ledger.Tx) error {
		r, err := s.loadRecord(ctx, tx, owner, seq, ra)
		out = r
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List returns the caller's live records in sequence order. It walks every
// sequence number below the counter and skips deleted ones.
func (s *Service) List(ctx context.Context, who identity.Verified) ([]*Record, error) {
	owner, err := ownerOf(who)
	if err != nil {
		return nil, err
	}
	ca, err := s.counterAddress(owner)
	if err != nil {
		return nil, err
	}

	var out []*Record
	err = s.store.View(ctx, func(ctx context.Context, tx ledger.Tx) error {
		out = out[:0]
		c, err := s.loadCounter(ctx, tx, owner, ca)
		if err != nil {
			return err
		}
		for seq := uint64(0); seq < c.NextIndex; seq++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			ra, err := s.recordAddress(owner, seq)
			if err != nil {
				return err
			}
			r, err := s.loadRecord(ctx, tx, owner, seq, ra)
			if errors.Is(err, ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			out = append(out, r)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
