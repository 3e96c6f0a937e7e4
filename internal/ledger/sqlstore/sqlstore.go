// Package sqlstore keeps ledger slots in a SQL table. It runs on PostgreSQL
// through pgx and on SQLite through modernc.org/sqlite.
//
// On PostgreSQL a transaction-scoped advisory lock keyed on the owner gives
// per-owner exclusion. SQLite is limited to a single connection, which
// serializes every transaction.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/todokeeper/internal/address"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
	"github.com/dmitrijs2005/todokeeper/internal/ledger"
)

type Store struct {
	db      *sql.DB
	dialect dbx.Dialect
}

// Open connects to dsn, runs migrations and returns a ready store.
func Open(ctx context.Context, dialect dbx.Dialect, dsn string) (*Store, error) {
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect, err)
	}
	if dialect == dbx.SQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", dialect, err)
	}
	if err := RunMigrations(ctx, db, dialect); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dialect, err)
	}
	return New(db, dialect), nil
}

// New wraps an already migrated database.
func New(db *sql.DB, dialect dbx.Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func (s *Store) Update(ctx context.Context, owner identity.Owner, fn ledger.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if s.dialect == dbx.Postgres {
			if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, ownerLockKey(owner)); err != nil {
				return fmt.Errorf("db error: %w", err)
			}
		}
		return fn(ctx, &sqlTx{db: tx, dialect: s.dialect})
	})
}

func (s *Store) View(ctx context.Context, fn ledger.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var opts *sql.TxOptions
	if s.dialect == dbx.Postgres {
		opts = &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead}
	}
	return dbx.WithTx(ctx, s.db, opts, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &sqlTx{db: tx, dialect: s.dialect, readOnly: true})
	})
}

func (s *Store) Close() error {
	return s.db.Close()
}

func ownerLockKey(owner identity.Owner) int64 {
	return int64(binary.BigEndian.Uint64(owner[:8]))
}

type sqlTx struct {
	db       dbx.DBTX
	dialect  dbx.Dialect
	readOnly bool
}

func (t *sqlTx) Get(ctx context.Context, addr address.Address) (*ledger.Slot, error) {
	query := t.dialect.Rebind(`SELECT owner, data, rent FROM slots WHERE address = ?`)

	var (
		owner []byte
		data  []byte
		rent  int64
	)
	err := t.db.QueryRowContext(ctx, query, addr[:]).Scan(&owner, &data, &rent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ledger.ErrSlotNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if len(owner) != len(identity.Owner{}) || rent < 0 {
		return nil, ledger.ErrCorruptSlot
	}

	sl := &ledger.Slot{Address: addr, Data: data, Rent: uint64(rent)}
	copy(sl.Owner[:], owner)
	return sl, nil
}

func (t *sqlTx) Create(ctx context.Context, owner identity.Owner, addr address.Address, data []byte) (*ledger.Slot, error) {
	if t.readOnly {
		return nil, ledger.ErrReadOnly
	}
	rent := ledger.RentFor(len(data))
	query := t.dialect.Rebind(
		`INSERT INTO slots (address, owner, data, rent)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (address) DO NOTHING`)

	res, err := t.db.ExecContext(ctx, query, addr[:], owner[:], data, int64(rent))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return nil, ledger.ErrSlotOccupied
	}
	return &ledger.Slot{
		Address: addr,
		Owner:   owner,
		Data:    append([]byte(nil), data...),
		Rent:    rent,
	}, nil
}

func (t *sqlTx) Update(ctx context.Context, addr address.Address, data []byte) error {
	if t.readOnly {
		return ledger.ErrReadOnly
	}
	cur, err := t.Get(ctx, addr)
	if err != nil {
		return err
	}
	if len(cur.Data) != len(data) {
		return ledger.ErrSizeMismatch
	}
	query := t.dialect.Rebind(`UPDATE slots SET data = ? WHERE address = ?`)
	if _, err := t.db.ExecContext(ctx, query, data, addr[:]); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (t *sqlTx) Close(ctx context.Context, addr address.Address) (uint64, error) {
	if t.readOnly {
		return 0, ledger.ErrReadOnly
	}
	query := t.dialect.Rebind(`DELETE FROM slots WHERE address = ? RETURNING rent`)

	var rent int64
	err := t.db.QueryRowContext(ctx, query, addr[:]).Scan(&rent)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ledger.ErrSlotNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}
	return uint64(rent), nil
}
