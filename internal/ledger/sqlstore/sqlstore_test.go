package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/ledger"
	"github.com/dmitrijs2005/todokeeper/internal/ledger/ledgertest"
)

func openSQLite(t *testing.T) ledger.Store {
	t.Helper()
	s, err := Open(context.Background(), dbx.SQLite, ":memory:")
	require.NoError(t, err)
	return s
}

func TestSQLite_Conformance(t *testing.T) {
	ledgertest.Run(t, openSQLite)
}

func TestSQLite_CorruptOwner(t *testing.T) {
	s := openSQLite(t).(*Store)
	defer s.Close()

	addr := ledgertest.NewAddress(t)
	_, err := s.db.Exec(`INSERT INTO slots (address, owner, data, rent) VALUES (?, ?, ?, ?)`,
		addr[:], []byte{1, 2, 3}, []byte{0}, 10)
	require.NoError(t, err)

	err = s.View(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Get(ctx, addr)
		return err
	})
	assert.ErrorIs(t, err, ledger.ErrCorruptSlot)
}

func newPostgresWithMock(t *testing.T) (*Store, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return New(db, dbx.Postgres), mock, db
}

const (
	lockQuery   = `^SELECT\s+pg_advisory_xact_lock\(\$1\)$`
	selectQuery = `(?s)^SELECT\s+owner,\s*data,\s*rent\s+FROM\s+slots\s+WHERE\s+address\s*=\s*\$1$`
	insertQuery = `(?s)^INSERT\s+INTO\s+slots\s*\(address,\s*owner,\s*data,\s*rent\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4\)\s*ON\s+CONFLICT\s*\(address\)\s*DO\s+NOTHING$`
	updateQuery = `^UPDATE\s+slots\s+SET\s+data\s*=\s*\$1\s+WHERE\s+address\s*=\s*\$2$`
	deleteQuery = `^DELETE\s+FROM\s+slots\s+WHERE\s+address\s*=\s*\$1\s+RETURNING\s+rent$`
)

func TestPostgres_CreateTakesOwnerLock(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	owner := ledgertest.NewOwner(t)
	addr := ledgertest.NewAddress(t)

	mock.ExpectBegin()
	mock.ExpectExec(lockQuery).WithArgs(ownerLockKey(owner)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertQuery).
		WithArgs(addr[:], owner[:], []byte("data"), int64(ledger.RentFor(4))).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Update(context.Background(), owner, func(ctx context.Context, tx ledger.Tx) error {
		sl, err := tx.Create(ctx, owner, addr, []byte("data"))
		if err != nil {
			return err
		}
		assert.Equal(t, ledger.RentFor(4), sl.Rent)
		return nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CreateConflictIsOccupied(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	owner := ledgertest.NewOwner(t)
	addr := ledgertest.NewAddress(t)

	mock.ExpectBegin()
	mock.ExpectExec(lockQuery).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(insertQuery).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := s.Update(context.Background(), owner, func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Create(ctx, owner, addr, []byte("data"))
		return err
	})
	assert.ErrorIs(t, err, ledger.ErrSlotOccupied)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_LockErrorRollsBack(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(lockQuery).WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	called := false
	err := s.Update(context.Background(), ledgertest.NewOwner(t), func(ctx context.Context, tx ledger.Tx) error {
		called = true
		return nil
	})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
	assert.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateSizeMismatch(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	owner := ledgertest.NewOwner(t)
	addr := ledgertest.NewAddress(t)

	mock.ExpectBegin()
	mock.ExpectExec(lockQuery).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(selectQuery).WithArgs(addr[:]).
		WillReturnRows(sqlmock.NewRows([]string{"owner", "data", "rent"}).AddRow(owner[:], []byte{1, 2, 3}, int64(9)))
	mock.ExpectRollback()

	err := s.Update(context.Background(), owner, func(ctx context.Context, tx ledger.Tx) error {
		return tx.Update(ctx, addr, []byte{1})
	})
	assert.ErrorIs(t, err, ledger.ErrSizeMismatch)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_UpdateWritesData(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	owner := ledgertest.NewOwner(t)
	addr := ledgertest.NewAddress(t)

	mock.ExpectBegin()
	mock.ExpectExec(lockQuery).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(selectQuery).WithArgs(addr[:]).
		WillReturnRows(sqlmock.NewRows([]string{"owner", "data", "rent"}).AddRow(owner[:], []byte{1, 2}, int64(9)))
	mock.ExpectExec(updateQuery).WithArgs([]byte{3, 4}, addr[:]).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Update(context.Background(), owner, func(ctx context.Context, tx ledger.Tx) error {
		return tx.Update(ctx, addr, []byte{3, 4})
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CloseReturnsRent(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	owner := ledgertest.NewOwner(t)
	addr := ledgertest.NewAddress(t)

	mock.ExpectBegin()
	mock.ExpectExec(lockQuery).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(deleteQuery).WithArgs(addr[:]).
		WillReturnRows(sqlmock.NewRows([]string{"rent"}).AddRow(int64(1234)))
	mock.ExpectCommit()

	var refund uint64
	err := s.Update(context.Background(), owner, func(ctx context.Context, tx ledger.Tx) error {
		var err error
		refund, err = tx.Close(ctx, addr)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), refund)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_CloseMissing(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(lockQuery).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(deleteQuery).WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := s.Update(context.Background(), ledgertest.NewOwner(t), func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Close(ctx, ledgertest.NewAddress(t))
		return err
	})
	assert.ErrorIs(t, err, ledger.ErrSlotNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_ViewGetNotFound(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(selectQuery).WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := s.View(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Get(ctx, ledgertest.NewAddress(t))
		return err
	})
	assert.ErrorIs(t, err, ledger.ErrSlotNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgres_GetDBError(t *testing.T) {
	s, mock, db := newPostgresWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(selectQuery).WillReturnError(errors.New("db down"))
	mock.ExpectRollback()

	err := s.View(context.Background(), func(ctx context.Context, tx ledger.Tx) error {
		_, err := tx.Get(ctx, ledgertest.NewAddress(t))
		return err
	})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestRunMigrations_UsesDialectDir(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}

	require.NoError(t, RunMigrations(context.Background(), db, dbx.Postgres))
	assert.Equal(t, "migrations/postgres", gotDir)

	require.NoError(t, RunMigrations(context.Background(), db, dbx.SQLite))
	assert.Equal(t, "migrations/sqlite", gotDir)
}

func TestRunMigrations_Error(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	orig := gooseUpContext
	defer func() { gooseUpContext = orig }()
	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("boom")
	}

	err = RunMigrations(context.Background(), db, dbx.Postgres)
	if err == nil || err.Error() != "boom" {
		t.Fatalf("expected boom, got %v", err)
	}
}
