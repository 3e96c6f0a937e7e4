package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"path"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/todokeeper/internal/dbx"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// goose keeps its base FS and dialect in package globals.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded schema for dialect.
func RunMigrations(ctx context.Context, db *sql.DB, dialect dbx.Dialect) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect(dialect.GooseDialect()); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, path.Join("migrations", string(dialect)))
}
