package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	_ "modernc.org/sqlite"
)

// Store wraps a *bun.DB configured for queuectl's SQLite schema.
type Store struct {
	db *bun.DB
}

// Open connects to the SQLite database at path, enabling WAL journaling
// and a 10-second busy_timeout, pins the connection pool to a single
// connection (required for correct write serialization under SQLite),
// and runs InitDB.
//
// Open is idempotent: calling it against an already-initialized path is
// safe and performs no destructive migration.
func Open(ctx context.Context, path string) (*Store, error) {
	dsn := fmt.Sprintf(
		"file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(10000)",
		path,
	)
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	db := bun.NewDB(sqlDB, sqlitedialect.New())
	if err := InitDB(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Wrap builds a Store around an already-configured *bun.DB, running
// InitDB against it. It exists for tests that need to open an in-memory
// database with their own pragmas rather than a file path.
func Wrap(db *bun.DB) (*Store, error) {
	if err := InitDB(context.Background(), db); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}
