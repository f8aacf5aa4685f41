package store

import (
	"context"
	"errors"

	"github.com/uptrace/bun"
)

func createJobsTable(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().
		Model((*jobModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func createDLQTable(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateTable().
		Model((*deadModel)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// createPendingRunIndex builds the partial index the claim transaction
// relies on: (state, run_at) restricted to state = 'pending', so the
// claim's ORDER BY created_at scan over eligible rows stays O(log n) as
// the table grows.
func createPendingRunIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*jobModel)(nil)).
		Index("idx_jobs_pending_run_at").
		Column("state", "run_at").
		Where("state = 'pending'").
		IfNotExists().
		Exec(ctx)
	return err
}

func createStatusUpdatedIndex(ctx context.Context, db bun.IDB) error {
	_, err := db.NewCreateIndex().
		Model((*jobModel)(nil)).
		Index("idx_jobs_status_updated").
		Column("state", "updated_at").
		IfNotExists().
		Exec(ctx)
	return err
}

func initDB(ctx context.Context, db *bun.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := createJobsTable(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if err := createDLQTable(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if err := createPendingRunIndex(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	if err := createStatusUpdatedIndex(ctx, tx); err != nil {
		return errors.Join(err, tx.Rollback())
	}
	return tx.Commit()
}

// InitDB creates the jobs and dlq tables and their indexes inside a
// single transaction. InitDB is idempotent and may be called repeatedly;
// it never drops or alters existing objects.
func InitDB(ctx context.Context, db *bun.DB) error {
	return initDB(ctx, db)
}
