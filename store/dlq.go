package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

// RetryDLQ re-enqueues a dead job: it reads the DLQ row, inserts a new
// active row with the same id, command and max_retries, attempts reset
// to 0 and state pending, and deletes the DLQ row, all in one
// transaction. The original created_at is preserved.
//
// RetryDLQ returns queuectl.ErrNotFound if id is not in the DLQ, and
// queuectl.ErrConflict (aborting the whole transaction) if id already
// exists in the active table.
func (s *Store) RetryDLQ(ctx context.Context, id string) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var dead deadModel
		err := tx.NewSelect().
			Model(&dead).
			Where("id = ?", id).
			Scan(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return queuectl.ErrNotFound
			}
			return err
		}

		now := time.Now().UTC()
		active := &jobModel{
			Id:         dead.Id,
			Command:    dead.Command,
			State:      job.Pending,
			Attempts:   0,
			MaxRetries: dead.MaxRetries,
			CreatedAt:  dead.CreatedAt,
			UpdatedAt:  now,
			RunAt:      now,
		}
		if _, err := tx.NewInsert().Model(active).Exec(ctx); err != nil {
			if isUniqueViolation(err) {
				return queuectl.ErrConflict
			}
			return err
		}

		if _, err := tx.NewDelete().
			Model((*deadModel)(nil)).
			Where("id = ?", id).
			Exec(ctx); err != nil {
			return err
		}
		return nil
	})
}
