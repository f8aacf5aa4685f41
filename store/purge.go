package store

import (
	"context"
	"time"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

// Purge permanently deletes terminal rows older than before: completed
// rows from the active table when status is job.Completed, or dlq rows
// when status is job.Dead. It returns the number of rows removed.
//
// Any other status is rejected with queuectl.ErrBadStatus: pending and
// processing jobs are never eligible for deletion, mirroring the
// teacher's Cleaner, which refuses to reap non-terminal jobs.
func (s *Store) Purge(ctx context.Context, status job.State, before time.Time) (int64, error) {
	switch status {
	case job.Completed:
		res, err := s.db.NewDelete().
			Model((*jobModel)(nil)).
			Where("state = ?", job.Completed).
			Where("updated_at < ?", before).
			Exec(ctx)
		if err != nil {
			return 0, err
		}
		return getAffected(res), nil
	case job.Dead:
		res, err := s.db.NewDelete().
			Model((*deadModel)(nil)).
			Where("failed_at < ?", before).
			Exec(ctx)
		if err != nil {
			return 0, err
		}
		return getAffected(res), nil
	default:
		return 0, queuectl.ErrBadStatus
	}
}
