package store

import (
	"context"
	"time"

	"github.com/queuectl/queuectl/job"
)

// Claim selects the single oldest eligible pending job (run_at <= now,
// ordered by created_at) and atomically transitions it to processing.
//
// Claim returns (nil, nil) if no job is eligible this tick: either
// because none exists, or because a concurrent claimer won the race for
// the only eligible row. Both cases are indistinguishable at the SQL
// level by design — invariant 2 (at most one worker observes a job as
// processing at a time) falls directly out of the single atomic UPDATE.
func (s *Store) Claim(ctx context.Context) (*job.Job, error) {
	now := time.Now().UTC()
	subquery := s.db.NewSelect().
		Model((*jobModel)(nil)).
		Column("id").
		Where("state = ?", job.Pending).
		Where("run_at <= ?", now).
		Order("created_at ASC").
		Limit(1)

	var claimed []*jobModel
	err := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.Processing).
		Set("updated_at = ?", now).
		Where("id IN (?)", subquery).
		Returning("*").
		Scan(ctx, &claimed)
	if err != nil {
		return nil, err
	}
	if len(claimed) == 0 {
		return nil, nil
	}
	return claimed[0].toJob(), nil
}
