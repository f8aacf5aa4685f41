package store

import (
	"context"
	"time"

	"github.com/queuectl/queuectl/job"
)

// RecoverStale resets processing rows whose updated_at is older than
// after back to pending, with run_at set to now so they are immediately
// eligible for claim again.
//
// This is a one-shot sweep meant to run once, before any worker starts
// claiming: a job left in processing past this threshold can only be the
// result of a worker process that crashed mid-execution, since a live
// worker completes, retries or promotes a job within one claim tick. It
// is not invoked by the claim loop itself.
func (s *Store) RecoverStale(ctx context.Context, after time.Duration) (int64, error) {
	now := time.Now().UTC()
	cutoff := now.Add(-after)
	res, err := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.Pending).
		Set("run_at = ?", now).
		Set("updated_at = ?", now).
		Where("state = ?", job.Processing).
		Where("updated_at < ?", cutoff).
		Exec(ctx)
	if err != nil {
		return 0, err
	}
	return getAffected(res), nil
}
