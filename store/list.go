package store

import (
	"context"

	"github.com/queuectl/queuectl/job"
)

// List returns active jobs matching state, ordered by created_at.
//
// List does not read the DLQ: the DLQ is a separate table with a
// different row shape, so Dead matches no active rows and returns an
// empty slice; ListDead returns dead jobs.
// Failed is accepted (for filter compatibility) and always returns an
// empty slice, since no row is ever written with state failed: the
// WHERE clause simply matches nothing. Unknown returns all active jobs,
// unfiltered.
func (s *Store) List(ctx context.Context, state job.State) ([]*job.Job, error) {
	var models []*jobModel
	query := s.db.NewSelect().Model(&models).Order("created_at ASC")
	if state != job.Unknown {
		query = query.Where("state = ?", state)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	ret := make([]*job.Job, 0, len(models))
	for _, m := range models {
		ret = append(ret, m.toJob())
	}
	return ret, nil
}

// ListDead returns all jobs currently in the dead-letter queue, ordered
// by failed_at.
func (s *Store) ListDead(ctx context.Context) ([]*job.DeadJob, error) {
	var models []*deadModel
	if err := s.db.NewSelect().
		Model(&models).
		Order("failed_at ASC").
		Scan(ctx); err != nil {
		return nil, err
	}
	ret := make([]*job.DeadJob, 0, len(models))
	for _, m := range models {
		ret = append(ret, m.toDeadJob())
	}
	return ret, nil
}
