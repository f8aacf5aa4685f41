package store

import (
	"context"

	"github.com/queuectl/queuectl/job"
)

// Status returns a count of active jobs per state, plus the dead-letter
// count folded in under the key "dead". A state with zero jobs is
// omitted from the map entirely, except that "dead" is included whenever
// either the active table or the DLQ has ever produced a non-zero count
// for it; since active rows are never persisted in state Dead, "dead"
// reflects the DLQ count alone.
func (s *Store) Status(ctx context.Context) (map[job.State]int, error) {
	var rows []struct {
		State job.State `bun:"state"`
		Count int       `bun:"count"`
	}
	if err := s.db.NewSelect().
		Model((*jobModel)(nil)).
		ColumnExpr("state, count(*) AS count").
		GroupExpr("state").
		Scan(ctx, &rows); err != nil {
		return nil, err
	}

	ret := make(map[job.State]int, len(rows)+1)
	for _, r := range rows {
		ret[r.State] = r.Count
	}

	dead, err := s.db.NewSelect().
		Model((*deadModel)(nil)).
		Count(ctx)
	if err != nil {
		return nil, err
	}
	if dead > 0 {
		ret[job.Dead] = dead
	}
	return ret, nil
}
