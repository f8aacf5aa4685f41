package store

import (
	"context"
	"strings"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

// Enqueue inserts jb into the active jobs table.
//
// jb must already have Id, State (Pending), Attempts (0), CreatedAt,
// UpdatedAt and RunAt populated; Enqueue does not default them, that is
// the job manager's job.
//
// If a row with jb.Id already exists in the active table, Enqueue
// returns queuectl.ErrDuplicateID and performs no insert.
func (s *Store) Enqueue(ctx context.Context, jb *job.Job) error {
	_, err := s.db.NewInsert().
		Model(fromJob(jb)).
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return queuectl.ErrDuplicateID
		}
		return err
	}
	return nil
}

// isUniqueViolation recognizes modernc.org/sqlite's constraint-failure
// error text. The driver does not expose a typed constraint error the
// way pq/pgx do, so this mirrors the original implementation's approach
// of catching the integrity error by its message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed: UNIQUE")
}
