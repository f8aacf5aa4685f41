package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/job"
)

// Logs returns the captured stdout/stderr and current state of a job,
// checking the active table first and falling back to the DLQ. It
// returns queuectl.ErrNotFound if id exists in neither.
func (s *Store) Logs(ctx context.Context, id string) (*job.LogEntry, error) {
	var active jobModel
	err := s.db.NewSelect().
		Model(&active).
		Where("id = ?", id).
		Scan(ctx)
	if err == nil {
		return &job.LogEntry{
			Id:        active.Id,
			State:     active.State,
			UpdatedAt: active.UpdatedAt,
			Stdout:    active.Stdout,
			Stderr:    active.Stderr,
		}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	var dead deadModel
	err = s.db.NewSelect().
		Model(&dead).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, queuectl.ErrNotFound
		}
		return nil, err
	}
	return &job.LogEntry{
		Id:        dead.Id,
		State:     dead.State,
		UpdatedAt: dead.FailedAt,
		Stdout:    dead.Stdout,
		Stderr:    dead.Stderr,
	}, nil
}
