package store

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/queuectl/queuectl/job"
)

// Complete transitions a processing job to completed, recording the
// captured output of its successful attempt.
//
// Complete only affects rows currently in the processing state; if the
// row is missing or was not processing, it returns an error (this should
// not happen under the single-claimer invariant, but the WHERE clause
// guards against it regardless).
func (s *Store) Complete(ctx context.Context, id string, stdout, stderr *string) error {
	now := time.Now().UTC()
	res, err := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.Completed).
		Set("stdout = ?", stdout).
		Set("stderr = ?", stderr).
		Set("updated_at = ?", now).
		Where("id = ?", id).
		Where("state = ?", job.Processing).
		Exec(ctx)
	if err != nil {
		return err
	}
	if !isAffected(res) {
		return fmt.Errorf("complete %s: job was not processing", id)
	}
	return nil
}

// Retry reschedules a processing job back to pending after a failed
// attempt: attempts is set to the new attempt count, run_at to now+delay,
// and the attempt's captured output is persisted.
func (s *Store) Retry(ctx context.Context, id string, attempts uint32, delay time.Duration, stdout, stderr *string) error {
	now := time.Now().UTC()
	runAt := now.Add(delay)
	res, err := s.db.NewUpdate().
		Model((*jobModel)(nil)).
		Set("state = ?", job.Pending).
		Set("attempts = ?", attempts).
		Set("run_at = ?", runAt).
		Set("stdout = ?", stdout).
		Set("stderr = ?", stderr).
		Set("updated_at = ?", now).
		Where("id = ?", id).
		Where("state = ?", job.Processing).
		Exec(ctx)
	if err != nil {
		return err
	}
	if !isAffected(res) {
		return fmt.Errorf("retry %s: job was not processing", id)
	}
	return nil
}

// Promote moves a processing job to the dead-letter queue: it inserts a
// dlq row carrying the final attempt count and output, and deletes the
// active row, in one transaction. Invariant 1 (id unique across the
// union of the two tables) holds because both halves commit together.
func (s *Store) Promote(ctx context.Context, jb *job.Job, attempts uint32, stdout, stderr *string) error {
	now := time.Now().UTC()
	dead := &deadModel{
		Id:         jb.Id,
		Command:    jb.Command,
		State:      job.Dead,
		Attempts:   attempts,
		MaxRetries: jb.MaxRetries,
		CreatedAt:  jb.CreatedAt,
		FailedAt:   now,
		Stdout:     stdout,
		Stderr:     stderr,
	}

	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(dead).Exec(ctx); err != nil {
			return err
		}
		res, err := tx.NewDelete().
			Model((*jobModel)(nil)).
			Where("id = ?", jb.Id).
			Where("state = ?", job.Processing).
			Exec(ctx)
		if err != nil {
			return err
		}
		if !isAffected(res) {
			return fmt.Errorf("promote %s: job was not processing", jb.Id)
		}
		return nil
	})
}
