package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/queuectl/queuectl/job"
)

func strptr(s string) *string { return &s }

func TestCompleteTransitionsProcessingToCompleted(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Enqueue(ctx, newPendingJob("done", "echo ok")); err != nil {
		t.Fatal(err)
	}
	claimed, err := s.Claim(ctx)
	if err != nil || claimed == nil {
		t.Fatalf("claim: %v, %v", claimed, err)
	}

	if err := s.Complete(ctx, claimed.Id, strptr("ok\n"), strptr("")); err != nil {
		t.Fatal(err)
	}

	rows, err := s.List(ctx, job.Completed)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || rows[0].Id != "done" {
		t.Fatalf("expected 1 completed row for 'done', got %+v", rows)
	}
}

func TestCompleteRejectsNonProcessingRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Enqueue(ctx, newPendingJob("untouched", "echo")); err != nil {
		t.Fatal(err)
	}
	if err := s.Complete(ctx, "untouched", nil, nil); err == nil {
		t.Fatal("expected error completing a job that was never claimed")
	}
}

func TestRetryReschedulesWithBackoffDelay(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Enqueue(ctx, newPendingJob("flaky", "false")); err != nil {
		t.Fatal(err)
	}
	claimed, err := s.Claim(ctx)
	if err != nil || claimed == nil {
		t.Fatalf("claim: %v, %v", claimed, err)
	}

	before := time.Now().UTC()
	if err := s.Retry(ctx, claimed.Id, 1, 2*time.Second, strptr(""), strptr("boom")); err != nil {
		t.Fatal(err)
	}

	rows, err := s.List(ctx, job.Pending)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected job back in pending, got %+v", rows)
	}
	if rows[0].Attempts != 1 {
		t.Fatalf("expected attempts=1, got %d", rows[0].Attempts)
	}
	if !rows[0].RunAt.After(before.Add(time.Second)) {
		t.Fatalf("expected run_at delayed by ~2s, got %v (before %v)", rows[0].RunAt, before)
	}
}

func TestPromoteMovesJobToDLQAndRemovesActiveRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	jb := newPendingJob("doomed", "exit 1")
	jb.MaxRetries = 0
	if err := s.Enqueue(ctx, jb); err != nil {
		t.Fatal(err)
	}
	claimed, err := s.Claim(ctx)
	if err != nil || claimed == nil {
		t.Fatalf("claim: %v, %v", claimed, err)
	}

	if err := s.Promote(ctx, claimed, 1, strptr(""), strptr("exit status 1")); err != nil {
		t.Fatal(err)
	}

	active, err := s.List(ctx, job.Unknown)
	if err != nil {
		t.Fatal(err)
	}
	if len(active) != 0 {
		t.Fatalf("expected no active rows left, got %+v", active)
	}

	dead, err := s.ListDead(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(dead) != 1 || dead[0].Id != "doomed" {
		t.Fatalf("expected 1 dead row for 'doomed', got %+v", dead)
	}
	if dead[0].Attempts != 1 {
		t.Fatalf("expected attempts=1 on dead row, got %d", dead[0].Attempts)
	}
}

func TestPromoteRejectsNonProcessingRow(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	jb := newPendingJob("never-claimed", "true")
	if err := s.Enqueue(ctx, jb); err != nil {
		t.Fatal(err)
	}
	if err := s.Promote(ctx, jb, 1, nil, nil); err == nil {
		t.Fatal("expected error promoting a job that was never claimed")
	}
}
