package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/queuectl/queuectl/job"
)

func TestRecoverStaleResetsOldProcessingRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Enqueue(ctx, newPendingJob("stuck", "sleep 100")); err != nil {
		t.Fatal(err)
	}
	claimed, err := s.Claim(ctx)
	if err != nil || claimed == nil {
		t.Fatalf("claim: %v, %v", claimed, err)
	}

	// RecoverStale only touches rows whose updated_at predates the
	// threshold; a zero duration makes every processing row eligible.
	n, err := s.RecoverStale(ctx, 0)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 row recovered, got %d", n)
	}

	pending, err := s.List(ctx, job.Pending)
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 || pending[0].Id != "stuck" {
		t.Fatalf("expected 'stuck' back in pending, got %+v", pending)
	}
}

func TestRecoverStaleIgnoresFreshProcessingRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Enqueue(ctx, newPendingJob("fresh", "sleep 1")); err != nil {
		t.Fatal(err)
	}
	claimed, err := s.Claim(ctx)
	if err != nil || claimed == nil {
		t.Fatalf("claim: %v, %v", claimed, err)
	}

	n, err := s.RecoverStale(ctx, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatalf("expected 0 rows recovered, got %d", n)
	}

	processing, err := s.List(ctx, job.Processing)
	if err != nil {
		t.Fatal(err)
	}
	if len(processing) != 1 {
		t.Fatalf("expected job to remain processing, got %+v", processing)
	}
}
