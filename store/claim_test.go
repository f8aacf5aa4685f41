package store_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/queuectl/queuectl/job"
)

func newPendingJob(id, command string) *job.Job {
	now := time.Now().UTC()
	return &job.Job{
		Id:         id,
		Command:    command,
		State:      job.Pending,
		Attempts:   0,
		MaxRetries: 3,
		CreatedAt:  now,
		UpdatedAt:  now,
		RunAt:      now,
	}
}

func TestClaimReturnsOldestEligibleJob(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := newPendingJob("a", "echo a")
	time.Sleep(time.Millisecond * 5)
	second := newPendingJob("b", "echo b")

	if err := s.Enqueue(ctx, second); err != nil {
		t.Fatal(err)
	}
	if err := s.Enqueue(ctx, first); err != nil {
		t.Fatal(err)
	}

	claimed, err := s.Claim(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if claimed == nil {
		t.Fatal("expected a job, got nil")
	}
	if claimed.Id != "a" {
		t.Fatalf("expected oldest job 'a', got %q", claimed.Id)
	}
	if claimed.State != job.Processing {
		t.Fatalf("expected Processing, got %v", claimed.State)
	}
}

func TestClaimSkipsFutureRunAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	future := newPendingJob("later", "echo later")
	future.RunAt = time.Now().UTC().Add(time.Hour)
	if err := s.Enqueue(ctx, future); err != nil {
		t.Fatal(err)
	}

	claimed, err := s.Claim(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if claimed != nil {
		t.Fatalf("expected no eligible job, got %v", claimed)
	}
}

func TestClaimEmptyQueueReturnsNil(t *testing.T) {
	s := newTestStore(t)
	claimed, err := s.Claim(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if claimed != nil {
		t.Fatal("expected nil on empty queue")
	}
}

// TestConcurrentClaimNeverDoubleAssigns pins invariant 2: at most one
// caller observes a given job as Processing.
func TestConcurrentClaimNeverDoubleAssigns(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Enqueue(ctx, newPendingJob("solo", "echo solo")); err != nil {
		t.Fatal(err)
	}

	const claimers = 8
	var wg sync.WaitGroup
	results := make([]*job.Job, claimers)
	for i := 0; i < claimers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			claimed, err := s.Claim(ctx)
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = claimed
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, r := range results {
		if r != nil {
			wins++
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly 1 successful claim, got %d", wins)
	}
}
