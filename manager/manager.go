package manager

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/config"
	"github.com/queuectl/queuectl/job"
	"github.com/queuectl/queuectl/store"
)

// EnqueueRequest is the wire shape accepted by Enqueue. Id and RunAt are
// optional: an absent Id is generated, an absent or zero RunAt defaults
// to now. MaxRetries, if omitted, is filled in from the current config.
type EnqueueRequest struct {
	Id         string     `json:"id"`
	Command    string     `json:"command"`
	MaxRetries *uint32    `json:"max_retries"`
	RunAt      *time.Time `json:"run_at"`
}

// Manager is the job control plane: it owns defaulting and validation
// of caller requests, and delegates persistence to a *store.Store.
type Manager struct {
	store *store.Store
	dir   string
}

// New builds a Manager backed by s, using dir (queuectl's home
// directory) to resolve the live config on every Enqueue call.
func New(s *store.Store, dir string) *Manager {
	return &Manager{store: s, dir: dir}
}

// Enqueue parses raw as an EnqueueRequest, rejecting unknown fields, and
// inserts a new pending job.
//
// raw must at minimum supply a non-empty command; anything else missing
// is defaulted. An explicit Id that collides with an existing active job
// returns queuectl.ErrDuplicateID.
func (m *Manager) Enqueue(ctx context.Context, raw []byte) (*job.Job, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var req EnqueueRequest
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("%w: %s", queuectl.ErrInvalidInput, err)
	}
	if req.Command == "" {
		return nil, fmt.Errorf("%w: command is required", queuectl.ErrInvalidInput)
	}

	id := req.Id
	if id == "" {
		id = uuid.New().String()
	}

	maxRetries := config.DefaultMaxRetries
	if cfg, err := config.Load(m.dir); err == nil {
		maxRetries = int(cfg.MaxRetries)
	}
	if req.MaxRetries != nil {
		maxRetries = int(*req.MaxRetries)
	}

	now := time.Now().UTC()
	runAt := now
	if req.RunAt != nil && !req.RunAt.IsZero() {
		runAt = req.RunAt.UTC()
	}

	jb := &job.Job{
		Id:         id,
		Command:    req.Command,
		State:      job.Pending,
		Attempts:   0,
		MaxRetries: uint32(maxRetries),
		CreatedAt:  now,
		UpdatedAt:  now,
		RunAt:      runAt,
	}
	if err := m.store.Enqueue(ctx, jb); err != nil {
		return nil, err
	}
	return jb, nil
}

// List returns jobs filtered by state, parsed from the caller's raw
// --state string. An empty string means no filter.
//
// When state is "dead", List reads the DLQ table instead of the active
// table, so its return value is []*job.DeadJob rather than []*job.Job;
// callers that need a single concrete type should use ListDead
// directly instead of filtering for "dead" here.
func (m *Manager) List(ctx context.Context, state string) (any, error) {
	s, err := parseStateFilter(state)
	if err != nil {
		return nil, err
	}
	if s == job.Dead {
		return m.store.ListDead(ctx)
	}
	return m.store.List(ctx, s)
}

// ListDead returns every job currently in the dead-letter queue.
func (m *Manager) ListDead(ctx context.Context) ([]*job.DeadJob, error) {
	return m.store.ListDead(ctx)
}

// Status returns a per-state job count, keyed by wire state name.
func (m *Manager) Status(ctx context.Context) (map[string]int, error) {
	counts, err := m.store.Status(ctx)
	if err != nil {
		return nil, err
	}
	ret := make(map[string]int, len(counts))
	for state, n := range counts {
		ret[state.String()] = n
	}
	return ret, nil
}

// RetryDLQ re-enqueues a dead job by id.
func (m *Manager) RetryDLQ(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: id is required", queuectl.ErrInvalidInput)
	}
	return m.store.RetryDLQ(ctx, id)
}

// Logs returns the captured output and state of a job by id, whether it
// currently lives in the active table or the DLQ.
func (m *Manager) Logs(ctx context.Context, id string) (*job.LogEntry, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: id is required", queuectl.ErrInvalidInput)
	}
	return m.store.Logs(ctx, id)
}

// Purge permanently deletes terminal rows of status older than before.
func (m *Manager) Purge(ctx context.Context, status job.State, before time.Time) (int64, error) {
	return m.store.Purge(ctx, status, before)
}

func parseStateFilter(raw string) (job.State, error) {
	if raw == "" {
		return job.Unknown, nil
	}
	s, err := job.ParseState(raw)
	if err != nil {
		return job.Unknown, fmt.Errorf("%w: %s", queuectl.ErrInvalidInput, err)
	}
	return s, nil
}
