package store

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/queuectl/queuectl/job"
)

type jobModel struct {
	bun.BaseModel `bun:"table:jobs"`

	Id         string    `bun:"id,pk"`
	Command    string    `bun:"command,notnull"`
	State      job.State `bun:"state,notnull"`
	Attempts   uint32    `bun:"attempts,notnull,default:0"`
	MaxRetries uint32    `bun:"max_retries,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull"`
	UpdatedAt  time.Time `bun:"updated_at,notnull"`
	RunAt      time.Time `bun:"run_at,notnull"`
	Stdout     *string   `bun:"stdout"`
	Stderr     *string   `bun:"stderr"`
}

func (jm *jobModel) toJob() *job.Job {
	return &job.Job{
		Id:         jm.Id,
		Command:    jm.Command,
		State:      jm.State,
		Attempts:   jm.Attempts,
		MaxRetries: jm.MaxRetries,
		CreatedAt:  jm.CreatedAt,
		UpdatedAt:  jm.UpdatedAt,
		RunAt:      jm.RunAt,
		Stdout:     jm.Stdout,
		Stderr:     jm.Stderr,
	}
}

func fromJob(jb *job.Job) *jobModel {
	return &jobModel{
		Id:         jb.Id,
		Command:    jb.Command,
		State:      jb.State,
		Attempts:   jb.Attempts,
		MaxRetries: jb.MaxRetries,
		CreatedAt:  jb.CreatedAt,
		UpdatedAt:  jb.UpdatedAt,
		RunAt:      jb.RunAt,
		Stdout:     jb.Stdout,
		Stderr:     jb.Stderr,
	}
}

type deadModel struct {
	bun.BaseModel `bun:"table:dlq"`

	Id         string    `bun:"id,pk"`
	Command    string    `bun:"command,notnull"`
	State      job.State `bun:"state,notnull"`
	Attempts   uint32    `bun:"attempts,notnull"`
	MaxRetries uint32    `bun:"max_retries,notnull"`
	CreatedAt  time.Time `bun:"created_at,notnull"`
	FailedAt   time.Time `bun:"failed_at,notnull"`
	Stdout     *string   `bun:"stdout"`
	Stderr     *string   `bun:"stderr"`
}

func (dm *deadModel) toDeadJob() *job.DeadJob {
	return &job.DeadJob{
		Id:         dm.Id,
		Command:    dm.Command,
		State:      dm.State,
		Attempts:   dm.Attempts,
		MaxRetries: dm.MaxRetries,
		CreatedAt:  dm.CreatedAt,
		FailedAt:   dm.FailedAt,
		Stdout:     dm.Stdout,
		Stderr:     dm.Stderr,
	}
}
