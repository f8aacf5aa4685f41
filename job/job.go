package job

import "time"

// Job represents a unit of work as stored in the active jobs table.
//
// Id is a caller-visible string, either supplied at enqueue time or
// generated as a random UUID. Command is an opaque shell command line.
//
// Attempts counts completed execution attempts and must never exceed
// MaxRetries+1: the retry machine promotes a job to the dead-letter
// queue precisely when a failed attempt would push Attempts past
// MaxRetries.
//
// Stdout and Stderr hold the captured output of the most recent attempt
// and are nil until the job has been executed at least once.
type Job struct {
	Id         string    `json:"id" bun:"id,pk"`
	Command    string    `json:"command" bun:"command,notnull"`
	State      State     `json:"state" bun:"state,notnull"`
	Attempts   uint32    `json:"attempts" bun:"attempts,notnull,default:0"`
	MaxRetries uint32    `json:"max_retries" bun:"max_retries,notnull"`
	CreatedAt  time.Time `json:"created_at" bun:"created_at,notnull"`
	UpdatedAt  time.Time `json:"updated_at" bun:"updated_at,notnull"`
	RunAt      time.Time `json:"run_at" bun:"run_at,notnull"`
	Stdout     *string   `json:"stdout" bun:"stdout"`
	Stderr     *string   `json:"stderr" bun:"stderr"`
}

// DeadJob represents a job that has exhausted its retry budget.
//
// DeadJob carries the same identity and command as the Job it was
// promoted from, but drops RunAt and UpdatedAt (which have no further
// meaning for a terminal record) and adds FailedAt, the time of
// promotion. State is always Dead.
type DeadJob struct {
	Id         string    `json:"id" bun:"id,pk"`
	Command    string    `json:"command" bun:"command,notnull"`
	State      State     `json:"state" bun:"state,notnull"`
	Attempts   uint32    `json:"attempts" bun:"attempts,notnull"`
	MaxRetries uint32    `json:"max_retries" bun:"max_retries,notnull"`
	CreatedAt  time.Time `json:"created_at" bun:"created_at,notnull"`
	FailedAt   time.Time `json:"failed_at" bun:"failed_at,notnull"`
	Stdout     *string   `json:"stdout" bun:"stdout"`
	Stderr     *string   `json:"stderr" bun:"stderr"`
}

// LogEntry is the projection returned by the job manager's Logs
// operation: it carries a job's identity, current state, the timestamp
// of its most recent transition, and its captured output, regardless of
// whether the job currently lives in the active table or the DLQ.
type LogEntry struct {
	Id        string    `json:"id"`
	State     State     `json:"state"`
	UpdatedAt time.Time `json:"updated_at"`
	Stdout    *string   `json:"stdout"`
	Stderr    *string   `json:"stderr"`
}
