package job

import (
	"database/sql/driver"
	"fmt"
)

// State represents the lifecycle state of a Job.
//
// The state machine is:
//
//	pending    -> processing
//	processing -> completed
//	processing -> pending   (retry, with incremented attempts and future RunAt)
//	processing -> dead      (promotion to the dead-letter queue)
//
// Unknown is the zero value and is used to mean "no filter" in List.
//
// Failed is a legal filter value but is never persisted: a failing
// attempt either reschedules the job back to pending or promotes it
// straight to dead, so Failed never appears as a stored state.
type State uint8

const (
	// Unknown is the zero value of State and denotes an unfiltered query.
	Unknown State = iota

	// Pending jobs are eligible for claiming once RunAt has passed.
	Pending

	// Processing jobs are currently owned by a worker.
	Processing

	// Completed jobs finished their most recent attempt successfully.
	// Completed is terminal.
	Completed

	// Failed is never written to storage; it exists only as an
	// acceptable (always-empty) list filter for compatibility.
	Failed

	// Dead jobs have exhausted their retry budget and live in the DLQ.
	// Dead is terminal.
	Dead
)

func stateToString(s State) string {
	switch s {
	case Pending:
		return "pending"
	case Processing:
		return "processing"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	case Dead:
		return "dead"
	default:
		return "unknown"
	}
}

func stateFromString(s string) (State, error) {
	switch s {
	case "pending":
		return Pending, nil
	case "processing":
		return Processing, nil
	case "completed":
		return Completed, nil
	case "failed":
		return Failed, nil
	case "dead":
		return Dead, nil
	case "unknown", "":
		return Unknown, nil
	default:
		return 0, fmt.Errorf("unknown job state: %s", s)
	}
}

// ParseState converts a wire string into a State value.
func ParseState(s string) (State, error) {
	return stateFromString(s)
}

// MarshalText implements encoding.TextMarshaler using the lowercase wire
// vocabulary ("pending", "processing", "completed", "failed", "dead").
func (s State) MarshalText() ([]byte, error) {
	return []byte(stateToString(s)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *State) UnmarshalText(text []byte) error {
	v, err := stateFromString(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// String returns the canonical wire representation of the state.
func (s State) String() string {
	return stateToString(s)
}

// Value implements database/sql/driver.Valuer so State is persisted as
// its lowercase wire string rather than its numeric backing value.
func (s State) Value() (driver.Value, error) {
	return stateToString(s), nil
}

// Scan implements database/sql.Scanner.
func (s *State) Scan(src any) error {
	switch v := src.(type) {
	case string:
		parsed, err := stateFromString(v)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	case []byte:
		parsed, err := stateFromString(string(v))
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	case nil:
		*s = Unknown
		return nil
	default:
		return fmt.Errorf("cannot scan %T into State", src)
	}
}
