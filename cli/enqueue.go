package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl"
)

var enqueueRunAtFlag string

var enqueueCmd = &cobra.Command{
	Use:   "enqueue <json>",
	Short: "Add a new job to the queue",
	Long: `Add a new job to the queue from a JSON payload.

The payload must supply at least "command"; "id", "max_retries" and
"run_at" are optional and are defaulted if absent. --run-at overrides
or injects the payload's "run_at" field.`,
	Args: cobra.ExactArgs(1),
	RunE: runEnqueue,
}

func init() {
	enqueueCmd.Flags().StringVar(&enqueueRunAtFlag, "run-at", "", "schedule the job for this ISO-8601 timestamp instead of now")
}

func runEnqueue(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	payload := []byte(args[0])
	if enqueueRunAtFlag != "" {
		payload, err = injectRunAt(payload, enqueueRunAtFlag)
		if err != nil {
			return err
		}
	}

	jb, err := e.manager.Enqueue(cmd.Context(), payload)
	if err != nil {
		return err
	}
	return printJSON(cmd, jb)
}

// injectRunAt overrides (or adds) the "run_at" field of a raw enqueue
// payload with runAt, so --run-at takes precedence over any run_at the
// payload itself supplies.
func injectRunAt(payload []byte, runAt string) ([]byte, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, fmt.Errorf("%w: %s", queuectl.ErrInvalidInput, err)
	}
	encoded, err := json.Marshal(runAt)
	if err != nil {
		return nil, err
	}
	fields["run_at"] = encoded
	return json.Marshal(fields)
}
