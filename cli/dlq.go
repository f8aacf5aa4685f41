package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl/job"
)

var dlqCmd = &cobra.Command{
	Use:   "dlq",
	Short: "Inspect and manage the dead-letter queue",
}

var dlqListCmd = &cobra.Command{
	Use:   "list",
	Short: "List jobs in the dead-letter queue",
	RunE:  runDLQList,
}

var dlqRetryCmd = &cobra.Command{
	Use:   "retry <id>",
	Short: "Re-enqueue a dead job",
	Args:  cobra.ExactArgs(1),
	RunE:  runDLQRetry,
}

var dlqPurgeBeforeFlag string

var dlqPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Permanently delete old dead-letter-queue entries",
	RunE:  runDLQPurge,
}

func init() {
	dlqCmd.AddCommand(dlqListCmd)
	dlqCmd.AddCommand(dlqRetryCmd)
	dlqCmd.AddCommand(dlqPurgeCmd)
	dlqPurgeCmd.Flags().StringVar(&dlqPurgeBeforeFlag, "before", "", "delete only rows older than this ISO8601 timestamp (default: now)")
}

func runDLQList(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	dead, err := e.manager.ListDead(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd, dead)
}

func runDLQRetry(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	if err := e.manager.RetryDLQ(cmd.Context(), args[0]); err != nil {
		return err
	}
	return printJSON(cmd, map[string]string{"id": args[0], "status": "retried"})
}

func runDLQPurge(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	before := time.Now().UTC()
	if dlqPurgeBeforeFlag != "" {
		parsed, err := time.Parse(time.RFC3339, dlqPurgeBeforeFlag)
		if err != nil {
			return err
		}
		before = parsed.UTC()
	}

	n, err := e.manager.Purge(cmd.Context(), job.Dead, before)
	if err != nil {
		return err
	}
	return printJSON(cmd, map[string]int64{"purged": n})
}
