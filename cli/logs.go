package cli

import (
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs <id>",
	Short: "Show the captured output of a job",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogs,
}

func runLogs(cmd *cobra.Command, args []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	entry, err := e.manager.Logs(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printJSON(cmd, entry)
}
