package cli

import (
	"github.com/spf13/cobra"
)

var listStateFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List active jobs, optionally filtered by state",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listStateFlag, "state", "", "filter by state (pending, processing, completed, failed, dead)")
}

func runList(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	jobs, err := e.manager.List(cmd.Context(), listStateFlag)
	if err != nil {
		return err
	}
	return printJSON(cmd, jobs)
}
