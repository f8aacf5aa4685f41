package cli

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show job counts by state",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	e, err := newEnv(cmd.Context())
	if err != nil {
		return err
	}
	defer e.close()

	counts, err := e.manager.Status(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd, counts)
}
