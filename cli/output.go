package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// printJSON writes v to cmd's stdout as indented JSON.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
