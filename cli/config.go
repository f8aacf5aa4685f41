package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/queuectl/queuectl"
	"github.com/queuectl/queuectl/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change queuectl's tuning knobs",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value (max_retries or backoff_base)",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	return printJSON(cmd, cfg)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	dir, err := config.Dir()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	n, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return fmt.Errorf("%w: %s must be a non-negative integer", queuectl.ErrInvalidInput, key)
	}

	switch key {
	case "max_retries":
		cfg.MaxRetries = uint32(n)
	case "backoff_base":
		cfg.BackoffBase = uint32(n)
	default:
		return fmt.Errorf("%w: unknown config key %q", queuectl.ErrInvalidInput, key)
	}

	if err := config.Save(dir, cfg); err != nil {
		return err
	}
	return printJSON(cmd, cfg)
}
