package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ch/internal/config"
)

func newInitCommand(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.ResolvePath(opts.configPath)
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check config file: %w", err)
			}

			if err := config.NewConfigService().SaveToPath(config.DefaultConfig(), path); err != nil {
				return err
			}
			opts.log.WithField("path", path).Info("starter config written")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config file")
	return cmd
}
