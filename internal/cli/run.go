package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run GROUP COMMAND",
		Short: "Run a configured command without the UI",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			command, err := cfg.Catalog().LookupStrict(args[0], args[1])
			if err != nil {
				return err
			}
			if strings.TrimSpace(command) == "" {
				command = args[1]
			}
			return runCommand(cmd, opts, cfg, command)
		},
	}
}
