package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of ch",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ch %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  Go:        %s\n", runtime.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "  Arch:      %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}
