package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"ch/internal/ui/logic"
	"ch/internal/ui/state"
)

func newListCommand(opts *options) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print every command as group/command<TAB>command string",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			catalog := cfg.Catalog()

			// a search with an empty query lists everything
			s := state.New().EnterSearch()
			for _, r := range query {
				s = s.AppendChar(r)
			}

			out := cmd.OutOrStdout()
			for _, entry := range logic.Visible(catalog, catalog.GroupNames(), s) {
				command, _ := catalog.Lookup(entry.Group, entry.Command)
				fmt.Fprintf(out, "%s/%s\t%s\n", entry.Group, entry.Command, command)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "only list commands whose name contains this text, ignoring case")
	return cmd
}
