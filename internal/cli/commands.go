package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// registerCommands adds all subcommands to the root command.
func registerCommands(root *cobra.Command, version, commit, date string) {
	root.AddCommand(
		newCreateCmd(),
		newCleanCmd(),
		newVisualizeCmd(),
		newVersionCmd(version, commit, date),
	)
}

func newVersionCmd(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "gamedir version %s (commit: %s, built: %s)\n", version, commit, date)
			return err
		},
	}
}
