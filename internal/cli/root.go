// Package cli defines the Cobra command tree for the gamedir CLI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/bmadden/gamedir/internal/scaffold"
	"github.com/spf13/cobra"
)

// Execute runs the root command and returns the exit code.
func Execute(ctx context.Context, version, commit, date string) int {
	rootCmd := newRootCmd(version, commit, date)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "gamedir: %s\n", err) //nolint:errcheck // best-effort stderr write

	var inputErr *scaffold.InputError
	if errors.As(err, &inputErr) {
		return 2
	}

	var targetErr *scaffold.TargetError
	if errors.As(err, &targetErr) {
		return 3
	}

	return 1
}

// newRootCmd creates the root Cobra command with all subcommands registered.
func newRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gamedir",
		Short: "Game-project directory scaffolder",
		Long: `Scaffold a complete game development directory tree (production
pipeline, source, assets, build outputs, documentation, tmp workspace),
tuned for your engine and target platforms. Later, sweep stale files out
of the tmp workspace with 'gamedir clean'.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			configureLogging(cmd)
		},
	}

	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (-v for debug)")
	rootCmd.PersistentFlags().CountP("quiet", "q", "Suppress non-essential output (-q for warn, -qq for error only)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	registerCommands(rootCmd, version, commit, date)

	return rootCmd
}

// configureLogging sets the default slog level from --verbose/--quiet.
func configureLogging(cmd *cobra.Command) {
	verbose, _ := cmd.Flags().GetCount("verbose")
	quiet, _ := cmd.Flags().GetCount("quiet")

	level := slog.LevelInfo
	switch {
	case verbose > 0:
		level = slog.LevelDebug
	case quiet == 1:
		level = slog.LevelWarn
	case quiet > 1:
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
