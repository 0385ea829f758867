package cli

// ABOUTME: `gamedir clean` sweeps stale files out of the project's tmp
// ABOUTME: directory, locating the project root automatically.

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmadden/gamedir/internal/scaffold"
	"github.com/spf13/cobra"
)

func newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Delete stale files from the project's tmp directory",
		Args:  cobra.NoArgs,
		RunE:  runClean,
	}

	cmd.Flags().Int("age", 7, "Delete files older than this many days")
	cmd.Flags().Bool("dry-run", false, "Report what would be deleted without deleting")
	cmd.Flags().String("project-root", "", "Project root (default: found by walking up from the current directory)")
	cmd.Flags().String("exclude", "", "Comma-separated tmp subdirectories to skip (default: Backups)")

	return cmd
}

func runClean(cmd *cobra.Command, _ []string) error {
	cfg, err := scaffold.LoadConfig()
	if err != nil {
		return err
	}

	ageDays, _ := cmd.Flags().GetInt("age")
	if !cmd.Flags().Changed("age") && cfg.Clean.AgeDays > 0 {
		ageDays = cfg.Clean.AgeDays
	}
	if ageDays < 0 {
		return scaffold.NewInputError("--age must not be negative")
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")

	exclude := scaffold.DefaultExclude
	if excludeList, _ := cmd.Flags().GetString("exclude"); cmd.Flags().Changed("exclude") {
		exclude = splitList(excludeList)
	} else if len(cfg.Clean.Exclude) > 0 {
		exclude = cfg.Clean.Exclude
	}

	projectRoot, _ := cmd.Flags().GetString("project-root")
	if projectRoot == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		projectRoot, err = scaffold.FindProjectRoot(cwd)
		if err != nil {
			return scaffold.NewTargetError("%v (run from inside a project or pass --project-root)", err)
		}
	}

	target := filepath.Join(projectRoot, "tmp")
	maxAge := time.Duration(ageDays) * 24 * time.Hour

	slog.Debug("sweeping tmp directory", "target", target, "age_days", ageDays, "dry_run", dryRun, "exclude", exclude)

	report, err := scaffold.Sweep(scaffold.SweepOptions{
		TargetRoot: target,
		MaxAge:     maxAge,
		DryRun:     dryRun,
		Exclude:    exclude,
	})
	if err != nil {
		return err
	}

	printSweepReport(cmd, target, report)
	return nil
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// printSweepReport writes the per-file lines and the final summary.
// Per-file failures are warnings; they never change the exit code.
func printSweepReport(cmd *cobra.Command, target string, report *scaffold.SweepReport) {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	prefix := ""
	if report.DryRun {
		prefix = "[DRY RUN] "
	}

	for _, f := range report.Selected {
		fmt.Fprintf(out, "%sDeleting file: %s (%.1f days old)\n", prefix, f.Path, f.Age.Hours()/24) //nolint:errcheck
	}
	color := colorEnabled(cmd, errOut)
	for _, f := range report.Failures {
		fmt.Fprintln(errOut, colorizeWarning(fmt.Sprintf("Warning: %s: %s", f.Path, f.Reason), color)) //nolint:errcheck
	}

	fmt.Fprintf(out, "\nCleanup summary for %s:\n", target)                      //nolint:errcheck
	fmt.Fprintf(out, "  %sscanned: %d, selected: %d, deleted: %d, failed: %d\n", //nolint:errcheck
		prefix, report.Scanned, len(report.Selected), report.Deleted, len(report.Failures))
	fmt.Fprintf(out, "  %sreclaimed: %s\n", prefix, scaffold.FormatBytes(report.BytesReclaimed)) //nolint:errcheck
}
