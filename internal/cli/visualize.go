package cli

// ABOUTME: `gamedir visualize` renders an interactive SVG/HTML map of a
// ABOUTME: directory tree, with nodes colored by recursive size.

import (
	"fmt"

	"github.com/bmadden/gamedir/internal/visual"
	"github.com/spf13/cobra"
)

func newVisualizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "visualize [dir]",
		Short: "Render an interactive size map of a directory tree",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runVisualize,
	}

	cmd.Flags().String("out", "directory_structure.html", "Output HTML file")

	return cmd
}

func runVisualize(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	out, _ := cmd.Flags().GetString("out")

	tree, err := visual.Scan(root)
	if err != nil {
		return err
	}
	if err := visual.WriteHTML(tree, out); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d directories, largest %s)\n", //nolint:errcheck
		out, len(tree.Nodes), visual.FormatSize(tree.MaxSize))
	return nil
}
