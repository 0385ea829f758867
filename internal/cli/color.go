package cli

// ABOUTME: ANSI color for warning output, gated on --no-color and on the
// ABOUTME: stream being a terminal.

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// colorEnabled reports whether ANSI color should be written to w. Color is
// off when --no-color is set or when w is not a terminal.
func colorEnabled(cmd *cobra.Command, w io.Writer) bool {
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorizeWarning wraps msg in yellow when enabled.
func colorizeWarning(msg string, enabled bool) string {
	if !enabled {
		return msg
	}
	return ansiYellow + msg + ansiReset
}
