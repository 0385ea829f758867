// Command gamedir scaffolds game-project directory trees and sweeps their
// tmp workspaces.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bmadden/gamedir/internal/cli"
)

// Build metadata, overridden via -ldflags on release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(cli.Execute(ctx, version, commit, date))
}
