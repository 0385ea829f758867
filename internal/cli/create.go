package cli

// ABOUTME: `gamedir create` scaffolds the project directory tree, with an
// ABOUTME: interactive prompt mode when --game-name is not given.

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/bmadden/gamedir/internal/scaffold"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a game project directory tree",
		Args:  cobra.NoArgs,
		RunE:  runCreate,
	}

	cmd.Flags().String("game-name", "", "Name of the game (omit for interactive mode)")
	cmd.Flags().String("root-dir", "", "Root directory for the project (default: current directory)")
	cmd.Flags().String("engine", "", "Game engine: Custom, Unity, Unreal, Godot (default: Custom)")
	cmd.Flags().String("platforms", "", "Comma-separated target platforms (e.g. Windows,Android)")
	cmd.Flags().Bool("examples", false, "Show usage examples and exit without writing anything")

	return cmd
}

func runCreate(cmd *cobra.Command, _ []string) error {
	if examples, _ := cmd.Flags().GetBool("examples"); examples {
		printExamples(cmd.OutOrStdout())
		return nil
	}

	cfg, err := scaffold.LoadConfig()
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("game-name")
	rootDir, _ := cmd.Flags().GetString("root-dir")
	engineName, _ := cmd.Flags().GetString("engine")
	platformList, _ := cmd.Flags().GetString("platforms")

	// Config supplies defaults that explicit flags override.
	if rootDir == "" {
		rootDir = cfg.Defaults.RootDir
	}
	if engineName == "" {
		engineName = cfg.Defaults.Engine
	}
	if platformList == "" && !cmd.Flags().Changed("platforms") {
		platformList = cfg.Defaults.Platforms
	}

	if name == "" {
		name, rootDir, engineName, platformList, err = promptInputs(cmd, rootDir, engineName, platformList)
		if err != nil {
			return err
		}
	}
	if rootDir == "" {
		rootDir = "."
	}

	engine, err := scaffold.ParseEngine(engineName)
	if err != nil {
		return err
	}
	platforms, err := scaffold.ParsePlatforms(platformList)
	if err != nil {
		return err
	}

	slog.Debug("scaffolding project", "name", name, "root", rootDir, "engine", engine, "platforms", platforms)

	report, err := scaffold.Build(scaffold.BuildOptions{
		GameName:  name,
		RootDir:   rootDir,
		Engine:    engine,
		Platforms: platforms,
	})
	if err != nil {
		return err
	}

	printBuildReport(cmd, name, report)
	return nil
}

// promptInputs runs interactive mode: every missing input is prompted for,
// with the config-supplied values as defaults. A non-terminal stdin without
// a game name is a usage error.
func promptInputs(cmd *cobra.Command, rootDir, engineName, platformList string) (name, root, engine, platforms string, err error) {
	in := cmd.InOrStdin()
	ctx := cmd.Context()

	if !isInteractive(in) {
		return "", "", "", "", scaffold.NewInputError("--game-name is required when stdin is not a terminal")
	}

	prompter := scaffold.NewPrompter(in, cmd.ErrOrStderr())

	name, err = prompter.Prompt(ctx, "Enter the name of your game: ", "")
	if err != nil {
		return "", "", "", "", err
	}
	if strings.TrimSpace(name) == "" {
		return "", "", "", "", scaffold.NewInputError("game name must not be empty")
	}

	if rootDir == "" {
		rootDir, err = prompter.Prompt(ctx, "Enter the root directory for your project [default: current directory]: ", ".")
		if err != nil {
			return "", "", "", "", err
		}
	}

	if engineName == "" {
		engineName, err = prompter.Prompt(ctx, "Select a game engine (Custom, Unity, Unreal, Godot) [default: Custom]: ", "Custom")
		if err != nil {
			return "", "", "", "", err
		}
	}

	if platformList == "" {
		platformList, err = prompter.Prompt(ctx, "Enter target platforms (comma-separated) [default: none]: ", "")
		if err != nil {
			return "", "", "", "", err
		}
	}

	return name, rootDir, engineName, platformList, nil
}

// isInteractive reports whether the input reader can be prompted. Injected
// readers (tests) always can; real files must be terminals.
func isInteractive(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return true
	}
	return term.IsTerminal(int(f.Fd()))
}

// printBuildReport writes the human-readable outcome: counts, then one
// warning line per failed path. Partial success still exits zero.
func printBuildReport(cmd *cobra.Command, name string, report *scaffold.BuildReport) {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	fmt.Fprintf(out, "Created project structure for %s at %s\n", name, report.ProjectDir)                 //nolint:errcheck
	fmt.Fprintf(out, "  directories created: %d, already existed: %d\n", report.Created, report.Existing) //nolint:errcheck

	if report.Failed() {
		color := colorEnabled(cmd, errOut)
		header := fmt.Sprintf("Warning: %d path(s) could not be created:", len(report.Failures))
		fmt.Fprintln(errOut, colorizeWarning(header, color)) //nolint:errcheck
		for _, f := range report.Failures {
			fmt.Fprintf(errOut, "  %s: %s\n", f.Path, f.Reason) //nolint:errcheck
		}
	}
}
