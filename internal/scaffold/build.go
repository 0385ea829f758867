package scaffold

// ABOUTME: The tree builder: materializes the merged directory catalog on
// ABOUTME: disk with per-directory descriptions, idempotently.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// BuildOptions are the inputs to a scaffold run.
type BuildOptions struct {
	GameName  string
	RootDir   string
	Engine    Engine
	Platforms []Platform
}

// PathFailure records a single path that could not be created or written.
type PathFailure struct {
	Path   string
	Reason string
}

// BuildReport summarizes one scaffold run. Paths holds every catalog
// directory in creation order, whether freshly created or pre-existing.
type BuildReport struct {
	ProjectDir string
	Paths      []string
	Created    int
	Existing   int
	Failures   []PathFailure
}

// Failed reports whether any path could not be materialized.
func (r *BuildReport) Failed() bool { return len(r.Failures) > 0 }

// ProjectDirName converts a game name into its project directory name by
// stripping spaces ("Space Adventure" -> "SpaceAdventure").
func ProjectDirName(gameName string) string {
	return strings.ReplaceAll(gameName, " ", "")
}

// Build materializes the directory catalog for a game project under
// opts.RootDir. Existing directories are left untouched; description files
// are always rewritten, seeded files only when absent. Per-path failures are
// collected in the report and never abort the run, so one inaccessible
// directory cannot halt an otherwise-successful scaffold. A nil error with
// report.Failed() true is a partial success.
func Build(opts BuildOptions) (*BuildReport, error) {
	name := strings.TrimSpace(opts.GameName)
	if name == "" {
		return nil, NewInputError("game name must not be empty")
	}
	if strings.TrimSpace(opts.RootDir) == "" {
		return nil, NewInputError("root directory must not be empty")
	}
	if strings.ContainsRune(opts.RootDir, 0) || strings.ContainsRune(name, 0) {
		return nil, NewInputError("name and root directory must not contain NUL bytes")
	}
	engine := opts.Engine
	if engine == "" {
		engine = EngineCustom
	}

	dirName := ProjectDirName(name)
	catalog, err := MergedCatalog(dirName, engine, opts.Platforms)
	if err != nil {
		return nil, err
	}

	projectDir, err := filepath.Abs(filepath.Join(opts.RootDir, dirName))
	if err != nil {
		return nil, NewInputError("invalid root directory %q: %v", opts.RootDir, err)
	}

	report := &BuildReport{ProjectDir: projectDir}

	// Project root first; without it nothing else can be created.
	if err := os.MkdirAll(projectDir, 0755); err != nil {
		return nil, fmt.Errorf("create project directory: %w", err)
	}
	report.fail(writeRootDescription(projectDir, name, engine, opts.Platforms), projectDir)

	for _, entry := range catalog {
		abs := filepath.Join(projectDir, filepath.FromSlash(entry.Path))

		if entry.Kind == EntryFile {
			report.fail(seedFile(abs, entry), abs)
			continue
		}

		existed := dirExists(abs)
		if err := os.MkdirAll(abs, 0755); err != nil {
			report.fail(err, abs)
			continue
		}
		if existed {
			report.Existing++
		} else {
			report.Created++
		}
		report.Paths = append(report.Paths, abs)
		report.fail(writeDescription(abs, entry.Path, entry.Description), abs)
	}

	// Root-level extras.
	report.fail(writeGitignore(projectDir), projectDir)
	report.fail(writeReadme(projectDir, name, engine, opts.Platforms), projectDir)
	report.fail(writeTmpReadme(projectDir), projectDir)
	report.fail(writeCleanupScript(projectDir), projectDir)
	report.fail(SaveMeta(projectDir, NewProjectMeta(name, engine, opts.Platforms)), projectDir)

	return report, nil
}

// fail records a non-nil error against a path and keeps going.
func (r *BuildReport) fail(err error, path string) {
	if err == nil {
		return
	}
	r.Failures = append(r.Failures, PathFailure{Path: path, Reason: err.Error()})
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// seedFile writes an engine stub file unless it already exists. The parent
// directory is created as needed.
func seedFile(abs string, entry Entry) error {
	if _, err := os.Stat(abs); err == nil {
		return nil // never overwrite user content
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return fmt.Errorf("create parent of %s: %w", entry.Path, err)
	}
	content := fmt.Sprintf("# %s\n\n%s\n", entry.Path, entry.Description)
	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		return fmt.Errorf("seed %s: %w", entry.Path, err)
	}
	return nil
}
