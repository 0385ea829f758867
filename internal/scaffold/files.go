package scaffold

// ABOUTME: Generated file content: description.txt files, .gitignore,
// ABOUTME: README files, and the embedded tmp cleanup helper script.

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DescriptionFileName is written into every catalog directory.
const DescriptionFileName = "description.txt"

// writeDescription writes (always overwriting) the description.txt for one
// catalog directory. Only the description file is ever touched; other
// directory contents are left alone.
func writeDescription(dir, relPath, description string) error {
	content := fmt.Sprintf("# %s\n\n%s\n", relPath, description)
	path := filepath.Join(dir, DescriptionFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", DescriptionFileName, err)
	}
	return nil
}

// writeRootDescription writes the project-root description.txt.
func writeRootDescription(projectDir, gameName string, engine Engine, platforms []Platform) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s Project Root\n\n", gameName)
	b.WriteString("This is the main project directory for the game. It contains all source code, assets, and documentation.\n")
	b.WriteString("The directory structure follows game development best practices and is organized by function.\n")
	b.WriteString("Each subdirectory contains a description.txt file explaining its purpose.\n")
	fmt.Fprintf(&b, "Game Engine: %s\n", engine)
	fmt.Fprintf(&b, "Target Platforms: %s\n", joinPlatforms(platforms))

	path := filepath.Join(projectDir, DescriptionFileName)
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write root %s: %w", DescriptionFileName, err)
	}
	return nil
}

func joinPlatforms(platforms []Platform) string {
	if len(platforms) == 0 {
		return "none"
	}
	names := make([]string, 0, len(platforms))
	for _, p := range platforms {
		names = append(names, string(p))
	}
	return strings.Join(names, ", ")
}

const gitignoreContent = `# Build directories
Build/
tmp/

# Temporary files
*.tmp
*.temp
*.bak

# OS specific files
.DS_Store
Thumbs.db

# IDE specific files
.idea/
.vscode/
*.sublime-project
*.sublime-workspace

# Engine caches
Library/
Temp/
Obj/
Saved/
Intermediate/
DerivedDataCache/
.import/
.godot/
`

// writeGitignore writes the fixed baseline .gitignore at the project root.
func writeGitignore(projectDir string) error {
	path := filepath.Join(projectDir, ".gitignore")
	if err := os.WriteFile(path, []byte(gitignoreContent), 0644); err != nil {
		return fmt.Errorf("write .gitignore: %w", err)
	}
	return nil
}

// writeReadme writes the project README.md.
func writeReadme(projectDir, gameName string, engine Engine, platforms []Platform) error {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", gameName)
	b.WriteString("Game development project scaffolded by gamedir.\n\n")
	fmt.Fprintf(&b, "## Game Engine\n\n%s\n\n", engine)
	fmt.Fprintf(&b, "## Target Platforms\n\n%s\n\n", joinPlatforms(platforms))
	b.WriteString(`## Directory Structure

### Production Pipeline

- **Pre-Production**: Pre-production materials (concept, story, design, planning)
- **Production**: Production phase materials (asset creation, animation, implementation)
- **Post-Production**: Post-production materials (compositing, effects, final polishing)

### Development Structure

- **Documentation**: Design documents, technical specifications, and API references
- **Source**: Source code for the game and engine
- **Assets**: Game assets including models, textures, animations, audio, etc.
- **Build**: Build files for different platforms
- **Tests**: Test code including unit tests and integration tests
- **ThirdParty**: Third-party libraries and tools
- **Scripts**: Automation and utility scripts
- **Config**: Configuration files
- **Versions**: Version management
- **Releases**: Release builds for different distribution channels
- **tmp**: Temporary files, builds, caches, and logs
`)

	path := filepath.Join(projectDir, "README.md")
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write README.md: %w", err)
	}
	return nil
}

const tmpReadmeContent = `# Temporary Files Directory

This directory contains all temporary files used during the development process. Files in this directory are not intended for version control and may be deleted by cleanup scripts.

## Directory Structure

- **Builds**: Temporary build files and intermediate compilation results
- **Cache**: Cached data for faster loading and processing
- **Logs**: Log files generated during development and testing
- **Backups**: Automatic backups of project files
- **Renders**: Temporary rendering outputs and previews
- **Debug**: Debug information and crash dumps
- **Testing**: Temporary files generated during testing
- **Artifacts**: Build artifacts and intermediate files
- **AutoSave**: Auto-saved versions of project files
- **Exports**: Temporary exported files before final placement
- **Media**: Temporary media assets
  - **Images**: Temporary images, screenshots, and visual assets
  - **Audio**: Temporary audio files, voice recordings, and sound effects
  - **Video**: Temporary video files, cutscenes, and animations
  - **Textures**: In-progress and temporary textures
- **Prototypes**: Prototype assets and code for experimental features
- **Staging**: Assets staged for review before production
- **Review**: Assets under review by team members or clients
- **Processing**: Assets currently being processed or converted
- **Import**: Recently imported assets pending organization
- **Outsourced**: Temporary storage for assets from external partners

## Cleanup

This directory can be cleaned periodically to free up disk space. Use the cleanup script in Scripts/Tools, or run 'gamedir clean' from anywhere inside the project.
`

// writeTmpReadme writes the README.md inside the tmp directory.
func writeTmpReadme(projectDir string) error {
	path := filepath.Join(projectDir, "tmp", "README.md")
	if err := os.WriteFile(path, []byte(tmpReadmeContent), 0644); err != nil {
		return fmt.Errorf("write tmp/README.md: %w", err)
	}
	return nil
}

// CleanupScriptPath is where the helper script lands, relative to the root.
const CleanupScriptPath = "Scripts/Tools/cleanup_tmp.sh"

const cleanupScriptContent = `#!/bin/sh
# Removes stale files from the project's tmp directory.
# Thin wrapper around 'gamedir clean'; run with -h for options.

PROJECT_ROOT="$(cd "$(dirname "$0")/../.." && pwd)"
exec gamedir clean --project-root "$PROJECT_ROOT" "$@"
`

// writeCleanupScript places the tmp cleanup helper under Scripts/Tools.
func writeCleanupScript(projectDir string) error {
	path := filepath.Join(projectDir, filepath.FromSlash(CleanupScriptPath))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create Scripts/Tools: %w", err)
	}
	if err := os.WriteFile(path, []byte(cleanupScriptContent), 0755); err != nil { //nolint:gosec // executable helper script
		return fmt.Errorf("write cleanup script: %w", err)
	}
	return nil
}
