package scaffold

// ABOUTME: version_info.json handling: project metadata captured at creation
// ABOUTME: time, plus project-root discovery for later sweep runs.

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	goversion "github.com/hashicorp/go-version"
)

// MetaFileName is the project marker file written at the project root.
const MetaFileName = "version_info.json"

// InitialVersion is the version stamped into freshly created projects.
const InitialVersion = "0.1.0"

// ProjectMeta holds project configuration captured at creation time.
type ProjectMeta struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Version   string     `json:"version"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created"`
	Engine    Engine     `json:"engine"`
	Platforms []Platform `json:"platforms,omitempty"`
}

// NewProjectMeta builds the metadata for a freshly scaffolded project.
func NewProjectMeta(name string, engine Engine, platforms []Platform) *ProjectMeta {
	return &ProjectMeta{
		ID:        uuid.NewString(),
		Name:      name,
		Version:   InitialVersion,
		Status:    "development",
		CreatedAt: time.Now().UTC(),
		Engine:    engine,
		Platforms: platforms,
	}
}

// SaveMeta writes version_info.json to the given project root.
func SaveMeta(root string, meta *ProjectMeta) error {
	if _, err := goversion.NewSemver(meta.Version); err != nil {
		return fmt.Errorf("invalid project version %q: %w", meta.Version, err)
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", MetaFileName, err)
	}

	path := filepath.Join(root, MetaFileName)
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", MetaFileName, err)
	}

	return nil
}

// LoadMeta reads and validates version_info.json from a project root.
func LoadMeta(root string) (*ProjectMeta, error) {
	path := filepath.Join(root, MetaFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is project-controlled
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", MetaFileName, err)
	}

	var meta ProjectMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse %s: %w", MetaFileName, err)
	}
	if _, err := goversion.NewSemver(meta.Version); err != nil {
		return nil, fmt.Errorf("invalid project version %q: %w", meta.Version, err)
	}

	return &meta, nil
}

// FindProjectRoot walks upward from start looking for a directory containing
// version_info.json or a tmp subdirectory. Used to locate the implicit sweep
// target when no project root is given.
func FindProjectRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, MetaFileName)); err == nil {
			return dir, nil
		}
		// The tmp heuristic must not match the filesystem root (/tmp).
		if dir != filepath.Dir(dir) {
			if info, err := os.Stat(filepath.Join(dir, "tmp")); err == nil && info.IsDir() {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrProjectNotFound
		}
		dir = parent
	}
}
