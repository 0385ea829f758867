package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmadden/gamedir/internal/scaffold"
)

// newProject scaffolds a minimal project and returns its root.
func newProject(t *testing.T) string {
	t.Helper()
	report, err := scaffold.Build(scaffold.BuildOptions{
		GameName: "Demo",
		RootDir:  t.TempDir(),
		Engine:   scaffold.EngineCustom,
	})
	require.NoError(t, err)
	require.False(t, report.Failed())
	return report.ProjectDir
}

// ageFile pushes a file's modification time into the past.
func ageFile(t *testing.T, path string, age time.Duration) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0644))
	mtime := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func TestCleanCmd_DeletesStaleFiles(t *testing.T) {
	proj := newProject(t)
	stale := filepath.Join(proj, "tmp", "Logs", "old.log")
	ageFile(t, stale, 10*24*time.Hour)
	fresh := filepath.Join(proj, "tmp", "Logs", "new.log")
	require.NoError(t, os.WriteFile(fresh, []byte("fresh"), 0644))

	out, _, err := runCommand(t, "clean", "--project-root", proj, "--age", "7")
	require.NoError(t, err)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
	assert.Contains(t, out, "Deleting file: "+stale)
	assert.Contains(t, out, "deleted: 1")
}

func TestCleanCmd_AgeZeroDeletesEverythingStale(t *testing.T) {
	proj := newProject(t)
	stale := filepath.Join(proj, "tmp", "Logs", "old.log")
	ageFile(t, stale, 25*time.Hour)

	out, _, err := runCommand(t, "clean", "--project-root", proj, "--age", "0")
	require.NoError(t, err)

	// Age zero selects every file modified before the sweep, including the
	// scaffolded tmp descriptions, so only check the aged file.
	assert.NoFileExists(t, stale)
	assert.Contains(t, out, "Deleting file: "+stale)
}

func TestCleanCmd_DryRun(t *testing.T) {
	proj := newProject(t)
	stale := filepath.Join(proj, "tmp", "Cache", "old.dat")
	ageFile(t, stale, 30*24*time.Hour)

	out, _, err := runCommand(t, "clean", "--project-root", proj, "--dry-run")
	require.NoError(t, err)

	assert.FileExists(t, stale)
	assert.Contains(t, out, "[DRY RUN] Deleting file: "+stale)
	assert.Contains(t, out, "deleted: 0")
}

func TestCleanCmd_ExcludesBackupsByDefault(t *testing.T) {
	proj := newProject(t)
	backup := filepath.Join(proj, "tmp", "Backups", "save.bak")
	ageFile(t, backup, 90*24*time.Hour)

	_, _, err := runCommand(t, "clean", "--project-root", proj)
	require.NoError(t, err)

	assert.FileExists(t, backup)
}

func TestCleanCmd_ExplicitExclude(t *testing.T) {
	proj := newProject(t)
	cache := filepath.Join(proj, "tmp", "Cache", "keep.dat")
	ageFile(t, cache, 90*24*time.Hour)
	backup := filepath.Join(proj, "tmp", "Backups", "save.bak")
	ageFile(t, backup, 90*24*time.Hour)

	_, _, err := runCommand(t, "clean", "--project-root", proj, "--exclude", "Cache")
	require.NoError(t, err)

	assert.FileExists(t, cache)
	assert.NoFileExists(t, backup, "explicit --exclude replaces the default")
}

func TestCleanCmd_MissingTmpDir(t *testing.T) {
	_, _, err := runCommand(t, "clean", "--project-root", t.TempDir())
	require.Error(t, err)
	var targetErr *scaffold.TargetError
	assert.ErrorAs(t, err, &targetErr)
}

func TestCleanCmd_NegativeAge(t *testing.T) {
	_, _, err := runCommand(t, "clean", "--project-root", t.TempDir(), "--age=-1")
	require.Error(t, err)
	var inputErr *scaffold.InputError
	assert.ErrorAs(t, err, &inputErr)
}
