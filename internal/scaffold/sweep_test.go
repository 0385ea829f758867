package scaffold

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeAgedFile creates a file whose modification time lies age in the past.
func writeAgedFile(t *testing.T, dir, name, content string, age time.Duration) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	mtime := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
	return path
}

func TestSweep_MissingTarget(t *testing.T) {
	_, err := Sweep(SweepOptions{TargetRoot: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	var targetErr *TargetError
	assert.ErrorAs(t, err, &targetErr)
}

func TestSweep_TargetNotADirectory(t *testing.T) {
	dir := t.TempDir()
	file := writeAgedFile(t, dir, "file.txt", "x", 0)

	_, err := Sweep(SweepOptions{TargetRoot: file})
	require.Error(t, err)
	var targetErr *TargetError
	assert.ErrorAs(t, err, &targetErr)
}

func TestSweep_EmptyTarget(t *testing.T) {
	report, err := Sweep(SweepOptions{TargetRoot: t.TempDir(), MaxAge: DefaultSweepAge})
	require.NoError(t, err)

	assert.Zero(t, report.Scanned)
	assert.Empty(t, report.Selected)
	assert.Zero(t, report.Deleted)
	assert.Empty(t, report.Failures)
	assert.Zero(t, report.BytesReclaimed)
}

func TestSweep_AgeSelection(t *testing.T) {
	dir := t.TempDir()
	old := writeAgedFile(t, dir, "old.log", "stale data", 8*24*time.Hour)
	// A hair under the threshold: must be kept (strict inequality).
	boundary := writeAgedFile(t, dir, "boundary.log", "x", 7*24*time.Hour-time.Minute)
	fresh := writeAgedFile(t, dir, "fresh.log", "x", time.Hour)

	report, err := Sweep(SweepOptions{TargetRoot: dir, MaxAge: 7 * 24 * time.Hour})
	require.NoError(t, err)

	assert.Equal(t, 3, report.Scanned)
	require.Len(t, report.Selected, 1)
	assert.Equal(t, old, report.Selected[0].Path)
	assert.Equal(t, 1, report.Deleted)
	assert.Equal(t, int64(len("stale data")), report.BytesReclaimed)
	assert.Empty(t, report.Failures)

	assert.NoFileExists(t, old)
	assert.FileExists(t, boundary)
	assert.FileExists(t, fresh)
}

func TestSweep_DryRunDeletesNothing(t *testing.T) {
	dir := t.TempDir()
	old := writeAgedFile(t, dir, "sub/old.bin", "0123456789", 30*24*time.Hour)

	report, err := Sweep(SweepOptions{TargetRoot: dir, MaxAge: DefaultSweepAge, DryRun: true})
	require.NoError(t, err)

	assert.True(t, report.DryRun)
	require.Len(t, report.Selected, 1)
	assert.Zero(t, report.Deleted)
	assert.Equal(t, int64(10), report.BytesReclaimed)
	assert.FileExists(t, old)

	// Re-scan yields the identical file set.
	again, err := Sweep(SweepOptions{TargetRoot: dir, MaxAge: DefaultSweepAge, DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, report.Scanned, again.Scanned)
	assert.Equal(t, report.Selected[0].Path, again.Selected[0].Path)
}

func TestSweep_ExcludedSubtreesSkipped(t *testing.T) {
	dir := t.TempDir()
	kept := writeAgedFile(t, dir, "Backups/save.bak", "x", 90*24*time.Hour)
	nested := writeAgedFile(t, dir, "Backups/deep/old.bak", "x", 90*24*time.Hour)
	swept := writeAgedFile(t, dir, "Logs/run.log", "x", 90*24*time.Hour)

	report, err := Sweep(SweepOptions{TargetRoot: dir, MaxAge: DefaultSweepAge, Exclude: DefaultExclude})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Scanned, "excluded files must not be scanned")
	assert.Equal(t, 1, report.Deleted)
	assert.FileExists(t, kept)
	assert.FileExists(t, nested)
	assert.NoFileExists(t, swept)
}

func TestSweep_DirectoriesNeverDeleted(t *testing.T) {
	dir := t.TempDir()
	writeAgedFile(t, dir, "Cache/a/b/old.tmp", "x", 30*24*time.Hour)

	report, err := Sweep(SweepOptions{TargetRoot: dir, MaxAge: DefaultSweepAge})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Deleted)

	// The emptied directory chain survives.
	assert.DirExists(t, filepath.Join(dir, "Cache", "a", "b"))
}

func TestSweep_NegativeAgeUsesDefault(t *testing.T) {
	dir := t.TempDir()
	kept := writeAgedFile(t, dir, "recent.log", "x", 24*time.Hour)
	swept := writeAgedFile(t, dir, "ancient.log", "x", 8*24*time.Hour)

	report, err := Sweep(SweepOptions{TargetRoot: dir, MaxAge: -time.Hour})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Deleted)
	assert.FileExists(t, kept)
	assert.NoFileExists(t, swept)
}

func TestSweep_ZeroAgeSelectsEverything(t *testing.T) {
	dir := t.TempDir()
	hour := writeAgedFile(t, dir, "hour.log", "x", time.Hour)
	day := writeAgedFile(t, dir, "day.log", "x", 25*time.Hour)

	report, err := Sweep(SweepOptions{TargetRoot: dir, MaxAge: 0})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Deleted)
	assert.NoFileExists(t, hour)
	assert.NoFileExists(t, day)
}

func TestSweep_ContinuesPastFailures(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("permission checks don't apply to root")
	}
	dir := t.TempDir()
	locked := writeAgedFile(t, dir, "locked/old.tmp", "x", 30*24*time.Hour)
	free := writeAgedFile(t, dir, "free/old.tmp", "x", 30*24*time.Hour)

	// Removing a file requires write permission on its directory.
	require.NoError(t, os.Chmod(filepath.Dir(locked), 0500))
	t.Cleanup(func() { _ = os.Chmod(filepath.Dir(locked), 0755) })

	report, err := Sweep(SweepOptions{TargetRoot: dir, MaxAge: DefaultSweepAge})
	require.NoError(t, err)

	assert.Len(t, report.Selected, 2)
	assert.Equal(t, 1, report.Deleted)
	assert.Len(t, report.Failures, 1)
	assert.FileExists(t, locked)
	assert.NoFileExists(t, free)
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 bytes"},
		{512, "512 bytes"},
		{2048, "2.00 KB"},
		{5 * 1 << 20, "5.00 MB"},
		{3 * 1 << 30, "3.00 GB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.in))
	}
}
